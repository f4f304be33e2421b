package mdtree

// Attribute is a single key/value pair.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is a string mapping that remembers insertion order.
type Attributes []Attribute

// Attrs builds Attributes from alternating keys and values.
func Attrs(kv ...string) Attributes {
	if len(kv)%2 != 0 {
		panic("mdtree: Attrs needs key/value pairs")
	}
	a := make(Attributes, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		a = a.Set(kv[i], kv[i+1])
	}
	return a
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set replaces the value for key in place or appends a new pair.
func (a Attributes) Set(key, value string) Attributes {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Key: key, Value: value})
}

// Keys returns the keys in insertion order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	copy(c, a)
	return c
}
