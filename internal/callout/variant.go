package callout

// Variant is one of the closed set of callout kinds.
type Variant int

const (
	Note Variant = iota
	Tip
	Caution
	Danger
)

// Variants lists every variant in declaration order.
var Variants = []Variant{Note, Tip, Caution, Danger}

// ParseVariant matches a directive name exactly.
func ParseVariant(name string) (Variant, bool) {
	switch name {
	case "note":
		return Note, true
	case "tip":
		return Tip, true
	case "caution":
		return Caution, true
	case "danger":
		return Danger, true
	}
	return 0, false
}

func (v Variant) String() string {
	switch v {
	case Note:
		return "note"
	case Tip:
		return "tip"
	case Caution:
		return "caution"
	case Danger:
		return "danger"
	}
	return "unknown"
}

// TranslationKey is the key of the variant's default label.
func (v Variant) TranslationKey() string {
	return "callout." + v.String()
}
