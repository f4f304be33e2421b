// Package icons is the closed registry of vector icons a callout can show.
// Every entry is decomposed into path primitives when the process starts and
// is read-only afterwards, so a Registry is safe for concurrent use.
package icons

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dgallion1/calloutmd/internal/mdtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Primitive is a single path of an icon: its drawing commands plus any
// rendering hints such as fill-rule, in source order.
type Primitive struct {
	D     string
	Hints mdtree.Attributes
}

// Attributes returns the attributes of the <path> element drawing p.
func (p Primitive) Attributes() mdtree.Attributes {
	attrs := make(mdtree.Attributes, 0, len(p.Hints)+1)
	attrs = append(attrs, p.Hints...)
	return attrs.Set("d", p.D)
}

// Registry maps icon names to their primitives.
type Registry struct {
	defaults map[string][]Primitive
	custom   map[string][]Primitive
	names    []string
}

var builtin = mustBuild(variantMarkup, customMarkup)

// Default returns the built-in registry.
func Default() *Registry {
	return builtin
}

func mustBuild(defaults, custom map[string]string) *Registry {
	r, err := build(defaults, custom)
	if err != nil {
		panic(err)
	}
	return r
}

func build(defaults, custom map[string]string) (*Registry, error) {
	r := &Registry{
		defaults: make(map[string][]Primitive, len(defaults)),
		custom:   make(map[string][]Primitive, len(custom)),
	}
	for name, markup := range defaults {
		prims, err := Decompose(markup)
		if err != nil {
			return nil, fmt.Errorf("default icon %q: %w", name, err)
		}
		r.defaults[name] = prims
	}
	for name, markup := range custom {
		prims, err := Decompose(markup)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", name, err)
		}
		r.custom[name] = prims
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup resolves a custom icon name. The returned slice is a copy.
func (r *Registry) Lookup(name string) ([]Primitive, bool) {
	prims, ok := r.custom[name]
	if !ok {
		return nil, false
	}
	return clonePrimitives(prims), true
}

// VariantDefault returns the built-in icon for a callout variant name.
func (r *Registry) VariantDefault(variant string) ([]Primitive, bool) {
	prims, ok := r.defaults[variant]
	if !ok {
		return nil, false
	}
	return clonePrimitives(prims), true
}

// Names lists every custom icon name in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func clonePrimitives(prims []Primitive) []Primitive {
	out := make([]Primitive, len(prims))
	for i, p := range prims {
		out[i] = Primitive{D: p.D, Hints: p.Hints.Clone()}
	}
	return out
}

var bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// Decompose parses the inner markup of an <svg> element and returns every
// path it draws, in document order. Paths nested in groups are flattened and
// take the group's attributes as hints; a path's own attribute wins, except
// transforms, which compose outermost first.
func Decompose(markup string) ([]Primitive, error) {
	nodes, err := html.ParseFragment(strings.NewReader("<svg>"+markup+"</svg>"), bodyContext)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	if len(nodes) != 1 || nodes[0].Type != html.ElementNode || nodes[0].Data != "svg" {
		return nil, fmt.Errorf("markup is not a single svg fragment")
	}

	var prims []Primitive
	var walk func(n *html.Node, inherited mdtree.Attributes) error
	walk = func(n *html.Node, inherited mdtree.Attributes) error {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "path":
				p := Primitive{Hints: inherited.Clone()}
				for _, a := range c.Attr {
					if a.Key == "d" {
						p.D = a.Val
						continue
					}
					p.Hints = inherit(p.Hints, a.Key, a.Val)
				}
				if p.D == "" {
					return fmt.Errorf("path without drawing commands")
				}
				prims = append(prims, p)
			case "g":
				attrs := inherited.Clone()
				for _, a := range c.Attr {
					attrs = inherit(attrs, a.Key, a.Val)
				}
				if err := walk(c, attrs); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported svg element <%s>", c.Data)
			}
		}
		return nil
	}
	if err := walk(nodes[0], nil); err != nil {
		return nil, err
	}
	if len(prims) == 0 {
		return nil, fmt.Errorf("markup draws no paths")
	}
	return prims, nil
}

// inherit sets key on attrs, appending to an inherited transform instead of
// replacing it.
func inherit(attrs mdtree.Attributes, key, value string) mdtree.Attributes {
	if key == "transform" {
		if outer, ok := attrs.Get(key); ok && outer != "" {
			value = outer + " " + value
		}
	}
	return attrs.Set(key, value)
}
