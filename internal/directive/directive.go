// Package directive holds the helpers shared by every stage that inspects
// directive nodes, and the Markdown serializer used to turn an unclaimed
// directive back into its source syntax.
package directive

import "github.com/dgallion1/calloutmd/internal/mdtree"

// IsDirective reports whether n is a text, leaf or container directive.
func IsDirective(n *mdtree.Node) bool {
	switch n.Kind {
	case mdtree.KindTextDirective, mdtree.KindLeafDirective, mdtree.KindContainerDirective:
		return true
	}
	return false
}

// IsInline reports whether n is a text or leaf directive, the two flavors
// that have no nested block content.
func IsInline(n *mdtree.Node) bool {
	return n.Kind == mdtree.KindTextDirective || n.Kind == mdtree.KindLeafDirective
}

// IsContainer reports whether n is a container directive.
func IsContainer(n *mdtree.Node) bool {
	return n.Kind == mdtree.KindContainerDirective
}

// Unclaimed reports whether n is a directive no stage has claimed yet.
func Unclaimed(n *mdtree.Node) bool {
	return IsDirective(n) && !n.Claimed()
}

// Label returns the label child of a container directive. The first child
// only counts when extraction marked it as the bracketed label and it has
// content.
func Label(n *mdtree.Node) (*mdtree.Node, bool) {
	if !IsContainer(n) || len(n.Children) == 0 {
		return nil, false
	}
	first := n.Children[0]
	if !first.Label || len(first.Children) == 0 {
		return nil, false
	}
	return first, true
}
