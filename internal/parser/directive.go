package parser

import (
	"fmt"

	"github.com/yuin/goldmark/ast"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// Goldmark node kinds for the generic directive syntax.
var (
	KindContainerDirective = ast.NewNodeKind("ContainerDirective")
	KindLeafDirective      = ast.NewNodeKind("LeafDirective")
	KindTextDirective      = ast.NewNodeKind("TextDirective")
	KindDirectiveLabel     = ast.NewNodeKind("DirectiveLabel")
)

// BlockDirective is a leaf (::name) or container (:::name) directive.
// Parsed {attributes} live in Attrs; the Attributes name belongs to
// goldmark's ast.Node method set.
// A leaf keeps its label in Lines so goldmark parses it as inline content.
// A container's label becomes a DirectiveLabel first child.
type BlockDirective struct {
	ast.BaseBlock
	Name      string
	Attrs     mdtree.Attributes
	container bool
	fence     int
}

func (n *BlockDirective) Kind() ast.NodeKind {
	if n.container {
		return KindContainerDirective
	}
	return KindLeafDirective
}

func (n *BlockDirective) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  n.Name,
		"Attrs": fmt.Sprint(n.Attrs),
	}, nil)
}

// DirectiveLabel holds the [label] of a container directive.
type DirectiveLabel struct {
	ast.BaseBlock
}

func (n *DirectiveLabel) Kind() ast.NodeKind { return KindDirectiveLabel }

func (n *DirectiveLabel) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// TextDirective is an inline :name[label]{attrs} directive. Its label is
// kept as written.
type TextDirective struct {
	ast.BaseInline
	Name  string
	Label string
	Attrs mdtree.Attributes
}

func (n *TextDirective) Kind() ast.NodeKind { return KindTextDirective }

func (n *TextDirective) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  n.Name,
		"Label": n.Label,
	}, nil)
}
