// Package restore turns text and leaf directives that no stage claimed back
// into the literal Markdown the author wrote. A sentence such as
// "meet at 10 a:m" parses as containing a text directive; without this stage
// it would vanish from the output.
//
// The stage must run after every stage that may claim a directive, including
// stages injected by integrations; the pipeline guarantees that ordering.
package restore

import (
	"log/slog"
	"strings"

	"github.com/dgallion1/calloutmd/internal/directive"
	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// Stage is the restoration stage.
type Stage struct {
	Logger *slog.Logger
}

func (Stage) Name() string { return "restore-directives" }

// Transform restores every unclaimed text and leaf directive in doc.
// Container directives are left alone whether or not they were claimed.
func (s Stage) Transform(doc *mdtree.Document) error {
	restored := 0
	err := mdtree.Walk(doc.Tree, func(parent *mdtree.Node, index int) error {
		node := parent.Children[index]
		if !directive.IsInline(node) || node.Claimed() {
			return nil
		}
		parent.Children[index] = Literal(node)
		restored++
		return mdtree.SkipChildren
	})
	if err != nil {
		return err
	}
	if restored > 0 && s.Logger != nil {
		s.Logger.Debug("directives restored", "path", doc.Path, "count", restored)
	}
	return nil
}

// Literal returns the node that replaces an unclaimed text or leaf
// directive: a text node for text directives, and a paragraph holding that
// text for leaf directives so block content stays in block position.
func Literal(node *mdtree.Node) *mdtree.Node {
	// ToMarkdown ends its output with a newline as if it had written a
	// whole file; keeping it would insert a line break into the document.
	markdown := strings.TrimSuffix(directive.ToMarkdown(node), "\n")
	text := mdtree.Text(markdown)
	if node.Kind == mdtree.KindTextDirective {
		return text
	}
	return &mdtree.Node{Kind: mdtree.KindParagraph, Children: []*mdtree.Node{text}}
}
