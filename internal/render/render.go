// Package render serializes a processed document tree to HTML.
//
// Nodes a stage claimed are emitted as their render hint describes. Other
// nodes get the usual CommonMark HTML, except that directives nobody
// claimed fall back to a plain wrapper: span for text directives and div
// for leaf and container directives.
package render

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// Text is escaped for element content only; quotes stay literal.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HTML renders tree and returns the markup.
func HTML(tree *mdtree.Node) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, tree); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders tree to w. Top-level blocks are separated by one newline
// and nothing follows the last block.
func Write(w io.Writer, tree *mdtree.Node) error {
	if tree == nil {
		return nil
	}
	for _, n := range blocks(tree.Children, "\n", false) {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

func raw(s string) *html.Node {
	return &html.Node{Type: html.RawNode, Data: s}
}

func text(s string) *html.Node {
	return raw(textEscaper.Replace(s))
}

func element(name string, attrs mdtree.Attributes, children ...*html.Node) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: name, DataAtom: atom.Lookup([]byte(name))}
	for _, a := range attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	for _, c := range children {
		el.AppendChild(c)
	}
	return el
}

func blocks(nodes []*mdtree.Node, sep string, tight bool) []*html.Node {
	var out []*html.Node
	for i, n := range nodes {
		if i > 0 && sep != "" {
			out = append(out, raw(sep))
		}
		out = append(out, convert(n, tight)...)
	}
	return out
}

func inlines(nodes []*mdtree.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		out = append(out, convert(n, false)...)
	}
	return out
}

// convert maps one tree node to HTML nodes. tight is set for the children
// of tight list items, whose paragraphs render without <p>.
func convert(n *mdtree.Node, tight bool) []*html.Node {
	if n.Hint != nil {
		return []*html.Node{element(n.Hint.Element, n.Hint.Attributes, blocks(n.Children, "", false)...)}
	}
	switch n.Kind {
	case mdtree.KindRoot:
		return blocks(n.Children, "\n", false)
	case mdtree.KindParagraph:
		if tight {
			return inlines(n.Children)
		}
		return []*html.Node{element("p", nil, inlines(n.Children)...)}
	case mdtree.KindHeading:
		level := min(max(n.Level, 1), 6)
		return []*html.Node{element("h"+strconv.Itoa(level), n.Attributes, inlines(n.Children)...)}
	case mdtree.KindText:
		return []*html.Node{text(n.Value)}
	case mdtree.KindEmphasis:
		return []*html.Node{element("em", nil, inlines(n.Children)...)}
	case mdtree.KindStrong:
		return []*html.Node{element("strong", nil, inlines(n.Children)...)}
	case mdtree.KindInlineCode:
		return []*html.Node{element("code", nil, text(n.Value))}
	case mdtree.KindLink:
		return []*html.Node{element("a", pick(n.Attributes, "href", "title"), inlines(n.Children)...)}
	case mdtree.KindImage:
		return []*html.Node{element("img", pick(n.Attributes, "src", "alt", "title"))}
	case mdtree.KindCode:
		var attrs mdtree.Attributes
		if n.Lang != "" {
			attrs = mdtree.Attrs("class", "language-"+n.Lang)
		}
		return []*html.Node{element("pre", nil, element("code", attrs, text(n.Value)))}
	case mdtree.KindList:
		name, attrs := "ul", mdtree.Attributes(nil)
		if n.Ordered {
			name = "ol"
			if n.Start != 1 {
				attrs = mdtree.Attrs("start", strconv.Itoa(n.Start))
			}
		}
		items := []*html.Node{raw("\n")}
		for _, item := range n.Children {
			items = append(items, element("li", nil, blocks(item.Children, "\n", n.Tight)...), raw("\n"))
		}
		return []*html.Node{element(name, attrs, items...)}
	case mdtree.KindListItem:
		return []*html.Node{element("li", nil, blocks(n.Children, "\n", tight)...)}
	case mdtree.KindBlockquote:
		body := append([]*html.Node{raw("\n")}, blocks(n.Children, "\n", false)...)
		return []*html.Node{element("blockquote", nil, append(body, raw("\n"))...)}
	case mdtree.KindThematicBreak:
		return []*html.Node{element("hr", nil)}
	case mdtree.KindBreak:
		return []*html.Node{element("br", nil), raw("\n")}
	case mdtree.KindHTML:
		return []*html.Node{raw(n.Value)}
	case mdtree.KindTextDirective:
		return []*html.Node{element("span", nil, inlines(n.Children)...)}
	case mdtree.KindLeafDirective:
		return []*html.Node{element("div", nil, inlines(n.Children)...)}
	case mdtree.KindContainerDirective:
		return []*html.Node{element("div", nil, blocks(n.Children, "", false)...)}
	}
	return blocks(n.Children, "", false)
}

// pick keeps the listed attributes that are set, in the given order.
func pick(attrs mdtree.Attributes, keys ...string) mdtree.Attributes {
	var out mdtree.Attributes
	for _, k := range keys {
		if v, ok := attrs.Get(k); ok && (v != "" || k == "alt") {
			out = out.Set(k, v)
		}
	}
	return out
}
