package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// MarkdownParser handles Markdown files using goldmark with the directive
// extension. Headings get goldmark's automatic ids.
type MarkdownParser struct {
	md goldmark.Markdown
}

func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{md: goldmark.New(
		goldmark.WithExtensions(Directives),
		goldmark.WithParserOptions(gparser.WithAutoHeadingID()),
	)}
}

func (p *MarkdownParser) Parse(r io.Reader, path string) (*mdtree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseBytes(src, path), nil
}

// ParseBytes parses src into a document tree. Parsing Markdown never fails.
func (p *MarkdownParser) ParseBytes(src []byte, path string) *mdtree.Document {
	doc := p.md.Parser().Parse(text.NewReader(src))
	c := converter{src: src}
	return &mdtree.Document{Path: path, Tree: c.convert(doc)[0]}
}

type converter struct {
	src []byte
}

func (c converter) children(n ast.Node) []*mdtree.Node {
	var out []*mdtree.Node
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		for _, m := range c.convert(ch) {
			// goldmark splits text at every delimiter candidate.
			if last := len(out) - 1; last >= 0 && m.Kind == mdtree.KindText && out[last].Kind == mdtree.KindText {
				out[last].Value += m.Value
				continue
			}
			out = append(out, m)
		}
	}
	return out
}

func (c converter) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(c.src))
	}
	return buf.String()
}

func (c converter) convert(n ast.Node) []*mdtree.Node {
	node := func(kind mdtree.Kind) *mdtree.Node {
		return &mdtree.Node{Kind: kind, Children: c.children(n)}
	}
	switch n := n.(type) {
	case *ast.Document:
		return []*mdtree.Node{node(mdtree.KindRoot)}
	case *ast.Paragraph, *ast.TextBlock:
		return []*mdtree.Node{node(mdtree.KindParagraph)}
	case *ast.Heading:
		h := node(mdtree.KindHeading)
		h.Level = n.Level
		if id, ok := n.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				h.Attributes = h.Attributes.Set("id", string(b))
			}
		}
		return []*mdtree.Node{h}
	case *ast.ThematicBreak:
		return []*mdtree.Node{{Kind: mdtree.KindThematicBreak}}
	case *ast.FencedCodeBlock:
		return []*mdtree.Node{{Kind: mdtree.KindCode, Lang: string(n.Language(c.src)), Value: c.lines(n)}}
	case *ast.CodeBlock:
		return []*mdtree.Node{{Kind: mdtree.KindCode, Value: c.lines(n)}}
	case *ast.Blockquote:
		return []*mdtree.Node{node(mdtree.KindBlockquote)}
	case *ast.List:
		l := node(mdtree.KindList)
		l.Ordered = n.IsOrdered()
		l.Start = n.Start
		l.Tight = n.IsTight
		return []*mdtree.Node{l}
	case *ast.ListItem:
		return []*mdtree.Node{node(mdtree.KindListItem)}
	case *ast.HTMLBlock:
		value := c.lines(n)
		if n.HasClosure() {
			value += string(n.ClosureLine.Value(c.src))
		}
		return []*mdtree.Node{{Kind: mdtree.KindHTML, Value: strings.TrimRight(value, "\n")}}
	case *ast.Text:
		value := n.Segment.Value(c.src)
		t := mdtree.Text(textValue(value, n.IsRaw()))
		if n.SoftLineBreak() {
			t.Value += "\n"
		}
		if n.HardLineBreak() {
			return []*mdtree.Node{t, {Kind: mdtree.KindBreak}}
		}
		return []*mdtree.Node{t}
	case *ast.String:
		return []*mdtree.Node{mdtree.Text(textValue(n.Value, n.IsRaw() || n.IsCode()))}
	case *ast.CodeSpan:
		var sb strings.Builder
		for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
			if t, ok := ch.(*ast.Text); ok {
				v := string(t.Segment.Value(c.src))
				if strings.HasSuffix(v, "\n") {
					v = v[:len(v)-1] + " "
				}
				sb.WriteString(v)
			}
		}
		return []*mdtree.Node{{Kind: mdtree.KindInlineCode, Value: sb.String()}}
	case *ast.Emphasis:
		if n.Level >= 2 {
			return []*mdtree.Node{node(mdtree.KindStrong)}
		}
		return []*mdtree.Node{node(mdtree.KindEmphasis)}
	case *ast.Link:
		l := node(mdtree.KindLink)
		l.Attributes = mdtree.Attrs("href", string(n.Destination))
		if len(n.Title) > 0 {
			l.Attributes = l.Attributes.Set("title", string(n.Title))
		}
		return []*mdtree.Node{l}
	case *ast.Image:
		img := &mdtree.Node{Kind: mdtree.KindImage, Attributes: mdtree.Attrs(
			"src", string(n.Destination),
			"alt", mdtree.ToString(c.children(n)...),
		)}
		if len(n.Title) > 0 {
			img.Attributes = img.Attributes.Set("title", string(n.Title))
		}
		return []*mdtree.Node{img}
	case *ast.AutoLink:
		href := string(n.URL(c.src))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			href = "mailto:" + href
		}
		return []*mdtree.Node{{
			Kind:       mdtree.KindLink,
			Attributes: mdtree.Attrs("href", href),
			Children:   []*mdtree.Node{mdtree.Text(string(n.Label(c.src)))},
		}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.src))
		}
		return []*mdtree.Node{{Kind: mdtree.KindHTML, Value: sb.String()}}
	case *BlockDirective:
		kind := mdtree.KindLeafDirective
		if n.container {
			kind = mdtree.KindContainerDirective
		}
		d := node(kind)
		d.Name = n.Name
		d.Attributes = n.Attrs
		return []*mdtree.Node{d}
	case *DirectiveLabel:
		label := node(mdtree.KindParagraph)
		label.Label = true
		return []*mdtree.Node{label}
	case *TextDirective:
		d := &mdtree.Node{Kind: mdtree.KindTextDirective, Name: n.Name, Attributes: n.Attrs}
		if n.Label != "" {
			d.Children = []*mdtree.Node{mdtree.Text(n.Label)}
		}
		return []*mdtree.Node{d}
	}
	// Extension nodes this converter does not know keep their content.
	return c.children(n)
}

func textValue(v []byte, raw bool) string {
	if raw {
		return string(v)
	}
	return decode(v)
}
