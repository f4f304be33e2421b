package mdtree

import "strings"

// Kind identifies what a Node represents.
type Kind int

const (
	KindRoot Kind = iota
	KindParagraph
	KindHeading
	KindText
	KindEmphasis
	KindStrong
	KindInlineCode
	KindLink
	KindImage
	KindCode
	KindList
	KindListItem
	KindBlockquote
	KindThematicBreak
	KindBreak
	KindHTML
	KindTextDirective
	KindLeafDirective
	KindContainerDirective
	KindElement // presentation element built by a stage, always carries a Hint
)

var kindNames = [...]string{
	KindRoot:               "root",
	KindParagraph:          "paragraph",
	KindHeading:            "heading",
	KindText:               "text",
	KindEmphasis:           "emphasis",
	KindStrong:             "strong",
	KindInlineCode:         "inlineCode",
	KindLink:               "link",
	KindImage:              "image",
	KindCode:               "code",
	KindList:               "list",
	KindListItem:           "listItem",
	KindBlockquote:         "blockquote",
	KindThematicBreak:      "thematicBreak",
	KindBreak:              "break",
	KindHTML:               "html",
	KindTextDirective:      "textDirective",
	KindLeafDirective:      "leafDirective",
	KindContainerDirective: "containerDirective",
	KindElement:            "element",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// RenderHint records how a node is presented downstream. A node with a
// non-nil Hint has been claimed by a stage.
type RenderHint struct {
	Element    string     // output element, e.g. "aside" or "path"
	Attributes Attributes // output attributes in emission order
}

// Node is one element of the document tree. Nodes carry no parent pointer;
// traversal passes the parent and index explicitly.
type Node struct {
	Kind       Kind
	Name       string     // directive name
	Value      string     // text, code, or raw html content; link/image URL lives in Attributes
	Attributes Attributes // directive attributes, link href/title, image src/alt
	Label      bool       // set on the first child of a container directive holding its [label]
	Hint       *RenderHint
	Children   []*Node

	Level   int    // heading depth
	Ordered bool   // list
	Start   int    // ordered list start
	Tight   bool   // list without blank lines between items
	Lang    string // fenced code info
}

// Text returns a literal text node.
func Text(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}

// Element returns a claimed presentation node.
func Element(name string, attrs Attributes, children ...*Node) *Node {
	return &Node{
		Kind:     KindElement,
		Hint:     &RenderHint{Element: name, Attributes: attrs},
		Children: children,
	}
}

// Claimed reports whether some stage has attached a render hint.
func (n *Node) Claimed() bool {
	return n.Hint != nil
}

// Claim attaches a render hint. A node that is already claimed keeps its
// original hint and Claim reports false.
func (n *Node) Claim(element string, attrs Attributes) bool {
	if n.Hint != nil {
		return false
	}
	n.Hint = &RenderHint{Element: element, Attributes: attrs}
	return true
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Attributes = n.Attributes.Clone()
	if n.Hint != nil {
		h := *n.Hint
		h.Attributes = n.Hint.Attributes.Clone()
		c.Hint = &h
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// ToString concatenates the text of every descendant, dropping markup.
func ToString(nodes ...*Node) string {
	var sb strings.Builder
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			switch n.Kind {
			case KindText, KindInlineCode, KindCode:
				sb.WriteString(n.Value)
			case KindImage:
				alt, _ := n.Attributes.Get("alt")
				sb.WriteString(alt)
			}
			walk(n.Children)
		}
	}
	walk(nodes)
	return sb.String()
}

// Document is one unit of work: a tree and the path of the file it came
// from. Path is empty when the content has no backing file.
type Document struct {
	Path string
	Tree *Node
}
