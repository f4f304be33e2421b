package parser

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// containerParser opens :::name[label]{attrs} blocks. The block holds
// every following line until a fence of at least as many colons.
type containerParser struct{}

// leafParser reads single-line ::name[label]{attrs} blocks.
type leafParser struct{}

func colonRun(line []byte, pos int) int {
	i := pos
	for i < len(line) && line[i] == ':' {
		i++
	}
	return i - pos
}

// openHead checks the opening line of a block directive and returns its
// head when the line holds nothing else.
func openHead(reader text.Reader, pc parser.Context, container bool) (directiveHead, int, bool) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || line[pos] != ':' {
		return directiveHead{}, 0, false
	}
	fence := colonRun(line, pos)
	if container && fence < 3 || !container && fence != 2 {
		return directiveHead{}, 0, false
	}
	h, ok := scanHead(line, pos+fence)
	if !ok || !util.IsBlank(line[h.end:]) {
		return directiveHead{}, 0, false
	}
	return h, fence, true
}

// labelSegment maps label bounds inside the peeked line to the source.
func labelSegment(segment text.Segment, h directiveHead) text.Segment {
	base := segment.Start - segment.Padding
	return text.NewSegment(base+h.label[0], base+h.label[1])
}

// skipLine moves the reader to the end of the current line, leaving the
// newline for the block parser loop.
func skipLine(reader text.Reader) {
	line, segment := reader.PeekLine()
	newline := 0
	if len(line) > 0 && line[len(line)-1] == '\n' {
		newline = 1
	}
	reader.Advance(segment.Stop - segment.Start - newline + segment.Padding)
}

func (b *containerParser) Trigger() []byte { return []byte{':'} }

func (b *containerParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	h, fence, ok := openHead(reader, pc, true)
	if !ok {
		return nil, parser.NoChildren
	}
	_, segment := reader.PeekLine()
	node := &BlockDirective{Name: h.name, Attrs: h.attributes, container: true, fence: fence}
	if h.label[1] > h.label[0] {
		label := &DirectiveLabel{}
		label.Lines().Append(labelSegment(segment, h))
		node.AppendChild(node, label)
	}
	skipLine(reader)
	return node, parser.HasChildren
}

func (b *containerParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	d := node.(*BlockDirective)
	w, pos := util.IndentWidth(line, reader.LineOffset())
	if w < 4 {
		n := colonRun(line, pos)
		if n >= d.fence && util.IsBlank(line[pos+n:]) {
			skipLine(reader)
			return parser.Close
		}
	}
	return parser.Continue | parser.HasChildren
}

func (b *containerParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (b *containerParser) CanInterruptParagraph() bool { return true }

func (b *containerParser) CanAcceptIndentedLine() bool { return false }

func (b *leafParser) Trigger() []byte { return []byte{':'} }

func (b *leafParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	h, _, ok := openHead(reader, pc, false)
	if !ok {
		return nil, parser.NoChildren
	}
	_, segment := reader.PeekLine()
	node := &BlockDirective{Name: h.name, Attrs: h.attributes}
	if h.label[0] >= 0 {
		node.Lines().Append(labelSegment(segment, h))
	}
	skipLine(reader)
	return node, parser.NoChildren
}

func (b *leafParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (b *leafParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (b *leafParser) CanInterruptParagraph() bool { return true }

func (b *leafParser) CanAcceptIndentedLine() bool { return false }
