package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// textParser reads :name[label]{attrs} inside inline content. A colon that
// directly follows another colon never starts a directive.
type textParser struct{}

func (s *textParser) Trigger() []byte { return []byte{':'} }

func (s *textParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if block.PrecendingCharacter() == ':' {
		return nil
	}
	line, _ := block.PeekLine()
	if len(line) < 2 || line[0] != ':' {
		return nil
	}
	h, ok := scanHead(line, 1)
	if !ok {
		return nil
	}
	node := &TextDirective{Name: h.name, Attrs: h.attributes}
	if h.label[0] >= 0 {
		node.Label = string(line[h.label[0]:h.label[1]])
	}
	block.Advance(h.end)
	return node
}

type directives struct{}

// Directives is a goldmark extension adding the generic directive syntax:
// :text, ::leaf and :::container directives.
var Directives goldmark.Extender = &directives{}

func (e *directives) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&containerParser{}, 650),
			util.Prioritized(&leafParser{}, 660),
		),
		parser.WithInlineParsers(
			util.Prioritized(&textParser{}, 450),
		),
	)
}
