package parser

import (
	"github.com/yuin/goldmark/util"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// directiveHead is what follows the colons of any directive flavor.
type directiveHead struct {
	name       string
	label      [2]int // bounds of the label text inside the line, label[0] < 0 when absent
	attributes mdtree.Attributes
	end        int // index just past the head
}

// scanHead reads name, optional [label] and optional {attributes} starting
// at line[i].
func scanHead(line []byte, i int) (directiveHead, bool) {
	h := directiveHead{label: [2]int{-1, -1}}
	end := scanName(line, i)
	if end < 0 {
		return h, false
	}
	h.name = string(line[i:end])
	i = end
	if i < len(line) && line[i] == '[' {
		stop := scanLabel(line, i)
		if stop < 0 {
			return h, false
		}
		h.label = [2]int{i + 1, stop - 1}
		i = stop
	}
	if i < len(line) && line[i] == '{' {
		attrs, stop, ok := scanAttributes(line, i)
		if !ok {
			return h, false
		}
		h.attributes = attrs
		i = stop
	}
	h.end = i
	return h, true
}

func scanName(line []byte, i int) int {
	if i >= len(line) || !isAlpha(line[i]) {
		return -1
	}
	j := i + 1
	for j < len(line) && (util.IsAlphaNumeric(line[j]) || line[j] == '-' || line[j] == '_') {
		j++
	}
	return j
}

// scanLabel returns the index just past the bracket that closes the one at
// line[i], or -1. Brackets nest; escaped brackets are skipped.
func scanLabel(line []byte, i int) int {
	depth := 0
	for j := i; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return j + 1
			}
		case '\n', '\r':
			return -1
		}
	}
	return -1
}

// scanAttributes parses {#id .class key key=value key="value" key='value'}
// starting at line[i]. Classes accumulate; a repeated key keeps the last
// value.
func scanAttributes(line []byte, i int) (mdtree.Attributes, int, bool) {
	var attrs mdtree.Attributes
	j := i + 1
	for {
		j = skipSpace(line, j)
		if j >= len(line) {
			return nil, 0, false
		}
		switch c := line[j]; c {
		case '}':
			return attrs, j + 1, true
		case '#', '.':
			k := j + 1
			for k < len(line) && isShortcutChar(line[k]) {
				k++
			}
			if k == j+1 {
				return nil, 0, false
			}
			value := string(line[j+1 : k])
			if c == '#' {
				attrs = attrs.Set("id", value)
			} else if prev, ok := attrs.Get("class"); ok {
				attrs = attrs.Set("class", prev+" "+value)
			} else {
				attrs = attrs.Set("class", value)
			}
			j = k
		default:
			if !isAttributeNameStart(c) {
				return nil, 0, false
			}
			k := j + 1
			for k < len(line) && isAttributeNameChar(line[k]) {
				k++
			}
			key := string(line[j:k])
			k = skipSpace(line, k)
			if k >= len(line) || line[k] != '=' {
				attrs = attrs.Set(key, "")
				j = k
				continue
			}
			k = skipSpace(line, k+1)
			value, stop, ok := scanValue(line, k)
			if !ok {
				return nil, 0, false
			}
			attrs = attrs.Set(key, value)
			j = stop
		}
	}
}

func scanValue(line []byte, i int) (string, int, bool) {
	if i >= len(line) {
		return "", 0, false
	}
	if q := line[i]; q == '"' || q == '\'' {
		for j := i + 1; j < len(line); j++ {
			switch line[j] {
			case q:
				return decode(line[i+1 : j]), j + 1, true
			case '\n', '\r':
				return "", 0, false
			}
		}
		return "", 0, false
	}
	j := i
	for j < len(line) && isUnquotedValueChar(line[j]) {
		j++
	}
	if j == i {
		return "", 0, false
	}
	return decode(line[i:j]), j, true
}

func decode(v []byte) string {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return string(v)
}

func skipSpace(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isAttributeNameStart(c byte) bool {
	return isAlpha(c) || c == '_' || c == ':'
}

func isAttributeNameChar(c byte) bool {
	return util.IsAlphaNumeric(c) || c == '_' || c == ':' || c == '.' || c == '-'
}

func isShortcutChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '\'', '<', '>', '=', '`', '{', '}', '#', '.':
		return false
	}
	return true
}

func isUnquotedValueChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '\'', '<', '>', '=', '`', '}':
		return false
	}
	return true
}
