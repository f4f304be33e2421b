package directive

import (
	"strconv"
	"strings"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// ToMarkdown serializes n as a complete Markdown document. Like any whole
// document serializer it ends the output with a line terminator, so callers
// splicing the result back into running text must strip it.
func ToMarkdown(n *mdtree.Node) string {
	var sb strings.Builder
	if isBlock(n) {
		writeBlock(&sb, n)
	} else {
		writeInline(&sb, n)
	}
	out := strings.TrimRight(sb.String(), "\n")
	return out + "\n"
}

func isBlock(n *mdtree.Node) bool {
	switch n.Kind {
	case mdtree.KindRoot, mdtree.KindParagraph, mdtree.KindHeading, mdtree.KindCode,
		mdtree.KindList, mdtree.KindListItem, mdtree.KindBlockquote, mdtree.KindThematicBreak,
		mdtree.KindLeafDirective, mdtree.KindContainerDirective:
		return true
	}
	return false
}

func writeBlocks(sb *strings.Builder, nodes []*mdtree.Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		writeBlock(sb, n)
	}
}

func writeBlock(sb *strings.Builder, n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindRoot:
		writeBlocks(sb, n.Children)
	case mdtree.KindParagraph:
		writeInlines(sb, n.Children)
	case mdtree.KindHeading:
		sb.WriteString(strings.Repeat("#", max(n.Level, 1)))
		sb.WriteByte(' ')
		writeInlines(sb, n.Children)
	case mdtree.KindCode:
		fence := codeFence(n.Value, '`', 3)
		sb.WriteString(fence)
		sb.WriteString(n.Lang)
		sb.WriteByte('\n')
		if n.Value != "" {
			sb.WriteString(strings.TrimSuffix(n.Value, "\n"))
			sb.WriteByte('\n')
		}
		sb.WriteString(fence)
	case mdtree.KindThematicBreak:
		sb.WriteString("***")
	case mdtree.KindBlockquote:
		var inner strings.Builder
		writeBlocks(&inner, n.Children)
		sb.WriteString(prefixLines(inner.String(), "> ", ">"))
	case mdtree.KindList:
		writeList(sb, n)
	case mdtree.KindListItem:
		writeBlocks(sb, n.Children)
	case mdtree.KindLeafDirective:
		sb.WriteString("::")
		writeDirectiveHead(sb, n, n.Children)
	case mdtree.KindContainerDirective:
		writeContainer(sb, n)
	default:
		writeInline(sb, n)
	}
}

func writeList(sb *strings.Builder, n *mdtree.Node) {
	sep := "\n\n"
	if n.Tight {
		sep = "\n"
	}
	for i, item := range n.Children {
		if i > 0 {
			sb.WriteString(sep)
		}
		marker := "- "
		if n.Ordered {
			marker = strconv.Itoa(n.Start+i) + ". "
		}
		var inner strings.Builder
		if n.Tight {
			for j, c := range item.Children {
				if j > 0 {
					inner.WriteByte('\n')
				}
				writeBlock(&inner, c)
			}
		} else {
			writeBlock(&inner, item)
		}
		indent := strings.Repeat(" ", len(marker))
		sb.WriteString(marker)
		sb.WriteString(strings.TrimPrefix(prefixLines(inner.String(), indent, ""), indent))
	}
}

func writeContainer(sb *strings.Builder, n *mdtree.Node) {
	fence := strings.Repeat(":", containerFenceSize(n))
	body := n.Children
	var label []*mdtree.Node
	if l, ok := Label(n); ok {
		label = l.Children
		body = body[1:]
	} else if len(body) > 0 && body[0].Label {
		body = body[1:]
	}
	sb.WriteString(fence)
	writeDirectiveHead(sb, n, label)
	if len(body) > 0 {
		sb.WriteByte('\n')
		writeBlocks(sb, body)
	}
	sb.WriteByte('\n')
	sb.WriteString(fence)
}

// containerFenceSize makes an outer fence longer than every nested one so
// the serialized output nests the same way the tree does.
func containerFenceSize(n *mdtree.Node) int {
	size := 3
	var walk func(nodes []*mdtree.Node, depth int)
	walk = func(nodes []*mdtree.Node, depth int) {
		for _, c := range nodes {
			d := depth
			if c.Kind == mdtree.KindContainerDirective {
				d++
				size = max(size, 3+d)
			}
			walk(c.Children, d)
		}
	}
	walk(n.Children, 0)
	return size
}

func writeInlines(sb *strings.Builder, nodes []*mdtree.Node) {
	for _, n := range nodes {
		writeInline(sb, n)
	}
}

func writeInline(sb *strings.Builder, n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindText, mdtree.KindHTML:
		sb.WriteString(n.Value)
	case mdtree.KindEmphasis:
		sb.WriteByte('*')
		writeInlines(sb, n.Children)
		sb.WriteByte('*')
	case mdtree.KindStrong:
		sb.WriteString("**")
		writeInlines(sb, n.Children)
		sb.WriteString("**")
	case mdtree.KindInlineCode:
		fence := codeFence(n.Value, '`', 1)
		pad := ""
		if strings.HasPrefix(n.Value, "`") || strings.HasSuffix(n.Value, "`") {
			pad = " "
		}
		sb.WriteString(fence + pad + n.Value + pad + fence)
	case mdtree.KindLink:
		sb.WriteByte('[')
		writeInlines(sb, n.Children)
		sb.WriteString("](")
		writeDestination(sb, n.Attributes, "href")
		sb.WriteByte(')')
	case mdtree.KindImage:
		alt, _ := n.Attributes.Get("alt")
		sb.WriteString("![" + alt + "](")
		writeDestination(sb, n.Attributes, "src")
		sb.WriteByte(')')
	case mdtree.KindBreak:
		sb.WriteString("\\\n")
	case mdtree.KindTextDirective:
		sb.WriteByte(':')
		writeDirectiveHead(sb, n, n.Children)
	default:
		if isBlock(n) {
			writeBlock(sb, n)
			return
		}
		writeInlines(sb, n.Children)
	}
}

func writeDestination(sb *strings.Builder, attrs mdtree.Attributes, key string) {
	url, _ := attrs.Get(key)
	if url == "" || strings.ContainsAny(url, " \t\n()") {
		sb.WriteString("<" + url + ">")
	} else {
		sb.WriteString(url)
	}
	if title, ok := attrs.Get("title"); ok && title != "" {
		sb.WriteString(` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`)
	}
}

// writeDirectiveHead writes name, optional [label] and optional {attributes}.
func writeDirectiveHead(sb *strings.Builder, n *mdtree.Node, label []*mdtree.Node) {
	sb.WriteString(n.Name)
	if len(label) > 0 {
		sb.WriteByte('[')
		writeInlines(sb, label)
		sb.WriteByte(']')
	}
	writeAttributes(sb, n.Attributes)
}

func writeAttributes(sb *strings.Builder, attrs mdtree.Attributes) {
	if len(attrs) == 0 {
		return
	}
	var parts []string
	if id, ok := attrs.Get("id"); ok && isShorthand(id) {
		parts = append(parts, "#"+id)
	}
	classShorthand := false
	if class, ok := attrs.Get("class"); ok {
		classes := strings.Fields(class)
		classShorthand = len(classes) > 0
		for _, c := range classes {
			if !isShorthand(c) {
				classShorthand = false
			}
		}
		if classShorthand {
			for _, c := range classes {
				parts = append(parts, "."+c)
			}
		}
	}
	for _, attr := range attrs {
		switch {
		case attr.Key == "id" && isShorthand(attr.Value):
			continue
		case attr.Key == "class" && classShorthand:
			continue
		case attr.Value == "":
			parts = append(parts, attr.Key)
		default:
			parts = append(parts, attr.Key+`="`+quote(attr.Value)+`"`)
		}
	}
	sb.WriteString("{" + strings.Join(parts, " ") + "}")
}

func isShorthand(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n\"'<=>`{}.#")
}

func quote(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// codeFence returns a run of c that cannot be confused with any run of c
// inside value. Block fences must be longer than every inner run; inline
// fences only need a length that does not occur inside.
func codeFence(value string, c byte, minLen int) string {
	runs := map[int]bool{}
	longest, run := 0, 0
	for i := 0; i <= len(value); i++ {
		if i < len(value) && value[i] == c {
			run++
			continue
		}
		if run > 0 {
			runs[run] = true
			longest = max(longest, run)
		}
		run = 0
	}
	size := minLen
	if minLen == 1 {
		for runs[size] {
			size++
		}
	} else if longest >= size {
		size = longest + 1
	}
	return strings.Repeat(string(c), size)
}

func prefixLines(s, prefix, blankPrefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = blankPrefix
		} else {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
