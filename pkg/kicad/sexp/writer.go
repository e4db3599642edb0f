package sexp

import "strings"

// Render serializes a document tree to KiCad's tab-indented textual
// form, ending with a newline. Output is a pure function of the tree:
// the same tree always renders to the same bytes.
func Render(root *List) string {
	var sb strings.Builder
	writeList(&sb, root, 0)
	return sb.String()
}

func writeList(sb *strings.Builder, l *List, depth int) {
	writeIndent(sb, depth)
	sb.WriteByte('(')
	sb.WriteString(l.Tag)
	for _, item := range l.Items {
		sb.WriteByte(' ')
		writeInline(sb, item)
	}

	if len(l.Children) == 0 {
		sb.WriteString(")\n")
		return
	}

	sb.WriteByte('\n')
	for _, child := range l.Children {
		writeList(sb, child, depth+1)
	}
	writeIndent(sb, depth)
	sb.WriteString(")\n")
}

// writeInline renders a node without indentation or newlines, for
// items that share the opening line of their parent list.
func writeInline(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case Atom:
		sb.WriteString(string(v))
	case Str:
		sb.WriteByte('"')
		sb.WriteString(string(v))
		sb.WriteByte('"')
	case *List:
		sb.WriteByte('(')
		sb.WriteString(v.Tag)
		for _, item := range v.Items {
			sb.WriteByte(' ')
			writeInline(sb, item)
		}
		// Children of an inline list render inline as well.
		for _, child := range v.Children {
			sb.WriteByte(' ')
			writeInline(sb, child)
		}
		sb.WriteByte(')')
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteByte('\t')
	}
}
