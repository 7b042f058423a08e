package textform

import "strings"

// Serialize renders stmts as canonical P-code text: one top-level list per
// line, nested lists parenthesized and space-separated, strings quoted and
// escaped. Serializing the result of Parse(Serialize(stmts)) reproduces the
// same text byte-for-byte — spec.md §6.2's round-trip requirement, read as
// canonical-form idempotency rather than preservation of arbitrary original
// whitespace, since the underlying grammar carries no layout information.
func Serialize(stmts []Expr) string {
	var b strings.Builder
	for _, s := range stmts {
		writeExpr(&b, s)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e.Shape {
	case Atom:
		b.WriteString(e.Text)
	case Quoted:
		b.WriteByte('"')
		b.WriteString(escape(e.Text))
		b.WriteByte('"')
	case List:
		writeSeq(b, '(', ')', e.Children)
	case Array:
		writeSeq(b, '[', ']', e.Children)
	}
}

func writeSeq(b *strings.Builder, open, close byte, children []Expr) {
	b.WriteByte(open)
	for i, c := range children {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeExpr(b, c)
	}
	b.WriteByte(close)
}

func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
