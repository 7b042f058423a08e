package textform

import (
	"github.com/antlr4-go/antlr/v4"

	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/transpiler/parser"
)

// syntaxErrorListener collects ANTLR syntax errors as diagnostics instead
// of letting the default listener print them to stderr.
type syntaxErrorListener struct {
	*antlr.DefaultErrorListener
	filename string
	source   string
	bag      *diagnostics.Bag
}

func (l *syntaxErrorListener) SyntaxError(_ antlr.Recognizer, _ interface{}, line, column int, msg string, _ antlr.RecognitionException) {
	l.bag.Add(diagnostics.New(diagnostics.CodeParseUnexpectedToken, diagnostics.SeverityError, diagnostics.Location{
		Filename:  l.filename,
		Source:    l.source,
		StartLine: line,
		StartCol:  column,
		EndLine:   line,
		EndCol:    column,
	}, nil).WithMessage(msg))
}

// Parse reads source (P-code textual form, spec.md §6.2) into its generic
// list tree, one Expr per top-level "(...)" statement. It reuses the
// teacher's generated Vex list grammar (internal/transpiler/parser) rather
// than a dedicated lexer/parser, since P-code text needs nothing beyond
// parenthesized lists, bracketed arrays, symbols, and strings.
func Parse(source, filename string) ([]Expr, *diagnostics.Bag) {
	bag := diagnostics.NewBag()

	input := antlr.NewInputStream(source)
	lexer := parser.NewVexLexer(input)
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(&syntaxErrorListener{filename: filename, source: source, bag: bag})

	tokens := antlr.NewCommonTokenStream(lexer, 0)
	p := parser.NewVexParser(tokens)
	p.RemoveErrorListeners()
	p.AddErrorListener(&syntaxErrorListener{filename: filename, source: source, bag: bag})

	tree, ok := p.Program().(*parser.ProgramContext)
	if !ok {
		return nil, bag
	}

	var stmts []Expr
	for _, l := range tree.AllList() {
		stmts = append(stmts, convertList(l.(*parser.ListContext)))
	}
	return stmts, bag
}

func convertList(ctx *parser.ListContext) Expr {
	line := ctx.GetStart().GetLine()
	return list(convertChildren(ctx.GetChildren()), line)
}

func convertArray(ctx *parser.ArrayContext) Expr {
	line := ctx.GetStart().GetLine()
	return array(convertChildren(ctx.GetChildren()), line)
}

// convertChildren walks an ANTLR rule context's children in their original
// source order, translating each list/array/SYMBOL/STRING child to an Expr.
// The generated accessors (AllList, AllSYMBOL, ...) group by type and lose
// interleaving, so this walks antlr.Tree.GetChildren() directly instead.
func convertChildren(children []antlr.Tree) []Expr {
	var out []Expr
	for _, child := range children {
		switch c := child.(type) {
		case *parser.ListContext:
			out = append(out, convertList(c))
		case *parser.ArrayContext:
			out = append(out, convertArray(c))
		case antlr.TerminalNode:
			sym := c.GetSymbol()
			switch sym.GetTokenType() {
			case parser.VexParserSYMBOL:
				out = append(out, atom(sym.GetText(), sym.GetLine()))
			case parser.VexParserSTRING:
				out = append(out, quoted(unquote(sym.GetText()), sym.GetLine()))
			}
		}
	}
	return out
}

// unquote strips the surrounding quote characters and resolves the
// grammar's backslash escapes from a raw STRING token's text.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	inner := raw[1 : len(raw)-1]
	var out []byte
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, inner[i])
			}
			continue
		}
		out = append(out, inner[i])
	}
	return string(out)
}
