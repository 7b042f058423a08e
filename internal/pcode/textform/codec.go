package textform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/pcode"
)

// Encode renders p as its canonical Expr tree, ready for Serialize.
func Encode(p pcode.Program) []Expr {
	stmts := make([]Expr, 0, len(p.Globals))
	for _, g := range p.Globals {
		stmts = append(stmts, encodeGlobal(g))
	}
	return stmts
}

func encodeGlobal(g pcode.Global) Expr {
	head := []Expr{atom(g.Kind.String(), 0)}
	switch g.Kind {
	case pcode.GlobalVar:
		head = append(head, atom(g.Name, 0))
		if g.Entity {
			head = append(head, atom("entity", 0))
		}
	case pcode.GlobalFunc:
		conv := "std"
		if g.Conv == pcode.ConvVarargs {
			conv = "varargs"
		}
		numVars, body := 0, []pcode.Instruction(nil)
		if g.Body != nil {
			numVars, body = g.Body.NumVars, g.Body.Body
		}
		head = append(head,
			atom(g.Name, 0),
			atom(strconv.Itoa(g.Args), 0),
			atom(strconv.Itoa(numVars), 0),
			atom(conv, 0),
		)
		for _, instr := range body {
			head = append(head, encodeInstruction(instr))
		}
	case pcode.GlobalInit:
		head = append(head, atom(strconv.Itoa(g.InitFunctionIndex), 0))
	case pcode.GlobalImport:
		strength := "weak"
		if g.Strong {
			strength = "strong"
		}
		head = append(head, quoted(g.OldPrefix, 0), quoted(g.NewPrefix, 0), atom(strength, 0))
	case pcode.GlobalModuleLoad:
		head = append(head, quoted(g.ModulePath, 0))
	case pcode.GlobalSourcePos:
		head = append(head, atom(strconv.Itoa(g.SourceLine), 0))
	case pcode.GlobalMacroDef:
		head = append(head, atom(g.Name, 0), atom(strconv.Itoa(g.MacroPrecedence), 0))
	}
	return list(head, 0)
}

func encodeInstruction(instr pcode.Instruction) Expr {
	desc, ok := instr.Desc()
	children := []Expr{atom(instr.Mnemonic, instr.SourceLine)}
	if !ok {
		return list(children, instr.SourceLine)
	}
	for idx, od := range desc.Operands {
		op := instr.Operands[idx]
		switch od.Kind {
		case pcode.OperandInt:
			children = append(children, atom(strconv.FormatInt(op.Int, 10), instr.SourceLine))
		case pcode.OperandString:
			children = append(children, quoted(op.Str, instr.SourceLine))
		case pcode.OperandRegRead, pcode.OperandRegWrite:
			children = append(children, atom(regText(op.Reg), instr.SourceLine))
		case pcode.OperandRegRangeRead:
			children = append(children, atom(rangeText(op.Range), instr.SourceLine))
		case pcode.OperandLabel:
			children = append(children, atom(op.Label, instr.SourceLine))
		}
	}
	return list(children, instr.SourceLine)
}

func regText(r ast.Reg) string {
	return string(r.Class) + strconv.Itoa(r.Index)
}

func rangeText(r pcode.RegRange) string {
	return fmt.Sprintf("%s%d*%d", r.Class, r.Base, r.Count)
}

func parseReg(text string) (ast.Reg, bool) {
	if len(text) < 2 {
		return ast.Reg{}, false
	}
	idx, err := strconv.Atoi(text[1:])
	if err != nil {
		return ast.Reg{}, false
	}
	return ast.Reg{Class: ast.RegClass(text[:1]), Index: idx}, true
}

func parseRange(text string) (pcode.RegRange, bool) {
	star := strings.IndexByte(text, '*')
	if star < 2 {
		return pcode.RegRange{}, false
	}
	base, err1 := strconv.Atoi(text[1:star])
	count, err2 := strconv.Atoi(text[star+1:])
	if err1 != nil || err2 != nil {
		return pcode.RegRange{}, false
	}
	return pcode.RegRange{Class: ast.RegClass(text[:1]), Base: base, Count: count}, true
}

// Decode translates a parsed Expr tree back into a pcode.Program,
// reporting diagnostics.CodeXcodeMalformedText for any statement that
// doesn't match the shape Encode produces and
// diagnostics.CodeXcodeUnknownMnemonic for instructions outside pcode.Schema.
func Decode(stmts []Expr, filename string) (pcode.Program, *diagnostics.Bag) {
	bag := diagnostics.NewBag()
	var prog pcode.Program
	for _, s := range stmts {
		g, ok := decodeGlobal(s, filename, bag)
		if ok {
			prog.Globals = append(prog.Globals, g)
		}
	}
	return prog, bag
}

func malformed(bag *diagnostics.Bag, filename string, line int, reason string) {
	bag.Add(diagnostics.New(diagnostics.CodeXcodeMalformedText, diagnostics.SeverityError, diagnostics.Location{
		Filename:  filename,
		StartLine: line,
		EndLine:   line,
	}, map[string]any{"Reason": reason}))
}

func decodeGlobal(s Expr, filename string, bag *diagnostics.Bag) (pcode.Global, bool) {
	if s.Shape != List || len(s.Children) == 0 || s.Children[0].Shape != Atom {
		malformed(bag, filename, s.Line, "expected a headed list")
		return pcode.Global{}, false
	}
	head := s.Children[0].Text
	rest := s.Children[1:]
	switch head {
	case "var":
		if len(rest) < 1 {
			malformed(bag, filename, s.Line, "var requires a name")
			return pcode.Global{}, false
		}
		return pcode.Global{Kind: pcode.GlobalVar, Name: rest[0].Text, Entity: len(rest) > 1 && rest[1].Text == "entity"}, true
	case "fun":
		if len(rest) < 4 {
			malformed(bag, filename, s.Line, "fun requires name, args, numvars, convention")
			return pcode.Global{}, false
		}
		args, _ := strconv.Atoi(rest[1].Text)
		numVars, _ := strconv.Atoi(rest[2].Text)
		conv := pcode.ConvStandard
		if rest[3].Text == "varargs" {
			conv = pcode.ConvVarargs
		}
		body := make([]pcode.Instruction, 0, len(rest)-4)
		for _, instrExpr := range rest[4:] {
			instr, ok := decodeInstruction(instrExpr, filename, bag)
			if ok {
				body = append(body, instr)
			}
		}
		return pcode.Global{
			Kind: pcode.GlobalFunc, Name: rest[0].Text, Args: args, Conv: conv,
			Body: &pcode.Function{NumArgs: args, NumVars: numVars, Body: body},
		}, true
	case "init":
		if len(rest) < 1 {
			malformed(bag, filename, s.Line, "init requires a function index")
			return pcode.Global{}, false
		}
		idx, _ := strconv.Atoi(rest[0].Text)
		return pcode.Global{Kind: pcode.GlobalInit, InitFunctionIndex: idx}, true
	case "import":
		if len(rest) < 3 {
			malformed(bag, filename, s.Line, "import requires old prefix, new prefix, strength")
			return pcode.Global{}, false
		}
		return pcode.Global{Kind: pcode.GlobalImport, OldPrefix: rest[0].Text, NewPrefix: rest[1].Text, Strong: rest[2].Text == "strong"}, true
	case "load":
		if len(rest) < 1 {
			malformed(bag, filename, s.Line, "load requires a module path")
			return pcode.Global{}, false
		}
		return pcode.Global{Kind: pcode.GlobalModuleLoad, ModulePath: rest[0].Text}, true
	case "source-pos":
		if len(rest) < 1 {
			malformed(bag, filename, s.Line, "source-pos requires a line number")
			return pcode.Global{}, false
		}
		line, _ := strconv.Atoi(rest[0].Text)
		return pcode.Global{Kind: pcode.GlobalSourcePos, SourceLine: line}, true
	case "macro":
		if len(rest) < 2 {
			malformed(bag, filename, s.Line, "macro requires name and precedence")
			return pcode.Global{}, false
		}
		prec, _ := strconv.Atoi(rest[1].Text)
		return pcode.Global{Kind: pcode.GlobalMacroDef, Name: rest[0].Text, MacroPrecedence: prec}, true
	default:
		malformed(bag, filename, s.Line, fmt.Sprintf("unknown global kind '%s'", head))
		return pcode.Global{}, false
	}
}

func decodeInstruction(e Expr, filename string, bag *diagnostics.Bag) (pcode.Instruction, bool) {
	if e.Shape != List || len(e.Children) == 0 || e.Children[0].Shape != Atom {
		malformed(bag, filename, e.Line, "expected a headed instruction list")
		return pcode.Instruction{}, false
	}
	mnemonic := e.Children[0].Text
	desc, ok := pcode.Lookup(mnemonic)
	if !ok {
		bag.Add(diagnostics.New(diagnostics.CodeXcodeUnknownMnemonic, diagnostics.SeverityError, diagnostics.Location{
			Filename: filename, StartLine: e.Line, EndLine: e.Line,
		}, map[string]any{"Name": mnemonic}))
		return pcode.Instruction{}, false
	}
	args := e.Children[1:]
	if len(args) != len(desc.Operands) {
		malformed(bag, filename, e.Line, fmt.Sprintf("'%s' expects %d operands, got %d", mnemonic, len(desc.Operands), len(args)))
		return pcode.Instruction{}, false
	}
	operands := make([]pcode.Operand, len(args))
	for i, od := range desc.Operands {
		text := args[i].Text
		switch od.Kind {
		case pcode.OperandInt:
			v, _ := strconv.ParseInt(text, 10, 64)
			operands[i] = pcode.Operand{Int: v}
		case pcode.OperandString:
			operands[i] = pcode.Operand{Str: text}
		case pcode.OperandRegRead, pcode.OperandRegWrite:
			r, ok := parseReg(text)
			if !ok {
				malformed(bag, filename, e.Line, fmt.Sprintf("invalid register operand '%s'", text))
				return pcode.Instruction{}, false
			}
			operands[i] = pcode.Operand{Reg: r}
		case pcode.OperandRegRangeRead:
			r, ok := parseRange(text)
			if !ok {
				malformed(bag, filename, e.Line, fmt.Sprintf("invalid register range operand '%s'", text))
				return pcode.Instruction{}, false
			}
			operands[i] = pcode.Operand{Range: r}
		case pcode.OperandLabel:
			operands[i] = pcode.Operand{Label: text}
		}
	}
	return pcode.Instruction{Mnemonic: mnemonic, Operands: operands, SourceLine: e.Line}, true
}
