package macsub

import (
	"github.com/thsfranca/avacore/internal/symtab"
	"github.com/thsfranca/avacore/internal/units"
)

// resolveStatus classifies resolveMacro's outcome, mirroring
// ava_macsub_resolve_macro_result in the grounding source.
type resolveStatus int

const (
	notMacro resolveStatus = iota
	isMacro
	ambiguous
)

// isMacroid reports whether unit could possibly provoke macro
// substitution, and if so the precedence and kind of its strongest
// candidate interpretation, per spec.md §4.3. allowControlFlow is true
// only for the first unit of a statement: control and function macros
// may only be the head of a statement, but an operator macro (or the
// string pseudomacro) may appear anywhere.
func isMacroid(ctx *Context, unit units.Unit, allowControlFlow bool) (precedence int, kind symtab.Kind, ok bool) {
	switch unit.Kind {
	case units.Lstring, units.Rstring, units.LRstring:
		return StringPseudomacroPrecedence, symtab.OperatorMacro, true
	case units.Bareword:
		// handled below
	default:
		return 0, 0, false
	}

	res := ctx.Symtab.Lookup(unit.Text)
	candidates := symbolsOf(res)
	found := false
	for _, sym := range candidates {
		if !sym.Kind.IsMacro() {
			continue
		}
		if !allowControlFlow && sym.Kind != symtab.OperatorMacro {
			continue
		}
		p := macroPrecedence(sym)
		if !found || p < precedence {
			precedence = p
			kind = sym.Kind
			found = true
		}
	}
	return precedence, kind, found
}

// macroPrecedence returns sym's effective precedence for candidate
// selection: control macros always sort first, function macros always
// last, and operator macros use their declared precedence.
func macroPrecedence(sym *symtab.Symbol) int {
	switch sym.Kind {
	case symtab.ControlMacro:
		return ControlMacroPrecedence
	case symtab.FunctionMacro:
		return FunctionMacroPrecedence
	default:
		return sym.Payload.(*symtab.MacroPayload).Precedence
	}
}

// resolveMacro re-resolves provoker under the constraint that it must
// match targetKind (and, for operator macros, targetPrecedence exactly),
// per spec.md §4.3. A match that isn't the provoker's sole interpretation
// is ambiguous; no match at all is notMacro (not necessarily an error —
// the statement may still be a legal call to something else).
func resolveMacro(ctx *Context, provoker units.Unit, targetKind symtab.Kind, targetPrecedence int) (*symtab.Symbol, resolveStatus) {
	if provoker.Kind != units.Bareword {
		return nil, notMacro
	}
	res := ctx.Symtab.Lookup(provoker.Text)
	candidates := symbolsOf(res)
	for _, sym := range candidates {
		if sym.Kind != targetKind {
			continue
		}
		if targetKind == symtab.OperatorMacro {
			if sym.Payload.(*symtab.MacroPayload).Precedence != targetPrecedence {
				continue
			}
		}
		if len(candidates) != 1 {
			return sym, ambiguous
		}
		return sym, isMacro
	}
	return nil, notMacro
}

// resolveExpander resolves an expander unit's name to an expander macro
// symbol, per spec.md §4.3's expander pre-pass.
func resolveExpander(ctx *Context, name string) (*symtab.Symbol, resolveStatus) {
	res := ctx.Symtab.Lookup(name)
	candidates := symbolsOf(res)
	var found *symtab.Symbol
	for _, sym := range candidates {
		if sym.Kind != symtab.ExpanderMacro {
			continue
		}
		if found != nil {
			return sym, ambiguous
		}
		found = sym
	}
	if found == nil {
		return nil, notMacro
	}
	return found, isMacro
}

func symbolsOf(res symtab.LookupResult) []*symtab.Symbol {
	switch res.Status {
	case symtab.Found:
		return []*symtab.Symbol{res.Symbol}
	case symtab.Ambiguous:
		return res.Symbols
	default:
		return nil
	}
}
