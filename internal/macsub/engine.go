package macsub

import (
	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/symtab"
	"github.com/thsfranca/avacore/internal/units"
)

// ResultStatus tags a macro substitution's outcome, per spec.md §4.3: a
// macro either finishes by handing back a semantic node (Done) or by
// handing back a rewritten statement that substitution must run again
// over (Again) — the "ava_mss_again"/"ava_mss_done" distinction in the
// grounding source.
type ResultStatus int

const (
	Done ResultStatus = iota
	Again
)

// Result is what a macro's Substitute callback returns.
type Result struct {
	Status    ResultStatus
	Node      *ast.Node       // valid when Status == Done
	Statement units.Statement // valid when Status == Again
}

// DoneWith wraps a finished semantic node as a Done result.
func DoneWith(node *ast.Node) Result { return Result{Status: Done, Node: node} }

// AgainWith wraps a rewritten statement as an Again result.
func AgainWith(stmt units.Statement) Result { return Result{Status: Again, Statement: stmt} }

// SubstituteFunc is a macro symbol's substitution callback (stored
// type-erased in symtab.MacroPayload.Substitute to avoid an import
// cycle). provoking is the unit that made this macro the candidate
// (the expander unit itself, or the statement's control/function/operator
// macro reference); consumedRest, when set true by the callback, tells
// the caller that the macro has absorbed every following statement in
// its enclosing block (e.g. an `if` consuming `else` as a later
// statement) and none of them should be processed again.
type SubstituteFunc func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result

// ExpandExpanders runs spec.md §4.3's expander pre-pass over *stmt in
// place: repeatedly finds the first remaining expander unit, resolves it
// to an expander macro, and either drops it (on error) or splices in its
// replacement statement — restarting the scan from the beginning each
// time, since splicing can shift every later index. It stops once no
// expander units remain.
func ExpandExpanders(ctx *Context, stmt *units.Statement) {
	for {
		idx := -1
		for i, u := range *stmt {
			if u.Kind == units.Expander {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}

		u := (*stmt)[idx]
		sym, status := resolveExpander(ctx, u.Text)
		switch status {
		case notMacro:
			ctx.Report(diagnostics.CodeMacsubMissingExpander, u.Loc, map[string]any{"Name": u.Text})
			*stmt = dropAt(*stmt, idx)
		case ambiguous:
			ctx.Report(diagnostics.CodeMacsubAmbiguousSymbol, u.Loc, map[string]any{"Name": u.Text})
			*stmt = dropAt(*stmt, idx)
		case isMacro:
			fn := sym.Payload.(*symtab.MacroPayload).Substitute.(SubstituteFunc)
			var consumed bool
			res := fn(ctx, units.Statement{u}, u, &consumed)
			switch res.Status {
			case Again:
				*stmt = spliceAt(*stmt, idx, res.Statement)
			default:
				// A Done result from an expander is a malformed macro (it
				// should only ever rewrite, never directly finish); treat
				// it the same as dropping an unresolved reference.
				*stmt = dropAt(*stmt, idx)
			}
		}
	}
}

// RunStatement implements spec.md §4.3's statement expansion algorithm:
// expand any expanders, pick the best macro candidate (if the statement
// isn't a singleton, or is a singleton headed by a control macro), run
// it, and repeat until a macro hands back Done or none remains.
// consumedRest is threaded through to the invoked macro so it can report
// that it swallowed later statements in the enclosing block.
func RunStatement(ctx *Context, stmt units.Statement, consumedRest *bool) *ast.Node {
	for {
		ExpandExpanders(ctx, &stmt)

		if len(stmt) == 0 {
			return ctx.buildCallOrReport(stmt)
		}
		if ctx.InPanic() {
			return ast.NewSilentErrorNode(stmt[0].Loc)
		}

		candidateIdx, precedence, kind, found := selectCandidate(ctx, stmt)
		singleton := len(stmt) == 1
		if !found || (singleton && kind != symtab.ControlMacro) {
			return ctx.buildCallOrReport(stmt)
		}

		sym, status := resolveMacro(ctx, stmt[candidateIdx], kind, precedence)
		switch status {
		case ambiguous:
			ctx.Report(diagnostics.CodeMacsubAmbiguousSymbol, stmt[candidateIdx].Loc, map[string]any{"Name": stmt[candidateIdx].Text})
			return ast.NewErrorNode(stmt[candidateIdx].Loc)
		case notMacro:
			// The per-unit scan found a candidate interpretation that a
			// precise re-resolution can't confirm (e.g. shadowed between
			// the two lookups); fall back to treating the statement as a
			// non-macro call.
			return ctx.buildCallOrReport(stmt)
		}

		fn := sym.Payload.(*symtab.MacroPayload).Substitute.(SubstituteFunc)
		res := fn(ctx, stmt, stmt[candidateIdx], consumedRest)
		switch res.Status {
		case Done:
			return res.Node
		case Again:
			stmt = res.Statement
		}
	}
}

// selectCandidate scans every unit of stmt and returns the index of the
// strongest macro candidate, per spec.md §4.3's tie-break: a strictly
// lower precedence always replaces the running candidate; an exact tie
// replaces it only when the precedence is even (so among equal-precedence
// candidates, odd precedence keeps the first one found and even
// precedence keeps the last).
func selectCandidate(ctx *Context, stmt units.Statement) (idx, precedence int, kind symtab.Kind, found bool) {
	for i, u := range stmt {
		p, k, ok := isMacroid(ctx, u, i == 0)
		if !ok {
			continue
		}
		if !found || p < precedence || (precedence == p && p%2 == 0) {
			idx, precedence, kind, found = i, p, k, true
		}
	}
	return idx, precedence, kind, found
}

func (c *Context) buildCallOrReport(stmt units.Statement) *ast.Node {
	if c.BuildCall == nil {
		loc := units.Location{}
		if len(stmt) > 0 {
			loc = stmt[0].Loc
		}
		c.Report(diagnostics.CodeMacsubNoOperation, loc, map[string]any{"Operation": "build_call", "Name": "statement"})
		return ast.NewErrorNode(loc)
	}
	return c.BuildCall(c, stmt)
}

func dropAt(stmt units.Statement, idx int) units.Statement {
	out := make(units.Statement, 0, len(stmt)-1)
	out = append(out, stmt[:idx]...)
	out = append(out, stmt[idx+1:]...)
	return out
}

func spliceAt(stmt units.Statement, idx int, replacement units.Statement) units.Statement {
	out := make(units.Statement, 0, len(stmt)-1+len(replacement))
	out = append(out, stmt[:idx]...)
	out = append(out, replacement...)
	out = append(out, stmt[idx+1:]...)
	return out
}
