package macsub

import (
	"testing"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/symtab"
	"github.com/thsfranca/avacore/internal/units"
)

func bareword(text string) units.Unit {
	return units.NewBareword(text, units.Location{Filename: "t.ava", StartLine: 1, EndLine: 1})
}

func newTestContext() (*Context, *diagnostics.Bag, *symtab.Scope) {
	bag := diagnostics.NewBag()
	root := symtab.New(nil)
	calls := 0
	build := func(ctx *Context, stmt units.Statement) *ast.Node {
		calls++
		var name string
		if len(stmt) > 0 && stmt[0].Kind == units.Bareword {
			name = stmt[0].Text
		}
		vt := &ast.Vtable{
			Name: "call",
			GetFunname: func(n *ast.Node) (string, bool) {
				s, _ := n.Data.(string)
				return s, s != ""
			},
		}
		loc := units.Location{}
		if len(stmt) > 0 {
			loc = stmt[0].Loc
		}
		return ast.New(vt, loc, name)
	}
	ctx := NewContext(root, bag, build)
	return ctx, bag, root
}

func putMacro(scope *symtab.Scope, name string, kind symtab.Kind, precedence int, fn SubstituteFunc) {
	scope.Put(&symtab.Symbol{
		Kind:     kind,
		FullName: name,
		Payload:  &symtab.MacroPayload{Precedence: precedence, Substitute: fn},
	})
}

func TestRunStatementNoMacroBuildsCallNode(t *testing.T) {
	ctx, bag, _ := newTestContext()
	stmt := units.Statement{bareword("foo"), bareword("bar")}
	var consumed bool
	node := RunStatement(ctx, stmt, &consumed)
	if ast.IsError(node) {
		t.Fatalf("expected a call node, got an error node")
	}
	name, ok := node.GetFunname(bag)
	if !ok || name != "foo" {
		t.Fatalf("expected funname foo, got %q ok=%v", name, ok)
	}
	if bag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", bag.All())
	}
}

func TestRunStatementInvokesFunctionMacro(t *testing.T) {
	ctx, _, root := newTestContext()
	var invoked bool
	putMacro(root, "double", symtab.FunctionMacro, 0, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		invoked = true
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("double"), bareword("x")}
	var consumed bool
	RunStatement(ctx, stmt, &consumed)
	if !invoked {
		t.Fatal("expected the function macro to be invoked")
	}
}

func TestSingletonNonControlMacroIsNotSubstituted(t *testing.T) {
	ctx, _, root := newTestContext()
	var invoked bool
	// An operator macro named "bar" would ordinarily be a strong
	// candidate, but a one-unit statement never substitutes anything
	// but a control macro.
	putMacro(root, "bar", symtab.OperatorMacro, 5, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		invoked = true
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("bar")}
	var consumed bool
	node := RunStatement(ctx, stmt, &consumed)
	if invoked {
		t.Fatal("expected the operator macro not to be invoked on a singleton statement")
	}
	if ast.IsError(node) {
		t.Fatal("expected a call node, not an error node")
	}
}

func TestSingletonControlMacroIsSubstituted(t *testing.T) {
	ctx, _, root := newTestContext()
	var invoked bool
	putMacro(root, "return", symtab.ControlMacro, 0, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		invoked = true
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("return")}
	var consumed bool
	RunStatement(ctx, stmt, &consumed)
	if !invoked {
		t.Fatal("expected the control macro to be invoked even as a singleton")
	}
}

func TestControlMacroAlwaysWinsOverOperatorMacro(t *testing.T) {
	ctx, _, root := newTestContext()
	var which string
	putMacro(root, "if", symtab.ControlMacro, 0, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		which = "if"
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	putMacro(root, "+", symtab.OperatorMacro, 5, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		which = "+"
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("if"), bareword("x"), bareword("+"), bareword("y")}
	var consumed bool
	RunStatement(ctx, stmt, &consumed)
	if which != "if" {
		t.Fatalf("expected the control macro to win regardless of position, got %q", which)
	}
}

func TestOddPrecedenceTieKeepsFirstCandidate(t *testing.T) {
	ctx, _, root := newTestContext()
	var which string
	putMacro(root, "a", symtab.OperatorMacro, 3, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		which = "a"
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	putMacro(root, "b", symtab.OperatorMacro, 3, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		which = "b"
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("x"), bareword("a"), bareword("y"), bareword("b"), bareword("z")}
	var consumed bool
	RunStatement(ctx, stmt, &consumed)
	if which != "a" {
		t.Fatalf("expected the first odd-precedence candidate 'a' to win, got %q", which)
	}
}

func TestEvenPrecedenceTieKeepsLastCandidate(t *testing.T) {
	ctx, _, root := newTestContext()
	var which string
	putMacro(root, "a", symtab.OperatorMacro, 4, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		which = "a"
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	putMacro(root, "b", symtab.OperatorMacro, 4, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		which = "b"
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("x"), bareword("a"), bareword("y"), bareword("b"), bareword("z")}
	var consumed bool
	RunStatement(ctx, stmt, &consumed)
	if which != "b" {
		t.Fatalf("expected the last even-precedence candidate 'b' to win, got %q", which)
	}
}

func TestAgainResultReprocessesRewrittenStatement(t *testing.T) {
	ctx, _, root := newTestContext()
	rewrites := 0
	putMacro(root, "twice", symtab.FunctionMacro, 0, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		rewrites++
		if rewrites == 1 {
			return AgainWith(units.Statement{bareword("settled")})
		}
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	})
	stmt := units.Statement{bareword("twice"), bareword("x")}
	var consumed bool
	node := RunStatement(ctx, stmt, &consumed)
	if rewrites != 1 {
		t.Fatalf("expected exactly one macro invocation (the rewritten singleton isn't a macro reference), got %d", rewrites)
	}
	if ast.IsError(node) {
		t.Fatal("expected the rewritten singleton bareword to become a call node")
	}
}

func TestAmbiguousMacroCandidateReportsDiagnostic(t *testing.T) {
	ctx, bag, root := newTestContext()
	fn := func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		return DoneWith(ast.NewErrorNode(provoking.Loc))
	}
	// Two distinct imports bind the same local name "go" to two different
	// function macros, so resolution at the call site is ambiguous.
	a := symtab.New(nil)
	a.Put(&symtab.Symbol{Kind: symtab.FunctionMacro, FullName: "pkg1.go", Payload: &symtab.MacroPayload{Substitute: SubstituteFunc(fn)}})
	a.Put(&symtab.Symbol{Kind: symtab.FunctionMacro, FullName: "pkg2.go", Payload: &symtab.MacroPayload{Substitute: SubstituteFunc(fn)}})
	withA, _, _ := a.Import("pkg1", "x", true, true)
	withBoth, _, _ := withA.Import("pkg2", "x", true, true)
	ctx.Symtab = withBoth
	_ = root

	stmt := units.Statement{bareword("x.go"), bareword("y")}
	var consumed bool
	node := RunStatement(ctx, stmt, &consumed)
	if !ast.IsError(node) {
		t.Fatal("expected an error node for an ambiguous macro candidate")
	}
	if !bag.HasErrors() {
		t.Fatal("expected an ambiguous-symbol diagnostic")
	}
	if bag.All()[0].Code != diagnostics.CodeMacsubAmbiguousSymbol {
		t.Fatalf("expected CodeMacsubAmbiguousSymbol, got %v", bag.All()[0].Code)
	}
}

func TestExpanderExpansionSplicesReplacementUnits(t *testing.T) {
	ctx, _, root := newTestContext()
	putMacro(root, "spliceIn", symtab.ExpanderMacro, 0, func(ctx *Context, stmt units.Statement, provoking units.Unit, consumedRest *bool) Result {
		return AgainWith(units.Statement{bareword("left"), bareword("right")})
	})
	stmt := units.Statement{units.NewExpander("spliceIn", units.Location{})}
	ExpandExpanders(ctx, &stmt)
	if len(stmt) != 2 || stmt[0].Text != "left" || stmt[1].Text != "right" {
		t.Fatalf("expected the expander to be replaced by its two units, got %+v", stmt)
	}
}

func TestUnresolvedExpanderReportsDiagnosticAndIsDropped(t *testing.T) {
	ctx, bag, _ := newTestContext()
	stmt := units.Statement{units.NewExpander("nope", units.Location{}), bareword("rest")}
	ExpandExpanders(ctx, &stmt)
	if len(stmt) != 1 || stmt[0].Text != "rest" {
		t.Fatalf("expected the unresolved expander to be dropped, got %+v", stmt)
	}
	if !bag.HasErrors() || bag.All()[0].Code != diagnostics.CodeMacsubMissingExpander {
		t.Fatalf("expected CodeMacsubMissingExpander, got %v", bag.All())
	}
}

func TestPanicShortCircuitsToSilentErrorNode(t *testing.T) {
	ctx, bag, _ := newTestContext()
	ctx.Panic()
	stmt := units.Statement{bareword("anything")}
	var consumed bool
	node := RunStatement(ctx, stmt, &consumed)
	if !ast.IsSilent(node) {
		t.Fatal("expected a silent error node once the context is in panic mode")
	}
	if bag.HasErrors() {
		t.Fatal("expected panic mode to suppress further diagnostics")
	}
}

func TestPanicIsSharedAcrossPushedContexts(t *testing.T) {
	ctx, _, _ := newTestContext()
	child := ctx.PushMajor(".inner")
	child.Panic()
	if !ctx.InPanic() {
		t.Fatal("expected panic set on a pushed child to be visible on its ancestor")
	}
}

func TestPushMajorGetsIndependentSymtabAndVarscope(t *testing.T) {
	ctx, _, _ := newTestContext()
	child := ctx.PushMajor(".inner")
	if child.Symtab == ctx.Symtab {
		t.Fatal("expected PushMajor to create a fresh symtab scope")
	}
	if child.Varscope == ctx.Varscope {
		t.Fatal("expected PushMajor to create a fresh varscope")
	}
	if child.Level() != ctx.Level()+1 {
		t.Fatalf("expected level to increment, got %d -> %d", ctx.Level(), child.Level())
	}
}

func TestPushMinorSharesSymtabAndVarscope(t *testing.T) {
	ctx, _, _ := newTestContext()
	child := ctx.PushMinor(".inner")
	if child.Symtab != ctx.Symtab {
		t.Fatal("expected PushMinor to keep the same symtab scope")
	}
	if child.Varscope != ctx.Varscope {
		t.Fatal("expected PushMinor to keep the same varscope")
	}
	if child.Prefix() != ".inner" {
		t.Fatalf("expected the prefix to extend, got %q", child.Prefix())
	}
}

func TestGensymDistinctKeysDifferWithinOneGeneration(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.GensymSeed("file-a.ava")
	if ctx.Gensym("x") == ctx.Gensym("y") {
		t.Fatal("expected different keys in the same generation to produce different names")
	}
}

func TestGensymReseedingAdvancesGeneration(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.GensymSeed("file-a.ava")
	first := ctx.Gensym("x")
	ctx.GensymSeed("file-a.ava")
	second := ctx.Gensym("x")
	if first == second {
		t.Fatal("expected reseeding the same file to advance the generation counter and change the name")
	}
}

func TestGensymIsReproducibleAcrossFreshContexts(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.GensymSeed("file-a.ava")
	first := ctx.Gensym("x")

	other, _, _ := newTestContext()
	other.GensymSeed("file-a.ava")
	second := other.Gensym("x")
	if first != second {
		t.Fatalf("expected a fresh context seeded once from the same source text to reproduce the name, got %q vs %q", first, second)
	}
}

func TestGensymDiffersAcrossSourceFiles(t *testing.T) {
	a, _, _ := newTestContext()
	a.GensymSeed("file-a.ava")
	b, _, _ := newTestContext()
	b.GensymSeed("file-b.ava")
	if a.Gensym("x") == b.Gensym("x") {
		t.Fatal("expected gensym names to differ across distinct source files")
	}
}
