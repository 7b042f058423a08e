// Package macsub implements spec.md §4.3: macro substitution — turning a
// parsed statement (internal/units) into a semantic AST node
// (internal/ast) by repeatedly finding and invoking the macro with the
// best claim on the statement, until none remains.
package macsub

import (
	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/symtab"
	"github.com/thsfranca/avacore/internal/units"
	"github.com/thsfranca/avacore/internal/varscope"
)

// Precedence constants from spec.md §4.3: control macros always win ties
// against anything else in the statement, function macros always lose,
// and the string pseudomacro (an Lstring/Rstring/LRstring unit standing
// in for string concatenation) sits at a fixed low precedence so ordinary
// operators usually bind tighter than it.
const (
	ControlMacroPrecedence      = -1
	FunctionMacroPrecedence     = 1 << 30
	StringPseudomacroPrecedence = 20
)

// BuildCall constructs the semantic node for a statement that no macro
// claimed — spec.md §4.3 step 4, "the whole statement becomes a
// non-macro statement node (a function-call construction handed to the
// code generator)". The concrete construction is domain-specific (it
// needs to know how calls are represented once intrinsics are
// registered), so the context that owns the compilation supplies it; a
// context with no hook configured reports CodeMacsubNoOperation instead
// of fabricating a call shape no downstream stage asked for.
type CallBuilder func(ctx *Context, stmt units.Statement) *ast.Node

// Context carries everything one point in the macro-substitution tree
// needs, per spec.md §4.3: the symbol table scope and varscope Scope
// visible at this point, the shared diagnostics sink, the name-prefix
// applied to definitions made here, the nesting level, an optional
// context variable (the implicit first argument some control macros
// thread through, e.g. the enclosing function for `return`), and the
// gensym and panic state shared across the whole context tree rooted at
// the file being compiled.
//
// Values are passed by value and carried forward through PushMajor and
// PushMinor (spec.md §4.3's "push-major"/"push-minor" context
// derivation), so any field meant to be shared across the whole tree
// (panic, gensym, the varscope Graph, the diagnostics Bag) must be a
// pointer or reference type rather than a plain value.
type Context struct {
	Symtab   *symtab.Scope
	Varscope *varscope.Scope
	Graph    *varscope.Graph
	Bag      *diagnostics.Bag
	BuildCall CallBuilder

	panic      *bool
	prefix     string
	level      int
	contextVar *symtab.Symbol
	gensym     *gensymState
}

// NewContext starts a fresh context tree: a root symtab scope, a fresh
// varscope Graph and its root Scope, level 0, an empty prefix, and a
// panic flag and gensym generator private to this tree (so compiling one
// file can never panic-poison or gensym-collide with another).
func NewContext(root *symtab.Scope, bag *diagnostics.Bag, build CallBuilder) *Context {
	graph := varscope.NewGraph()
	return &Context{
		Symtab:    root,
		Varscope:  graph.NewScope(),
		Graph:     graph,
		Bag:       bag,
		BuildCall: build,
		panic:     new(bool),
		gensym:    &gensymState{},
	}
}

// PushMajor derives a child context for a new lexical scope that needs
// its own symtab scope and varscope Scope — a function body or block
// that introduces new bindings invisible to its siblings (spec.md §4.3).
// interfix is appended to the running name prefix.
func (c *Context) PushMajor(interfix string) *Context {
	next := *c
	next.Symtab = symtab.New(c.Symtab)
	next.Varscope = c.Graph.NewScope()
	next.prefix = c.prefix + interfix
	next.level = c.level + 1
	return &next
}

// PushMinor derives a child context that shares its parent's symtab
// scope and varscope Scope — used when only the name prefix changes
// (e.g. descending into a namespace) without introducing a new binding
// scope (spec.md §4.3).
func (c *Context) PushMinor(interfix string) *Context {
	next := *c
	next.prefix = c.prefix + interfix
	return &next
}

// WithContextVar derives a child context with sym installed as the
// context variable, without otherwise changing scope.
func (c *Context) WithContextVar(sym *symtab.Symbol) *Context {
	next := *c
	next.contextVar = sym
	return &next
}

// ContextVar returns the context variable installed by the nearest
// enclosing WithContextVar call, or nil if none.
func (c *Context) ContextVar() *symtab.Symbol { return c.contextVar }

// Level returns this context's nesting depth (incremented by PushMajor).
func (c *Context) Level() int { return c.level }

// Prefix returns the fully-qualified name prefix new definitions made in
// this context should use.
func (c *Context) Prefix() string { return c.prefix }

// QualifyName prepends c's prefix to simple, producing the fully
// qualified name a Put into c.Symtab should use.
func (c *Context) QualifyName(simple string) string { return c.prefix + simple }

// Panic puts the whole context tree rooted at c's ancestor into panic
// mode, per spec.md §4.3: every macro expansion still to run anywhere in
// that tree short-circuits to a silent error node instead of reporting
// further diagnostics, so one real fault doesn't cascade into a wall of
// confusing follow-on errors.
func (c *Context) Panic() { *c.panic = true }

// InPanic reports whether c's context tree is in panic mode.
func (c *Context) InPanic() bool { return *c.panic }

// Report is a convenience wrapper around Bag.Add for the diagnostics
// this package raises directly (ambiguous symbol, missing expander);
// node-level diagnostics go through internal/ast's own reporting.
func (c *Context) Report(code diagnostics.Code, loc units.Location, params map[string]any) {
	c.Bag.Add(diagnostics.New(code, diagnostics.SeverityError, diagnostics.Location{
		Filename: loc.Filename, Source: loc.Source,
		StartLine: loc.StartLine, StartCol: loc.StartCol,
		EndLine: loc.EndLine, EndCol: loc.EndCol,
		ByteOffset: loc.StartOffset,
	}, params))
}

// GensymSeed reseeds c's gensym generator from the source file name, per
// spec.md §4.3: called once per source file before any Gensym call so
// names derived from the same file are stable across independent
// compiles but distinct from names derived from any other file.
func (c *Context) GensymSeed(filename string) {
	c.gensym.seed(filename)
}

// Gensym returns a name guaranteed unique within this seeded generation,
// built by concatenating key onto the generator's current prefix
// (spec.md §4.3).
func (c *Context) Gensym(key string) string {
	return gensym(c.gensym, key)
}
