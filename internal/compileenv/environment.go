// Package compileenv implements spec.md §6.1: the compilation environment
// external collaborator, and compile_file, the eight-step driver tying
// every core package (lexer, parser, macsub, ast, pcode, xcode) together
// for one source file.
package compileenv

import (
	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/macsub"
	"github.com/thsfranca/avacore/internal/parser"
	"github.com/thsfranca/avacore/internal/pcode"
	"github.com/thsfranca/avacore/internal/symtab"
	"github.com/thsfranca/avacore/internal/units"
	"github.com/thsfranca/avacore/internal/xcode"
)

// SourceEntry is one compilation unit: a filename and its source text.
// ReadSourceFunc returns these as an ordered slice (not a map) so that
// "sources are consumed in alternating key/value pairs" (spec.md §6.1) is
// a deterministic sequence rather than Go's randomized map iteration.
type SourceEntry struct {
	Filename string
	Text     string
}

// ReadSourceFunc is the injected reader spec.md §6.1 names: given the
// requested filename, it returns whether the read succeeded, the ordered
// source entries making up that compilation unit, and an error detail for
// diagnostics when it didn't.
type ReadSourceFunc func(env *Environment, filename string) (ok bool, sources []SourceEntry, err string)

// NewMacsubFunc is the factory spec.md §6.1 names: it constructs an empty
// macro-substitution context with intrinsic macros registered. The core
// itself registers none (every intrinsic macro is out of scope, per
// spec.md §1) — RegisterIntrinsics is where an external collaborator
// plugs its control/function/operator macro table in.
type NewMacsubFunc func(env *Environment, bag *diagnostics.Bag) *macsub.Context

// Module is one compile_file result: the filename, its accumulated
// diagnostics, and (when compilation reached that far) the generated
// P-code and its validated X-code form.
type Module struct {
	Filename string
	PCode    pcode.Program
	XCode    map[int]*xcode.Function
	Errors   *diagnostics.Bag
}

// Environment is the compilation environment of spec.md §6.1: the
// package-name prefix applied to top-level symbols, the injected source
// reader and macsub factory, and the module/package caches plus the
// currently-loading stack cyclic-dependency detection scans.
type Environment struct {
	PackagePrefix     string
	ReadSource        ReadSourceFunc
	NewMacsub         NewMacsubFunc
	RegisterIntrinsics func(root *symtab.Scope)

	modules  map[string]*Module
	packages map[string]*symtab.Scope
	loading  []string
}

// New builds an Environment. A nil newMacsub uses DefaultNewMacsub.
func New(packagePrefix string, readSource ReadSourceFunc, newMacsub NewMacsubFunc) *Environment {
	if newMacsub == nil {
		newMacsub = DefaultNewMacsub
	}
	return &Environment{
		PackagePrefix: packagePrefix,
		ReadSource:    readSource,
		NewMacsub:     newMacsub,
		modules:       make(map[string]*Module),
		packages:      make(map[string]*symtab.Scope),
	}
}

// DefaultNewMacsub builds a fresh root scope (registering intrinsics via
// env.RegisterIntrinsics when set) and wraps it in a macsub.Context with
// no CallBuilder — a statement no macro claims reports
// CodeMacsubNoOperation rather than fabricating a call shape, matching
// the "every individual intrinsic macro is out of scope" boundary.
func DefaultNewMacsub(env *Environment, bag *diagnostics.Bag) *macsub.Context {
	root := symtab.New(nil)
	if env.RegisterIntrinsics != nil {
		env.RegisterIntrinsics(root)
	}
	ctx := macsub.NewContext(root, bag, nil)
	if env.PackagePrefix != "" {
		ctx = ctx.PushMinor(env.PackagePrefix)
	}
	return ctx
}

// CompileFile runs the eight-step algorithm of spec.md §6.1 over filename,
// returning a Module with whatever partial output was produced before the
// first failing step — every step's outputs are left in place for
// downstream inspection, per step 8.
func (e *Environment) CompileFile(filename string) *Module {
	if cached, ok := e.modules[filename]; ok {
		return cached
	}

	bag := diagnostics.NewBag()
	mod := &Module{Filename: filename, Errors: bag}

	// Step 1: cyclic dependency.
	for _, loading := range e.loading {
		if loading == filename {
			bag.Add(diagnostics.New(diagnostics.CodeIOCyclicDependency, diagnostics.SeverityError,
				diagnostics.Location{Filename: filename}, map[string]any{"Name": filename}))
			return mod
		}
	}
	e.loading = append(e.loading, filename)
	defer func() { e.loading = e.loading[:len(e.loading)-1] }()

	// Step 2: read source.
	ok, sources, readErr := e.ReadSource(e, filename)
	if !ok {
		d := diagnostics.New(diagnostics.CodeIOCannotReadSource, diagnostics.SeverityError,
			diagnostics.Location{Filename: filename}, map[string]any{"Name": filename})
		if readErr != "" {
			d = d.WithMessage(readErr)
		}
		bag.Add(d)
		e.modules[filename] = mod
		return mod
	}

	// Step 3: parse each source entry into the shared root Block.
	var combined []units.Statement
	var rootLoc units.Location
	for i, src := range sources {
		unit := parser.Parse(src.Filename, src.Text, bag)
		combined = append(combined, unit.Statements...)
		if i == 0 {
			rootLoc = unit.Loc
		}
	}

	// Step 4: construct a macsub context; run macro substitution.
	ctx := e.NewMacsub(e, bag)
	ctx.GensymSeed(filename)

	children := make([]*ast.Node, 0, len(combined))
	for _, stmt := range combined {
		consumed := false
		node := macsub.RunStatement(ctx, stmt, &consumed)
		if node != nil {
			children = append(children, node)
		}
	}
	root := newRootNode(rootLoc, children, bag)

	// Step 5: postprocess the root node.
	root = root.Postprocess(nil, bag)

	// Step 6: if no errors so far, invoke the code generator.
	if !bag.HasErrors() {
		mod.PCode = generate(root, bag)
	}

	// Step 7: build and validate X-code from the P-code.
	if !bag.HasErrors() {
		structured, xbag := xcode.Build(mod.PCode, filename)
		mod.XCode = structured
		for _, d := range xbag.All() {
			bag.Add(d)
		}
	}

	// Step 8: accumulated outputs stand regardless of where things failed.
	e.modules[filename] = mod
	return mod
}

// generate is the step-6 code generator: it runs the postprocessed root
// node's side effects inside one implicit init function (bound under the
// standard calling convention with a single argument, satisfying
// internal/xcode pass 6's init-function check) and assembles the globals
// table around it.
func generate(root *ast.Node, bag *diagnostics.Bag) pcode.Program {
	b := pcode.NewBuilder(bag, 1, nil)
	root.CgForce(b, bag)
	b.Emit("ret")

	fn := b.Function(1)
	prog := pcode.Program{Globals: []pcode.Global{
		{Kind: pcode.GlobalFunc, Name: "init", Args: 1, Conv: pcode.ConvStandard, Body: fn},
	}}
	prog.Globals = append(prog.Globals, pcode.Global{Kind: pcode.GlobalInit, InitFunctionIndex: 0})
	return prog
}
