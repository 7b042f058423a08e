package xcode

import (
	"fmt"

	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/pcode"
)

// StructureFunction runs passes 1-5 of spec.md §4.6 over fn: block
// identification and liveness, flow-graph linking, register renaming, phi
// initialization, phi propagation, and use-before-init checking. It
// mutates fn.Body in place (pass 3 renames registers, pass 2 resolves jump
// labels to block indices), matching the original's in-place instruction
// rewriting.
func StructureFunction(fn *pcode.Function, filename string, bag *diagnostics.Bag) (*Function, bool) {
	blocks, _, ok := identifyBlocks(fn, filename, bag)
	if !ok {
		return nil, false
	}

	total, offset := renameRegisters(blocks, fn.Body, fn.NumVars)

	if !linkBlocks(blocks, fn.Body, labelIndex(blocks), filename, bag) {
		return nil, false
	}

	initPhi(blocks, fn.Body, total, fn.NumArgs)
	propagatePhi(blocks, total)
	checkInit(blocks, fn.Body, total, fn.VarNames, filename, bag)

	return &Function{
		Source: fn, Instructions: fn.Body, Blocks: blocks,
		TotalRegs: total, RegOffset: offset,
	}, !bag.HasErrors()
}

// Build runs StructureFunction over every pcode.GlobalFunc in prog, then
// runs pass 6 (ValidateXrefs) over the whole globals table. It returns the
// structured form of each function, keyed by its index in prog.Globals.
func Build(prog pcode.Program, filename string) (map[int]*Function, *diagnostics.Bag) {
	bag := diagnostics.NewBag()
	structured := make(map[int]*Function)

	for i := range prog.Globals {
		g := &prog.Globals[i]
		if g.Kind != pcode.GlobalFunc || g.Body == nil {
			continue
		}
		if fn, ok := StructureFunction(g.Body, filename, bag); ok {
			structured[i] = fn
		}
	}

	ValidateXrefs(prog, filename, bag)
	return structured, bag
}

// ValidateXrefs is pass 6: check that every global-table reference a
// function body or another global entry makes — variable/function loads,
// call-site callees, the init global's target — points at an existing
// global of the expected kind, and that static call sites pass the
// callee's declared argument count.
func ValidateXrefs(prog pcode.Program, filename string, bag *diagnostics.Bag) {
	globals := prog.Globals

	for _, g := range globals {
		if g.Kind == pcode.GlobalInit {
			if !validIndex(globals, g.InitFunctionIndex) || globals[g.InitFunctionIndex].Kind != pcode.GlobalFunc {
				reportBadXref(bag, filename, g.InitFunctionIndex)
				continue
			}
			target := globals[g.InitFunctionIndex]
			if target.Args != 1 || target.Conv != pcode.ConvStandard {
				reportBadXref(bag, filename, g.InitFunctionIndex)
			}
		}

		if g.Kind != pcode.GlobalFunc || g.Body == nil {
			continue
		}
		for _, instr := range g.Body.Body {
			validateInstrXrefs(instr, globals, filename, bag)
		}
	}
}

func validateInstrXrefs(instr pcode.Instruction, globals []pcode.Global, filename string, bag *diagnostics.Bag) {
	desc, ok := instr.Desc()
	if !ok {
		return
	}
	loc := diagnostics.Location{Filename: filename, StartLine: instr.SourceLine, EndLine: instr.SourceLine}

	switch instr.Mnemonic {
	case "ld-glob", "st-glob":
		ref := int(instr.Operands[indexOf(desc, "global")].Int)
		if !validIndex(globals, ref) || globals[ref].Kind != pcode.GlobalVar {
			reportBadXref(bag, filename, ref)
		}
	case "call-static":
		ref := int(instr.Operands[indexOf(desc, "global")].Int)
		if !validIndex(globals, ref) || globals[ref].Kind != pcode.GlobalFunc {
			reportBadXref(bag, filename, ref)
			return
		}
		callee := globals[ref]
		got := instr.Operands[indexOf(desc, "count")].Range.Count
		if callee.Args != got {
			bag.Add(diagnostics.New(diagnostics.CodeXcodeArityMismatch, diagnostics.SeverityError, loc,
				map[string]any{"Expected": callee.Args, "Got": got}))
		}
	}
}

func indexOf(desc *pcode.InstrDesc, name string) int {
	for i, od := range desc.Operands {
		if od.Name == name {
			return i
		}
	}
	return -1
}

func validIndex(globals []pcode.Global, ref int) bool {
	return ref >= 0 && ref < len(globals)
}

func reportBadXref(bag *diagnostics.Bag, filename string, ref int) {
	bag.Add(diagnostics.New(diagnostics.CodeXcodeBadCrossRef, diagnostics.SeverityError,
		diagnostics.Location{Filename: filename}, map[string]any{"Index": ref}).
		WithMessage(fmt.Sprintf("invalid cross-reference to global %d", ref)))
}
