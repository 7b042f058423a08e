package xcode

import (
	"testing"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/pcode"
)

func hasCode(bag *diagnostics.Bag, code diagnostics.Code) bool {
	for _, d := range bag.All() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestStructureFunctionCleanBodyProducesNoDiagnostics(t *testing.T) {
	fn := &pcode.Function{
		NumArgs: 1, NumVars: 1,
		Body: []pcode.Instruction{
			{Mnemonic: "push", Operands: []pcode.Operand{{Str: "d"}, {Int: 1}}},
			{Mnemonic: "ld-imm-d", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegD, Index: 0}}, {Str: "x"}}},
			{Mnemonic: "st-reg", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegV, Index: 0}}, {Reg: ast.Reg{Class: ast.RegD, Index: 0}}}},
			{Mnemonic: "pop", Operands: []pcode.Operand{{Str: "d"}, {Int: 1}}},
			{Mnemonic: "ret"},
		},
	}
	bag := diagnostics.NewBag()
	structured, ok := StructureFunction(fn, "t.pc", bag)
	if !ok || bag.HasErrors() {
		t.Fatalf("expected a clean structure, got errors: %v", bag.All())
	}
	if len(structured.Blocks) != 1 {
		t.Fatalf("expected a single basic block (no labels/branches), got %d", len(structured.Blocks))
	}
}

func TestRegNXAccessOnOutOfRangeRegister(t *testing.T) {
	fn := &pcode.Function{
		Body: []pcode.Instruction{
			{Mnemonic: "ret-val", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegD, Index: 0}}}},
		},
	}
	bag := diagnostics.NewBag()
	if _, ok := StructureFunction(fn, "t.pc", bag); ok {
		t.Fatal("expected structuring to fail")
	}
	if !hasCode(bag, diagnostics.CodeXcodeRegNXAccess) {
		t.Fatalf("expected C5002, got %v", bag.All())
	}
}

func TestUnbalancedPushAtFunctionEnd(t *testing.T) {
	fn := &pcode.Function{
		Body: []pcode.Instruction{
			{Mnemonic: "push", Operands: []pcode.Operand{{Str: "d"}, {Int: 1}}},
			{Mnemonic: "ret"},
		},
	}
	bag := diagnostics.NewBag()
	if _, ok := StructureFunction(fn, "t.pc", bag); ok {
		t.Fatal("expected structuring to fail")
	}
	if !hasCode(bag, diagnostics.CodeXcodeUnbalancedPush) {
		t.Fatalf("expected C5003, got %v", bag.All())
	}
}

func TestUninitializedRegisterReadIsReported(t *testing.T) {
	fn := &pcode.Function{
		NumArgs: 1, NumVars: 1,
		Body: []pcode.Instruction{
			{Mnemonic: "push", Operands: []pcode.Operand{{Str: "d"}, {Int: 2}}},
			{Mnemonic: "ld-imm-d", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegD, Index: 1}}, {Str: "y"}}},
			{Mnemonic: "st-reg", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegV, Index: 0}}, {Reg: ast.Reg{Class: ast.RegD, Index: 0}}}},
			{Mnemonic: "pop", Operands: []pcode.Operand{{Str: "d"}, {Int: 2}}},
			{Mnemonic: "ret"},
		},
	}
	bag := diagnostics.NewBag()
	StructureFunction(fn, "t.pc", bag)
	if !hasCode(bag, diagnostics.CodeXcodeUninitReg) {
		t.Fatalf("expected C5005, got %v", bag.All())
	}
}

func TestLabelsSplitIntoBlocksAndBranchLinksToTarget(t *testing.T) {
	fn := &pcode.Function{
		Body: []pcode.Instruction{
			{Mnemonic: "push", Operands: []pcode.Operand{{Str: "i"}, {Int: 1}}},
			{Mnemonic: "ld-imm-i", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegI, Index: 0}}, {Int: 1}}},
			{Mnemonic: "branch", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegI, Index: 0}}, {Label: "skip"}}},
			{Mnemonic: "label", Operands: []pcode.Operand{{Str: "skip"}}},
			{Mnemonic: "pop", Operands: []pcode.Operand{{Str: "i"}, {Int: 1}}},
			{Mnemonic: "ret"},
		},
	}
	bag := diagnostics.NewBag()
	structured, ok := StructureFunction(fn, "t.pc", bag)
	if !ok {
		t.Fatalf("expected structuring to succeed, got %v", bag.All())
	}
	if len(structured.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(structured.Blocks))
	}
	entry := structured.Blocks[0]
	if entry.Next[0] != 1 {
		t.Fatalf("expected branch's jump target resolved to block 1, got %v", entry.Next)
	}
}

func TestJumpToUnknownLabelIsReported(t *testing.T) {
	fn := &pcode.Function{
		Body: []pcode.Instruction{
			{Mnemonic: "jump", Operands: []pcode.Operand{{Label: "nowhere"}}},
		},
	}
	bag := diagnostics.NewBag()
	if _, ok := StructureFunction(fn, "t.pc", bag); ok {
		t.Fatal("expected structuring to fail")
	}
	if !hasCode(bag, diagnostics.CodeXcodeJumpNXLabel) {
		t.Fatalf("expected C5004, got %v", bag.All())
	}
}

func TestValidateXrefsCatchesArityMismatch(t *testing.T) {
	prog := pcode.Program{Globals: []pcode.Global{
		{Kind: pcode.GlobalFunc, Name: "callee", Args: 2, Body: &pcode.Function{Body: []pcode.Instruction{{Mnemonic: "ret"}}}},
		{
			Kind: pcode.GlobalFunc, Name: "caller",
			Body: &pcode.Function{Body: []pcode.Instruction{
				{Mnemonic: "push", Operands: []pcode.Operand{{Str: "d"}, {Int: 1}}},
				{Mnemonic: "push", Operands: []pcode.Operand{{Str: "p"}, {Int: 1}}},
				{Mnemonic: "call-static", Operands: []pcode.Operand{
					{Reg: ast.Reg{Class: ast.RegD, Index: 0}}, {Int: 0}, {Int: 0},
					{Range: pcode.RegRange{Class: ast.RegP, Base: 0, Count: 1}},
				}},
				{Mnemonic: "pop", Operands: []pcode.Operand{{Str: "p"}, {Int: 1}}},
				{Mnemonic: "pop", Operands: []pcode.Operand{{Str: "d"}, {Int: 1}}},
				{Mnemonic: "ret"},
			}},
		},
	}}
	bag := diagnostics.NewBag()
	ValidateXrefs(prog, "t.pc", bag)
	if !hasCode(bag, diagnostics.CodeXcodeArityMismatch) {
		t.Fatalf("expected C5007, got %v", bag.All())
	}
}

func TestValidateXrefsCatchesOutOfBoundsGlobal(t *testing.T) {
	prog := pcode.Program{Globals: []pcode.Global{
		{
			Kind: pcode.GlobalFunc, Name: "f",
			Body: &pcode.Function{Body: []pcode.Instruction{
				{Mnemonic: "ld-glob", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegD, Index: 0}}, {Int: 99}}},
				{Mnemonic: "ret"},
			}},
		},
	}}
	bag := diagnostics.NewBag()
	ValidateXrefs(prog, "t.pc", bag)
	if !hasCode(bag, diagnostics.CodeXcodeBadCrossRef) {
		t.Fatalf("expected C5006, got %v", bag.All())
	}
}

func TestValidateXrefsCatchesBadInitFunction(t *testing.T) {
	prog := pcode.Program{Globals: []pcode.Global{
		{Kind: pcode.GlobalFunc, Name: "not-unary", Args: 2, Conv: pcode.ConvStandard},
		{Kind: pcode.GlobalInit, InitFunctionIndex: 0},
	}}
	bag := diagnostics.NewBag()
	ValidateXrefs(prog, "t.pc", bag)
	if !hasCode(bag, diagnostics.CodeXcodeBadCrossRef) {
		t.Fatalf("expected C5006, got %v", bag.All())
	}
}

func TestBuildSkipsFailedFunctionsButStillRunsXrefs(t *testing.T) {
	prog := pcode.Program{Globals: []pcode.Global{
		{Kind: pcode.GlobalFunc, Name: "bad", Body: &pcode.Function{Body: []pcode.Instruction{
			{Mnemonic: "ret-val", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegD, Index: 0}}}},
		}}},
	}}
	structured, bag := Build(prog, "t.pc")
	if len(structured) != 0 {
		t.Fatalf("expected the malformed function to be excluded, got %v", structured)
	}
	if !bag.HasErrors() {
		t.Fatal("expected at least the reg_nxaccess diagnostic from the malformed function")
	}
}
