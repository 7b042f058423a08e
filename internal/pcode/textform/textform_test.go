package textform

import (
	"testing"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/pcode"
)

func sampleProgram() pcode.Program {
	return pcode.Program{Globals: []pcode.Global{
		{Kind: pcode.GlobalVar, Name: "counter"},
		{Kind: pcode.GlobalVar, Name: "self", Entity: true},
		{Kind: pcode.GlobalImport, OldPrefix: "std.", NewPrefix: "s.", Strong: true},
		{Kind: pcode.GlobalModuleLoad, ModulePath: "std/io"},
		{Kind: pcode.GlobalMacroDef, Name: "when", MacroPrecedence: 10},
		{
			Kind: pcode.GlobalFunc, Name: "add-one", Args: 1, Conv: pcode.ConvStandard,
			Body: &pcode.Function{NumArgs: 1, NumVars: 1, Body: []pcode.Instruction{
				{Mnemonic: "push", Operands: []pcode.Operand{{Str: "d"}, {Int: 1}}},
				{Mnemonic: "ld-imm-i", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegI, Index: 0}}, {Int: 1}}},
				{Mnemonic: "ret-val", Operands: []pcode.Operand{{Reg: ast.Reg{Class: ast.RegD, Index: 0}}}},
			}},
		},
		{Kind: pcode.GlobalInit, InitFunctionIndex: 5},
		{Kind: pcode.GlobalSourcePos, SourceLine: 42},
	}}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	prog := sampleProgram()
	exprs := Encode(prog)
	text := Serialize(exprs)

	parsed, bag := Parse(text, "test.pc")
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.All())
	}

	decoded, decodeBag := Decode(parsed, "test.pc")
	if decodeBag.HasErrors() {
		t.Fatalf("unexpected decode errors: %v", decodeBag.All())
	}

	if len(decoded.Globals) != len(prog.Globals) {
		t.Fatalf("expected %d globals, got %d", len(prog.Globals), len(decoded.Globals))
	}
	fn := decoded.Globals[5]
	if fn.Kind != pcode.GlobalFunc || fn.Name != "add-one" || fn.Body == nil || len(fn.Body.Body) != 3 {
		t.Fatalf("function global did not round-trip: %+v", fn)
	}
	if fn.Body.Body[1].Mnemonic != "ld-imm-i" || fn.Body.Body[1].Operands[0].Reg.Class != ast.RegI {
		t.Fatalf("instruction operands did not round-trip: %+v", fn.Body.Body[1])
	}
	init := decoded.Globals[6]
	if init.Kind != pcode.GlobalInit || init.InitFunctionIndex != 5 {
		t.Fatalf("init global did not round-trip: %+v", init)
	}
}

func TestSerializeIsIdempotent(t *testing.T) {
	exprs := Encode(sampleProgram())
	first := Serialize(exprs)

	reparsed, bag := Parse(first, "test.pc")
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.All())
	}
	second := Serialize(reparsed)

	if first != second {
		t.Fatalf("serialization is not idempotent:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

func TestRegisterRangeOperandRoundTrips(t *testing.T) {
	prog := pcode.Program{Globals: []pcode.Global{
		{
			Kind: pcode.GlobalFunc, Name: "apply", Args: 0,
			Body: &pcode.Function{Body: []pcode.Instruction{
				{Mnemonic: "call-static", Operands: []pcode.Operand{
					{Reg: ast.Reg{Class: ast.RegD, Index: 0}},
					{Int: 3},
					{Int: 0},
					{Range: pcode.RegRange{Class: ast.RegP, Base: 2, Count: 3}},
				}},
			}},
		},
	}}
	text := Serialize(Encode(prog))
	parsed, bag := Parse(text, "t.pc")
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.All())
	}
	decoded, decodeBag := Decode(parsed, "t.pc")
	if decodeBag.HasErrors() {
		t.Fatalf("decode errors: %v", decodeBag.All())
	}
	instr := decoded.Globals[0].Body.Body[0]
	got := instr.Operands[3].Range
	want := pcode.RegRange{Class: ast.RegP, Base: 2, Count: 3}
	if got != want {
		t.Fatalf("range operand mismatch: got %+v, want %+v", got, want)
	}
}

func TestUnknownMnemonicReportsDiagnostic(t *testing.T) {
	text := "(fun f 0 0 std (no-such-op v0))\n"
	parsed, bag := Parse(text, "t.pc")
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.All())
	}
	_, decodeBag := Decode(parsed, "t.pc")
	if !decodeBag.HasErrors() {
		t.Fatal("expected an unknown-mnemonic diagnostic")
	}
	found := false
	for _, d := range decodeBag.All() {
		if string(d.Code) == "C5008" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected C5008, got %v", decodeBag.All())
	}
}

func TestMalformedGlobalReportsDiagnostic(t *testing.T) {
	text := "(var)\n"
	parsed, bag := Parse(text, "t.pc")
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.All())
	}
	_, decodeBag := Decode(parsed, "t.pc")
	if !decodeBag.HasErrors() {
		t.Fatal("expected a malformed-global diagnostic")
	}
}
