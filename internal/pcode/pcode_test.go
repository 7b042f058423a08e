package pcode

import (
	"testing"

	"github.com/thsfranca/avacore/internal/ast"
)

func TestLookupKnownAndUnknownMnemonic(t *testing.T) {
	if _, ok := Lookup("push"); !ok {
		t.Fatal("expected push to be a known mnemonic")
	}
	if _, ok := Lookup("no-such-instruction"); ok {
		t.Fatal("expected an unknown mnemonic to miss")
	}
}

func TestBranchIsConditionalWithJumpOperand(t *testing.T) {
	desc, ok := Lookup("branch")
	if !ok {
		t.Fatal("expected branch to be registered")
	}
	if !desc.Terminates || !desc.Conditional {
		t.Fatal("expected branch to be a conditional terminator")
	}
	if desc.JumpOperand != 1 {
		t.Fatalf("expected the jump operand at index 1, got %d", desc.JumpOperand)
	}
}

func TestJumpIsUnconditionalTerminator(t *testing.T) {
	desc, _ := Lookup("jump")
	if !desc.Terminates || desc.Conditional {
		t.Fatal("expected jump to be an unconditional terminator")
	}
}

func TestRegReadsIncludesRangeExpansion(t *testing.T) {
	inst := Instruction{
		Mnemonic: "call-static",
		Operands: []Operand{
			{Reg: ast.Reg{Class: ast.RegD, Index: 0}},
			{Int: 3},
			{Int: 0},
			{Range: RegRange{Class: ast.RegP, Base: 2, Count: 3}},
		},
	}
	reads := inst.RegReads()
	if len(reads) != 3 {
		t.Fatalf("expected 3 expanded range reads, got %d", len(reads))
	}
	for i, r := range reads {
		if r.Class != ast.RegP || r.Index != 2+i {
			t.Fatalf("expected p%d, got %s%d", 2+i, r.Class, r.Index)
		}
	}
}

func TestRegWritesFindsDestination(t *testing.T) {
	inst := Instruction{
		Mnemonic: "ld-imm-i",
		Operands: []Operand{
			{Reg: ast.Reg{Class: ast.RegI, Index: 4}},
			{Int: 42},
		},
	}
	writes := inst.RegWrites()
	if len(writes) != 1 || writes[0].Class != ast.RegI || writes[0].Index != 4 {
		t.Fatalf("expected a single write to i4, got %v", writes)
	}
}

func TestJumpTargetRoundTrip(t *testing.T) {
	inst := Instruction{
		Mnemonic: "jump",
		Operands: []Operand{{Label: "loop-top"}},
	}
	target, ok := inst.JumpTarget()
	if !ok || target != "loop-top" {
		t.Fatalf("expected loop-top, got %q ok=%v", target, ok)
	}
	inst.SetJumpTarget("3")
	target, _ = inst.JumpTarget()
	if target != "3" {
		t.Fatalf("expected the resolved block index, got %q", target)
	}
}

func TestRetHasNoOperandsAndNoJumpTarget(t *testing.T) {
	inst := Instruction{Mnemonic: "ret"}
	if _, ok := inst.JumpTarget(); ok {
		t.Fatal("expected ret to carry no jump target")
	}
	if reads := inst.RegReads(); len(reads) != 0 {
		t.Fatalf("expected no reads for ret, got %v", reads)
	}
}
