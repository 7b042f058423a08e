package pcode

import "github.com/thsfranca/avacore/internal/ast"

// Operand is one resolved instruction operand. Exactly one of the typed
// fields is meaningful, selected by the corresponding OperandDesc.Kind in
// the instruction's schema entry.
type Operand struct {
	Int   int64
	Str   string
	Reg   ast.Reg // OperandRegRead / OperandRegWrite
	Range RegRange // OperandRegRangeRead
	Label string  // OperandLabel, before pass 2 rewrites it to a block index
}

// RegRange is an argument window: count consecutive registers of Class
// starting at Base (spec.md §4.6 pass 1's "base + count ≤ current
// height" range reads).
type RegRange struct {
	Class ast.RegClass
	Base  int
	Count int
}

// Instruction is one P-code executable instruction: a mnemonic plus its
// operands in schema order. SourceLine is the source line attributed to
// this instruction (set from Builder.SetSourceLine when generated, or the
// instruction's line in the textual form when decoded by
// internal/pcode/textform); internal/xcode passes report their
// diagnostics for the instruction at that line.
type Instruction struct {
	Mnemonic   string
	Operands   []Operand
	SourceLine int
}

// Desc returns i's schema entry, or (nil, false) if Mnemonic is unknown.
func (i Instruction) Desc() (*InstrDesc, bool) {
	return Lookup(i.Mnemonic)
}

// RegReads returns every register i's schema marks as a read (plain or
// range), in operand order — what internal/xcode's liveness and
// use-before-init passes need to check.
func (i Instruction) RegReads() []ast.Reg {
	desc, ok := i.Desc()
	if !ok {
		return nil
	}
	var out []ast.Reg
	for idx, op := range desc.Operands {
		switch op.Kind {
		case OperandRegRead:
			out = append(out, i.Operands[idx].Reg)
		case OperandRegRangeRead:
			r := i.Operands[idx].Range
			for k := 0; k < r.Count; k++ {
				out = append(out, ast.Reg{Class: r.Class, Index: r.Base + k})
			}
		}
	}
	return out
}

// RegWrites returns every register i's schema marks as a write, in
// operand order.
func (i Instruction) RegWrites() []ast.Reg {
	desc, ok := i.Desc()
	if !ok {
		return nil
	}
	var out []ast.Reg
	for idx, op := range desc.Operands {
		if op.Kind == OperandRegWrite {
			out = append(out, i.Operands[idx].Reg)
		}
	}
	return out
}

// JumpTarget returns the label operand a terminator instruction carries,
// per its schema's JumpOperand index, or ("", false) if it carries none.
func (i Instruction) JumpTarget() (string, bool) {
	desc, ok := i.Desc()
	if !ok || desc.JumpOperand < 0 {
		return "", false
	}
	return i.Operands[desc.JumpOperand].Label, true
}

// SetJumpTarget rewrites the jump-target operand in place — pass 2's
// label-to-block-index resolution stores the resolved index as a decimal
// string so Operand need not grow a dedicated int-or-label variant.
func (i *Instruction) SetJumpTarget(resolved string) {
	desc, ok := i.Desc()
	if !ok || desc.JumpOperand < 0 {
		return
	}
	i.Operands[desc.JumpOperand].Label = resolved
}
