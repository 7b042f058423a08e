// Package pcode implements spec.md §3.8: the two parallel P-code schemas
// (globals and function-body executables) plus the schema table the spec's
// "P-code schema from generator" design note calls for — a declarative
// description of each instruction family that parsing, serializing, and
// validating (internal/xcode) all derive from, rather than hand-written
// per-mnemonic logic scattered across those concerns.
package pcode

import "github.com/thsfranca/avacore/internal/ast"

// OperandKind classifies one instruction operand slot, per spec.md §3.8's
// distinction between plain data, register reads, register writes (a
// fresh push), range reads (argument windows), and jump targets.
type OperandKind int

const (
	OperandInt OperandKind = iota
	OperandString
	OperandRegRead
	OperandRegWrite
	OperandRegRangeRead
	OperandLabel
)

// OperandDesc describes one operand slot in an instruction's schema entry.
type OperandDesc struct {
	Name string
	Kind OperandKind
	// Class is set when Kind is OperandRegRead/OperandRegWrite/
	// OperandRegRangeRead and the register class is fixed by the
	// mnemonic itself (e.g. "ret-val" always reads a d-register);
	// left empty when the class is itself an operand (push/pop name
	// their class explicitly as a string operand instead).
	Class ast.RegClass
}

// InstrDesc is one instruction family's declarative description, per the
// P-code schema design note: its operand shape, whether it terminates a
// basic block (spec.md §4.6 pass 1), and whether that terminator is
// conditional (carries two successors — pass 2) or unconditional (one,
// always −1).
type InstrDesc struct {
	Mnemonic    string
	Operands    []OperandDesc
	Terminates  bool
	Conditional bool
	// JumpOperand indexes the operand (within Operands) that carries the
	// jump-target label text before pass 2 rewrites it to a block index,
	// or -1 if this mnemonic never carries a jump target.
	JumpOperand int
}

// Schema is the ordered instruction-family table every P-code executable
// instruction is validated and serialized against.
var Schema = []InstrDesc{
	{
		Mnemonic:    "push",
		Operands:    []OperandDesc{{Name: "class", Kind: OperandString}, {Name: "count", Kind: OperandInt}},
		JumpOperand: -1,
	},
	{
		Mnemonic:    "pop",
		Operands:    []OperandDesc{{Name: "class", Kind: OperandString}, {Name: "count", Kind: OperandInt}},
		JumpOperand: -1,
	},
	{
		Mnemonic: "label",
		Operands: []OperandDesc{{Name: "name", Kind: OperandString}},
		JumpOperand: -1,
	},
	{
		Mnemonic: "ld-imm-i",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegI},
			{Name: "value", Kind: OperandInt},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "ld-imm-d",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegD},
			{Name: "value", Kind: OperandString},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "ld-glob",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegD},
			{Name: "global", Kind: OperandInt},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "st-glob",
		Operands: []OperandDesc{
			{Name: "global", Kind: OperandInt},
			{Name: "src", Kind: OperandRegRead, Class: ast.RegD},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "ld-reg",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegV},
			{Name: "src", Kind: OperandRegRead, Class: ast.RegV},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "st-reg",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegV},
			{Name: "src", Kind: OperandRegRead, Class: ast.RegD},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "call-static",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegD},
			{Name: "global", Kind: OperandInt},
			{Name: "base", Kind: OperandInt},
			{Name: "count", Kind: OperandRegRangeRead, Class: ast.RegP},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic: "call-dynamic",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegD},
			{Name: "fn", Kind: OperandRegRead, Class: ast.RegD},
			{Name: "base", Kind: OperandInt},
			{Name: "count", Kind: OperandRegRangeRead, Class: ast.RegP},
		},
		JumpOperand: -1,
	},
	{
		Mnemonic:    "jump",
		Operands:    []OperandDesc{{Name: "target", Kind: OperandLabel}},
		Terminates:  true,
		JumpOperand: 0,
	},
	{
		Mnemonic: "branch",
		Operands: []OperandDesc{
			{Name: "cond", Kind: OperandRegRead, Class: ast.RegI},
			{Name: "target", Kind: OperandLabel},
		},
		Terminates:  true,
		Conditional: true,
		JumpOperand: 1,
	},
	{
		Mnemonic:    "ret",
		Operands:    nil,
		Terminates:  true,
		JumpOperand: -1,
	},
	{
		Mnemonic:    "ret-val",
		Operands:    []OperandDesc{{Name: "src", Kind: OperandRegRead, Class: ast.RegD}},
		Terminates:  true,
		JumpOperand: -1,
	},
	{
		Mnemonic:    "throw",
		Operands:    []OperandDesc{{Name: "src", Kind: OperandRegRead, Class: ast.RegD}},
		Terminates:  true,
		JumpOperand: -1,
	},
	{
		Mnemonic: "reflect-count",
		Operands: []OperandDesc{
			{Name: "dst", Kind: OperandRegWrite, Class: ast.RegI},
			{Name: "class", Kind: OperandString},
		},
		JumpOperand: -1,
	},
}

var byMnemonic = func() map[string]*InstrDesc {
	m := make(map[string]*InstrDesc, len(Schema))
	for i := range Schema {
		m[Schema[i].Mnemonic] = &Schema[i]
	}
	return m
}()

// Lookup returns mnemonic's schema entry, or (nil, false) if unknown —
// callers report diagnostics.CodeXcodeUnknownMnemonic in that case.
func Lookup(mnemonic string) (*InstrDesc, bool) {
	d, ok := byMnemonic[mnemonic]
	return d, ok
}
