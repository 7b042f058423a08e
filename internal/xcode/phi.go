package xcode

import (
	"fmt"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/pcode"
)

// initPhi is pass 4's first half: per block, seed the initialized-on-entry
// bitset (block 0 starts with exactly the function's arguments
// initialized; every other block assumes everything that exists on entry
// is initialized, to be refined by propagation) and compute which
// registers this block itself initializes (Effect) plus what's initialized
// on exit if control never reaches this block from elsewhere (OInit).
func initPhi(blocks []Block, instructions []pcode.Instruction, total, numArgs int) {
	for bi := range blocks {
		b := &blocks[bi]
		b.IInit = make([]bool, total)
		if bi == 0 {
			for i := 0; i < numArgs; i++ {
				b.IInit[i] = true
			}
		} else {
			copy(b.IInit, b.IExist)
		}
		b.OInit = append([]bool(nil), b.IInit...)
		b.Effect = make([]bool, total)

		for idx := b.Start; idx < b.End; idx++ {
			instr := instructions[idx]
			desc, _ := instr.Desc()
			for oi, od := range desc.Operands {
				if od.Kind == pcode.OperandRegWrite {
					regIdx := instr.Operands[oi].Reg.Index
					b.Effect[regIdx] = true
					b.OInit[regIdx] = true
				}
			}
			// A range-read consumes (destroys) the registers it reads.
			for oi, od := range desc.Operands {
				if od.Kind == pcode.OperandRegRangeRead {
					r := instr.Operands[oi].Range
					for k := 0; k < r.Count; k++ {
						b.Effect[r.Base+k] = true
						b.OInit[r.Base+k] = false
					}
				}
			}
		}

		for i := 0; i < total; i++ {
			if !b.OExist[i] {
				b.Effect[i] = true
			}
			b.OInit[i] = b.OInit[i] && b.OExist[i]
		}
	}
}

// propagatePhi is pass 4's second half: iterate until fixed point,
// narrowing each block's OInit to what Effect or IInit still guarantees,
// then intersecting that into every successor's IInit.
func propagatePhi(blocks []Block, total int) {
	again := true
	for again {
		again = false
		for bi := range blocks {
			b := &blocks[bi]
			for i := 0; i < total; i++ {
				b.OInit[i] = b.OInit[i] && (b.Effect[i] || b.IInit[i])
			}
			for _, to := range b.Next {
				if propagateHop(blocks, b, to) {
					again = true
				}
			}
		}
	}
}

func propagateHop(blocks []Block, from *Block, to int) bool {
	if to < 0 {
		return false
	}
	changed := false
	dst := &blocks[to]
	for i := range dst.IInit {
		want := dst.IInit[i] && from.OInit[i]
		if want != dst.IInit[i] {
			dst.IInit[i] = want
			changed = true
		}
	}
	return changed
}

// checkInit is pass 5: walk each block with a running init bitset seeded
// from IInit, reporting a use-before-init diagnostic for every register
// read before its write is guaranteed, naming the variable for v-registers
// when a name is available.
func checkInit(blocks []Block, instructions []pcode.Instruction, total int, varNames []string, filename string, bag *diagnostics.Bag) {
	for bi := range blocks {
		b := &blocks[bi]
		init := append([]bool(nil), b.IInit...)

		for idx := b.Start; idx < b.End; idx++ {
			instr := instructions[idx]
			desc, _ := instr.Desc()
			loc := diagnostics.Location{Filename: filename, StartLine: instr.SourceLine, EndLine: instr.SourceLine}

			for oi, od := range desc.Operands {
				switch od.Kind {
				case pcode.OperandRegRead:
					reg := instr.Operands[oi].Reg
					reportIfUninit(bag, init, reg, varNames, loc)
				case pcode.OperandRegRangeRead:
					r := instr.Operands[oi].Range
					for k := 0; k < r.Count; k++ {
						reg := ast.Reg{Class: r.Class, Index: r.Base + k}
						reportIfUninit(bag, init, reg, varNames, loc)
						init[reg.Index] = false
					}
				}
			}
			for oi, od := range desc.Operands {
				if od.Kind == pcode.OperandRegWrite {
					init[instr.Operands[oi].Reg.Index] = true
				}
			}
		}
	}
}

func reportIfUninit(bag *diagnostics.Bag, init []bool, reg ast.Reg, varNames []string, loc diagnostics.Location) {
	if init[reg.Index] {
		return
	}
	if reg.Class == ast.RegV && reg.Index < len(varNames) {
		name := varNames[reg.Index]
		bag.Add(diagnostics.New(diagnostics.CodeXcodeUninitReg, diagnostics.SeverityError, loc,
			map[string]any{"Class": string(reg.Class), "Index": reg.Index}).
			WithMessage(fmt.Sprintf("use of possibly-uninitialized variable '%s'", name)))
		return
	}
	bag.Add(diagnostics.New(diagnostics.CodeXcodeUninitReg, diagnostics.SeverityError, loc,
		map[string]any{"Class": string(reg.Class), "Index": reg.Index}))
}
