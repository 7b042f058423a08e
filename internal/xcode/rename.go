package xcode

import (
	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/pcode"
)

// renameRegisters is pass 3: give every register pushed during the
// function's body a fresh, globally-unique index per class (v-registers
// keep their declared index, since they're never pushed), and capture each
// block's entry/exit existence bitsets (IExist/OExist) along the way —
// pass 3 and that bookkeeping share one sweep in the original, since both
// need the same running per-class height.
func renameRegisters(blocks []Block, instructions []pcode.Instruction, declaredVars int) (total int, offset map[ast.RegClass]int) {
	offset = make(map[ast.RegClass]int, len(regClasses))
	countByClass := countRegisters(instructions, declaredVars)
	running := 0
	for _, c := range regClasses {
		offset[c] = running
		running += countByClass[c]
	}
	total = running

	nextName := map[ast.RegClass]int{}
	for _, c := range regClasses {
		nextName[c] = offset[c]
	}
	height := map[ast.RegClass]int{ast.RegV: declaredVars}
	effective := make(map[ast.RegClass][]int, len(regClasses))
	for _, c := range regClasses {
		effective[c] = make([]int, countByClass[c])
	}
	for i := 0; i < declaredVars; i++ {
		effective[ast.RegV][i] = i
	}

	for bi := range blocks {
		b := &blocks[bi]
		b.IExist = make([]bool, total)
		for _, c := range regClasses {
			for i := 0; i < height[c]; i++ {
				b.IExist[effective[c][i]] = true
			}
		}

		for idx := b.Start; idx < b.End; idx++ {
			instr := &instructions[idx]

			switch instr.Mnemonic {
			case "push":
				class := ast.RegClass(instr.Operands[0].Str)
				count := int(instr.Operands[1].Int)
				for k := 0; k < count; k++ {
					effective[class][height[class]] = nextName[class]
					height[class]++
					nextName[class]++
				}
			case "pop":
				class := ast.RegClass(instr.Operands[0].Str)
				height[class] -= int(instr.Operands[1].Int)
			}

			desc, _ := instr.Desc()
			for oi, od := range desc.Operands {
				switch od.Kind {
				case pcode.OperandRegRead, pcode.OperandRegWrite:
					instr.Operands[oi].Reg.Index = effective[od.Class][instr.Operands[oi].Reg.Index]
				case pcode.OperandRegRangeRead:
					r := instr.Operands[oi].Range
					renamedBase := effective[r.Class][r.Base]
					instr.Operands[oi].Range = pcode.RegRange{Class: r.Class, Base: renamedBase, Count: r.Count}
				}
			}
		}

		b.OExist = make([]bool, total)
		for _, c := range regClasses {
			for i := 0; i < height[c]; i++ {
				b.OExist[effective[c][i]] = true
			}
		}
	}

	return total, offset
}

// countRegisters sums, per class, how many distinct registers the function
// ever holds: v-registers are fixed by declaredVars, the rest grow by one
// for every register a push instruction allocates.
func countRegisters(instructions []pcode.Instruction, declaredVars int) map[ast.RegClass]int {
	counts := map[ast.RegClass]int{ast.RegV: declaredVars}
	for _, instr := range instructions {
		if instr.Mnemonic == "push" {
			class := ast.RegClass(instr.Operands[0].Str)
			counts[class] += int(instr.Operands[1].Int)
		}
	}
	return counts
}
