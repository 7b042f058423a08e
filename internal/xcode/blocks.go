package xcode

import (
	"strconv"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/pcode"
)

// identifyBlocks is pass 1: split fn's body into basic blocks at labels and
// after terminators, track each class's register-stack height across the
// whole body to catch out-of-range register accesses, and check that every
// class but v returns to height zero by the end of the function.
func identifyBlocks(fn *pcode.Function, filename string, bag *diagnostics.Bag) ([]Block, map[ast.RegClass]int, bool) {
	height := map[ast.RegClass]int{ast.RegV: fn.NumVars}
	total := map[ast.RegClass]int{ast.RegV: fn.NumVars}
	labelToBlock := map[string]int{}

	var blocks []Block
	blockStart := 0
	nextStartsBlock := true
	ok := true

	for idx, instr := range fn.Body {
		loc := diagnostics.Location{Filename: filename, StartLine: instr.SourceLine, EndLine: instr.SourceLine}

		if instr.Mnemonic == "label" {
			name := instr.Operands[0].Str
			if _, dup := labelToBlock[name]; dup {
				bag.Add(diagnostics.New(diagnostics.CodeXcodeDuplicateLabel, diagnostics.SeverityError, loc, map[string]any{"Name": name}))
				return nil, nil, false
			}
			nextStartsBlock = true
		}

		if nextStartsBlock && idx > 0 {
			blocks = append(blocks, Block{Start: blockStart, End: idx})
			blockStart = idx
		}
		if instr.Mnemonic == "label" {
			labelToBlock[instr.Operands[0].Str] = len(blocks)
		}
		nextStartsBlock = false

		desc, known := instr.Desc()
		if !known {
			bag.Add(diagnostics.New(diagnostics.CodeXcodeUnknownMnemonic, diagnostics.SeverityError, loc, map[string]any{"Name": instr.Mnemonic}))
			return nil, nil, false
		}

		switch instr.Mnemonic {
		case "push":
			class := ast.RegClass(instr.Operands[0].Str)
			count := int(instr.Operands[1].Int)
			height[class] += count
			total[class] += count
		case "pop":
			class := ast.RegClass(instr.Operands[0].Str)
			count := int(instr.Operands[1].Int)
			if count > height[class] {
				bag.Add(diagnostics.New(diagnostics.CodeXcodeUnbalancedPush, diagnostics.SeverityError, loc, map[string]any{"Class": string(class)}))
				ok = false
			}
			height[class] -= count
		}

		for i, od := range desc.Operands {
			op := instr.Operands[i]
			switch od.Kind {
			case pcode.OperandRegRead, pcode.OperandRegWrite:
				if op.Reg.Index >= height[od.Class] {
					bag.Add(diagnostics.New(diagnostics.CodeXcodeRegNXAccess, diagnostics.SeverityError, loc,
						map[string]any{"Class": string(od.Class), "Index": op.Reg.Index}))
					ok = false
				}
			case pcode.OperandRegRangeRead:
				if op.Range.Base+op.Range.Count > height[op.Range.Class] {
					bag.Add(diagnostics.New(diagnostics.CodeXcodeRegNXAccess, diagnostics.SeverityError, loc,
						map[string]any{"Class": string(op.Range.Class), "Index": op.Range.Base}))
					ok = false
				}
			}
		}

		if desc.Terminates {
			nextStartsBlock = true
		}
	}

	blocks = append(blocks, Block{Start: blockStart, End: len(fn.Body)})
	for _, c := range regClasses {
		if c == ast.RegV {
			continue
		}
		if height[c] != 0 {
			bag.Add(diagnostics.New(diagnostics.CodeXcodeUnbalancedPush, diagnostics.SeverityError, diagnostics.Location{Filename: filename},
				map[string]any{"Class": string(c)}))
			ok = false
		}
	}
	if !ok {
		return nil, nil, false
	}

	for name, ix := range labelToBlock {
		blocks[ix].Label = name
	}
	return blocks, total, true
}

// linkBlocks is pass 2: resolve each block's terminator's jump target
// (a label name) to a block index, and compute both possible successors —
// the jump target and, for a conditional terminator or a fallthrough, the
// next block in program order.
func linkBlocks(blocks []Block, instructions []pcode.Instruction, labelToBlock map[string]int, filename string, bag *diagnostics.Bag) bool {
	ok := true
	for i := range blocks {
		b := &blocks[i]
		last := instructions[b.End-1]
		desc, _ := last.Desc()

		if !desc.Terminates {
			b.Next[0] = nextOrEnd(i, len(blocks))
			b.Next[1] = -1
			continue
		}

		if desc.JumpOperand >= 0 {
			target := last.Operands[desc.JumpOperand].Label
			ix, found := labelToBlock[target]
			if !found {
				bag.Add(diagnostics.New(diagnostics.CodeXcodeJumpNXLabel, diagnostics.SeverityError,
					diagnostics.Location{Filename: filename, StartLine: last.SourceLine, EndLine: last.SourceLine},
					map[string]any{"Name": target}))
				ok = false
				continue
			}
			instructions[b.End-1].SetJumpTarget(strconv.Itoa(ix))
			b.Next[0] = ix
		} else {
			b.Next[0] = -1
		}

		if desc.Conditional {
			b.Next[1] = nextOrEnd(i, len(blocks))
		} else {
			b.Next[1] = -1
		}
	}
	return ok
}

func nextOrEnd(i, n int) int {
	if i+1 < n {
		return i + 1
	}
	return -1
}

func labelIndex(blocks []Block) map[string]int {
	m := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b.Label != "" {
			m[b.Label] = i
		}
	}
	return m
}
