// Package xcode implements spec.md §3.9/§4.6: turning a validated
// pcode.Program into X-code — P-code restructured into basic blocks with
// globally-renamed registers and a verified flow graph — by running the
// five passes a function body goes through (block identification and
// liveness, flow-graph linking, register renaming, phi initialization and
// propagation, and use-before-init checking), followed by pass 6, a
// program-wide cross-reference validation pass over the globals table.
//
// Grounded closely on
// original_source/src/runtime/pcode-validation.c's ava_xcode_from_pcode and
// its helpers; register classes map 1:1 onto that file's "vdilpf" order.
package xcode

import (
	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/pcode"
)

// regClasses is the canonical class order used wherever classes are
// iterated, matching the original's "vdilpf" enumeration.
var regClasses = [...]ast.RegClass{ast.RegV, ast.RegD, ast.RegI, ast.RegL, ast.RegP, ast.RegF}

// Block is one basic block of a structured function: a contiguous run of
// instructions from the original body, plus the successor block indices
// pass 2 resolves (-1 meaning "falls off the end of the function").
type Block struct {
	Label      string
	Start, End int // [Start, End) indices into Function.Instructions
	Next       [2]int

	// Per-class existence/init bitsets, indexed by the register's globally
	// renamed index (pass 3 assigns these; see rename.go).
	IExist, OExist []bool
	IInit, OInit   []bool
	Effect         []bool
}

// Function is a pcode.Function restructured into basic blocks with
// globally-unique register names, ready for pass 4/5/6 validation.
type Function struct {
	Source       *pcode.Function
	Instructions []pcode.Instruction
	Blocks       []Block
	TotalRegs    int
	// RegOffset[c] is the first globally-renamed index for class c.
	RegOffset map[ast.RegClass]int
}
