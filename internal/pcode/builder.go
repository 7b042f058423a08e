package pcode

import (
	"fmt"

	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
)

// Builder implements ast.Env (spec.md §4.6's register-allocation and
// instruction-emission machinery that ast stays decoupled from): a
// per-function register stack, one per class, plus the flat P-code
// instruction stream pass 1 later structures into basic blocks.
type Builder struct {
	bag        *diagnostics.Bag
	height     map[ast.RegClass]int
	maxV       int
	varNames   []string
	instrs     []Instruction
	labelNum   int
	sourceLine int
}

// NewBuilder returns a Builder ready to code-generate one function body.
// numVars is the function's declared v-register count (its persistent
// local slots, known ahead of time from varscope's Owned() count);
// varNames optionally names them, in index order, for internal/xcode
// pass 5's named-variable diagnostic.
func NewBuilder(bag *diagnostics.Bag, numVars int, varNames []string) *Builder {
	return &Builder{
		bag:      bag,
		height:   map[ast.RegClass]int{ast.RegV: numVars},
		maxV:     numVars,
		varNames: varNames,
	}
}

// Diagnostics returns the shared diagnostics sink.
func (b *Builder) Diagnostics() *diagnostics.Bag { return b.bag }

// SetSourceLine records the source line attributed to instructions
// emitted from here on, mirroring a GlobalSourcePos marker's effect on
// internal/xcode's diagnostic locations (spec.md §4.6 pass 6).
func (b *Builder) SetSourceLine(line int) { b.sourceLine = line }

// Push reserves n fresh registers of class (a stack-discipline push, per
// spec.md §3.8) and returns the index of the first one. It also emits the
// "push" instruction itself: pass 1 and pass 3 of internal/xcode both
// read push/pop as ordinary instructions in the flat stream, not as
// Builder-private bookkeeping.
func (b *Builder) Push(class ast.RegClass, n int) int {
	base := b.height[class]
	b.height[class] += n
	if class == ast.RegV && b.height[class] > b.maxV {
		b.maxV = b.height[class]
	}
	b.Emit("push", string(class), n)
	return base
}

// Pop releases the most recently pushed n registers of class.
func (b *Builder) Pop(class ast.RegClass, n int) {
	b.height[class] -= n
	b.Emit("pop", string(class), n)
}

// Emit appends one P-code instruction, validating operands against
// mnemonic's schema entry (internal/pcode.Schema) and converting each
// supplied Go value to the Operand shape its slot expects. An unknown
// mnemonic or operand-count mismatch reports CodeXcodeUnknownMnemonic /
// CodeXcodeMalformedText and emits nothing, rather than building an
// instruction internal/xcode cannot structure.
func (b *Builder) Emit(mnemonic string, operands ...any) {
	desc, ok := Lookup(mnemonic)
	if !ok {
		b.bag.Add(diagnostics.New(diagnostics.CodeXcodeUnknownMnemonic, diagnostics.SeverityError,
			diagnostics.Location{StartLine: b.sourceLine, EndLine: b.sourceLine}, map[string]any{"Name": mnemonic}))
		return
	}
	if len(operands) != len(desc.Operands) {
		b.bag.Add(diagnostics.New(diagnostics.CodeXcodeMalformedText, diagnostics.SeverityError,
			diagnostics.Location{StartLine: b.sourceLine, EndLine: b.sourceLine},
			map[string]any{"Reason": fmt.Sprintf("%s expects %d operands, got %d", mnemonic, len(desc.Operands), len(operands))}))
		return
	}

	ops := make([]Operand, len(desc.Operands))
	for i, od := range desc.Operands {
		switch od.Kind {
		case OperandInt:
			ops[i] = Operand{Int: toInt64(operands[i])}
		case OperandString:
			ops[i] = Operand{Str: operands[i].(string)}
		case OperandLabel:
			ops[i] = Operand{Label: operands[i].(string)}
		case OperandRegRead, OperandRegWrite:
			ops[i] = Operand{Reg: ast.Reg{Class: od.Class, Index: toIndex(operands[i])}}
		case OperandRegRangeRead:
			r := operands[i].(RegRange)
			ops[i] = Operand{Range: RegRange{Class: od.Class, Base: r.Base, Count: r.Count}}
		}
	}
	b.instrs = append(b.instrs, Instruction{Mnemonic: mnemonic, Operands: ops, SourceLine: b.sourceLine})
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}

func toIndex(v any) int {
	switch r := v.(type) {
	case int:
		return r
	case ast.Reg:
		return r.Index
	default:
		return 0
	}
}

// NewLabel returns a fresh, function-unique label name.
func (b *Builder) NewLabel() string {
	b.labelNum++
	return fmt.Sprintf("L%d", b.labelNum)
}

// Label marks the current instruction position with name.
func (b *Builder) Label(name string) {
	b.Emit("label", name)
}

// Function finishes code generation for this body, returning the
// assembled pcode.Function: numArgs declared v-registers at the front are
// the function's bound arguments (pass 4's phi seeding relies on this),
// followed by the rest of the declared locals.
func (b *Builder) Function(numArgs int) *Function {
	return &Function{
		NumArgs:  numArgs,
		NumVars:  b.maxV,
		VarNames: b.varNames,
		Body:     b.instrs,
	}
}

var _ ast.Env = (*Builder)(nil)
