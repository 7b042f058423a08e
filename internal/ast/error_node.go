package ast

import (
	"github.com/thsfranca/avacore/internal/units"
	"github.com/thsfranca/avacore/internal/value"
)

// errorVtable implements to_string, to_lvalue, postprocess and every
// code-gen operation as a no-op, per spec.md §4.3: "to_lvalue and all
// code-gen operations on an error node are no-ops that do not emit
// further diagnostics." The constexpr and funname hooks are left unset, so
// those lookups simply fail; reportMissing stays silent for error nodes,
// so none of them emits a diagnostic either.
var errorVtable = &Vtable{
	Name:        "error",
	ToString:    func(n *Node) value.Str { return value.NewStr(nil) },
	ToLvalue:    func(n *Node, env Env) (Lvalue, bool) { return Lvalue{}, true },
	Postprocess: func(n *Node, env Env) *Node { return n },
	CgSetUp:     func(n *Node, env Env) {},
	CgEvaluate:  func(n *Node, env Env) Reg { return Reg{} },
	CgSpread:    func(n *Node, env Env) []Reg { return nil },
	CgDiscard:   func(n *Node, env Env) {},
	CgForce:     func(n *Node, env Env) {},
	CgDefine:    func(n *Node, env Env, name string) {},
	CgTearDown:  func(n *Node, env Env) {},
}

// NewErrorNode builds an error node at loc. The caller is responsible for
// having already reported the diagnostic that caused it; the node itself
// stays quiet from here on so downstream passes don't cascade.
func NewErrorNode(loc units.Location) *Node {
	return &Node{Vtable: errorVtable, Loc: loc, isError: true}
}

// NewSilentErrorNode builds an error node that was never itself
// diagnosed — produced when macro-substitution panic mode (spec.md §4.3)
// short-circuits expansion after a prior error already explains the
// failure in this context.
func NewSilentErrorNode(loc units.Location) *Node {
	n := NewErrorNode(loc)
	n.silent = true
	return n
}
