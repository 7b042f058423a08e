package compileenv

import (
	"github.com/thsfranca/avacore/internal/ast"
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/units"
)

// newRootVtable backs the single synthetic node compile_file's step 4/5
// (spec.md §6.1) runs macro substitution and postprocess over: a plain
// ordered sequence of the file's top-level statement nodes, with no
// to_string/to_lvalue/constexpr behavior of its own — only the two
// operations compile_file actually calls on the root (postprocess, then
// cg_force to run every top-level statement's side effects in program
// order). It's built fresh per node (rather than shared) so Postprocess,
// which the ast.Vtable shape gives no bag parameter, can still close over
// the compile's diagnostics bag for any child whose own Postprocess falls
// through to the missing-operation report.
func newRootVtable(bag *diagnostics.Bag) *ast.Vtable {
	return &ast.Vtable{
		Name: "root-block",
		Postprocess: func(n *ast.Node, env ast.Env) *ast.Node {
			children := n.Data.([]*ast.Node)
			out := make([]*ast.Node, len(children))
			for i, c := range children {
				out[i] = c.Postprocess(env, bag)
			}
			n.Data = out
			return n
		},
		CgForce: func(n *ast.Node, env ast.Env) {
			for _, c := range n.Data.([]*ast.Node) {
				c.CgForce(env, env.Diagnostics())
			}
		},
	}
}

// newRootNode wraps children (one node per top-level statement, in source
// order) as the single root node compile_file threads through
// postprocess and code generation.
func newRootNode(loc units.Location, children []*ast.Node, bag *diagnostics.Bag) *ast.Node {
	return ast.New(newRootVtable(bag), loc, children)
}
