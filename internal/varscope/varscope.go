// Package varscope implements spec.md §3.7/§4.5: per-function closure
// tracking — owned locals, captured (referenced-but-not-owned) symbols,
// and the scope-reference graph that propagates captures transitively to
// every scope that can reach them.
package varscope

import "github.com/thsfranca/avacore/internal/symtab"

// Scope is one function's (or block's) varscope, per spec.md §3.7.
type Scope struct {
	owned    []*symtab.Symbol
	captures []*symtab.Symbol
	refs     []*Scope
}

// Graph owns a set of Scopes and the capture-propagation pass over their
// reference edges. Propagation is run as an explicit step (Propagate)
// rather than eagerly inside RefScope, because a capture added to a
// target scope *after* an edge to it was recorded must still flow along
// that edge — exactly the fixed-point work-list spec.md §4.5 describes.
type Graph struct {
	scopes []*Scope
}

// NewGraph returns an empty scope graph for one compilation unit (or one
// function nest, depending on the caller's granularity).
func NewGraph() *Graph {
	return &Graph{}
}

// NewScope creates a varscope owned by g, so it participates in g's
// Propagate pass.
func (g *Graph) NewScope() *Scope {
	s := &Scope{}
	g.scopes = append(g.scopes, s)
	return s
}

// PutLocal records sym as owned by s, in insertion order.
func (s *Scope) PutLocal(sym *symtab.Symbol) {
	if !s.isOwned(sym) {
		s.owned = append(s.owned, sym)
	}
}

// RefVar records a reference to sym from within s. If sym isn't owned by
// s, it becomes a capture (unless already one).
func (s *Scope) RefVar(sym *symtab.Symbol) {
	if s.isOwned(sym) || s.hasCapture(sym) {
		return
	}
	s.captures = append(s.captures, sym)
}

// RefScope records that s references to (e.g. a nested function body
// referencing its enclosing scope). Captures to has now, or gains later,
// propagate to s during Graph.Propagate.
func (s *Scope) RefScope(to *Scope) {
	for _, existing := range s.refs {
		if existing == to {
			return
		}
	}
	s.refs = append(s.refs, to)
}

// Propagate runs the capture-propagation work-list to a fixed point:
// repeatedly, for every scope-reference edge s -> to, any capture to
// carries that s neither owns nor already captures is added to s. Call
// this once all PutLocal/RefVar/RefScope calls for the unit under
// analysis are done, before GetIndex is used to assign register indices.
func (g *Graph) Propagate() {
	for changed := true; changed; {
		changed = false
		for _, s := range g.scopes {
			for _, to := range s.refs {
				for _, cap := range to.captures {
					if !s.isOwned(cap) && !s.hasCapture(cap) {
						s.captures = append(s.captures, cap)
						changed = true
					}
				}
			}
		}
	}
}

// GetIndex returns sym's register index within s: captures occupy the
// low indices (in insertion order), then owned locals (in insertion
// order) — so a scope with no captures has locals starting at 0, and
// every capture added shifts subsequent local indices up by one.
func (s *Scope) GetIndex(sym *symtab.Symbol) (int, bool) {
	for i, c := range s.captures {
		if c == sym {
			return i, true
		}
	}
	for i, o := range s.owned {
		if o == sym {
			return len(s.captures) + i, true
		}
	}
	return 0, false
}

// Owned returns s's owned locals, in insertion order.
func (s *Scope) Owned() []*symtab.Symbol { return s.owned }

// Captures returns s's captured symbols, in insertion order.
func (s *Scope) Captures() []*symtab.Symbol { return s.captures }

func (s *Scope) isOwned(sym *symtab.Symbol) bool {
	for _, o := range s.owned {
		if o == sym {
			return true
		}
	}
	return false
}

func (s *Scope) hasCapture(sym *symtab.Symbol) bool {
	for _, c := range s.captures {
		if c == sym {
			return true
		}
	}
	return false
}
