package symtab

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Import is a prefix-rewriting rule, per spec.md §3.6: any name with
// NewPrefix can additionally be looked up by substituting in OldPrefix.
type Import struct {
	OldPrefix string
	NewPrefix string
	Strong    bool
}

// scopeData is the mutable map a Scope and all of its import-derived
// siblings share (spec.md §5: "a child symtab scope shares the parent's
// map... modifications to either symtab's map are reflected in the
// other"). A plain push (New) gets an independent scopeData; Import
// reuses the caller's.
type scopeData struct {
	names map[string]*Symbol
}

// Scope is one link in the symbol table's cons-list, per spec.md §3.6: an
// optional parent, a shared mutable name map, and an immutable import
// list.
type Scope struct {
	parent  *Scope
	data    *scopeData
	imports []Import
}

// New creates a scope with an empty, independent name map and the given
// parent — the "push major" operation of spec.md §4.3.
func New(parent *Scope) *Scope {
	return &Scope{parent: parent, data: &scopeData{names: map[string]*Symbol{}}}
}

// Put adds sym to s's name map. If a symbol with the same FullName
// already exists, Put leaves the table unmodified and returns it as
// existing with ok=false — the caller (typically internal/macsub or
// internal/compileenv) is responsible for turning that into a
// CodeSymbolRedefinition diagnostic.
func (s *Scope) Put(sym *Symbol) (existing *Symbol, ok bool) {
	if prior, found := s.data.names[sym.FullName]; found {
		return prior, false
	}
	s.data.names[sym.FullName] = sym
	return nil, true
}

// Names returns every symbol name directly held in s's map (not its
// ancestors), sorted for deterministic diagnostics rendering.
func (s *Scope) Names() []string {
	names := maps.Keys(s.data.names)
	sort.Strings(names)
	return names
}

// Status classifies a Lookup's outcome.
type Status int

const (
	Unbound Status = iota
	Found
	Ambiguous
)

// LookupResult is the outcome of Lookup, per spec.md §4.4: zero results
// is Unbound, one is Found, more than one is Ambiguous (the caller
// decides whether that is an error in its context).
type LookupResult struct {
	Status  Status
	Symbol  *Symbol   // set when Status == Found
	Symbols []*Symbol // set when Status == Ambiguous (len ≥ 2)
}

// Lookup resolves key by the algorithm of spec.md §4.4: from s outward to
// the root, trying the name verbatim and then strong-import and
// weak-import rewrites, stopping at the first scope where any step
// produces a match.
func (s *Scope) Lookup(key string) LookupResult {
	matches := s.search(key, exactMatcher)
	switch len(matches) {
	case 0:
		return LookupResult{Status: Unbound}
	case 1:
		return LookupResult{Status: Found, Symbol: matches[0]}
	default:
		return LookupResult{Status: Ambiguous, Symbols: matches}
	}
}

// Import returns a new Scope with the same parent and name map as s (so
// insertions through either are mutually visible) and the new
// (old_prefix, new_prefix, strong) triple appended to the import list,
// per spec.md §4.4. Unless absolute is true, old_prefix is first
// absolutized by looking it up as a prefix against s's current bindings;
// absolutised and ambiguous mirror the out-parameters of the spec's
// import operation. If the resulting triple already exists in s's import
// list, s itself is returned unchanged (import deduplication).
func (s *Scope) Import(oldPrefix, newPrefix string, absolute, strong bool) (next *Scope, absolutised string, ambiguous string) {
	old := oldPrefix
	if !absolute {
		matches := s.search(oldPrefix, prefixMatcher)
		switch len(matches) {
		case 0:
			// Absolutisation found nothing; old_prefix is used as-is.
		case 1:
			old = matches[0].FullName
			absolutised = old
		default:
			old = matches[0].FullName
			absolutised = old
			ambiguous = matches[1].FullName
		}
	}
	imp := Import{OldPrefix: old, NewPrefix: newPrefix, Strong: strong}
	for _, existing := range s.imports {
		if existing == imp {
			return s, absolutised, ambiguous
		}
	}
	merged := make([]Import, len(s.imports), len(s.imports)+1)
	copy(merged, s.imports)
	merged = append(merged, imp)
	return &Scope{parent: s.parent, data: s.data, imports: merged}, absolutised, ambiguous
}

// matcher looks candidate up against a scope's name map, returning every
// symbol it considers a match.
type matcher func(names map[string]*Symbol, candidate string) []*Symbol

func exactMatcher(names map[string]*Symbol, candidate string) []*Symbol {
	if sym, ok := names[candidate]; ok {
		return []*Symbol{sym}
	}
	return nil
}

// prefixMatcher implements absolutization's relaxed match: any symbol
// whose full name is prefixed by candidate (spec.md §4.4's import
// operation), not just an exact match.
func prefixMatcher(names map[string]*Symbol, candidate string) []*Symbol {
	var out []*Symbol
	for full, sym := range names {
		if strings.HasPrefix(full, candidate) {
			out = append(out, sym)
		}
	}
	return out
}

// search walks from s outward applying the spec.md §4.4 lookup algorithm,
// substituting m for the "full_name == k" test so the same traversal
// serves both Lookup (exact) and Import's absolutization (prefix).
func (s *Scope) search(key string, m matcher) []*Symbol {
	for scope := s; scope != nil; scope = scope.parent {
		var matches []*Symbol
		for _, strong := range [2]bool{true, false} {
			matches = dedupe(m(scope.data.names, key))
			for _, imp := range scope.imports {
				if imp.Strong != strong || !strings.HasPrefix(key, imp.NewPrefix) {
					continue
				}
				rewritten := imp.OldPrefix + key[len(imp.NewPrefix):]
				matches = dedupe(append(matches, m(scope.data.names, rewritten)...))
			}
			if strong && len(matches) > 0 {
				return matches
			}
		}
		if len(matches) > 0 {
			return matches
		}
	}
	return nil
}

func dedupe(in []*Symbol) []*Symbol {
	if len(in) < 2 {
		return in
	}
	seen := make(map[*Symbol]bool, len(in))
	out := in[:0]
	for _, sym := range in {
		if !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	return out
}
