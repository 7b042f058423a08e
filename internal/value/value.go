// Package value implements the immutable value model and string substrate
// of spec.md §3.1–§3.2 and §4.1: tagged values dispatched through an
// attribute chain, an immutable rope-backed string type, numeric parsing,
// intervals, and ordered lists/maps.
package value

// Trait is a "type trait": a named table of capabilities a Value's
// attribute chain exposes. The source's attribute chain is a linked list of
// C structs with function pointers; here each capability a trait can carry
// is an optional field, and composition (spec.md §9 "attribute-chain
// extension becomes composition of trait tables") is modeled by chaining
// Traits through Next rather than reopening a single big interface.
type Trait struct {
	// Name identifies the trait for diagnostics and the Tag() dispatch.
	Name string
	// ToString stringifies a Value's datum under this trait's
	// interpretation. Every Value must eventually reach a trait that
	// implements this (spec.md §3.1: "any value can be coerced to a
	// string by invoking its type trait's to_string operation").
	ToString func(d Datum) Str
	// Next continues the attribute chain to a broader/fallback trait.
	Next *Trait
}

// Datum is the value's uninterpreted machine word, reinterpretable per
// spec.md §3.1 as a small unsigned integer, small signed integer, raw
// pointer, or inline ASCII-9 string. Go has no safe arbitrary bit
// reinterpretation of pointers, so Datum carries both an integer field and
// an interface{} field; exactly one is meaningful for any given trait,
// mirroring the source's union without unsafe casts.
type Datum struct {
	Int uint64
	Ptr any
}

// IntDatum builds a Datum carrying a small integer (signed or unsigned
// alike — the trait decides how to interpret the bits).
func IntDatum(n int64) Datum { return Datum{Int: uint64(n)} }

// PtrDatum builds a Datum carrying a heap pointer (a *Str, a *List, a
// *OrderedMap, ...).
func PtrDatum(p any) Datum { return Datum{Ptr: p} }

// Value is the immutable 2-word record of spec.md §3.1: a pointer to an
// attribute chain (trait) plus a datum.
type Value struct {
	trait *Trait
	datum Datum
}

// New constructs a Value from a trait and datum.
func New(trait *Trait, datum Datum) Value {
	return Value{trait: trait, datum: datum}
}

// Trait returns the value's primary (first) type trait.
func (v Value) Trait() *Trait { return v.trait }

// Datum returns the value's raw datum.
func (v Value) Datum() Datum { return v.datum }

// GetAttr walks the attribute chain looking for a trait node with the given
// name, per spec.md §3.1 "Dynamic dispatch is by walking the attribute
// chain until the requested attribute tag is found."
func GetAttr(v Value, name string) (*Trait, bool) {
	for t := v.trait; t != nil; t = t.Next {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// ToString coerces v to a string by invoking its primary trait's ToString
// operation, per spec.md §3.1.
func ToString(v Value) Str {
	if v.trait == nil || v.trait.ToString == nil {
		return InlineStr{}
	}
	return v.trait.ToString(v.datum)
}

// StrictEqual implements spec.md §3.1 "strict equality": two values are
// equal iff they stringify to the same byte sequence.
func StrictEqual(a, b Value) bool {
	return Equal(ToString(a), ToString(b))
}

// Hash hashes v by its string form, per spec.md §4.1 ("the substrate for
// to_string, value_hash, and value_strcmp on non-string values").
func Hash(v Value) uint64 {
	return HashStr(ToString(v))
}

// Strcmp compares two values lexicographically by their string forms.
func Strcmp(a, b Value) int {
	return Compare(ToString(a), ToString(b))
}

// StringValueChunkIterator exposes the chunk-iteration substrate (spec.md §4.1)
// at the Value level by stringifying once; types with a monolithic string
// form (i.e. not already a rope) yield a single chunk, matching the
// "singleton iterator" behavior the spec describes for non-string values.
func StringValueChunkIterator(v Value) *chunkIterState {
	return StringChunkIterator(ToString(v))
}

// --- Built-in traits -------------------------------------------------

// StringTrait is the primary trait for values whose datum.Ptr is a Str.
var StringTrait = &Trait{
	Name: "string",
	ToString: func(d Datum) Str {
		if s, ok := d.Ptr.(Str); ok {
			return s
		}
		return InlineStr{}
	},
}

// NewString wraps a Str as a Value under StringTrait.
func NewString(s Str) Value {
	return New(StringTrait, PtrDatum(s))
}
