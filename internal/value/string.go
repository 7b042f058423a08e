package value

// Str is the string substrate described in spec.md §3.2: an immutable byte
// sequence with two internal representations — an inline "ASCII-9" form for
// short strings, and heap "twine" forms (a contiguous flat buffer, or a
// balanced concatenation tree of flat/rope leaves).
//
// The source's original inline representation packs up to nine bytes into a
// single tagged machine word; here each representation is its own small
// struct (per the module's design note: "model each value as a compact
// struct... traits are sum-of-capability tables"). The invariant that
// matters downstream — O(1) equality-by-byte-sequence for short strings, and
// amortized O(log n) concatenation/slicing for long ones — is preserved.
type Str interface {
	Len() int
	str()
}

// inlineThreshold is the ASCII-9 capacity: at most nine bytes fit inline.
const inlineThreshold = 9

// flatThreshold is the point at which a concatenation or slice result stops
// being copied into a flat buffer and becomes a rope node instead. See
// SPEC_FULL.md §C.2.
const flatThreshold = 64

// InlineStr holds up to nine bytes with no heap allocation. Per spec.md
// §9's original encoding, every stored byte is in 0x01..0x7F; a stored
// 0x00 would collide with the "low bit tag" used by the source's packed
// word form, so constructors reject raw zero bytes the same way the
// original's ASCII-9 packer does (returning a flat string instead, handled
// by NewStr below).
type InlineStr struct {
	bytes [inlineThreshold]byte
	n     int
}

func (s InlineStr) Len() int { return s.n }
func (InlineStr) str()       {}

// Bytes returns the inline string's content.
func (s InlineStr) Bytes() []byte { return s.bytes[:s.n] }

// FlatStr is a contiguous heap byte buffer.
type FlatStr struct {
	b []byte
}

func (s *FlatStr) Len() int { return len(s.b) }
func (*FlatStr) str()       {}

// RopeStr is a concatenation-tree inner node. Depth is cached so
// rebalancing can be triggered in O(1) after a concatenation.
type RopeStr struct {
	left, right Str
	length      int
	depth       int
}

func (s *RopeStr) Len() int { return s.length }
func (*RopeStr) str()       {}

func depthOf(s Str) int {
	if r, ok := s.(*RopeStr); ok {
		return r.depth
	}
	return 0
}

// canInlineAllZeroFree reports whether b can be packed into the ASCII-9
// inline form: no more than nine bytes, each in 0x01..0x7F.
func canInlineAllZeroFree(b []byte) bool {
	if len(b) > inlineThreshold {
		return false
	}
	for _, c := range b {
		if c == 0x00 || c > 0x7F {
			return false
		}
	}
	return true
}

// NewStr builds a Str from raw bytes, choosing the smallest representation
// (inline, else flat) that fits.
func NewStr(b []byte) Str {
	if canInlineAllZeroFree(b) {
		var in InlineStr
		copy(in.bytes[:], b)
		in.n = len(b)
		return in
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return &FlatStr{b: cp}
}

// Bytes materializes a Str's full content. Callers on a hot path should
// prefer ChunkIterator to avoid allocating for rope nodes.
func Bytes(s Str) []byte {
	switch v := s.(type) {
	case InlineStr:
		out := make([]byte, v.n)
		copy(out, v.bytes[:v.n])
		return out
	case *FlatStr:
		out := make([]byte, len(v.b))
		copy(out, v.b)
		return out
	case *RopeStr:
		out := make([]byte, 0, v.length)
		var walk func(Str)
		walk = func(n Str) {
			switch t := n.(type) {
			case *RopeStr:
				walk(t.left)
				walk(t.right)
			default:
				out = append(out, Bytes(t)...)
			}
		}
		walk(v)
		return out
	default:
		return nil
	}
}

// Concat implements spec.md §4.1 "Concatenation": combined inline-sized
// results stay inline, combined small results are copied flat, otherwise a
// rope node is built and rebalanced to keep depth within O(log length).
func Concat(a, b Str) Str {
	if a.Len() == 0 {
		return b
	}
	if b.Len() == 0 {
		return a
	}
	total := a.Len() + b.Len()
	if total <= inlineThreshold {
		if ai, aok := a.(InlineStr); aok {
			if bi, bok := b.(InlineStr); bok {
				var out InlineStr
				copy(out.bytes[:ai.n], ai.bytes[:ai.n])
				copy(out.bytes[ai.n:], bi.bytes[:bi.n])
				out.n = total
				return out
			}
		}
	}
	if total <= flatThreshold {
		buf := make([]byte, 0, total)
		buf = append(buf, Bytes(a)...)
		buf = append(buf, Bytes(b)...)
		return NewStr(buf)
	}
	node := &RopeStr{left: a, right: b, length: total, depth: max(depthOf(a), depthOf(b)) + 1}
	return rebalance(node)
}

// rebalance performs an AVL-style rotation when the new node's children
// differ in depth by more than one, keeping rope depth bounded by
// O(log length), per spec.md §3.2's invariant.
func rebalance(n *RopeStr) Str {
	ld, rd := depthOf(n.left), depthOf(n.right)
	if ld-rd > 1 {
		if lr, ok := n.left.(*RopeStr); ok {
			newRight := &RopeStr{left: lr.right, right: n.right, length: lr.right.Len() + n.right.Len(), depth: max(depthOf(lr.right), depthOf(n.right)) + 1}
			return &RopeStr{left: lr.left, right: newRight, length: n.length, depth: max(depthOf(lr.left), newRight.depth) + 1}
		}
	} else if rd-ld > 1 {
		if rr, ok := n.right.(*RopeStr); ok {
			newLeft := &RopeStr{left: n.left, right: rr.left, length: n.left.Len() + rr.left.Len(), depth: max(depthOf(n.left), depthOf(rr.left)) + 1}
			return &RopeStr{left: newLeft, right: rr.right, length: n.length, depth: max(newLeft.depth, depthOf(rr.right)) + 1}
		}
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Slice implements spec.md §4.1 "Slicing": clamps to [0, s.Len()], collapses
// to inline when the result is short, copies flat below the flat threshold,
// and for rope nodes walks the tree rebuilding only boundary subtrees while
// reusing interior subtrees untouched.
func Slice(s Str, begin, end int) Str {
	if begin < 0 {
		begin = 0
	}
	if end > s.Len() {
		end = s.Len()
	}
	if end < begin {
		end = begin
	}
	length := end - begin
	if length == 0 {
		return InlineStr{}
	}
	switch v := s.(type) {
	case InlineStr:
		return NewStr(v.bytes[begin:end])
	case *FlatStr:
		return NewStr(v.b[begin:end])
	case *RopeStr:
		if length <= inlineThreshold || length < flatThreshold {
			return NewStr(Bytes(v)[begin:end])
		}
		leftLen := v.left.Len()
		switch {
		case end <= leftLen:
			return Slice(v.left, begin, end)
		case begin >= leftLen:
			return Slice(v.right, begin-leftLen, end-leftLen)
		default:
			left := Slice(v.left, begin, leftLen)
			right := Slice(v.right, 0, end-leftLen)
			return Concat(left, right)
		}
	default:
		return InlineStr{}
	}
}

// stringChunk is one contiguous byte range yielded by chunk iteration.
type stringChunk struct {
	bytes []byte
}

// chunkIterState walks a rope's leaves left-to-right via an explicit stack,
// the "universal access primitive" of spec.md §4.1.
type chunkIterState struct {
	stack []Str
	done  bool
}

// StringChunkIterator returns an iterator positioned before the first chunk
// of s.
func StringChunkIterator(s Str) *chunkIterState {
	return &chunkIterState{stack: []Str{s}}
}

// IterateStringChunk advances the iterator and returns the next chunk, or
// ok=false when exhausted. Monolithic (inline/flat) strings yield exactly
// once, matching the "singleton iterator" spec.md §4.1 describes for types
// with a naturally monolithic string form.
func IterateStringChunk(it *chunkIterState) (chunk []byte, ok bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		switch v := top.(type) {
		case *RopeStr:
			it.stack = append(it.stack, v.right, v.left)
		case InlineStr:
			if v.n == 0 {
				continue
			}
			return v.Bytes(), true
		case *FlatStr:
			if len(v.b) == 0 {
				continue
			}
			return v.b, true
		}
	}
	return nil, false
}

// Compare implements spec.md §4.1 "Comparison": lexicographic over unsigned
// bytes, chunk-at-a-time so neither operand needs to be fully materialized,
// with a proper prefix ordering first.
func Compare(a, b Str) int {
	ia, ib := StringChunkIterator(a), StringChunkIterator(b)
	var ca, cb []byte
	var oka, okb bool
	for {
		if len(ca) == 0 {
			ca, oka = IterateStringChunk(ia)
		}
		if len(cb) == 0 {
			cb, okb = IterateStringChunk(ib)
		}
		if !oka && !okb {
			return 0
		}
		if !oka {
			return -1
		}
		if !okb {
			return 1
		}
		n := len(ca)
		if len(cb) < n {
			n = len(cb)
		}
		for i := 0; i < n; i++ {
			if ca[i] != cb[i] {
				if ca[i] < cb[i] {
					return -1
				}
				return 1
			}
		}
		ca, cb = ca[n:], cb[n:]
	}
}

// Equal reports strict byte-sequence equality (spec.md §3.1's "strictly
// equal").
func Equal(a, b Str) bool {
	return a.Len() == b.Len() && Compare(a, b) == 0
}
