package value

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// EndSentinel marks "one past the last element" for a singular interval
// endpoint, per spec.md §4.1 "Interval".
const EndSentinel = int64(-1) << 62

// Interval is a compact range type used for indexing: a singular interval
// is one integer (possibly EndSentinel or negative-from-end); a range
// interval is two such integers separated by '~' with either side
// defaultable. Source describes a compact 32-bit form and a wide heap form;
// here a single struct suffices since Go int64 already covers the compact
// case without a second representation.
type Interval struct {
	HasBegin bool
	Begin    int64
	HasEnd   bool
	End      int64
}

// clampIndex resolves a possibly-negative, possibly-sentinel endpoint
// against a concrete length, using an ordered integer type so both the
// int64-based Interval and any narrower register-index types share the
// same resolution logic (SPEC_FULL.md §B wires golang.org/x/exp/constraints
// here).
func clampIndex[T constraints.Integer](raw T, length T, isEnd bool) T {
	switch {
	case int64(raw) == EndSentinel:
		return length
	case raw < 0:
		resolved := length + raw
		if resolved < 0 {
			return 0
		}
		return resolved
	default:
		if raw > length {
			return length
		}
		return raw
	}
}

// Resolve turns the interval into a concrete half-open [begin, end) range
// against the given length, applying defaults (begin defaults to 0, end
// defaults to EndSentinel/length).
func (iv Interval) Resolve(length int64) (begin, end int64) {
	b := iv.Begin
	if !iv.HasBegin {
		b = 0
	}
	e := iv.End
	if !iv.HasEnd {
		e = EndSentinel
	}
	begin = clampIndex(b, length, false)
	end = clampIndex(e, length, true)
	if end < begin {
		end = begin
	}
	return begin, end
}

// ParseInterval parses the textual interval form: a single integer, or
// "begin~end" with either side omittable, per spec.md §4.1.
func ParseInterval(s string) (Interval, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Interval{}, ErrFormat
	}
	if !strings.Contains(trimmed, "~") {
		n, err := parseEndpoint(trimmed)
		if err != nil {
			return Interval{}, ErrFormat
		}
		return Interval{HasBegin: true, Begin: n}, nil
	}
	parts := strings.SplitN(trimmed, "~", 2)
	iv := Interval{}
	if b := strings.TrimSpace(parts[0]); b != "" {
		n, err := parseEndpoint(b)
		if err != nil {
			return Interval{}, ErrFormat
		}
		iv.HasBegin = true
		iv.Begin = n
	}
	if e := strings.TrimSpace(parts[1]); e != "" {
		n, err := parseEndpoint(e)
		if err != nil {
			return Interval{}, ErrFormat
		}
		iv.HasEnd = true
		iv.End = n
	}
	return iv, nil
}

func parseEndpoint(s string) (int64, error) {
	if s == "$" || strings.EqualFold(s, "end") {
		return EndSentinel, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// String renders the interval back to its textual form; round-tripping
// through ParseInterval must be byte-equal per spec.md §8 invariant 1.
func (iv Interval) String() string {
	if iv.HasBegin && !iv.HasEnd {
		return formatEndpoint(iv.Begin)
	}
	var b strings.Builder
	if iv.HasBegin {
		b.WriteString(formatEndpoint(iv.Begin))
	}
	b.WriteByte('~')
	if iv.HasEnd {
		b.WriteString(formatEndpoint(iv.End))
	}
	return b.String()
}

func formatEndpoint(n int64) string {
	if n == EndSentinel {
		return "$"
	}
	return fmt.Sprintf("%d", n)
}
