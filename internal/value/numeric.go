package value

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrFormat is returned by the try-parse helpers below; callers at the
// macsub/codegen boundary convert it into a diagnostics.Diagnostic with a
// source location attached (SPEC_FULL.md §A.1).
var ErrFormat = errors.New("value: invalid format")

var truthyWords = map[string]bool{"true": true, "on": true, "yes": true}
var falseyWords = map[string]bool{"false": true, "off": true, "no": true, "null": true}

// integerPattern matches spec.md §4.1's integer string form:
// (true|false|on|off|yes|no|null) | [+-]?(0?b[01]+|0?o[0-7]+|0?x[0-9a-f]+|[0-9]+)
// case-insensitively, with surrounding whitespace trimmed by the caller.
var integerPattern = regexp.MustCompile(`(?i)^[+-]?(0?b[01]+|0?o[0-7]+|0?x[0-9a-f]+|[0-9]+)$`)

const maxIntegerLiteralLen = 65

// fastIntegerPattern is the inline-friendly fast path: pure decimal digits,
// optionally negative, short enough to have been an ASCII-9 inline string.
var fastIntegerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// ParseInteger implements spec.md §4.1's integer string form. Overflow
// beyond the 64-bit unsigned range is a format error; overflow into the
// opposite sign (a value representable in 64 bits unsigned but not signed)
// is accepted, per the Open Question in spec.md §9 — this module preserves
// that behavior literally rather than rejecting it, documented here rather
// than fixed, as instructed.
func ParseInteger(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, ErrFormat
	}
	if len(trimmed) > maxIntegerLiteralLen {
		return 0, ErrFormat
	}
	lower := strings.ToLower(trimmed)
	if truthyWords[lower] {
		return 1, nil
	}
	if falseyWords[lower] {
		return 0, nil
	}
	if !integerPattern.MatchString(trimmed) {
		return 0, ErrFormat
	}

	neg := false
	body := trimmed
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}

	var u uint64
	var err error
	switch {
	case hasRadixPrefix(body, "0b"), hasRadixPrefix(body, "b"):
		u, err = strconv.ParseUint(stripRadixPrefix(body, "0b", "b"), 2, 64)
	case hasRadixPrefix(body, "0o"), hasRadixPrefix(body, "o"):
		u, err = strconv.ParseUint(stripRadixPrefix(body, "0o", "o"), 8, 64)
	case hasRadixPrefix(body, "0x"), hasRadixPrefix(body, "x"):
		u, err = strconv.ParseUint(stripRadixPrefix(body, "0x", "x"), 16, 64)
	default:
		u, err = strconv.ParseUint(body, 10, 64)
	}
	if err != nil {
		return 0, ErrFormat
	}

	// Reinterpret the unsigned 64-bit pattern as signed: this is the
	// deliberate "accept sign overflow" behavior from spec.md §9.
	signed := int64(u)
	if neg {
		signed = -signed
	}
	return signed, nil
}

func hasRadixPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func stripRadixPrefix(s string, prefixes ...string) string {
	for _, p := range prefixes {
		if hasRadixPrefix(s, p) {
			return s[len(p):]
		}
	}
	return s
}

// IsFastIntegerLiteral reports whether s is the pure-decimal fast path
// spec.md §4.1 calls out for inline-representable inputs.
func IsFastIntegerLiteral(s string) bool {
	return len(s) <= inlineThreshold && fastIntegerPattern.MatchString(s)
}

// ParseReal implements spec.md §4.1's real string form: whatever Go's
// strconv.ParseFloat (standing in for the contrib strtod) accepts, plus
// case-insensitive NaN/Infinity/-Infinity, comma as a decimal separator,
// and a fallback to ParseInteger on failure. An empty (whitespace-only)
// input returns the caller-supplied default rather than an error.
func ParseReal(s string, emptyDefault float64) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return emptyDefault, nil
	}
	normalized := strings.Replace(trimmed, ",", ".", 1)
	if f, err := strconv.ParseFloat(normalized, 64); err == nil {
		return f, nil
	}
	switch strings.ToLower(trimmed) {
	case "nan":
		return math.NaN(), nil
	case "infinity", "+infinity":
		return math.Inf(1), nil
	case "-infinity":
		return math.Inf(-1), nil
	}
	if i, err := ParseInteger(trimmed); err == nil {
		return float64(i), nil
	}
	return 0, ErrFormat
}
