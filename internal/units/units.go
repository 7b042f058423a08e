// Package units implements the simplified AST of spec.md §3.3: parse units
// and statements produced by the lexer/parser stage, before macro
// substitution turns them into semantic AST nodes.
package units

// Kind tags a Unit's variant, per spec.md §3.3's table.
type Kind int

const (
	Bareword Kind = iota
	Astring
	Lstring
	Rstring
	LRstring
	Verbatim
	Substitution
	Block
	Semiliteral
	Expander
	Spread
)

func (k Kind) String() string {
	switch k {
	case Bareword:
		return "bareword"
	case Astring:
		return "astring"
	case Lstring:
		return "lstring"
	case Rstring:
		return "rstring"
	case LRstring:
		return "lrstring"
	case Verbatim:
		return "verbatim"
	case Substitution:
		return "substitution"
	case Block:
		return "block"
	case Semiliteral:
		return "semiliteral"
	case Expander:
		return "expander"
	case Spread:
		return "spread"
	default:
		return "unknown"
	}
}

// Location is a parse unit's source span, per spec.md §3.3: filename,
// start/end line/column, byte offset, and a reference to the source text
// for diagnostics rendering.
type Location struct {
	Filename          string
	Source            string
	StartLine, StartCol int
	EndLine, EndCol     int
	StartOffset, EndOffset int
}

// Unit is a tagged parse unit (spec.md §3.3). Exactly the fields relevant
// to Kind are meaningful:
//   - Bareword/Astring/Lstring/Rstring/LRstring/Verbatim/Expander: Text
//   - Substitution/Block: Statements
//   - Semiliteral: Units
//   - Spread: Inner
type Unit struct {
	Kind       Kind
	Loc        Location
	Text       string
	Statements []Statement
	Units      []Unit
	Inner      *Unit
}

// Statement is an ordered, non-empty list of units (spec.md §3.3).
type Statement []Unit

// NewBareword constructs a bareword unit.
func NewBareword(text string, loc Location) Unit {
	return Unit{Kind: Bareword, Text: text, Loc: loc}
}

// NewQuoted constructs an astring/lstring/rstring/lrstring/verbatim unit.
func NewQuoted(kind Kind, text string, loc Location) Unit {
	return Unit{Kind: kind, Text: text, Loc: loc}
}

// NewSubstitution constructs a substitution unit wrapping statements.
func NewSubstitution(stmts []Statement, loc Location) Unit {
	return Unit{Kind: Substitution, Statements: stmts, Loc: loc}
}

// NewBlock constructs a block unit wrapping statements.
func NewBlock(stmts []Statement, loc Location) Unit {
	return Unit{Kind: Block, Statements: stmts, Loc: loc}
}

// NewSemiliteral constructs a semiliteral unit wrapping units.
func NewSemiliteral(units []Unit, loc Location) Unit {
	return Unit{Kind: Semiliteral, Units: units, Loc: loc}
}

// NewExpander constructs an expander unit naming an expander macro.
func NewExpander(name string, loc Location) Unit {
	return Unit{Kind: Expander, Text: name, Loc: loc}
}

// NewSpread wraps inner in a spread unit (spec.md §4.2 rule 6, `\*x`).
func NewSpread(inner Unit, loc Location) Unit {
	return Unit{Kind: Spread, Inner: &inner, Loc: loc}
}

// IsStringLike reports whether k is one of the quote-continuation string
// kinds participating in L/R-string regrouping (spec.md §4.2 rule 3).
func (k Kind) IsStringLike() bool {
	switch k {
	case Astring, Lstring, Rstring, LRstring:
		return true
	default:
		return false
	}
}

// HasLeftContinuation reports whether k continues to the left (L or LR
// string): it must be preceded by a bareword.
func (k Kind) HasLeftContinuation() bool {
	return k == Lstring || k == LRstring
}

// HasRightContinuation reports whether k continues to the right (R or LR
// string): it must be followed by a bareword.
func (k Kind) HasRightContinuation() bool {
	return k == Rstring || k == LRstring
}
