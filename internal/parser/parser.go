// Package parser implements spec.md §4.2 "Parser": it turns a lexer.Token
// stream into the simplified AST of spec.md §3.3 (units.Unit / units.Statement),
// applying statement-boundary detection, enclosure balancing, L/R string
// regrouping inside semiliterals, `$`-variable simplification, subscript
// desugaring, spread wrapping, and trailing-tag simplification.
package parser

import (
	"github.com/thsfranca/avacore/internal/diagnostics"
	"github.com/thsfranca/avacore/internal/lexer"
	"github.com/thsfranca/avacore/internal/units"
)

// Parser consumes a token stream and builds the simplified AST.
type Parser struct {
	filename string
	source   string
	toks     []lexer.Token
	pos      int
	bag      *diagnostics.Bag
}

// Parse tokenizes and parses source, returning the root Block unit. Parsing
// never aborts on the first diagnostic (spec.md §7): it reports into bag
// and tries to continue.
func Parse(filename, source string, bag *diagnostics.Bag) units.Unit {
	toks := lexer.Tokenize(filename, source, bag)
	p := &Parser{filename: filename, source: source, toks: toks, bag: bag}
	stmts := p.parseStatements(lexer.EOF)
	return units.NewBlock(stmts, p.rootLoc())
}

func (p *Parser) rootLoc() units.Location {
	return units.Location{Filename: p.filename, Source: p.source, StartLine: 1, StartCol: 1}
}

func (p *Parser) cur() lexer.Token  { return p.toks[p.pos] }
func (p *Parser) atEnd() bool       { return p.cur().Kind == lexer.EOF }
func (p *Parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) toLoc(start, end lexer.Position) units.Location {
	return units.Location{
		Filename: p.filename, Source: p.source,
		StartLine: start.Line, StartCol: start.Col, EndLine: end.Line, EndCol: end.Col,
		StartOffset: start.Offset, EndOffset: end.Offset,
	}
}

func (p *Parser) report(code diagnostics.Code, tok lexer.Token, params map[string]any) {
	if p.bag == nil {
		return
	}
	p.bag.Add(diagnostics.New(code, diagnostics.SeverityError, diagnostics.Location{
		Filename: p.filename, Source: p.source,
		StartLine: tok.Start.Line, StartCol: tok.Start.Col,
		EndLine: tok.End.Line, EndCol: tok.End.Col,
		ByteOffset: tok.Start.Offset,
	}, params))
}

// parseStatements implements rule 1 (statement boundaries): newline ends a
// statement; an escaped newline is swallowed as continuation. It reads
// until closer is seen (lexer.RBrace/RParen/RBracket) or EOF.
func (p *Parser) parseStatements(closer lexer.Kind) []units.Statement {
	var stmts []units.Statement
	var cur units.Statement
	flush := func() {
		if len(cur) > 0 {
			stmts = append(stmts, cur)
			cur = nil
		}
	}
	for {
		tok := p.cur()
		switch tok.Kind {
		case lexer.EOF:
			flush()
			return stmts
		case closer:
			if closer != lexer.EOF {
				flush()
				return stmts
			}
		case lexer.Newline:
			p.advance()
			flush()
			continue
		case lexer.EscapedNewline:
			p.advance()
			continue
		case lexer.RParen, lexer.RBrace, lexer.RBracket:
			// A stray closer with no matching opener: report and skip so
			// the parser can keep finding further statements/diagnostics.
			p.report(diagnostics.CodeParseMismatchedClose, tok, map[string]any{"Name": tok.Text})
			p.advance()
			continue
		}
		u, ok := p.parseUnit()
		if ok {
			cur = append(cur, u)
		} else {
			p.advance()
		}
	}
}

// parseUnit parses one primary syntactic unit, applying spread wrapping,
// subscript desugaring, group-tag simplification, and variable
// simplification as they come up.
func (p *Parser) parseUnit() (units.Unit, bool) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.Spread:
		p.advance()
		if p.atEndOfGroupOrInput() {
			p.report(diagnostics.CodeLexDanglingSplat, tok, nil)
			return units.Unit{}, false
		}
		inner, ok := p.parseUnit()
		if !ok {
			p.report(diagnostics.CodeLexDanglingSplat, tok, nil)
			return units.Unit{}, false
		}
		loc := units.Location{
			Filename: p.filename, Source: p.source,
			StartLine: tok.Start.Line, StartCol: tok.Start.Col,
			EndLine: inner.Loc.EndLine, EndCol: inner.Loc.EndCol,
			StartOffset: tok.Start.Offset, EndOffset: inner.Loc.EndOffset,
		}
		return units.NewSpread(inner, loc), true
	case lexer.Expander:
		p.advance()
		return units.NewExpander(tok.Text, p.toLoc(tok.Start, tok.End)), true
	case lexer.Astring, lexer.Lstring, lexer.Rstring, lexer.LRstring:
		p.advance()
		return units.NewQuoted(stringKindFor(tok.Kind), tok.Text, p.toLoc(tok.Start, tok.End)), true
	case lexer.Verbatim:
		p.advance()
		return units.NewQuoted(units.Verbatim, tok.Text, p.toLoc(tok.Start, tok.End)), true
	case lexer.Bareword:
		return p.parseBarewordOrSubscript()
	case lexer.LParen:
		return p.parseEnclosure(lexer.LParen, lexer.RParen, units.Substitution, "#substitution#")
	case lexer.LBracket:
		return p.parseEnclosure(lexer.LBracket, lexer.RBracket, units.Semiliteral, "#semiliteral#")
	case lexer.LBrace:
		return p.parseEnclosure(lexer.LBrace, lexer.RBrace, units.Block, "#block#")
	default:
		p.report(diagnostics.CodeParseUnexpectedToken, tok, map[string]any{"Name": tok.Text})
		return units.Unit{}, false
	}
}

func (p *Parser) atEndOfGroupOrInput() bool {
	switch p.cur().Kind {
	case lexer.EOF, lexer.RParen, lexer.RBracket, lexer.RBrace, lexer.Newline:
		return true
	default:
		return false
	}
}

func stringKindFor(k lexer.Kind) units.Kind {
	switch k {
	case lexer.Astring:
		return units.Astring
	case lexer.Lstring:
		return units.Lstring
	case lexer.Rstring:
		return units.Rstring
	default:
		return units.LRstring
	}
}

// adjacent reports whether b starts exactly where a ends, i.e. no
// whitespace/comment lay between them — the condition subscripts (rule 5)
// and trailing tags (rules 5 and 7) require.
func adjacent(a, b lexer.Token) bool {
	return a.End.Offset == b.Start.Offset
}

// locAdjacentToToken reports whether tok starts exactly where loc ends,
// the same adjacency test as adjacent() but against an already-built
// units.Location instead of a raw token.
func locAdjacentToToken(loc units.Location, tok lexer.Token) bool {
	return loc.EndOffset == tok.Start.Offset
}

// parseBarewordOrSubscript implements rule 4 (variable simplification) and
// rule 5 (subscript desugaring): `foo(...)`, `foo[...]`, `foo{...}`.
func (p *Parser) parseBarewordOrSubscript() (units.Unit, bool) {
	nameTok := p.advance()
	next := p.cur()
	if adjacent(nameTok, next) {
		switch next.Kind {
		case lexer.LParen:
			return p.parseSubscript(nameTok, lexer.LParen, lexer.RParen, "#name-subscript#")
		case lexer.LBracket:
			return p.parseSubscript(nameTok, lexer.LBracket, lexer.RBracket, "#numeric-subscript#")
		case lexer.LBrace:
			return p.parseSubscript(nameTok, lexer.LBrace, lexer.RBrace, "#string-subscript#")
		}
	}
	return p.simplifyVariableBareword(nameTok)
}

// parseSubscript parses `name<open>...<close>[tag]` into a call to the
// named subscript intrinsic, per spec.md §4.2 rule 5. The trailing tag
// bareword is optional and defaults to "##".
func (p *Parser) parseSubscript(nameTok lexer.Token, open, closeKind lexer.Kind, intrinsic string) (units.Unit, bool) {
	openTok := p.advance() // consume opener
	var inner units.Unit
	var ok bool
	switch open {
	case lexer.LParen:
		stmts := p.parseStatements(closeKind)
		inner, ok = p.closeAndWrap(units.Substitution, stmts, nil, openTok, closeKind)
	case lexer.LBracket:
		us := p.parseSemiliteralUnits(closeKind)
		inner, ok = p.closeAndWrap(units.Semiliteral, nil, us, openTok, closeKind)
	default: // lexer.LBrace
		stmts := p.parseStatements(closeKind)
		inner, ok = p.closeAndWrap(units.Block, stmts, nil, openTok, closeKind)
	}
	if !ok {
		return units.Unit{}, false
	}
	tag := "##"
	if bw := p.cur(); bw.Kind == lexer.Bareword && locAdjacentToToken(inner.Loc, bw) {
		tag = bw.Text
		p.advance()
	}
	callLoc := units.Location{
		Filename: p.filename, Source: p.source,
		StartLine: nameTok.Start.Line, StartCol: nameTok.Start.Col,
		EndLine: inner.Loc.EndLine, EndCol: inner.Loc.EndCol,
		StartOffset: nameTok.Start.Offset, EndOffset: inner.Loc.EndOffset,
	}
	stmt := units.Statement{
		units.NewBareword(intrinsic, callLoc),
		units.NewBareword(nameTok.Text, p.toLoc(nameTok.Start, nameTok.End)),
		inner,
		units.NewQuoted(units.Bareword, tag, callLoc),
	}
	return units.NewSubstitution([]units.Statement{stmt}, callLoc), true
}

// parseEnclosure parses an anonymous `(...)`, `[...]`, or `{...}` form and
// applies rule 7 (group-tag simplification) if a bareword immediately
// follows the closer.
func (p *Parser) parseEnclosure(open, closeKind lexer.Kind, kind units.Kind, intrinsic string) (units.Unit, bool) {
	openTok := p.advance()
	var inner units.Unit
	var ok bool
	switch kind {
	case units.Semiliteral:
		us := p.parseSemiliteralUnits(closeKind)
		inner, ok = p.closeAndWrap(kind, nil, us, openTok, closeKind)
	default:
		stmts := p.parseStatements(closeKind)
		inner, ok = p.closeAndWrap(kind, stmts, nil, openTok, closeKind)
	}
	if !ok {
		return units.Unit{}, false
	}
	if bw := p.cur(); bw.Kind == lexer.Bareword && locAdjacentToToken(inner.Loc, bw) {
		tag := bw.Text
		p.advance()
		callLoc := p.toLoc(openTok.Start, bw.End)
		stmt := units.Statement{units.NewBareword(intrinsic+tag, callLoc), inner}
		return units.NewSubstitution([]units.Statement{stmt}, callLoc), true
	}
	return inner, true
}

func (p *Parser) closeAndWrap(kind units.Kind, stmts []units.Statement, us []units.Unit, openTok lexer.Token, closeKind lexer.Kind) (units.Unit, bool) {
	closeTok := p.cur()
	if closeTok.Kind != closeKind {
		p.report(diagnostics.CodeParseUnclosedEnclosed, openTok, map[string]any{"Name": openTok.Text})
		return units.Unit{}, false
	}
	p.advance()
	loc := p.toLoc(openTok.Start, closeTok.End)
	switch kind {
	case units.Substitution:
		return units.NewSubstitution(stmts, loc), true
	case units.Block:
		return units.NewBlock(stmts, loc), true
	default:
		return units.NewSemiliteral(us, loc), true
	}
}

// parseSemiliteralUnits reads the raw unit list inside `[...]` and applies
// the L/R string regrouping of rule 3.
func (p *Parser) parseSemiliteralUnits(closer lexer.Kind) []units.Unit {
	var raw []units.Unit
	for {
		switch p.cur().Kind {
		case lexer.EOF:
			return p.regroup(raw)
		case closer:
			return p.regroup(raw)
		case lexer.Newline, lexer.EscapedNewline:
			p.advance()
			continue
		}
		u, ok := p.parseUnit()
		if ok {
			raw = append(raw, u)
		} else {
			p.advance()
		}
	}
}

// regroup implements rule 3 (string regrouping inside semiliterals): scans
// raw left-to-right for a run that opens with a Bareword or Rstring,
// continues with Barewords, and is terminated by an Lstring/LRstring (an
// "R-bareword*-L" pattern, per spec.md §4.2), and
// fuses each such run into one Substitution whose inner units are the run's
// members with any fused Bareword re-tagged as Verbatim — matching the
// spec's worked example: `[foo `bar" baz]` yields a semiliteral of a
// Substitution(verbatim:foo, lstring:bar) followed by bareword:baz.
func (p *Parser) regroup(raw []units.Unit) []units.Unit {
	var out []units.Unit
	i := 0
	for i < len(raw) {
		u := raw[i]
		if u.Kind.HasLeftContinuation() {
			// A leading Lstring/LRstring with nothing open to its left.
			p.reportAt(diagnostics.CodeParseExprBeforeL, u.Loc, nil)
			out = append(out, u)
			i++
			continue
		}
		if u.Kind == units.Bareword || u.Kind == units.Rstring {
			run := []units.Unit{u}
			j := i + 1
			closed := false
			for j < len(raw) {
				next := raw[j]
				if next.Kind == units.Bareword {
					run = append(run, next)
					j++
					continue
				}
				if next.Kind.HasLeftContinuation() {
					run = append(run, next)
					j++
					closed = true
				}
				break
			}
			if closed && (len(run) > 1 || u.Kind == units.Rstring) {
				out = append(out, fuseRun(run))
				i = j
				continue
			}
			if u.Kind == units.Rstring {
				p.reportAt(diagnostics.CodeParseExprAfterR, u.Loc, nil)
			}
		}
		out = append(out, u)
		i++
	}
	return out
}

// fuseRun builds the Substitution wrapping a closed R-bareword*-L run,
// converting interior Bareword members to Verbatim (they are literal text
// being concatenated with adjacent string fragments, not symbol
// references).
func fuseRun(run []units.Unit) units.Unit {
	stmt := make(units.Statement, len(run))
	for i, u := range run {
		if u.Kind == units.Bareword {
			u.Kind = units.Verbatim
		}
		stmt[i] = u
	}
	loc := run[0].Loc
	loc.EndLine, loc.EndCol, loc.EndOffset = run[len(run)-1].Loc.EndLine, run[len(run)-1].Loc.EndCol, run[len(run)-1].Loc.EndOffset
	return units.NewSubstitution([]units.Statement{stmt}, loc)
}

func (p *Parser) reportAt(code diagnostics.Code, loc units.Location, params map[string]any) {
	if p.bag == nil {
		return
	}
	p.bag.Add(diagnostics.New(code, diagnostics.SeverityError, diagnostics.Location{
		Filename: loc.Filename, Source: loc.Source,
		StartLine: loc.StartLine, StartCol: loc.StartCol, EndLine: loc.EndLine, EndCol: loc.EndCol,
		ByteOffset: loc.StartOffset,
	}, params))
}

// simplifyVariableBareword implements rule 4. A bareword without '$' is
// returned unchanged; otherwise it is rewritten into
// (#string-concat# (#var# seg1) "literal" (#var# seg2) ...), and a lone "$"
// names the context variable.
func (p *Parser) simplifyVariableBareword(tok lexer.Token) (units.Unit, bool) {
	loc := p.toLoc(tok.Start, tok.End)
	if tok.Text == "" {
		return units.NewBareword(tok.Text, loc), true
	}
	if !containsDollar(tok.Text) {
		return units.NewBareword(tok.Text, loc), true
	}
	if tok.Text == "$" {
		stmt := units.Statement{
			units.NewBareword("#var#", loc),
			units.NewQuoted(units.Astring, "$", loc),
		}
		return units.NewSubstitution([]units.Statement{stmt}, loc), true
	}

	segments := splitOnDollar(tok.Text)
	stmt := units.Statement{units.NewBareword("#string-concat#", loc)}
	for i, seg := range segments {
		if i%2 == 0 {
			if seg != "" {
				stmt = append(stmt, units.NewQuoted(units.Astring, seg, loc))
			}
			continue
		}
		if seg == "" {
			p.report(diagnostics.CodeParseEmptyVarName, tok, nil)
		}
		stmt = append(stmt, units.Unit{
			Kind: units.Substitution,
			Loc:  loc,
			Statements: []units.Statement{{
				units.NewBareword("#var#", loc),
				units.NewQuoted(units.Astring, seg, loc),
			}},
		})
	}
	return units.NewSubstitution([]units.Statement{stmt}, loc), true
}

func containsDollar(s string) bool {
	for _, r := range s {
		if r == '$' {
			return true
		}
	}
	return false
}

// splitOnDollar splits s on '$' the way spec.md §4.2 rule 4 requires:
// even indices are literal text, odd indices are variable names.
func splitOnDollar(s string) []string {
	var segments []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '$' {
			segments = append(segments, string(cur))
			cur = nil
			continue
		}
		cur = append(cur, s[i])
	}
	return append(segments, string(cur))
}
