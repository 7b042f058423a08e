// Package diagnostics provides the structured compile-error representation
// shared by every stage of the front-end (lexer, parser, macro substitution,
// symbol table, and the P-code/X-code validator).
package diagnostics

// Code is a stable numeric diagnostic identifier, e.g. "C5057". Codes are
// grouped by family in blocks of 1000, with two exceptions: symbol-table
// errors share the 4000 block from 4501 on, and the lexer's dangling-spread
// error keeps the fixed code C5057.
type Code string

const (
	// 1000s: format errors (value parsing).
	CodeFormatInteger  Code = "C1001"
	CodeFormatReal     Code = "C1002"
	CodeFormatInterval Code = "C1003"
	CodeFormatMap      Code = "C1004"

	// 2000s: lexer errors.
	CodeLexIllegalChar   Code = "C2001"
	CodeLexUnterminated  Code = "C2002"
	CodeLexEmptyVarName  Code = "C2003"
	CodeLexDanglingSplat Code = "C5057"

	// 3000s: parser errors.
	CodeParseUnexpectedToken  Code = "C3001"
	CodeParseUnclosedEnclosed Code = "C3002"
	CodeParseMismatchedClose  Code = "C3003"
	CodeParseExprBeforeL      Code = "C3004"
	CodeParseExprAfterR       Code = "C3005"
	CodeParseEmptyVarName     Code = "C3006"

	// 4000s: macro substitution errors.
	CodeMacsubAmbiguousSymbol Code = "C4001"
	CodeMacsubMissingExpander Code = "C4002"
	CodeMacsubArity           Code = "C4003"
	CodeMacsubNoOperation     Code = "C4004"
	CodeMacsubPanic           Code = "C4005"

	// 4500s: symbol table errors.
	CodeSymbolRedefinition  Code = "C4501"
	CodeSymbolAssignReadonly Code = "C4502"
	CodeSymbolUnbound       Code = "C4503"
	CodeSymbolAmbiguous     Code = "C4504"

	// 5000s: X-code / P-code validation errors.
	CodeXcodeDuplicateLabel  Code = "C5001"
	CodeXcodeRegNXAccess     Code = "C5002"
	CodeXcodeUnbalancedPush  Code = "C5003"
	CodeXcodeJumpNXLabel     Code = "C5004"
	CodeXcodeUninitReg       Code = "C5005"
	CodeXcodeBadCrossRef     Code = "C5006"
	CodeXcodeArityMismatch   Code = "C5007"
	CodeXcodeUnknownMnemonic Code = "C5008"
	CodeXcodeMalformedText   Code = "C5009"

	// 6000s: I/O / driver errors.
	CodeIOCannotReadSource Code = "C6001"
	CodeIOCyclicDependency Code = "C6002"
)
