package diagnostics

// catalog maps a Code to a message template. Templates may reference
// Params by name using "{Name}"; renderFromCatalog performs the
// substitution.
var catalog = map[Code]string{
	CodeFormatInteger:  "'{Input}' is not a valid integer literal",
	CodeFormatReal:     "'{Input}' is not a valid real literal",
	CodeFormatInterval: "'{Input}' is not a valid interval literal",
	CodeFormatMap:      "'{Input}' is not a valid map literal",

	CodeLexIllegalChar:   "illegal character",
	CodeLexUnterminated:  "unterminated token",
	CodeLexEmptyVarName:  "empty variable name",
	CodeLexDanglingSplat: "dangling spread operator",

	CodeParseUnexpectedToken:  "unexpected token",
	CodeParseUnclosedEnclosed: "unclosed enclosure",
	CodeParseMismatchedClose:  "mismatched closing delimiter",
	CodeParseExprBeforeL:      "expression before L-",
	CodeParseExprAfterR:       "expression after R-",
	CodeParseEmptyVarName:     "empty variable name",

	CodeMacsubAmbiguousSymbol: "ambiguous macro symbol '{Name}'",
	CodeMacsubMissingExpander: "unresolved expander '{Name}'",
	CodeMacsubArity:           "macro '{Name}' called with the wrong number of arguments",
	CodeMacsubNoOperation:     "semantic node does not implement '{Operation}'",
	CodeMacsubPanic:           "expansion aborted after a prior error in this context",

	CodeSymbolRedefinition:   "redefinition of '{Name}'",
	CodeSymbolAssignReadonly: "assignment to readonly or closed variable '{Name}'",
	CodeSymbolUnbound:        "unbound symbol '{Name}'",
	CodeSymbolAmbiguous:      "ambiguous symbol '{Name}'",

	CodeXcodeDuplicateLabel: "duplicate label '{Name}'",
	CodeXcodeRegNXAccess:    "register {Class}{Index} does not exist",
	CodeXcodeUnbalancedPush: "unbalanced push/pop of class {Class}",
	CodeXcodeJumpNXLabel:    "jump to unknown label '{Name}'",
	CodeXcodeUninitReg:      "use of possibly-uninitialized {Class}{Index}",
	CodeXcodeBadCrossRef:    "invalid cross-reference to global {Index}",
	CodeXcodeArityMismatch:  "call site passes {Got} arguments, callee declares {Expected}",
	CodeXcodeUnknownMnemonic: "unknown instruction mnemonic '{Name}'",
	CodeXcodeMalformedText:   "malformed P-code text: {Reason}",

	CodeIOCannotReadSource: "cannot read module source for '{Name}'",
	CodeIOCyclicDependency: "cyclic dependency on '{Name}'",
}

func templateFor(c Code) (string, bool) {
	t, ok := catalog[c]
	return t, ok
}
