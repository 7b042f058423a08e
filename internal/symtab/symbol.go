// Package symtab implements spec.md §3.5/§3.6/§4.4: symbols, the
// cons-list-of-scopes symbol table, and its strong/weak-import lookup
// algorithm.
package symtab

// Kind is a symbol's category, per spec.md §3.5.
type Kind int

const (
	GlobalVariable Kind = iota
	LocalVariable
	GlobalFunction
	LocalFunction
	ControlMacro
	FunctionMacro
	OperatorMacro
	ExpanderMacro
)

func (k Kind) String() string {
	switch k {
	case GlobalVariable:
		return "global-variable"
	case LocalVariable:
		return "local-variable"
	case GlobalFunction:
		return "global-function"
	case LocalFunction:
		return "local-function"
	case ControlMacro:
		return "control-macro"
	case FunctionMacro:
		return "function-macro"
	case OperatorMacro:
		return "operator-macro"
	case ExpanderMacro:
		return "expander-macro"
	default:
		return "unknown"
	}
}

// IsMacro reports whether k is one of the three macro kinds that
// participate in macro-candidate selection (spec.md §4.3); expander
// macros are resolved separately, during the expander pre-pass.
func (k Kind) IsMacro() bool {
	switch k {
	case ControlMacro, FunctionMacro, OperatorMacro:
		return true
	default:
		return false
	}
}

// Visibility is a symbol's export scope, per spec.md §3.5.
type Visibility int

const (
	Private Visibility = iota
	Internal
	Public
)

// VariablePayload is the kind-specific payload of a *Variable symbol.
type VariablePayload struct {
	Readonly bool
	// Closed marks a captured variable whose binding has been finalized;
	// later assignment attempts are a `CodeSymbolAssignReadonly` error
	// (spec.md §7), same as Readonly.
	Closed bool
}

// MacroPayload is the kind-specific payload of a macro symbol. Substitute
// is declared `any` rather than a concrete function type to avoid an
// import cycle: internal/macsub depends on internal/symtab to look symbols
// up, so the substitution callback's concrete signature
// (`macsub.SubstituteFunc`) has to live in macsub and be type-asserted
// back out of this opaque field when a macro candidate is invoked.
type MacroPayload struct {
	Precedence int
	Substitute any
	Userdata   any
}

// Symbol is an entry in a symbol table, per spec.md §3.5. Immutable once
// published into a Scope via Put.
type Symbol struct {
	Kind       Kind
	Level      int
	Visibility Visibility
	FullName   string
	Payload    any // *VariablePayload or *MacroPayload, depending on Kind
}
