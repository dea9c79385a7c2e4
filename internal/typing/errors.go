package typing

import (
	"fmt"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// Kind classifies one of the TypingError cases of spec.md §7.
type Kind int

const (
	InvalidClass Kind = iota
	InvalidMethod
	InvalidTerm
	UndefinedClass
	UndefinedMethod
	UndefinedField
	IncorrectMethodOverride
	InvalidCast
	ConstructorArgumentNotSubtype
	MethodArgumentNotSubtype
	VariableNotInGamma
	UndefinedReturnType
	ReturnTypeNotSubtype
)

// Error is the disjoint TypingError taxonomy. Exactly one Kind is
// populated per Error.
type Error struct {
	Kind     Kind
	Class    ast.ClassName
	Method   ast.MethodName
	Field    ast.FieldName
	Variable ast.FieldName
	Actual   ast.ClassName
	Declared ast.ClassName
	Term     ast.Term
	Pos      lexer.Position
}

func (e *Error) Position() lexer.Position { return e.Pos }

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidClass:
		return fmt.Sprintf("class %q is not well-formed", e.Class)
	case InvalidMethod:
		return fmt.Sprintf("method %q of class %q is not well-formed", e.Method, e.Class)
	case InvalidTerm:
		return fmt.Sprintf("term %q is not well-typed", e.Term.String())
	case UndefinedClass:
		return fmt.Sprintf("undefined class %q", e.Class)
	case UndefinedMethod:
		return fmt.Sprintf("class %q has no method %q", e.Class, e.Method)
	case UndefinedField:
		return fmt.Sprintf("class %q has no field %q", e.Class, e.Field)
	case IncorrectMethodOverride:
		return fmt.Sprintf("method %q of class %q does not match its overridden signature", e.Method, e.Class)
	case InvalidCast:
		return fmt.Sprintf("internal error: no cast rule applies from %q to %q", e.Actual, e.Declared)
	case ConstructorArgumentNotSubtype:
		return fmt.Sprintf("constructor argument of type %q is not a subtype of declared type %q in class %q", e.Actual, e.Declared, e.Class)
	case MethodArgumentNotSubtype:
		return fmt.Sprintf("argument of type %q is not a subtype of declared type %q in call to %q", e.Actual, e.Declared, e.Method)
	case VariableNotInGamma:
		return fmt.Sprintf("variable %q is not in scope", e.Variable)
	case UndefinedReturnType:
		return fmt.Sprintf("method %q of class %q declares undefined return type %q", e.Method, e.Class, e.Declared)
	case ReturnTypeNotSubtype:
		return fmt.Sprintf("method %q of class %q returns %q, which is not a subtype of declared return type %q", e.Method, e.Class, e.Actual, e.Declared)
	default:
		return "unknown typing error"
	}
}

// WarningKind classifies a non-fatal typing diagnostic. Stupid casts are
// the only kind spec.md defines, but the type keeps the door open.
type WarningKind int

const StupidCast WarningKind = iota

// Warning is a non-fatal diagnostic collected alongside a successful
// type synthesis — surfaced to the caller but never aborts checking.
type Warning struct {
	Kind WarningKind
	From ast.ClassName
	To   ast.ClassName
	Pos  lexer.Position
}

func (w *Warning) Position() lexer.Position { return w.Pos }

func (w *Warning) Error() string {
	return fmt.Sprintf("stupid cast: %q and %q are unrelated by subtyping", w.From, w.To)
}
