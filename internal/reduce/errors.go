package reduce

import (
	"fmt"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// Kind classifies one of the EvalError cases of spec.md §7.
type Kind int

const (
	// CastFailed is the only runtime error a well-typed closed program
	// may raise: a downcast whose receiver's runtime class is not
	// actually a subtype of the cast target.
	CastFailed Kind = iota
	// Stuck marks a non-value term with no applicable redex — a
	// correctness bug, since progress guarantees this cannot happen to
	// a well-typed term.
	Stuck
	UndefinedClass
	UndefinedMethod
	UndefinedField
	ConstructorArgNotFound
)

// Error is the disjoint EvalError taxonomy.
type Error struct {
	Kind   Kind
	From   ast.ClassName
	To     ast.ClassName
	Class  ast.ClassName
	Method ast.MethodName
	Field  ast.FieldName
	Index  int
	Term   ast.Term
	Pos    lexer.Position
}

func (e *Error) Position() lexer.Position { return e.Pos }

func (e *Error) Error() string {
	switch e.Kind {
	case CastFailed:
		return fmt.Sprintf("cast failed: %q is not a subtype of %q", e.From, e.To)
	case Stuck:
		return fmt.Sprintf("stuck: no reduction rule applies to %q", e.Term.String())
	case UndefinedClass:
		return fmt.Sprintf("undefined class %q", e.Class)
	case UndefinedMethod:
		return fmt.Sprintf("class %q has no method %q", e.Class, e.Method)
	case UndefinedField:
		return fmt.Sprintf("class %q has no field %q", e.Class, e.Field)
	case ConstructorArgNotFound:
		return fmt.Sprintf("constructor argument %d not found for class %q", e.Index, e.Class)
	default:
		return "unknown evaluation error"
	}
}
