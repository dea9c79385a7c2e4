package classtable

import (
	"fmt"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// Kind classifies one of the class-table well-formedness violations of
// spec.md §3. Construction aborts at the first violation encountered.
// The library-wide checks come first (a class named Object, a class
// defined twice, an undefined supertype, a cyclic supertype); then each
// class in lexicographic order is checked in full (its fields, its method
// names and method arguments, then its constructor) before the next one,
// so the reported violation is not always the earliest-listed invariant.
type Kind int

const (
	ClassNamedObject Kind = iota
	ClassDefinedTwice
	SupertypeUndefined
	CyclicSupertype
	IncorrectConstructorName
	IncorrectConstructorInit
	IncorrectConstructorSuperCall
	NonUniqueFields
	NonUniqueMethodNames
	FieldNamedThis
	ConstructorArgumentNamedThis
	NonUniqueMethodArgumentNames
	MethodArgumentNamedThis
)

// Error is the disjoint ClassTableError taxonomy of spec.md §7. Exactly
// one Kind is populated per Error; the Class/Method/Detail fields carry
// whatever context that kind needs.
type Error struct {
	Kind   Kind
	Class  ast.ClassName
	Method ast.MethodName
	Detail string
	Pos    lexer.Position
}

func (e *Error) Position() lexer.Position { return e.Pos }

func (e *Error) Error() string {
	switch e.Kind {
	case ClassNamedObject:
		return "class may not be named \"Object\""
	case ClassDefinedTwice:
		return fmt.Sprintf("class %q is defined more than once", e.Class)
	case SupertypeUndefined:
		return fmt.Sprintf("class %q extends undefined class %q", e.Class, e.Detail)
	case CyclicSupertype:
		return fmt.Sprintf("class %q has a cyclic superclass chain", e.Class)
	case IncorrectConstructorName:
		return fmt.Sprintf("class %q has a constructor named %q, expected %q", e.Class, e.Detail, e.Class)
	case IncorrectConstructorInit:
		return fmt.Sprintf("constructor of class %q does not assign exactly its declared fields", e.Class)
	case IncorrectConstructorSuperCall:
		return fmt.Sprintf("constructor of class %q does not pass its inherited fields to super() in order", e.Class)
	case NonUniqueFields:
		return fmt.Sprintf("class %q declares a field name more than once", e.Class)
	case NonUniqueMethodNames:
		return fmt.Sprintf("class %q declares a method name more than once", e.Class)
	case FieldNamedThis:
		return fmt.Sprintf("class %q declares a field named \"this\"", e.Class)
	case ConstructorArgumentNamedThis:
		return fmt.Sprintf("constructor of class %q has an argument named \"this\"", e.Class)
	case NonUniqueMethodArgumentNames:
		return fmt.Sprintf("method %q of class %q declares an argument name more than once", e.Method, e.Class)
	case MethodArgumentNamedThis:
		return fmt.Sprintf("method %q of class %q has an argument named \"this\"", e.Method, e.Class)
	default:
		return "unknown class table error"
	}
}
