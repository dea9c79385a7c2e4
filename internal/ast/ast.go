// Package ast defines the Abstract Syntax Tree node types for Featherweight
// Java: class declarations and the five term forms terms are built from.
// Every node is immutable once constructed and owns its children outright —
// there is no sharing and no back-edges, so the tree can be walked by plain
// structural recursion.
package ast

import (
	"fmt"
	"strings"
)

// ClassName, FieldName, and MethodName are distinct string domains so that
// a class name can never be passed where a field or method name is
// expected, even though all three are plain identifiers at the syntax
// level.
type ClassName string

// FieldName is an identifier naming a field or a variable (including the
// special name "this").
type FieldName string

// MethodName is an identifier naming a method.
type MethodName string

// ObjectClass is the implicit root of the class hierarchy. It is never a
// key in a ClassTable; in an Ast it appears as a superclass or type name,
// and a class declared with this name is rejected by classtable.Build.
const ObjectClass ClassName = "Object"

// This is the reserved variable name bound to the receiver inside a method
// body.
const This FieldName = "this"

// Ast is an FJ class library: an ordered sequence of class declarations.
// Order is preserved for diagnostics (e.g. class-table construction
// reports the first offending declaration) but has no bearing on the
// semantics of any class or term.
type Ast struct {
	Classes []*ClassDefinition
}

// String renders every class declaration in source order, separated by
// blank lines — used by the CLI driver's --dump-ast diagnostic mode.
func (a *Ast) String() string {
	parts := make([]string, len(a.Classes))
	for i, cd := range a.Classes {
		parts[i] = cd.String()
	}
	return strings.Join(parts, "\n\n")
}

// Field pairs a declared type with a field name, used both for field
// declarations and for constructor/method argument lists.
type Field struct {
	Type ClassName
	Name FieldName
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s", f.Type, f.Name)
}
