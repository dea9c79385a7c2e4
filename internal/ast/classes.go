package ast

import (
	"strings"

	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// ClassDefinition is a single `class C extends D { ... }` declaration.
//
// FJ syntax:
//
//	class C extends D {
//	  D1 f1; D2 f2;
//	  C(D1 f1, D2 f2) { super(); this.f1 = f1; this.f2 = f2; }
//	  D3 m(D4 x) { return x; }
//	}
type ClassDefinition struct {
	Name        ClassName
	Super       ClassName
	Fields      []Field
	Constructor *Constructor
	Methods     []*MethodDefinition
	Position    lexer.Position
}

// Pos returns the position of the "class" keyword that introduced this
// declaration.
func (cd *ClassDefinition) Pos() lexer.Position { return cd.Position }

func (cd *ClassDefinition) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(string(cd.Name))
	sb.WriteString(" extends ")
	sb.WriteString(string(cd.Super))
	sb.WriteString(" {\n")
	for _, f := range cd.Fields {
		sb.WriteString("  ")
		sb.WriteString(f.String())
		sb.WriteString(";\n")
	}
	if cd.Constructor != nil {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(cd.Constructor.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	for _, m := range cd.Methods {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Constructor is the canonical FJ constructor: its arguments are the
// inherited fields followed by the declared fields, its body is a single
// super call naming the inherited field values followed by one
// this.f = f assignment per declared field.
type Constructor struct {
	Name      ClassName
	Args      []Field
	SuperCall []FieldName
	Assigns   []Assignment
	Position  lexer.Position
}

// Pos returns the position of the constructor name.
func (c *Constructor) Pos() lexer.Position { return c.Position }

// Assignment is one `this.field = arg;` line in a constructor body.
type Assignment struct {
	Field FieldName
	Arg   FieldName
}

func (c *Constructor) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Name))
	sb.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(") {\n")
	sb.WriteString("  super(")
	for i, f := range c.SuperCall {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(f))
	}
	sb.WriteString(");\n")
	for _, a := range c.Assigns {
		sb.WriteString("  this.")
		sb.WriteString(string(a.Field))
		sb.WriteString(" = ")
		sb.WriteString(string(a.Arg))
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// MethodDefinition is a single method: `D m(D1 x1, ...) { return t; }`.
// FJ has no statements, so the body is always exactly one return
// expression.
type MethodDefinition struct {
	ReturnType ClassName
	Name       MethodName
	Args       []Field
	Body       Term
	Position   lexer.Position
}

// Pos returns the position of the method's return-type token.
func (m *MethodDefinition) Pos() lexer.Position { return m.Position }

func (m *MethodDefinition) String() string {
	var sb strings.Builder
	sb.WriteString(string(m.ReturnType))
	sb.WriteString(" ")
	sb.WriteString(string(m.Name))
	sb.WriteString("(")
	for i, a := range m.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(") {\n  return ")
	sb.WriteString(m.Body.String())
	sb.WriteString(";\n}")
	return sb.String()
}
