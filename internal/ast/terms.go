package ast

import (
	"strings"

	"github.com/XOSplicer/featherweight-java/internal/lexer"
)

// Term is the tagged union of FJ's five expression forms. Every
// implementation owns its sub-terms outright (no sharing, no back-edges),
// so a Term can be walked, copied, or substituted into by plain structural
// recursion.
type Term interface {
	String() string
	Pos() lexer.Position
	termNode()
}

// Variable references a bound name — a method argument, or the special
// name "this" referring to the receiver.
type Variable struct {
	Name     FieldName
	Position lexer.Position
}

func (*Variable) termNode()            {}
func (v *Variable) Pos() lexer.Position { return v.Position }
func (v *Variable) String() string {
	return string(v.Name)
}

// FieldAccess is `t.f`.
type FieldAccess struct {
	Object   Term
	Field    FieldName
	Position lexer.Position
}

func (*FieldAccess) termNode()            {}
func (fa *FieldAccess) Pos() lexer.Position { return fa.Position }
func (fa *FieldAccess) String() string {
	return fa.Object.String() + "." + string(fa.Field)
}

// MethodCall is `t.m(args...)`.
type MethodCall struct {
	Object   Term
	Method   MethodName
	Args     []Term
	Position lexer.Position
}

func (*MethodCall) termNode()            {}
func (mc *MethodCall) Pos() lexer.Position { return mc.Position }
func (mc *MethodCall) String() string {
	var sb strings.Builder
	sb.WriteString(mc.Object.String())
	sb.WriteString(".")
	sb.WriteString(string(mc.Method))
	sb.WriteString("(")
	for i, a := range mc.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// NewCall is `new C(args...)`.
type NewCall struct {
	Class    ClassName
	Args     []Term
	Position lexer.Position
}

func (*NewCall) termNode()            {}
func (nc *NewCall) Pos() lexer.Position { return nc.Position }
func (nc *NewCall) String() string {
	var sb strings.Builder
	sb.WriteString("new ")
	sb.WriteString(string(nc.Class))
	sb.WriteString("(")
	for i, a := range nc.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Cast is `(C) t`.
type Cast struct {
	To       ClassName
	Term     Term
	Position lexer.Position
}

func (*Cast) termNode()            {}
func (c *Cast) Pos() lexer.Position { return c.Position }
func (c *Cast) String() string {
	return "(" + string(c.To) + ") " + c.Term.String()
}

// IsValue reports whether t is a value: new C(v1, ..., vn) where every vi
// is itself a value.
func IsValue(t Term) bool {
	nc, ok := t.(*NewCall)
	if !ok {
		return false
	}
	for _, a := range nc.Args {
		if !IsValue(a) {
			return false
		}
	}
	return true
}
