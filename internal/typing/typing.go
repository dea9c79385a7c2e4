// Package typing implements the FJ typing judgement Γ ⊢ t : C, plus the
// method and class well-formedness judgements it is built on, as an
// algorithmic, syntax-directed type synthesis over a validated class
// table.
package typing

import (
	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
)

// Gamma is the typing context: a finite mapping from variable name to
// class name, fresh per method.
type Gamma map[ast.FieldName]ast.ClassName

// Checker synthesizes types against a fixed class table, accumulating
// stupid-cast warnings as it goes. A Checker is not safe for concurrent
// use; construct one per type-checking run.
type Checker struct {
	CT       *classtable.Table
	Warnings []*Warning
}

// NewChecker returns a Checker bound to ct.
func NewChecker(ct *classtable.Table) *Checker {
	return &Checker{CT: ct}
}

func (c *Checker) warnStupidCast(from, to ast.ClassName, t ast.Term) {
	c.Warnings = append(c.Warnings, &Warning{Kind: StupidCast, From: from, To: to, Pos: t.Pos()})
}

// TypeOfTerm synthesizes the principal type of t under gamma, applying
// T-Var, T-Field, T-Invk, T-New, and the three disjoint cast rules.
func (c *Checker) TypeOfTerm(gamma Gamma, t ast.Term) (ast.ClassName, *Error) {
	switch term := t.(type) {
	case *ast.Variable:
		return c.typeOfVariable(gamma, term)
	case *ast.FieldAccess:
		return c.typeOfFieldAccess(gamma, term)
	case *ast.MethodCall:
		return c.typeOfMethodCall(gamma, term)
	case *ast.NewCall:
		return c.typeOfNewCall(gamma, term)
	case *ast.Cast:
		return c.typeOfCast(gamma, term)
	default:
		return "", &Error{Kind: InvalidTerm, Term: t, Pos: t.Pos()}
	}
}

// T-Var.
func (c *Checker) typeOfVariable(gamma Gamma, v *ast.Variable) (ast.ClassName, *Error) {
	ty, ok := gamma[v.Name]
	if !ok {
		return "", &Error{Kind: VariableNotInGamma, Variable: v.Name, Pos: v.Pos()}
	}
	return ty, nil
}

// T-Field.
func (c *Checker) typeOfFieldAccess(gamma Gamma, fa *ast.FieldAccess) (ast.ClassName, *Error) {
	c0, err := c.TypeOfTerm(gamma, fa.Object)
	if err != nil {
		return "", err
	}
	fields, ok := c.CT.Fields(c0)
	if !ok {
		return "", &Error{Kind: UndefinedClass, Class: c0, Pos: fa.Pos()}
	}
	for _, f := range fields {
		if f.Name == fa.Field {
			return f.Type, nil
		}
	}
	return "", &Error{Kind: UndefinedField, Class: c0, Field: fa.Field, Pos: fa.Pos()}
}

// T-Invk.
func (c *Checker) typeOfMethodCall(gamma Gamma, mc *ast.MethodCall) (ast.ClassName, *Error) {
	c0, err := c.TypeOfTerm(gamma, mc.Object)
	if err != nil {
		return "", err
	}
	argTypes, retType, ok := c.CT.MType(mc.Method, c0)
	if !ok {
		return "", &Error{Kind: UndefinedMethod, Class: c0, Method: mc.Method, Pos: mc.Pos()}
	}
	if len(argTypes) != len(mc.Args) {
		return "", &Error{Kind: MethodArgumentNotSubtype, Method: mc.Method, Class: c0, Pos: mc.Pos()}
	}
	for i, argTerm := range mc.Args {
		actual, err := c.TypeOfTerm(gamma, argTerm)
		if err != nil {
			return "", err
		}
		ok, defined := c.CT.IsSubtype(actual, argTypes[i])
		if !defined {
			return "", &Error{Kind: UndefinedClass, Class: actual, Pos: argTerm.Pos()}
		}
		if !ok {
			return "", &Error{Kind: MethodArgumentNotSubtype, Actual: actual, Declared: argTypes[i], Method: mc.Method, Pos: argTerm.Pos()}
		}
	}
	return retType, nil
}

// T-New.
func (c *Checker) typeOfNewCall(gamma Gamma, nc *ast.NewCall) (ast.ClassName, *Error) {
	fields, ok := c.CT.Fields(nc.Class)
	if !ok {
		return "", &Error{Kind: UndefinedClass, Class: nc.Class, Pos: nc.Pos()}
	}
	if len(fields) != len(nc.Args) {
		return "", &Error{Kind: ConstructorArgumentNotSubtype, Class: nc.Class, Pos: nc.Pos()}
	}
	for i, argTerm := range nc.Args {
		actual, err := c.TypeOfTerm(gamma, argTerm)
		if err != nil {
			return "", err
		}
		ok, defined := c.CT.IsSubtype(actual, fields[i].Type)
		if !defined {
			return "", &Error{Kind: UndefinedClass, Class: actual, Pos: argTerm.Pos()}
		}
		if !ok {
			return "", &Error{Kind: ConstructorArgumentNotSubtype, Actual: actual, Declared: fields[i].Type, Class: nc.Class, Pos: argTerm.Pos()}
		}
	}
	return nc.Class, nil
}

// T-UpCast, T-DownCast, T-StupidCast. The three are disjoint and
// exhaustive over defined classes: exactly one of upRel, downRel-and-
// distinct, or neither holds.
func (c *Checker) typeOfCast(gamma Gamma, ca *ast.Cast) (ast.ClassName, *Error) {
	d, err := c.TypeOfTerm(gamma, ca.Term)
	if err != nil {
		return "", err
	}
	if !c.CT.IsDefined(ca.To) {
		return "", &Error{Kind: UndefinedClass, Class: ca.To, Pos: ca.Pos()}
	}

	upRel, _ := c.CT.IsSubtype(d, ca.To)
	if upRel {
		return ca.To, nil
	}

	downRel, _ := c.CT.IsSubtype(ca.To, d)
	if downRel && ca.To != d {
		return ca.To, nil
	}

	if !downRel {
		c.warnStupidCast(d, ca.To, ca)
		return ca.To, nil
	}

	// upRel false, downRel true, but ca.To == d: unreachable because
	// upRel covers the reflexive case (X <: X).
	return "", &Error{Kind: InvalidCast, Actual: d, Declared: ca.To, Pos: ca.Pos()}
}

// CheckMethod implements M OK IN C: the method's body must type under
// {this: C, x̄: D̄} to a subtype of its declared return type, and if the
// superclass defines a method of the same name, the signatures must be
// identical (no covariant overriding in FJ).
func (c *Checker) CheckMethod(cd *ast.ClassDefinition, md *ast.MethodDefinition) *Error {
	gamma := Gamma{ast.This: cd.Name}
	for _, a := range md.Args {
		gamma[a.Name] = a.Type
	}

	if !c.CT.IsDefined(md.ReturnType) {
		return &Error{Kind: UndefinedReturnType, Method: md.Name, Class: cd.Name, Declared: md.ReturnType, Pos: md.Pos()}
	}

	bodyType, err := c.TypeOfTerm(gamma, md.Body)
	if err != nil {
		return err
	}
	ok, defined := c.CT.IsSubtype(bodyType, md.ReturnType)
	if !defined {
		return &Error{Kind: UndefinedClass, Class: bodyType, Pos: md.Pos()}
	}
	if !ok {
		return &Error{Kind: ReturnTypeNotSubtype, Method: md.Name, Class: cd.Name, Actual: bodyType, Declared: md.ReturnType, Pos: md.Pos()}
	}

	super, _ := c.CT.Super(cd.Name)
	if superArgTypes, superRet, ok := c.CT.MType(md.Name, super); ok {
		if superRet != md.ReturnType || !sameArgTypes(superArgTypes, md.Args) {
			return &Error{Kind: IncorrectMethodOverride, Method: md.Name, Class: cd.Name, Pos: md.Pos()}
		}
	}

	return nil
}

func sameArgTypes(types []ast.ClassName, args []ast.Field) bool {
	if len(types) != len(args) {
		return false
	}
	for i, ty := range types {
		if ty != args[i].Type {
			return false
		}
	}
	return true
}

// CheckClass implements C OK: its constructor has the canonical shape
// (already enforced by classtable.Build) and every method is OK IN C.
func (c *Checker) CheckClass(cd *ast.ClassDefinition) *Error {
	for _, md := range cd.Methods {
		if err := c.CheckMethod(cd, md); err != nil {
			return err
		}
	}
	return nil
}

// CheckProgram implements program well-formedness: every class is OK.
func (c *Checker) CheckProgram(prog *ast.Ast) *Error {
	for _, cd := range prog.Classes {
		if err := c.CheckClass(cd); err != nil {
			return err
		}
	}
	return nil
}
