// Package reduce implements FJ's small-step, call-by-value, deterministic
// reduction relation t → t' and its reflexive-transitive closure t →* v,
// over a validated class table.
package reduce

import (
	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
)

// Step performs one reduction following the fixed congruence order of
// spec.md §4.3 (left to right: t.f, then t.m(ē) receiver-then-args, then
// new C(ē) args, then (C) t). ok is false, with a nil error, when t is
// already a value. EvalFull stops at a value before calling Step, and
// reports a Stuck error if Step ever returns ok == false.
func Step(ct *classtable.Table, t ast.Term) (ast.Term, bool, *Error) {
	switch term := t.(type) {
	case *ast.NewCall:
		return stepNewCall(ct, term)
	case *ast.FieldAccess:
		return stepFieldAccess(ct, term)
	case *ast.MethodCall:
		return stepMethodCall(ct, term)
	case *ast.Cast:
		return stepCast(ct, term)
	default:
		// Variable never reduces on its own: a closed, well-typed term
		// never contains a free variable once it reaches Step, since
		// every binder (method parameters, this) is eliminated by
		// substitution at the call site before the body is reduced.
		return nil, false, &Error{Kind: Stuck, Term: t, Pos: t.Pos()}
	}
}

// EvalFull repeatedly applies Step until a value is reached or a
// CastFailed error is raised. It does not impose a step bound.
func EvalFull(ct *classtable.Table, t ast.Term) (ast.Term, *Error) {
	cur := t
	for !ast.IsValue(cur) {
		next, ok, err := Step(ct, cur)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &Error{Kind: Stuck, Term: cur, Pos: cur.Pos()}
		}
		cur = next
	}
	return cur, nil
}

func stepNewCall(ct *classtable.Table, nc *ast.NewCall) (ast.Term, bool, *Error) {
	for i, a := range nc.Args {
		if ast.IsValue(a) {
			continue
		}
		stepped, ok, err := Step(ct, a)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &Error{Kind: Stuck, Term: nc, Pos: nc.Pos()}
		}
		newArgs := append([]ast.Term(nil), nc.Args...)
		newArgs[i] = stepped
		return &ast.NewCall{Class: nc.Class, Args: newArgs, Position: nc.Position}, true, nil
	}
	// new C(v̄) with every argument already a value: this is a value,
	// not a redex.
	return nil, false, nil
}

func stepFieldAccess(ct *classtable.Table, fa *ast.FieldAccess) (ast.Term, bool, *Error) {
	if !ast.IsValue(fa.Object) {
		stepped, ok, err := Step(ct, fa.Object)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &Error{Kind: Stuck, Term: fa, Pos: fa.Pos()}
		}
		return &ast.FieldAccess{Object: stepped, Field: fa.Field, Position: fa.Position}, true, nil
	}

	// E-ProjNew
	nc := fa.Object.(*ast.NewCall)
	fields, ok := ct.Fields(nc.Class)
	if !ok {
		return nil, false, &Error{Kind: UndefinedClass, Class: nc.Class, Pos: fa.Pos()}
	}
	for i, f := range fields {
		if f.Name != fa.Field {
			continue
		}
		if i >= len(nc.Args) {
			return nil, false, &Error{Kind: ConstructorArgNotFound, Index: i, Class: nc.Class, Pos: fa.Pos()}
		}
		return nc.Args[i], true, nil
	}
	return nil, false, &Error{Kind: UndefinedField, Class: nc.Class, Field: fa.Field, Pos: fa.Pos()}
}

func stepMethodCall(ct *classtable.Table, mc *ast.MethodCall) (ast.Term, bool, *Error) {
	if !ast.IsValue(mc.Object) {
		stepped, ok, err := Step(ct, mc.Object)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &Error{Kind: Stuck, Term: mc, Pos: mc.Pos()}
		}
		return &ast.MethodCall{Object: stepped, Method: mc.Method, Args: mc.Args, Position: mc.Position}, true, nil
	}

	for i, a := range mc.Args {
		if ast.IsValue(a) {
			continue
		}
		stepped, ok, err := Step(ct, a)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &Error{Kind: Stuck, Term: mc, Pos: mc.Pos()}
		}
		newArgs := append([]ast.Term(nil), mc.Args...)
		newArgs[i] = stepped
		return &ast.MethodCall{Object: mc.Object, Method: mc.Method, Args: newArgs, Position: mc.Position}, true, nil
	}

	// E-InvkNew
	nc := mc.Object.(*ast.NewCall)
	argNames, body, ok := ct.MBody(mc.Method, nc.Class)
	if !ok {
		return nil, false, &Error{Kind: UndefinedMethod, Class: nc.Class, Method: mc.Method, Pos: mc.Pos()}
	}
	if len(argNames) != len(mc.Args) {
		return nil, false, &Error{Kind: Stuck, Term: mc, Pos: mc.Pos()}
	}

	bindings := make(map[ast.FieldName]ast.Term, len(argNames)+1)
	for i, name := range argNames {
		bindings[name] = mc.Args[i]
	}
	bindings[ast.This] = nc

	return substitute(bindings, body), true, nil
}

func stepCast(ct *classtable.Table, ca *ast.Cast) (ast.Term, bool, *Error) {
	if !ast.IsValue(ca.Term) {
		stepped, ok, err := Step(ct, ca.Term)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &Error{Kind: Stuck, Term: ca, Pos: ca.Pos()}
		}
		return &ast.Cast{To: ca.To, Term: stepped, Position: ca.Position}, true, nil
	}

	// E-CastNew
	nc := ca.Term.(*ast.NewCall)
	ok, defined := ct.IsSubtype(nc.Class, ca.To)
	if !defined {
		return nil, false, &Error{Kind: UndefinedClass, Class: ca.To, Pos: ca.Pos()}
	}
	if !ok {
		return nil, false, &Error{Kind: CastFailed, From: nc.Class, To: ca.To, Pos: ca.Pos()}
	}
	return nc, true, nil
}
