// Package classtable builds and queries the validated class index that
// the rest of the calculus — typing and reduction alike — is defined on
// top of: the four lookup relations super, fields, mtype, mbody, and the
// subtyping predicate <:.
package classtable

import (
	"sort"

	"github.com/XOSplicer/featherweight-java/internal/ast"
)

// Table is a validated, immutable index from class name to declaration.
// "Object" is never a key; it denotes the implicit root and is handled
// specially by every lookup below.
type Table struct {
	classes map[ast.ClassName]*ast.ClassDefinition
	names   []ast.ClassName // sorted lexicographically
}

// Build validates ast against the eight invariants of spec.md §3 (plus
// the stronger super-call-argument-order check recorded in DESIGN.md)
// and, on success, returns a Table ready for lookups. The first
// violation found wins; Build does not attempt to recover and continue.
func Build(prog *ast.Ast) (*Table, *Error) {
	classes := make(map[ast.ClassName]*ast.ClassDefinition, len(prog.Classes))

	for _, cd := range prog.Classes {
		if cd.Name == ast.ObjectClass {
			return nil, &Error{Kind: ClassNamedObject, Class: cd.Name, Pos: cd.Pos()}
		}
		if _, exists := classes[cd.Name]; exists {
			return nil, &Error{Kind: ClassDefinedTwice, Class: cd.Name, Pos: cd.Pos()}
		}
		classes[cd.Name] = cd
	}

	names := make([]ast.ClassName, 0, len(classes))
	for n := range classes {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, n := range names {
		cd := classes[n]
		if cd.Super != ast.ObjectClass {
			if _, ok := classes[cd.Super]; !ok {
				return nil, &Error{Kind: SupertypeUndefined, Class: cd.Name, Detail: string(cd.Super), Pos: cd.Pos()}
			}
		}
	}

	for _, n := range names {
		seen := map[ast.ClassName]bool{}
		cur := n
		for cur != ast.ObjectClass {
			if seen[cur] {
				return nil, &Error{Kind: CyclicSupertype, Class: n, Pos: classes[n].Pos()}
			}
			seen[cur] = true
			cur = classes[cur].Super
		}
	}

	t := &Table{classes: classes, names: names}

	for _, n := range names {
		if err := t.checkClass(classes[n]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *Table) checkClass(cd *ast.ClassDefinition) *Error {
	seenFields := map[ast.FieldName]bool{}
	for _, f := range cd.Fields {
		if f.Name == ast.This {
			return &Error{Kind: FieldNamedThis, Class: cd.Name, Pos: cd.Pos()}
		}
		if seenFields[f.Name] {
			return &Error{Kind: NonUniqueFields, Class: cd.Name, Pos: cd.Pos()}
		}
		seenFields[f.Name] = true
	}

	seenMethods := map[ast.MethodName]bool{}
	for _, m := range cd.Methods {
		if seenMethods[m.Name] {
			return &Error{Kind: NonUniqueMethodNames, Class: cd.Name, Pos: cd.Pos()}
		}
		seenMethods[m.Name] = true

		seenArgs := map[ast.FieldName]bool{}
		for _, a := range m.Args {
			if a.Name == ast.This {
				return &Error{Kind: MethodArgumentNamedThis, Class: cd.Name, Method: m.Name, Pos: m.Pos()}
			}
			if seenArgs[a.Name] {
				return &Error{Kind: NonUniqueMethodArgumentNames, Class: cd.Name, Method: m.Name, Pos: m.Pos()}
			}
			seenArgs[a.Name] = true
		}
	}

	if err := t.checkConstructor(cd); err != nil {
		return err
	}

	return nil
}

func (t *Table) checkConstructor(cd *ast.ClassDefinition) *Error {
	ctor := cd.Constructor
	if ctor.Name != cd.Name {
		return &Error{Kind: IncorrectConstructorName, Class: cd.Name, Detail: string(ctor.Name), Pos: ctor.Pos()}
	}
	for _, a := range ctor.Args {
		if a.Name == ast.This {
			return &Error{Kind: ConstructorArgumentNamedThis, Class: cd.Name, Pos: ctor.Pos()}
		}
	}

	inherited, _ := t.Fields(cd.Super)
	if len(ctor.SuperCall) != len(inherited) {
		return &Error{Kind: IncorrectConstructorSuperCall, Class: cd.Name, Pos: ctor.Pos()}
	}
	for i, f := range inherited {
		if ctor.SuperCall[i] != f.Name {
			return &Error{Kind: IncorrectConstructorSuperCall, Class: cd.Name, Pos: ctor.Pos()}
		}
	}

	if len(ctor.Assigns) != len(cd.Fields) {
		return &Error{Kind: IncorrectConstructorInit, Class: cd.Name, Pos: ctor.Pos()}
	}
	assigned := map[ast.FieldName]bool{}
	for _, asn := range ctor.Assigns {
		assigned[asn.Field] = true
		if asn.Field != asn.Arg {
			return &Error{Kind: IncorrectConstructorInit, Class: cd.Name, Pos: ctor.Pos()}
		}
	}
	for _, f := range cd.Fields {
		if !assigned[f.Name] {
			return &Error{Kind: IncorrectConstructorInit, Class: cd.Name, Pos: ctor.Pos()}
		}
	}

	return nil
}

// Names returns every defined class name in deterministic lexicographic
// order. "Object" is never included.
func (t *Table) Names() []ast.ClassName {
	return t.names
}

// ClassDefinition returns the declaration for a defined class.
func (t *Table) ClassDefinition(c ast.ClassName) (*ast.ClassDefinition, bool) {
	cd, ok := t.classes[c]
	return cd, ok
}

// IsDefined reports whether c is "Object" or a class declared in this
// table.
func (t *Table) IsDefined(c ast.ClassName) bool {
	if c == ast.ObjectClass {
		return true
	}
	_, ok := t.classes[c]
	return ok
}

// Super returns the declared superclass of c. Undefined (ok == false)
// for c == "Object" or an undefined class.
func (t *Table) Super(c ast.ClassName) (ast.ClassName, bool) {
	cd, ok := t.classes[c]
	if !ok {
		return "", false
	}
	return cd.Super, true
}

// Fields returns every field of c, inherited fields first, in
// construction-argument order. Fields("Object") is the empty sequence.
func (t *Table) Fields(c ast.ClassName) ([]ast.Field, bool) {
	if c == ast.ObjectClass {
		return nil, true
	}
	cd, ok := t.classes[c]
	if !ok {
		return nil, false
	}
	parent, _ := t.Fields(cd.Super)
	out := make([]ast.Field, 0, len(parent)+len(cd.Fields))
	out = append(out, parent...)
	out = append(out, cd.Fields...)
	return out, true
}

// MType returns the argument types and return type of the first
// definition of m found walking the superclass chain from c toward
// "Object".
func (t *Table) MType(m ast.MethodName, c ast.ClassName) (argTypes []ast.ClassName, retType ast.ClassName, ok bool) {
	md, _, ok := t.lookupMethod(m, c)
	if !ok {
		return nil, "", false
	}
	types := make([]ast.ClassName, len(md.Args))
	for i, a := range md.Args {
		types[i] = a.Type
	}
	return types, md.ReturnType, true
}

// MBody returns the argument names and body term of the same definition
// used by MType.
func (t *Table) MBody(m ast.MethodName, c ast.ClassName) (argNames []ast.FieldName, body ast.Term, ok bool) {
	md, _, ok := t.lookupMethod(m, c)
	if !ok {
		return nil, nil, false
	}
	names := make([]ast.FieldName, len(md.Args))
	for i, a := range md.Args {
		names[i] = a.Name
	}
	return names, md.Body, true
}

// lookupMethod walks the superclass chain from c and returns the first
// method named m, along with the class that declares it.
func (t *Table) lookupMethod(m ast.MethodName, c ast.ClassName) (*ast.MethodDefinition, ast.ClassName, bool) {
	cur := c
	for cur != ast.ObjectClass {
		cd, ok := t.classes[cur]
		if !ok {
			return nil, "", false
		}
		for _, md := range cd.Methods {
			if md.Name == m {
				return md, cur, true
			}
		}
		cur = cd.Super
	}
	return nil, "", false
}

// IsSubtype reports whether c <: d. The second return value is false if
// either operand is not a defined class (including "Object"), in which
// case the first return value is meaningless.
func (t *Table) IsSubtype(c, d ast.ClassName) (bool, bool) {
	if !t.IsDefined(c) || !t.IsDefined(d) {
		return false, false
	}
	for cur := c; ; {
		if cur == d {
			return true, true
		}
		if cur == ast.ObjectClass {
			return false, true
		}
		cur = t.classes[cur].Super
	}
}

// DirectSubtypes returns the classes whose declared super is exactly c,
// in lexicographic order.
func (t *Table) DirectSubtypes(c ast.ClassName) []ast.ClassName {
	var out []ast.ClassName
	for _, n := range t.names {
		if t.classes[n].Super == c {
			out = append(out, n)
		}
	}
	return out
}

// Subtypes returns every defined class D with D <: c, in lexicographic
// order.
func (t *Table) Subtypes(c ast.ClassName) []ast.ClassName {
	var out []ast.ClassName
	for _, n := range t.names {
		if ok, _ := t.IsSubtype(n, c); ok {
			out = append(out, n)
		}
	}
	return out
}
