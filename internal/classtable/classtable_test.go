package classtable_test

import (
	"testing"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
	"github.com/XOSplicer/featherweight-java/internal/parser"
)

func mustParseProgram(t *testing.T, src string) *ast.Ast {
	t.Helper()
	p := parser.New(src)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

const pairLibrary = `
class A extends Object { A() { super(); } }
class B extends Object { B() { super(); } }
class Pair extends Object {
  Object fst;
  Object snd;
  Pair(Object fst, Object snd) { super(); this.fst = fst; this.snd = snd; }
  Pair setfst(Object newfst) { return new Pair(newfst, this.snd); }
}
`

func TestBuildAcceptsPairLibrary(t *testing.T) {
	prog := mustParseProgram(t, pairLibrary)
	ct, err := classtable.Build(prog)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	want := []ast.ClassName{"A", "B", "Pair"}
	got := ct.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	fields, ok := ct.Fields("Pair")
	if !ok || len(fields) != 2 || fields[0].Name != "fst" || fields[1].Name != "snd" {
		t.Fatalf("Fields(Pair) = %v, ok=%v", fields, ok)
	}

	if ok, _ := ct.IsSubtype("Pair", "Object"); !ok {
		t.Error("expected Pair <: Object")
	}
	if ok, _ := ct.IsSubtype("A", "Pair"); ok {
		t.Error("expected A not<: Pair")
	}
}

func TestBuildRejectsCyclicSupertype(t *testing.T) {
	prog := mustParseProgram(t, `
class A extends B { A() { super(); } }
class B extends A { B() { super(); } }
`)
	_, err := classtable.Build(prog)
	if err == nil || err.Kind != classtable.CyclicSupertype {
		t.Fatalf("expected CyclicSupertype, got %v", err)
	}
}

func TestBuildRejectsClassNamedObject(t *testing.T) {
	prog := mustParseProgram(t, `class Object extends Object { Object() { super(); } }`)
	_, err := classtable.Build(prog)
	if err == nil || err.Kind != classtable.ClassNamedObject {
		t.Fatalf("expected ClassNamedObject, got %v", err)
	}
}

func TestBuildRejectsClassDefinedTwice(t *testing.T) {
	prog := mustParseProgram(t, `
class A extends Object { A() { super(); } }
class A extends Object { A() { super(); } }
`)
	_, err := classtable.Build(prog)
	if err == nil || err.Kind != classtable.ClassDefinedTwice {
		t.Fatalf("expected ClassDefinedTwice, got %v", err)
	}
}

func TestBuildRejectsUndefinedSupertype(t *testing.T) {
	prog := mustParseProgram(t, `class A extends Ghost { A() { super(); } }`)
	_, err := classtable.Build(prog)
	if err == nil || err.Kind != classtable.SupertypeUndefined {
		t.Fatalf("expected SupertypeUndefined, got %v", err)
	}
}

// "this" is a keyword in the concrete syntax, so a field or argument
// literally named "this" can only arise from a hand-built AST (e.g. a
// future alternate front-end) rather than from the parser.
func TestBuildRejectsFieldNamedThis(t *testing.T) {
	prog := &ast.Ast{Classes: []*ast.ClassDefinition{
		{
			Name:  "A",
			Super: ast.ObjectClass,
			Fields: []ast.Field{
				{Type: ast.ObjectClass, Name: ast.This},
			},
			Constructor: &ast.Constructor{
				Name:      "A",
				Args:      []ast.Field{{Type: ast.ObjectClass, Name: ast.This}},
				SuperCall: nil,
				Assigns:   []ast.Assignment{{Field: ast.This, Arg: ast.This}},
			},
		},
	}}
	_, err := classtable.Build(prog)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Kind != classtable.FieldNamedThis {
		t.Fatalf("expected FieldNamedThis, got %v", err)
	}
}

func TestBuildRejectsIncompleteConstructorInit(t *testing.T) {
	prog := mustParseProgram(t, `
class A extends Object {
  Object fst;
  Object snd;
  A(Object fst, Object snd) { super(); this.fst = fst; }
}
`)
	_, err := classtable.Build(prog)
	if err == nil || err.Kind != classtable.IncorrectConstructorInit {
		t.Fatalf("expected IncorrectConstructorInit, got %v", err)
	}
}

func TestBuildRejectsOutOfOrderSuperCall(t *testing.T) {
	prog := mustParseProgram(t, `
class Base extends Object {
  Object x;
  Object y;
  Base(Object x, Object y) { super(); this.x = x; this.y = y; }
}
class Child extends Base {
  Child(Object y, Object x) { super(y, x); }
}
`)
	_, err := classtable.Build(prog)
	if err == nil || err.Kind != classtable.IncorrectConstructorSuperCall {
		t.Fatalf("expected IncorrectConstructorSuperCall, got %v", err)
	}
}

func TestDirectSubtypesAndSubtypes(t *testing.T) {
	prog := mustParseProgram(t, `
class A extends Object { A() { super(); } }
class C extends A { C() { super(); } }
`)
	ct, err := classtable.Build(prog)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if got := ct.DirectSubtypes("Object"); len(got) != 1 || got[0] != "A" {
		t.Fatalf("DirectSubtypes(Object) = %v", got)
	}
	if got := ct.Subtypes("Object"); len(got) != 2 {
		t.Fatalf("Subtypes(Object) = %v", got)
	}
}
