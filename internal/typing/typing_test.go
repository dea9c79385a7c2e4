package typing_test

import (
	"testing"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
	"github.com/XOSplicer/featherweight-java/internal/parser"
	"github.com/XOSplicer/featherweight-java/internal/typing"
)

func build(t *testing.T, src string) *classtable.Table {
	t.Helper()
	p := parser.New(src)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	ct, err := classtable.Build(prog)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return ct
}

func parseTerm(t *testing.T, src string) ast.Term {
	t.Helper()
	p := parser.New(src)
	term := p.ParseTerm()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return term
}

const pairLibrary = `
class A extends Object { A() { super(); } }
class B extends Object { B() { super(); } }
class C extends A { C() { super(); } }
class Pair extends Object {
  Object fst;
  Object snd;
  Pair(Object fst, Object snd) { super(); this.fst = fst; this.snd = snd; }
  Pair setfst(Object newfst) { return new Pair(newfst, this.snd); }
}
`

func TestTypeOfTermFieldProjection(t *testing.T) {
	ct := build(t, pairLibrary)
	c := typing.NewChecker(ct)
	term := parseTerm(t, `new Pair(new A(), new A()).fst`)

	got, err := c.TypeOfTerm(typing.Gamma{}, term)
	if err != nil {
		t.Fatalf("unexpected typing error: %v", err)
	}
	if got != "Object" {
		t.Fatalf("got %q, want Object", got)
	}
}

func TestTypeOfTermMethodInvocation(t *testing.T) {
	ct := build(t, pairLibrary)
	c := typing.NewChecker(ct)
	term := parseTerm(t, `new Pair(new A(), new B()).setfst(new B())`)

	got, err := c.TypeOfTerm(typing.Gamma{}, term)
	if err != nil {
		t.Fatalf("unexpected typing error: %v", err)
	}
	if got != "Pair" {
		t.Fatalf("got %q, want Pair", got)
	}
}

func TestTypeOfTermUpcastIsIdentity(t *testing.T) {
	ct := build(t, pairLibrary)
	c := typing.NewChecker(ct)
	term := parseTerm(t, `(Object) new A()`)

	got, err := c.TypeOfTerm(typing.Gamma{}, term)
	if err != nil {
		t.Fatalf("unexpected typing error: %v", err)
	}
	if got != "Object" {
		t.Fatalf("got %q, want Object", got)
	}
	if len(c.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", c.Warnings)
	}
}

func TestTypeOfTermDowncastSucceeds(t *testing.T) {
	ct := build(t, pairLibrary)
	c := typing.NewChecker(ct)
	term := parseTerm(t, `(A) new C()`)

	got, err := c.TypeOfTerm(typing.Gamma{}, term)
	if err != nil {
		t.Fatalf("unexpected typing error: %v", err)
	}
	if got != "A" {
		t.Fatalf("got %q, want A", got)
	}
}

func TestTypeOfTermStupidCastWarns(t *testing.T) {
	ct := build(t, pairLibrary)
	c := typing.NewChecker(ct)
	term := parseTerm(t, `(B) new A()`)

	got, err := c.TypeOfTerm(typing.Gamma{}, term)
	if err != nil {
		t.Fatalf("unexpected typing error: %v", err)
	}
	if got != "B" {
		t.Fatalf("got %q, want B", got)
	}
	if len(c.Warnings) != 1 || c.Warnings[0].Kind != typing.StupidCast {
		t.Fatalf("expected one StupidCast warning, got %v", c.Warnings)
	}
}

func TestTypeOfTermUndefinedField(t *testing.T) {
	ct := build(t, pairLibrary)
	c := typing.NewChecker(ct)
	term := parseTerm(t, `new A().ghost`)

	_, err := c.TypeOfTerm(typing.Gamma{}, term)
	if err == nil || err.Kind != typing.UndefinedField {
		t.Fatalf("expected UndefinedField, got %v", err)
	}
}

func TestCheckProgramAcceptsPairLibrary(t *testing.T) {
	p := parser.New(pairLibrary)
	prog := p.ParseProgram()
	ct, buildErr := classtable.Build(prog)
	if buildErr != nil {
		t.Fatalf("unexpected build error: %v", buildErr)
	}
	c := typing.NewChecker(ct)
	if err := c.CheckProgram(prog); err != nil {
		t.Fatalf("unexpected typing error: %v", err)
	}
}
