package reduce_test

import (
	"testing"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
	"github.com/XOSplicer/featherweight-java/internal/parser"
	"github.com/XOSplicer/featherweight-java/internal/reduce"
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

func TestEvalFullFieldProjection(t *testing.T) {
	ct := build(t, pairLibrary)
	term := parseTerm(t, `new Pair(new A(), new A()).fst`)

	got, err := reduce.EvalFull(ct, term)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.String() != "new A()" {
		t.Fatalf("got %q, want new A()", got.String())
	}
}

func TestEvalFullMethodInvocation(t *testing.T) {
	ct := build(t, pairLibrary)
	term := parseTerm(t, `new Pair(new A(), new B()).setfst(new B())`)

	got, err := reduce.EvalFull(ct, term)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.String() != "new Pair(new B(), new B())" {
		t.Fatalf("got %q, want new Pair(new B(), new B())", got.String())
	}
}

func TestEvalFullUpcastIsIdentity(t *testing.T) {
	ct := build(t, pairLibrary)
	term := parseTerm(t, `(Object) new A()`)

	got, err := reduce.EvalFull(ct, term)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.String() != "new A()" {
		t.Fatalf("got %q, want new A()", got.String())
	}
}

func TestEvalFullDowncastSucceeds(t *testing.T) {
	ct := build(t, pairLibrary)
	term := parseTerm(t, `(A) new C()`)

	got, err := reduce.EvalFull(ct, term)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.String() != "new C()" {
		t.Fatalf("got %q, want new C()", got.String())
	}
}

func TestEvalFullCastFailure(t *testing.T) {
	ct := build(t, pairLibrary)
	term := parseTerm(t, `(C) new A()`)

	_, err := reduce.EvalFull(ct, term)
	if err == nil || err.Kind != reduce.CastFailed {
		t.Fatalf("expected CastFailed, got %v", err)
	}
	if err.From != "A" || err.To != "C" {
		t.Fatalf("CastFailed{from: %q, to: %q}, want {from: A, to: C}", err.From, err.To)
	}
}

func TestEvalFullOnValueIsIdempotent(t *testing.T) {
	ct := build(t, pairLibrary)
	term := parseTerm(t, `new A()`)

	got, err := reduce.EvalFull(ct, term)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.String() != "new A()" {
		t.Fatalf("got %q, want new A()", got.String())
	}
}
