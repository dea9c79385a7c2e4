package classtree_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/XOSplicer/featherweight-java/internal/classtable"
	"github.com/XOSplicer/featherweight-java/internal/classtree"
	"github.com/XOSplicer/featherweight-java/internal/parser"
)

const sampleLibrary = `
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

func buildSample(t *testing.T) *classtable.Table {
	t.Helper()
	p := parser.New(sampleLibrary)
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

func TestPrintOrdersSiblingsLexicographically(t *testing.T) {
	ct := buildSample(t)
	var sb strings.Builder
	classtree.Print(&sb, ct)
	snaps.MatchSnapshot(t, "tree", sb.String())
}

func TestPrintSummaryAnnotatesFieldsAndMethods(t *testing.T) {
	ct := buildSample(t)
	var sb strings.Builder
	classtree.PrintSummary(&sb, ct)
	snaps.MatchSnapshot(t, "tree_summary", sb.String())
}
