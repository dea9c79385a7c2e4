package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/XOSplicer/featherweight-java/internal/config"
)

const pairLibrarySrc = `
class A extends Object { A() { super(); } }
class B extends Object { B() { super(); } }
class Pair extends Object {
  Object fst;
  Object snd;
  Pair(Object fst, Object snd) { super(); this.fst = fst; this.snd = snd; }
  Pair setfst(Object newfst) { return new Pair(newfst, this.snd); }
}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func withTestConfig(t *testing.T) {
	t.Helper()
	old := cfg
	cfg = &config.Config{Color: false}
	t.Cleanup(func() { cfg = old })
}

func TestRunPipelineFieldProjection(t *testing.T) {
	withTestConfig(t)
	lib := writeTemp(t, "lib.fj", pairLibrarySrc)
	expr := writeTemp(t, "expr.fje", `new Pair(new A(), new A()).fst`)

	if err := runPipeline(nil, []string{lib, expr}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCheckAcceptsValidLibrary(t *testing.T) {
	withTestConfig(t)
	lib := writeTemp(t, "lib.fj", pairLibrarySrc)

	if err := runCheck(nil, []string{lib}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCheckRejectsCyclicLibrary(t *testing.T) {
	withTestConfig(t)
	lib := writeTemp(t, "lib.fj", `
class A extends B { A() { super(); } }
class B extends A { B() { super(); } }
`)

	if err := runCheck(nil, []string{lib}); err == nil {
		t.Fatal("expected an error for a cyclic class library")
	}
}

func TestRunTreePrintsHierarchy(t *testing.T) {
	withTestConfig(t)
	lib := writeTemp(t, "lib.fj", pairLibrarySrc)

	if err := runTree(nil, []string{lib}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunPipelineReportsCastFailure(t *testing.T) {
	withTestConfig(t)
	lib := writeTemp(t, "lib.fj", pairLibrarySrc+`
class C extends A { C() { super(); } }
`)
	expr := writeTemp(t, "expr.fje", `(C) new A()`)

	if err := runPipeline(nil, []string{lib, expr}); err == nil {
		t.Fatal("expected a cast failure error")
	}
}
