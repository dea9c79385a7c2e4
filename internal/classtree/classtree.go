// Package classtree derives a human-readable inheritance tree from a
// built class table for diagnostic output. It has no functional
// dependency from the rest of the core — nothing here feeds back into
// typing or reduction.
package classtree

import (
	"fmt"
	"io"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
)

// Print writes the inheritance tree rooted at "Object" to w: two-space
// indentation per level, one class per line, siblings in lexicographic
// order — exactly the shape spec.md §4.4 asks for.
func Print(w io.Writer, ct *classtable.Table) {
	fmt.Fprintln(w, ast.ObjectClass)
	printChildren(w, ct, ast.ObjectClass, 1)
}

func printChildren(w io.Writer, ct *classtable.Table, parent ast.ClassName, depth int) {
	for _, child := range ct.DirectSubtypes(parent) {
		fmt.Fprintf(w, "%s%s\n", indent(depth), child)
		printChildren(w, ct, child, depth+1)
	}
}

func indent(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
