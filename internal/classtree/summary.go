package classtree

import (
	"fmt"
	"io"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
)

// PrintSummary writes a richer variant of Print: alongside the same
// inheritance tree, each line annotates its class with the declared vs.
// inherited field count and the number of directly declared methods.
// "Object" itself carries no annotation since it has no declaration.
func PrintSummary(w io.Writer, ct *classtable.Table) {
	fmt.Fprintln(w, ast.ObjectClass)
	printChildrenSummary(w, ct, ast.ObjectClass, 1)
}

func printChildrenSummary(w io.Writer, ct *classtable.Table, parent ast.ClassName, depth int) {
	for _, child := range ct.DirectSubtypes(parent) {
		cd, _ := ct.ClassDefinition(child)
		inherited, _ := ct.Fields(cd.Super)
		fmt.Fprintf(w, "%s%s (fields: %d declared, %d inherited; methods: %d)\n",
			indent(depth), child, len(cd.Fields), len(inherited), len(cd.Methods))
		printChildrenSummary(w, ct, child, depth+1)
	}
}
