package cmd

import (
	"fmt"
	"os"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
	fjerrors "github.com/XOSplicer/featherweight-java/internal/errors"
	"github.com/XOSplicer/featherweight-java/internal/parser"
	"github.com/XOSplicer/featherweight-java/internal/typing"
)

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// parseLibraryFile runs the `program` grammar (spec.md §6.1) over the
// file at path, printing any syntax errors to stderr before returning.
func parseLibraryFile(path string) (*ast.Ast, string, error) {
	source, err := readFile(path)
	if err != nil {
		return nil, "", err
	}
	p := parser.New(source)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		printParseErrors(errs, source, path)
		return nil, source, fmt.Errorf("parsing %s failed with %d error(s)", path, len(errs))
	}
	return prog, source, nil
}

// parseExpressionFile runs the `term` grammar over the file at path.
func parseExpressionFile(path string) (ast.Term, string, error) {
	source, err := readFile(path)
	if err != nil {
		return nil, "", err
	}
	p := parser.New(source)
	term := p.ParseTerm()
	if errs := p.Errors(); len(errs) > 0 {
		printParseErrors(errs, source, path)
		return nil, source, fmt.Errorf("parsing %s failed with %d error(s)", path, len(errs))
	}
	return term, source, nil
}

func printParseErrors(errs []*parser.ParseError, source, file string) {
	positioned := make([]fjerrors.Positioned, len(errs))
	for i, e := range errs {
		positioned[i] = e
	}
	fmt.Fprintln(os.Stderr, fjerrors.FormatAll(fjerrors.FromPositioned(positioned, source, file), cfg.Color))
}

// buildClassTable validates prog and prints the single resulting
// ClassTableError, if any, in CompilerError form.
func buildClassTable(prog *ast.Ast, source, file string) (*classtable.Table, error) {
	ct, err := classtable.Build(prog)
	if err != nil {
		printPositioned(err, source, file)
		return nil, fmt.Errorf("class table construction failed: %w", err)
	}
	return ct, nil
}

// typecheckProgram implements program well-formedness, printing the
// first TypingError (if any). Collected stupid-cast warnings are left in
// checker.Warnings for the caller to print.
func typecheckProgram(checker *typing.Checker, prog *ast.Ast, source, file string) error {
	if err := checker.CheckProgram(prog); err != nil {
		printPositioned(err, source, file)
		return fmt.Errorf("typing failed: %w", err)
	}
	return nil
}

func printWarningsSlice(warnings []*typing.Warning, source, file string) {
	for _, w := range warnings {
		printPositioned(w, source, file)
	}
}

func printPositioned(e fjerrors.Positioned, source, file string) {
	ce := fjerrors.NewCompilerError(e.Position(), e, source, file)
	fmt.Fprintln(os.Stderr, ce.Format(cfg.Color))
}
