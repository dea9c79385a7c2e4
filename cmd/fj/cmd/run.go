package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/XOSplicer/featherweight-java/internal/ast"
	"github.com/XOSplicer/featherweight-java/internal/classtable"
	"github.com/XOSplicer/featherweight-java/internal/classtree"
	"github.com/XOSplicer/featherweight-java/internal/reduce"
	"github.com/XOSplicer/featherweight-java/internal/typing"
)

var (
	warningsAsErrors bool
	traceReduction   bool
	showTree         bool
	dumpAST          bool
)

var runCmd = &cobra.Command{
	Use:   "run <library.fj> <expression.fje>",
	Short: "Parse, type-check, and reduce an FJ term against a class library",
	Long: `run executes the full FJ pipeline in the order spec.md §6.2 lays out:
library parse, class table construction, typing of the library, the
class tree (shown with --show-tree, or when show_tree in .fjrc is true,
which is its default), term parse, typing of the term, and finally
reduction to a value.`,
	Args: cobra.ExactArgs(2),
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "treat stupid-cast warnings as fatal errors")
	runCmd.Flags().BoolVar(&traceReduction, "trace", false, "print every intermediate term of the reduction chain")
	runCmd.Flags().BoolVar(&showTree, "show-tree", false, "print the class hierarchy tree before reducing")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed library AST (for debugging)")
}

func runPipeline(_ *cobra.Command, args []string) error {
	libraryPath, exprPath := args[0], args[1]
	if cfg.Trace {
		traceReduction = true
	}
	if cfg.ShowTree {
		showTree = true
	}
	if cfg.WarningsAsErrors {
		warningsAsErrors = true
	}

	prog, librarySource, err := parseLibraryFile(libraryPath)
	if err != nil {
		return err
	}
	if dumpAST {
		fmt.Println(prog.String())
	}

	ct, err := buildClassTable(prog, librarySource, libraryPath)
	if err != nil {
		return err
	}

	checker := typing.NewChecker(ct)
	if err := typecheckProgram(checker, prog, librarySource, libraryPath); err != nil {
		return err
	}
	libraryWarnings := len(checker.Warnings)
	printWarningsSlice(checker.Warnings[:libraryWarnings], librarySource, libraryPath)

	if showTree {
		classtree.Print(os.Stdout, ct)
	}

	term, exprSource, err := parseExpressionFile(exprPath)
	if err != nil {
		return err
	}

	termType, typeErr := checker.TypeOfTerm(typing.Gamma{}, term)
	printWarningsSlice(checker.Warnings[libraryWarnings:], exprSource, exprPath)
	if typeErr != nil {
		printPositioned(typeErr, exprSource, exprPath)
		return fmt.Errorf("typing failed: %w", typeErr)
	}
	if warningsAsErrors && len(checker.Warnings) > 0 {
		return fmt.Errorf("%d stupid-cast warning(s) treated as errors", len(checker.Warnings))
	}
	fmt.Printf("%s : %s\n", term.String(), termType)

	value, err := reduceTerm(ct, term, exprSource, exprPath)
	if err != nil {
		return err
	}
	fmt.Printf("=> %s\n", value.String())
	return nil
}

// reduceTerm drives reduce.Step directly rather than reduce.EvalFull
// when --trace is set, so every intermediate term can be printed.
func reduceTerm(ct *classtable.Table, term ast.Term, source, file string) (ast.Term, error) {
	if !traceReduction {
		value, err := reduce.EvalFull(ct, term)
		if err != nil {
			printPositioned(err, source, file)
			return nil, fmt.Errorf("reduction failed: %w", err)
		}
		return value, nil
	}

	cur := term
	fmt.Printf("  %s\n", cur.String())
	for !ast.IsValue(cur) {
		next, ok, err := reduce.Step(ct, cur)
		if err != nil {
			printPositioned(err, source, file)
			return nil, fmt.Errorf("reduction failed: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("reduction got stuck on %q", cur.String())
		}
		cur = next
		fmt.Printf("→ %s\n", cur.String())
	}
	return cur, nil
}
