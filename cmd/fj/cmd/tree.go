package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/XOSplicer/featherweight-java/internal/classtree"
)

var treeSummary bool

var treeCmd = &cobra.Command{
	Use:   "tree <library.fj>",
	Short: "Print the class hierarchy of a library as a diagnostic tree",
	Long: `tree builds the class table for a library and prints its inheritance
tree rooted at Object, two-space indentation per level, siblings in
lexicographic order (spec.md §4.4). With --summary, each class is
additionally annotated with its declared/inherited field counts and
direct method count.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeSummary, "summary", false, "annotate each class with field and method counts")
}

func runTree(_ *cobra.Command, args []string) error {
	libraryPath := args[0]

	prog, source, err := parseLibraryFile(libraryPath)
	if err != nil {
		return err
	}

	ct, err := buildClassTable(prog, source, libraryPath)
	if err != nil {
		return err
	}

	if treeSummary {
		classtree.PrintSummary(os.Stdout, ct)
	} else {
		classtree.Print(os.Stdout, ct)
	}
	return nil
}
