// Package cmd implements the fj command-line driver: the external
// collaborator that turns two source files into parsed, type-checked,
// and reduced terms by calling the core packages in the order spec.md
// §6.2 lays out, then prints whatever each phase produced.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/XOSplicer/featherweight-java/internal/config"
)

var (
	// Version is set by build flags; left at its development value
	// otherwise.
	Version = "0.1.0-dev"

	cfgFile string
	cfg     *config.Config
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "fj",
	Short: "A Featherweight Java type checker and reference interpreter",
	Long: `fj type-checks and reduces Featherweight Java programs.

Featherweight Java (FJ) is a minimal, purely functional object calculus:
classes, single inheritance, fields, constructors, methods, field access,
method invocation, object construction, and typed casts. fj builds a
validated class table from a class library, type-checks every class,
method, and the input term, then reduces the term to a value under FJ's
deterministic small-step semantics.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to .fjrc (default: search ./.fjrc then $HOME/.fjrc)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	if noColor {
		cfg.Color = false
	}
	return nil
}

