// Command fj type-checks and reduces Featherweight Java programs.
package main

import (
	"fmt"
	"os"

	"github.com/XOSplicer/featherweight-java/cmd/fj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
