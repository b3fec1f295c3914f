// Command jung is the entry point for the jung interpreter: it runs a
// source file, evaluates an inline expression, or starts the
// interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/jung-lang/jung/cmd/jung/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
