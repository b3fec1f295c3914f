package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a jung source file or an inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if evalExpr != "" {
			return runSource(evalExpr, "<eval>")
		}
		if len(args) != 1 {
			return fmt.Errorf("run requires a file path or -e")
		}
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}
