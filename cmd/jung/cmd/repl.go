package cmd

import (
	"os"

	"github.com/jung-lang/jung/repl"
	"github.com/spf13/cobra"
)

var banner = `     _
    (_)_   _ _ __   __ _
    | | | | | '_ \ / _\` + "`" + ` |
    | | |_| | | | | (_| |
   _/ |\__,_|_| |_|\__, |
  |__/              |___/
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := repl.New(banner, Version, cfg)
		r.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
