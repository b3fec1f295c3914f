package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the jung interpreter's version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jung version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
