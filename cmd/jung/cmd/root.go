// Package cmd wires the jung CLI's cobra command tree: the root
// command plus run/repl/version subcommands.
package cmd

import (
	"os"

	"github.com/jung-lang/jung/internal/config"
	"github.com/jung-lang/jung/internal/diag"
	"github.com/jung-lang/jung/interp"
	"github.com/jung-lang/jung/lexer"
	"github.com/jung-lang/jung/parser"
	"github.com/jung-lang/jung/repl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const Version = "0.1.0"

var (
	debugFlag  bool
	configPath string

	logger *zap.SugaredLogger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:     "jung [file]",
	Short:   "jung is an interpreter for the jung scripting language",
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = diag.New(debugFlag)
		lexer.SetLogger(logger)
		parser.SetLogger(logger)
		interp.SetLogger(logger)
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	// With no subcommand, a bare file argument runs that file and no
	// argument starts the REPL — the shorthand most scripting-language
	// CLIs support alongside their explicit subcommands.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0])
		}
		r := repl.New(banner, Version, cfg)
		r.Start(os.Stdin, os.Stdout)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable verbose diagnostic logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".jungrc.yaml", "path to an optional config file")
}
