package cmd

import (
	"fmt"
	"os"

	"github.com/jung-lang/jung/interp"
	"github.com/jung-lang/jung/lexer"
	"github.com/jung-lang/jung/parser"
)

// runSource parses and runs src under filename (used only in
// diagnostics), wiring stdout/stderr and the import reader to the real
// process streams. A parse error or an uncaught signal is returned as
// a plain error so the caller can report it and set exit code 1. A
// panic escaping the interpreter (an internal bug, not a language-level
// exception) is recovered here exactly like the REPL's evalLine does,
// rather than crashing the process with a raw Go stack trace.
func runSource(src, filename string) error {
	return withPanicRecovery(func() error {
		prog, perr := parser.New(lexer.New(src)).Parse()
		if perr != nil {
			return fmt.Errorf("%s: %w", filename, perr)
		}

		it := interp.New(cfg)
		it.Stdout = os.Stdout
		it.Stderr = os.Stderr
		it.Importer = func(path string) (string, error) {
			data, ierr := os.ReadFile(path)
			return string(data), ierr
		}

		if sig := it.Run(prog); sig != nil {
			if sig.RuntimeError {
				return fmt.Errorf("%s", sig.Message)
			}
			return fmt.Errorf("Uncaught exception: %s", sig.Message)
		}
		return nil
	})
}

// withPanicRecovery runs fn and converts any panic into a returned
// error, so a bug surfacing as a Go panic deep in the interpreter
// never crashes the process with a raw stack trace — it is reported
// the same way a parse error or an uncaught exception is.
func withPanicRecovery(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("runtime error: %v", rec)
		}
	}()
	return fn()
}

func runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return runSource(string(data), path)
}
