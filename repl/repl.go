// Package repl implements the interactive Read-Eval-Print Loop: a
// persistent Interpreter fed one parsed statement at a time, with
// readline-backed line editing and history and colored feedback for
// results and errors.
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/internal/config"
	"github.com/jung-lang/jung/interp"
	"github.com/jung-lang/jung/lexer"
	"github.com/jung-lang/jung/parser"
	"github.com/jung-lang/jung/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
	Cfg     config.Config
}

// New builds a Repl with the given banner, version string, and
// interpreter configuration.
func New(banner, version string, cfg config.Config) *Repl {
	prompt := cfg.ReplPrompt
	if prompt == "" {
		prompt = "jung> "
	}
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    strings.Repeat("-", 60),
		Prompt:  prompt,
		Cfg:     cfg,
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "jung %s\n", r.Version)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type .exit or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop, reading from in and writing to out, until the
// user quits or input ends.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		HistoryFile: historyFilePath(),
	})
	if err != nil {
		redColor.Fprintf(out, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	it := interp.New(r.Cfg)
	it.Stdout = asWriter(out)
	it.Stderr = asWriter(out)
	it.Importer = readImportFile

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return
		}
		rl.SaveHistory(line)
		r.evalLine(out, it, line)
	}
}

// evalLine parses and runs one line of input against the persistent
// interpreter, recovering from any panic so a bad line never kills the
// session. When the line is a single bare expression statement, its
// non-null result is echoed.
func (r *Repl) evalLine(out io.Writer, it *interp.Interpreter, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(out, "runtime error: %v\n", rec)
		}
	}()

	prog, err := parser.New(lexer.New(line)).Parse()
	if err != nil {
		redColor.Fprintf(out, "%s\n", err.Error())
		return
	}

	var last value.Value
	for _, stmt := range prog.Statements {
		v, sig := it.EvalStatement(stmt)
		if sig != nil {
			redColor.Fprintf(out, "%s\n", formatSignal(sig))
			return
		}
		last = v
	}
	if len(prog.Statements) != 1 {
		return
	}
	if _, ok := prog.Statements[0].(*ast.ExpressionStatement); !ok {
		return
	}
	if r.Cfg.ReplEcho && last.Kind != value.Null {
		yellowColor.Fprintf(out, "%s\n", value.Render(last, true))
	}
}

// formatSignal renders an escaped top-level signal: a runtime error
// already carries its "[line:col]" prefix, a bare throw does not.
func formatSignal(sig *interp.Signal) string {
	if sig.RuntimeError {
		return sig.Message
	}
	return "Uncaught exception: " + sig.Message
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.jung_history"
}

func readImportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func asWriter(w io.Writer) interface{ Write([]byte) (int, error) } {
	return writerFunc(func(p []byte) (int, error) { return w.Write(p) })
}
