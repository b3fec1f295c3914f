// Package interp implements the tree-walking evaluator: it executes
// an ast.Program against an Interpreter context (scope stack,
// function/class/built-in registries, call-depth bound, and
// exception-unwinding state) and produces observable output and a
// final exit disposition.
package interp

import (
	"fmt"

	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/internal/config"
	"github.com/jung-lang/jung/scope"
	"github.com/jung-lang/jung/stdlib"
	"github.com/jung-lang/jung/value"
	"go.uber.org/zap"
)

// logger receives --debug diagnostics; cmd/jung's root command installs
// a real one via SetLogger, tests and library callers get a no-op.
var logger = zap.NewNop().Sugar()

// SetLogger installs the logger used for interpreter diagnostics.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// Interpreter is the evaluator's context, per spec §3.4: scope stack,
// globals, function/class/built-in registries, the current-instance
// slot for method bodies, the call-depth counter, and the
// imported-files set.
type Interpreter struct {
	global  *scope.Scope
	current *scope.Scope

	functions map[string]*value.FunctionData
	classes   map[string]*value.Map
	builtins  map[string]*value.BuiltinData

	thisValue value.Value

	callDepth int
	cfg       config.Config

	imported map[string]bool

	// Stdout/Stderr are where print statements and error/exception
	// reports go; tests and the REPL substitute buffers, cmd/jung
	// wires the process's real streams.
	Stdout interface{ Write([]byte) (int, error) }
	Stderr interface{ Write([]byte) (int, error) }

	// Importer reads the source of an import path; cmd/jung wires
	// this to os.ReadFile, tests can stub it.
	Importer func(path string) (string, error)
}

// New creates an Interpreter with its own global scope and the full
// standard-library registry loaded.
func New(cfg config.Config) *Interpreter {
	in := &Interpreter{
		global:    scope.New(),
		functions: map[string]*value.FunctionData{},
		classes:   map[string]*value.Map{},
		builtins:  stdlib.Registry(),
		thisValue: value.NullValue,
		cfg:       cfg,
		imported:  map[string]bool{},
	}
	in.current = in.global
	logger.Debugw("interpreter created", "call_depth_limit", cfg.CallDepthLimit)
	return in
}

func (in *Interpreter) pushScope()  { in.current = in.current.Push() }
func (in *Interpreter) popScope()   { in.current = in.current.Parent() }
func (in *Interpreter) scopeDepth() int { return in.current.Depth() }

// Run executes prog's top-level statements in source order and
// returns the first exception that escaped every try. A stray
// break/continue/return at top level stops the run the same as
// falling off the end, and Run returns nil for it.
func (in *Interpreter) Run(prog *ast.Program) *Signal {
	for _, stmt := range prog.Statements {
		if _, sig := in.exec(stmt); sig != nil {
			if sig.Kind != SigException {
				return nil
			}
			return sig
		}
	}
	return nil
}

// EvalStatement executes a single statement against this same
// persistent context — used by the REPL to run one parsed line at a
// time while reusing scope, functions, and classes across iterations.
func (in *Interpreter) EvalStatement(stmt ast.Statement) (value.Value, *Signal) {
	return in.exec(stmt)
}

// Call implements value.Runtime so built-ins (map/filter/reduce) can
// invoke a function or built-in value passed to them.
func (in *Interpreter) Call(fn value.Value, args []value.Value) (value.Value, error) {
	v, sig := in.callValue(ast.Base{}, fn, args)
	if sig != nil {
		return value.NullValue, fmt.Errorf("%s", sig.Message)
	}
	return v, nil
}

func (in *Interpreter) write(w interface{ Write([]byte) (int, error) }, s string) {
	if w == nil {
		return
	}
	_, _ = w.Write([]byte(s))
}

// runtimeErrorf builds a line/column-annotated runtime-error signal.
func runtimeErrorf(n ast.Node, format string, args ...interface{}) *Signal {
	line, col := n.Pos()
	msg := fmt.Sprintf(format, args...)
	return runtimeErrorSignal(fmt.Sprintf("[%d:%d] %s", line, col, msg))
}
