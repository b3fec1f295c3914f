package interp

import "github.com/jung-lang/jung/value"

// SignalKind tags the non-local control transfers that can unwind out
// of a statement or expression evaluation: loop control, function
// return, and exception propagation. A nil *Signal means "evaluation
// completed normally".
type SignalKind int

const (
	SigBreak SignalKind = iota
	SigContinue
	SigReturn
	SigException
)

// Signal is threaded as the second return value of every evaluation
// function, Monkey-interpreter style: each call site checks it
// immediately after evaluating a sub-node and, if non-nil, returns it
// unchanged rather than continuing — the same shape as the teacher's
// IsError/GetType checks, generalized to also carry break/continue/
// return/exception.
type Signal struct {
	Kind SignalKind

	// ReturnValue is the value carried by a `return expr` (SigReturn).
	ReturnValue value.Value

	// Message is the exception text (SigException): a throw's
	// rendered value, or a runtime error's diagnostic text.
	Message string

	// RuntimeError distinguishes a converted runtime error (reported
	// as "[line:col] msg" at top level) from a user `throw` (reported
	// as "Uncaught exception: msg"). Both are equally catchable by a
	// try/catch; only uncaught top-level reporting differs.
	RuntimeError bool
}

func breakSignal() *Signal    { return &Signal{Kind: SigBreak} }
func continueSignal() *Signal { return &Signal{Kind: SigContinue} }

func returnSignal(v value.Value) *Signal {
	return &Signal{Kind: SigReturn, ReturnValue: v}
}

func throwSignal(message string) *Signal {
	return &Signal{Kind: SigException, Message: message}
}

func runtimeErrorSignal(message string) *Signal {
	return &Signal{Kind: SigException, Message: message, RuntimeError: true}
}
