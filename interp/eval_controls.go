package interp

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/value"
)

func (in *Interpreter) execIfStatement(n *ast.IfStatement) (value.Value, *Signal) {
	cond, sig := in.eval(n.Condition)
	if sig != nil {
		return value.NullValue, sig
	}
	if cond.Truthy() {
		return in.execBlockStatement(n.Then)
	}
	if n.ElseIf != nil {
		return in.execIfStatement(n.ElseIf)
	}
	if n.Else != nil {
		return in.execBlockStatement(n.Else)
	}
	return value.NullValue, nil
}

func (in *Interpreter) execWhileStatement(n *ast.WhileStatement) (value.Value, *Signal) {
	for {
		cond, sig := in.eval(n.Condition)
		if sig != nil {
			return value.NullValue, sig
		}
		if !cond.Truthy() {
			return value.NullValue, nil
		}
		_, sig = in.execBlockStatement(n.Body)
		if sig == nil {
			continue
		}
		switch sig.Kind {
		case SigBreak:
			return value.NullValue, nil
		case SigContinue:
			continue
		default:
			return value.NullValue, sig
		}
	}
}

// execForInStatement iterates arrays by element, strings by
// one-character substrings, and objects by key, each iteration
// binding Variable in a fresh scope.
func (in *Interpreter) execForInStatement(n *ast.ForInStatement) (value.Value, *Signal) {
	iterable, sig := in.eval(n.Iterable)
	if sig != nil {
		return value.NullValue, sig
	}

	var items []value.Value
	switch iterable.Kind {
	case value.Array:
		items = iterable.Arr
	case value.String:
		for _, r := range iterable.Str {
			items = append(items, value.NewString(string(r)))
		}
	case value.Object:
		for _, k := range iterable.Obj.Fields.Keys {
			if k == "__class__" {
				continue
			}
			items = append(items, value.NewString(k))
		}
	default:
		return value.NullValue, runtimeErrorf(n, "cannot iterate over %s", iterable.Kind.TypeName())
	}

	for _, item := range items {
		in.pushScope()
		in.current.Bind(n.Variable, storeCopy(item))
		_, sig := in.execStatements(n.Body.Statements)
		in.popScope()
		if sig == nil {
			continue
		}
		switch sig.Kind {
		case SigBreak:
			return value.NullValue, nil
		case SigContinue:
			continue
		default:
			return value.NullValue, sig
		}
	}
	return value.NullValue, nil
}

func (in *Interpreter) execReturnStatement(n *ast.ReturnStatement) (value.Value, *Signal) {
	if n.Value == nil {
		return value.NullValue, returnSignal(value.NullValue)
	}
	v, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}
	return value.NullValue, returnSignal(v)
}

func (in *Interpreter) execThrowStatement(n *ast.ThrowStatement) (value.Value, *Signal) {
	v, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}
	return value.NullValue, throwSignal(value.Render(v, true))
}

// execTryStatement runs the protected block and, if it unwinds with
// an exception, runs the catch block instead. The checkpoint for this
// try is implicitly gone by the time the catch body runs — a throw
// inside the catch body is just this function's return value
// propagating to whatever call is evaluating the *enclosing*
// statement list, never re-entering this try.
func (in *Interpreter) execTryStatement(n *ast.TryStatement) (value.Value, *Signal) {
	_, sig := in.execBlockStatement(n.Try)
	if sig == nil || sig.Kind != SigException {
		return value.NullValue, sig
	}

	in.pushScope()
	defer in.popScope()
	if n.CatchVar != "" {
		in.current.Bind(n.CatchVar, value.NewString(sig.Message))
	}
	return in.execStatements(n.Catch.Statements)
}
