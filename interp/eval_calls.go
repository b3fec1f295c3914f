package interp

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/stdlib"
	"github.com/jung-lang/jung/value"
)

// evalArguments evaluates an argument list left to right, stopping at
// the first signal.
func (in *Interpreter) evalArguments(exprs []ast.Expression) ([]value.Value, *Signal) {
	args := make([]value.Value, 0, len(exprs))
	for _, e := range exprs {
		v, sig := in.eval(e)
		if sig != nil {
			return nil, sig
		}
		args = append(args, v)
	}
	return args, nil
}

// evalCallExpression resolves a call's callee and dispatches. A
// bare-name callee (`f(...)`) is resolved in priority order: the
// built-in registry, then the user function registry, then a variable
// in the current scope chain whose value is itself callable — higher-
// order built-ins such as map/filter/reduce being found at the first
// step means a user variable named the same never shadows them.
// Any other callee (a member access, a parenthesized expression, a
// call's own result) is simply evaluated and the resulting value
// called.
func (in *Interpreter) evalCallExpression(n *ast.CallExpression) (value.Value, *Signal) {
	args, sig := in.evalArguments(n.Arguments)
	if sig != nil {
		return value.NullValue, sig
	}

	if ident, ok := n.Callee.(*ast.Identifier); ok {
		if b, ok := in.builtins[ident.Name]; ok {
			return in.callValue(n, value.NewBuiltin(b), args)
		}
		if fn, ok := in.functions[ident.Name]; ok {
			return in.callValue(n, value.NewFunction(fn), args)
		}
		if v, ok := in.current.LookUp(ident.Name); ok && (v.Kind == value.Function || v.Kind == value.Builtin) {
			return in.callValue(n, v, args)
		}
		return value.NullValue, runtimeErrorf(n, "undefined function %s", ident.Name)
	}

	callee, sig := in.eval(n.Callee)
	if sig != nil {
		return value.NullValue, sig
	}
	return in.callValue(n, callee, args)
}

// callValue invokes fn (a Function or Builtin value) with args. It
// serves direct calls and callbacks a built-in makes back into user
// code via value.Runtime; user functions go through callFunction,
// which enforces the call-depth bound that method calls and
// constructors also reach by calling callFunction directly.
func (in *Interpreter) callValue(n ast.Node, fn value.Value, args []value.Value) (value.Value, *Signal) {
	switch fn.Kind {
	case value.Builtin:
		result, err := fn.Blt.Fn(in, args)
		if err != nil {
			return value.NullValue, runtimeErrorf(n, "%s", err.Error())
		}
		return result, nil
	case value.Function:
		return in.callFunction(n, fn.Fn, args)
	case value.String:
		// map/filter/reduce (and any other higher-order built-in) may
		// pass the name of a registered function instead of a function
		// value, per the standard library's "function value or
		// registry name" contract; resolve it the same way a bare
		// call-expression identifier would.
		resolved, ok := in.resolveCallableName(fn.Str)
		if !ok {
			return value.NullValue, runtimeErrorf(n, "undefined function %s", fn.Str)
		}
		return in.callValue(n, resolved, args)
	default:
		return value.NullValue, runtimeErrorf(n, "%s is not callable", fn.Kind.TypeName())
	}
}

// resolveCallableName looks up name in the built-in registry, then the
// user function registry — the same priority evalCallExpression uses
// for a bare identifier callee, minus the scope-variable fallback
// (there is no scope to consult for a name arriving as a plain string).
func (in *Interpreter) resolveCallableName(name string) (value.Value, bool) {
	if b, ok := in.builtins[name]; ok {
		return value.NewBuiltin(b), true
	}
	if fn, ok := in.functions[name]; ok {
		return value.NewFunction(fn), true
	}
	return value.NullValue, false
}

// callFunction runs a user-defined function or method body in a fresh
// scope pushed onto whatever scope chain is live at the call site —
// the interpreter preserves the source language's dynamic-scope
// lookup rather than capturing a definition-time closure. Parameters
// bind left to right; an omitted trailing argument falls back to its
// declared default expression, evaluated in the callee's own fresh
// scope, or to null if it has none.
func (in *Interpreter) callFunction(n ast.Node, fn *value.FunctionData, args []value.Value) (value.Value, *Signal) {
	if in.callDepth >= in.cfg.CallDepthLimit {
		logger.Debugw("call depth exceeded", "name", fn.Name, "depth", in.callDepth)
		return value.NullValue, runtimeErrorf(n, "call depth exceeded")
	}

	saved := in.current
	in.current = in.current.Push()
	in.callDepth++
	logger.Debugw("call enter", "name", fn.Name, "depth", in.callDepth)
	defer func() {
		logger.Debugw("call exit", "name", fn.Name, "depth", in.callDepth)
		in.current = saved
		in.callDepth--
	}()

	for i, param := range fn.Parameters {
		if i < len(args) {
			in.current.Bind(param.Name, storeCopy(args[i]))
			continue
		}
		if param.Default != nil {
			v, sig := in.eval(param.Default)
			if sig != nil {
				return value.NullValue, sig
			}
			in.current.Bind(param.Name, storeCopy(v))
			continue
		}
		in.current.Bind(param.Name, value.NullValue)
	}

	_, sig := in.execStatements(fn.Body.Statements)
	if sig == nil {
		return value.NullValue, nil
	}
	switch sig.Kind {
	case SigReturn:
		return sig.ReturnValue, nil
	case SigException:
		return value.NullValue, sig
	default:
		// A bare break/continue escaping a function body has nowhere
		// to go; treat it as falling off the end.
		return value.NullValue, nil
	}
}

// evalNewExpression constructs a class instance: a fresh object
// carrying a hidden __class__ tag, with its init (or constructor)
// method run against it as `this` if the class defines one.
func (in *Interpreter) evalNewExpression(n *ast.NewExpression) (value.Value, *Signal) {
	methods, ok := in.classes[n.ClassName]
	if !ok {
		return value.NullValue, runtimeErrorf(n, "undefined class %s", n.ClassName)
	}
	args, sig := in.evalArguments(n.Arguments)
	if sig != nil {
		return value.NullValue, sig
	}

	fields := value.NewMap()
	fields.Set("__class__", value.NewString(n.ClassName))
	obj := value.NewObject(fields)

	init, ok := methods.Get("init")
	if !ok {
		init, ok = methods.Get("constructor")
	}
	if ok && init.Kind == value.Function {
		saved := in.thisValue
		in.thisValue = obj
		_, sig := in.callFunction(n, init.Fn, args)
		in.thisValue = saved
		if sig != nil {
			return value.NullValue, sig
		}
	}
	return obj, nil
}

// execClassDefinition builds the class's method table — a Map from
// method name to a function value sharing the definition's AST body —
// and registers it for evalNewExpression/evalMethodCall to find.
func (in *Interpreter) execClassDefinition(n *ast.ClassDefinition) (value.Value, *Signal) {
	methods := value.NewMap()
	for _, m := range n.Methods {
		methods.Set(m.Name, value.NewFunction(&value.FunctionData{
			Name:       m.Name,
			Parameters: m.Parameters,
			Body:       m.Body,
		}))
	}
	in.classes[n.Name] = methods
	return value.NullValue, nil
}

// evalMethodCall dispatches a `receiver.method(args)` call. A class
// instance's own method table takes priority; anything else (plain
// objects, and the built-in method forms on arrays and strings) falls
// through to the standard library's method table.
func (in *Interpreter) evalMethodCall(n *ast.MethodCallExpression) (value.Value, *Signal) {
	receiver, sig := in.eval(n.Receiver)
	if sig != nil {
		return value.NullValue, sig
	}
	args, sig := in.evalArguments(n.Arguments)
	if sig != nil {
		return value.NullValue, sig
	}

	if className, ok := value.ClassName(receiver); ok {
		methods := in.classes[className]
		if method, ok := methods.Get(n.Method); ok && method.Kind == value.Function {
			saved := in.thisValue
			in.thisValue = receiver
			result, sig := in.callFunction(n, method.Fn, args)
			in.thisValue = saved
			return result, sig
		}
	}

	result, found, err := stdlib.CallMethod(in, &receiver, n.Method, args)
	if err != nil {
		return value.NullValue, runtimeErrorf(n, "%s", err.Error())
	}
	if !found {
		return value.NullValue, runtimeErrorf(n, "no method %s on %s", n.Method, receiver.Kind.TypeName())
	}
	if ident, ok := n.Receiver.(*ast.Identifier); ok {
		in.current.Assign(ident.Name, receiver)
	}
	return result, nil
}
