package interp

import (
	"math"
	"strings"

	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
	"github.com/jung-lang/jung/value"
)

// storeCopy is applied at every point a value is bound into a new
// slot (a variable, an object field, an array element, a function
// parameter): strings and arrays are deep-copied so later mutation
// through one name is never visible through another, while objects
// are retained (shared handle, §3.3's reference-counted aliasing).
func storeCopy(v value.Value) value.Value { return v.Deep() }

// eval dispatches on an expression node's concrete type and returns
// its value, or propagates a signal (always SigException for
// expressions — break/continue/return never originate inside an
// expression).
func (in *Interpreter) eval(expr ast.Expression) (value.Value, *Signal) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return value.NewNumber(n.Value), nil
	case *ast.StringLiteral:
		return value.NewString(n.Value), nil
	case *ast.BoolLiteral:
		return value.NewBool(n.Value), nil
	case *ast.NullLiteral:
		return value.NullValue, nil
	case *ast.ThisExpression:
		return in.thisValue, nil
	case *ast.Identifier:
		return in.evalIdentifier(n)
	case *ast.ArrayLiteral:
		return in.evalArrayLiteral(n)
	case *ast.ObjectLiteral:
		return in.evalObjectLiteral(n)
	case *ast.StringInterpolation:
		return in.evalStringInterpolation(n)
	case *ast.IndexExpression:
		return in.evalIndexExpression(n)
	case *ast.MemberExpression:
		return in.evalMemberExpression(n)
	case *ast.MethodCallExpression:
		return in.evalMethodCall(n)
	case *ast.NewExpression:
		return in.evalNewExpression(n)
	case *ast.CallExpression:
		return in.evalCallExpression(n)
	case *ast.BinaryExpression:
		return in.evalBinaryExpression(n)
	case *ast.UnaryExpression:
		return in.evalUnaryExpression(n)
	case *ast.TernaryExpression:
		return in.evalTernaryExpression(n)
	default:
		return value.NullValue, runtimeErrorf(expr, "unhandled expression node %T", expr)
	}
}

func (in *Interpreter) evalIdentifier(n *ast.Identifier) (value.Value, *Signal) {
	if v, ok := in.current.LookUp(n.Name); ok {
		return v, nil
	}
	if fn, ok := in.functions[n.Name]; ok {
		return value.NewFunction(fn), nil
	}
	if b, ok := in.builtins[n.Name]; ok {
		return value.NewBuiltin(b), nil
	}
	return value.NullValue, runtimeErrorf(n, "undefined variable %s", n.Name)
}

func (in *Interpreter) evalArrayLiteral(n *ast.ArrayLiteral) (value.Value, *Signal) {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, sig := in.eval(e)
		if sig != nil {
			return value.NullValue, sig
		}
		elems = append(elems, storeCopy(v))
	}
	return value.NewArray(elems), nil
}

func (in *Interpreter) evalObjectLiteral(n *ast.ObjectLiteral) (value.Value, *Signal) {
	m := value.NewMap()
	for _, entry := range n.Entries {
		v, sig := in.eval(entry.Value)
		if sig != nil {
			return value.NullValue, sig
		}
		m.Set(entry.Key, storeCopy(v))
	}
	return value.NewObject(m), nil
}

func (in *Interpreter) evalStringInterpolation(n *ast.StringInterpolation) (value.Value, *Signal) {
	var sb strings.Builder
	for _, part := range n.Parts {
		v, sig := in.eval(part)
		if sig != nil {
			return value.NullValue, sig
		}
		sb.WriteString(value.Render(v, true))
	}
	return value.NewString(sb.String()), nil
}

func (in *Interpreter) evalUnaryExpression(n *ast.UnaryExpression) (value.Value, *Signal) {
	operand, sig := in.eval(n.Operand)
	if sig != nil {
		return value.NullValue, sig
	}
	switch n.Operator {
	case token.MINUS:
		if operand.Kind != value.Number {
			return value.NullValue, runtimeErrorf(n, "unary - requires a number, got %s", operand.Kind.TypeName())
		}
		return value.NewNumber(-operand.Number), nil
	case token.NOT:
		return value.NewBool(!operand.Truthy()), nil
	default:
		return value.NullValue, runtimeErrorf(n, "unknown unary operator %s", n.Operator)
	}
}

func (in *Interpreter) evalTernaryExpression(n *ast.TernaryExpression) (value.Value, *Signal) {
	cond, sig := in.eval(n.Condition)
	if sig != nil {
		return value.NullValue, sig
	}
	if cond.Truthy() {
		return in.eval(n.Then)
	}
	return in.eval(n.Else)
}

func (in *Interpreter) evalBinaryExpression(n *ast.BinaryExpression) (value.Value, *Signal) {
	if n.Operator == token.AND {
		left, sig := in.eval(n.Left)
		if sig != nil {
			return value.NullValue, sig
		}
		if !left.Truthy() {
			return left, nil
		}
		return in.eval(n.Right)
	}
	if n.Operator == token.OR {
		left, sig := in.eval(n.Left)
		if sig != nil {
			return value.NullValue, sig
		}
		if left.Truthy() {
			return left, nil
		}
		return in.eval(n.Right)
	}

	left, sig := in.eval(n.Left)
	if sig != nil {
		return value.NullValue, sig
	}
	right, sig := in.eval(n.Right)
	if sig != nil {
		return value.NullValue, sig
	}

	switch n.Operator {
	case token.EQ:
		return value.NewBool(value.Equal(left, right)), nil
	case token.NOT_EQ:
		return value.NewBool(!value.Equal(left, right)), nil
	case token.PLUS:
		return in.evalPlus(n, left, right)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return in.evalArithmetic(n, left, right)
	case token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		return in.evalComparison(n, left, right)
	default:
		return value.NullValue, runtimeErrorf(n, "unknown binary operator %s", n.Operator)
	}
}

func (in *Interpreter) evalPlus(n ast.Node, left, right value.Value) (value.Value, *Signal) {
	if left.Kind == value.String || right.Kind == value.String {
		return value.NewString(value.Render(left, true) + value.Render(right, true)), nil
	}
	if left.Kind != value.Number || right.Kind != value.Number {
		return value.NullValue, runtimeErrorf(n, "+ requires numbers or a string operand, got %s and %s", left.Kind.TypeName(), right.Kind.TypeName())
	}
	return value.NewNumber(left.Number + right.Number), nil
}

func (in *Interpreter) evalArithmetic(n *ast.BinaryExpression, left, right value.Value) (value.Value, *Signal) {
	if left.Kind != value.Number || right.Kind != value.Number {
		return value.NullValue, runtimeErrorf(n, "%s requires numbers, got %s and %s", n.Operator, left.Kind.TypeName(), right.Kind.TypeName())
	}
	a, b := left.Number, right.Number

	switch n.Operator {
	case token.MINUS:
		return value.NewNumber(a - b), nil
	case token.STAR:
		return value.NewNumber(a * b), nil
	case token.SLASH:
		if b == 0 {
			return value.NullValue, runtimeErrorf(n, "division by zero")
		}
		if a == math.Trunc(a) && b == math.Trunc(b) {
			return value.NewNumber(math.Trunc(a / b)), nil
		}
		return value.NewNumber(a / b), nil
	case token.PERCENT:
		if b == 0 {
			return value.NullValue, runtimeErrorf(n, "modulo by zero")
		}
		return value.NewNumber(math.Mod(a, b)), nil
	}
	panic("unreachable")
}

// applyCompoundOp implements the numeric-or-string-concat semantics of
// `+=`, `-=`, `*=`, `/=` shared by variable, member, and index
// compound assignment.
func (in *Interpreter) applyCompoundOp(n ast.Node, op token.Type, old, rhs value.Value) (value.Value, *Signal) {
	if op == token.PLUS_EQ {
		return in.evalPlus(n, old, rhs)
	}
	if old.Kind != value.Number || rhs.Kind != value.Number {
		return value.NullValue, runtimeErrorf(n, "%s requires numbers, got %s and %s", op, old.Kind.TypeName(), rhs.Kind.TypeName())
	}
	a, b := old.Number, rhs.Number
	switch op {
	case token.MINUS_EQ:
		return value.NewNumber(a - b), nil
	case token.STAR_EQ:
		return value.NewNumber(a * b), nil
	case token.SLASH_EQ:
		if b == 0 {
			return value.NullValue, runtimeErrorf(n, "division by zero")
		}
		if a == math.Trunc(a) && b == math.Trunc(b) {
			return value.NewNumber(math.Trunc(a / b)), nil
		}
		return value.NewNumber(a / b), nil
	default:
		return value.NullValue, runtimeErrorf(n, "unknown compound-assignment operator %s", op)
	}
}

func (in *Interpreter) evalComparison(n *ast.BinaryExpression, left, right value.Value) (value.Value, *Signal) {
	if left.Kind != value.Number || right.Kind != value.Number {
		return value.NullValue, runtimeErrorf(n, "%s requires numbers, got %s and %s", n.Operator, left.Kind.TypeName(), right.Kind.TypeName())
	}
	a, b := left.Number, right.Number
	switch n.Operator {
	case token.LT:
		return value.NewBool(a < b), nil
	case token.LT_EQ:
		return value.NewBool(a <= b), nil
	case token.GT:
		return value.NewBool(a > b), nil
	case token.GT_EQ:
		return value.NewBool(a >= b), nil
	}
	panic("unreachable")
}
