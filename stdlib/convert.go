package stdlib

import (
	"strconv"

	"github.com/jung-lang/jung/value"
)

func init() {
	register("str", strFn)
	registerAlias("toString", "str")
	register("int", intFn)
	register("float", floatFn)
	registerAlias("number", "float")
	register("type", typeFn)
}

func strFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.NullValue, argErr(1, len(args), "str")
	}
	return value.NewString(value.Render(args[0], true)), nil
}

// intFn truncates a number toward zero, or parses a string as an
// integer literal.
func intFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.NullValue, argErr(1, len(args), "int")
	}
	switch v := args[0]; v.Kind {
	case value.Number:
		return value.NewNumber(float64(int64(v.Number))), nil
	case value.String:
		n, err := strconv.ParseInt(v.Str, 10, 64)
		if err != nil {
			return value.NullValue, typeErr("int", "cannot parse "+strconv.Quote(v.Str)+" as an integer")
		}
		return value.NewNumber(float64(n)), nil
	case value.Bool:
		if v.Bool {
			return value.NewNumber(1), nil
		}
		return value.NewNumber(0), nil
	default:
		return value.NullValue, typeErr("int", "expects a number, string, or bool")
	}
}

func floatFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.NullValue, argErr(1, len(args), "float")
	}
	switch v := args[0]; v.Kind {
	case value.Number:
		return v, nil
	case value.String:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return value.NullValue, typeErr("float", "cannot parse "+strconv.Quote(v.Str)+" as a number")
		}
		return value.NewNumber(n), nil
	default:
		return value.NullValue, typeErr("float", "expects a number or string")
	}
}

func typeFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.NullValue, argErr(1, len(args), "type")
	}
	return value.NewString(args[0].Kind.TypeName()), nil
}
