package stdlib

import (
	"strings"

	"github.com/jung-lang/jung/value"
)

// CallMethod dispatches a method call whose receiver is not a class
// instance: arrays and strings each carry a small built-in method
// table. receiver is passed by pointer so mutating methods (push, pop,
// sort, reverse on arrays) can install the updated container back into
// it; the interpreter writes *receiver back into the receiver's
// binding when the receiver expression is a plain identifier.
//
// found is false when kind has no method table, or the table has no
// such name — the interpreter turns that into a runtime error with
// the receiver's source position, which CallMethod itself has no
// access to.
func CallMethod(rt value.Runtime, receiver *value.Value, method string, args []value.Value) (value.Value, bool, error) {
	switch receiver.Kind {
	case value.Array:
		return callArrayMethod(receiver, method, args)
	case value.String:
		return callStringMethod(receiver, method, args)
	default:
		return value.NullValue, false, nil
	}
}

func callArrayMethod(receiver *value.Value, method string, args []value.Value) (value.Value, bool, error) {
	switch method {
	case "length":
		return value.NewNumber(float64(len(receiver.Arr))), true, nil
	case "push":
		if len(args) != 1 {
			return value.NullValue, true, argErr(1, len(args), "push")
		}
		receiver.Arr = append(receiver.Arr, args[0].Deep())
		return value.NewNumber(float64(len(receiver.Arr))), true, nil
	case "pop":
		if len(receiver.Arr) == 0 {
			return value.NullValue, true, nil
		}
		last := receiver.Arr[len(receiver.Arr)-1]
		receiver.Arr = receiver.Arr[:len(receiver.Arr)-1]
		return last, true, nil
	case "includes":
		if len(args) != 1 {
			return value.NullValue, true, argErr(1, len(args), "includes")
		}
		for _, v := range receiver.Arr {
			if value.Equal(v, args[0]) {
				return value.NewBool(true), true, nil
			}
		}
		return value.NewBool(false), true, nil
	case "flat":
		var out []value.Value
		for _, v := range receiver.Arr {
			if v.Kind == value.Array {
				out = append(out, v.Arr...)
			} else {
				out = append(out, v)
			}
		}
		return value.NewArray(out), true, nil
	case "concat":
		if len(args) != 1 || args[0].Kind != value.Array {
			return value.NullValue, true, typeErr("concat", "expects an array")
		}
		out := make([]value.Value, 0, len(receiver.Arr)+len(args[0].Arr))
		out = append(out, receiver.Arr...)
		out = append(out, args[0].Arr...)
		return value.NewArray(out), true, nil
	case "sort":
		receiver.Arr = value.SortArray(receiver.Arr)
		return *receiver, true, nil
	case "reverse":
		n := len(receiver.Arr)
		out := make([]value.Value, n)
		for i, v := range receiver.Arr {
			out[n-1-i] = v
		}
		receiver.Arr = out
		return *receiver, true, nil
	default:
		return value.NullValue, false, nil
	}
}

func callStringMethod(receiver *value.Value, method string, args []value.Value) (value.Value, bool, error) {
	s := receiver.Str
	switch method {
	case "length":
		return value.NewNumber(float64(len([]rune(s)))), true, nil
	case "upper":
		return value.NewString(strings.ToUpper(s)), true, nil
	case "lower":
		return value.NewString(strings.ToLower(s)), true, nil
	case "trim":
		return value.NewString(strings.TrimSpace(s)), true, nil
	case "contains":
		if len(args) != 1 || args[0].Kind != value.String {
			return value.NullValue, true, typeErr("contains", "expects a string")
		}
		return value.NewBool(strings.Contains(s, args[0].Str)), true, nil
	case "replace":
		if len(args) != 2 || args[0].Kind != value.String || args[1].Kind != value.String {
			return value.NullValue, true, typeErr("replace", "expects (string, string)")
		}
		return value.NewString(strings.ReplaceAll(s, args[0].Str, args[1].Str)), true, nil
	case "indexOf":
		if len(args) != 1 || args[0].Kind != value.String {
			return value.NullValue, true, typeErr("indexOf", "expects a string")
		}
		return value.NewNumber(float64(strings.Index(s, args[0].Str))), true, nil
	default:
		return value.NullValue, false, nil
	}
}
