package interp

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/value"
)

// resolveIndex converts a possibly-negative index into a valid slice
// offset, and reports whether it lands in [0, length).
func resolveIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	return i, i >= 0 && i < length
}

func (in *Interpreter) evalIndexExpression(n *ast.IndexExpression) (value.Value, *Signal) {
	container, sig := in.eval(n.Container)
	if sig != nil {
		return value.NullValue, sig
	}
	index, sig := in.eval(n.Index)
	if sig != nil {
		return value.NullValue, sig
	}

	switch container.Kind {
	case value.Array:
		if index.Kind != value.Number {
			return value.NullValue, runtimeErrorf(n, "array index must be a number, got %s", index.Kind.TypeName())
		}
		i, ok := resolveIndex(int(index.Number), len(container.Arr))
		if !ok {
			return value.NullValue, nil
		}
		return container.Arr[i], nil
	case value.String:
		if index.Kind != value.Number {
			return value.NullValue, runtimeErrorf(n, "string index must be a number, got %s", index.Kind.TypeName())
		}
		i, ok := resolveIndex(int(index.Number), len(container.Str))
		if !ok {
			return value.NullValue, nil
		}
		return value.NewString(string(container.Str[i])), nil
	case value.Object:
		if index.Kind != value.String {
			return value.NullValue, runtimeErrorf(n, "object index must be a string, got %s", index.Kind.TypeName())
		}
		return in.objectGet(container, index.Str), nil
	default:
		return value.NullValue, runtimeErrorf(n, "cannot index into %s", container.Kind.TypeName())
	}
}

func (in *Interpreter) evalMemberExpression(n *ast.MemberExpression) (value.Value, *Signal) {
	obj, sig := in.eval(n.Object)
	if sig != nil {
		return value.NullValue, sig
	}
	if n.Field == "length" {
		switch obj.Kind {
		case value.String:
			return value.NewNumber(float64(len(obj.Str))), nil
		case value.Array:
			return value.NewNumber(float64(len(obj.Arr))), nil
		case value.Object:
			return value.NewNumber(float64(obj.Obj.Fields.Len())), nil
		}
	}
	if obj.Kind != value.Object {
		return value.NullValue, runtimeErrorf(n, "cannot access field %q on %s", n.Field, obj.Kind.TypeName())
	}
	return in.objectGet(obj, n.Field), nil
}

func (in *Interpreter) objectGet(obj value.Value, key string) value.Value {
	v, ok := obj.Obj.Fields.Get(key)
	if !ok {
		return value.NullValue
	}
	return v
}
