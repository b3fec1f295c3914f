package interp

import (
	"github.com/jung-lang/jung/ast"
	"github.com/jung-lang/jung/token"
	"github.com/jung-lang/jung/value"
)

func (in *Interpreter) execVarDeclaration(n *ast.VarDeclaration) (value.Value, *Signal) {
	v, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}
	in.current.Bind(n.Name, storeCopy(v))
	return value.NullValue, nil
}

// execAssignStatement implements the bare `name = expr` rule: write
// through to the nearest enclosing scope that already defines name,
// or create the binding in the current scope if none does.
func (in *Interpreter) execAssignStatement(n *ast.AssignStatement) (value.Value, *Signal) {
	v, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}
	v = storeCopy(v)
	if !in.current.Assign(n.Name, v) {
		in.current.Bind(n.Name, v)
	}
	return value.NullValue, nil
}

func (in *Interpreter) execCompoundAssignStatement(n *ast.CompoundAssignStatement) (value.Value, *Signal) {
	old, ok := in.current.LookUp(n.Name)
	if !ok {
		return value.NullValue, runtimeErrorf(n, "undefined variable %s", n.Name)
	}
	rhs, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}
	result, sig := in.applyCompoundOp(n, n.Operator, old, rhs)
	if sig != nil {
		return value.NullValue, sig
	}
	in.current.Assign(n.Name, storeCopy(result))
	return value.NullValue, nil
}

func (in *Interpreter) execMemberAssignStatement(n *ast.MemberAssignStatement) (value.Value, *Signal) {
	obj, sig := in.eval(n.Object)
	if sig != nil {
		return value.NullValue, sig
	}
	if obj.Kind != value.Object {
		return value.NullValue, runtimeErrorf(n, "cannot assign field %q on %s", n.Field, obj.Kind.TypeName())
	}
	rhs, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}

	newVal := rhs
	if n.Operator != token.ASSIGN {
		old := in.objectGet(obj, n.Field)
		newVal, sig = in.applyCompoundOp(n, n.Operator, old, rhs)
		if sig != nil {
			return value.NullValue, sig
		}
	}
	obj.Obj.Fields.Set(n.Field, storeCopy(newVal))
	return value.NullValue, nil
}

func (in *Interpreter) execIndexAssignStatement(n *ast.IndexAssignStatement) (value.Value, *Signal) {
	container, sig := in.eval(n.Container)
	if sig != nil {
		return value.NullValue, sig
	}
	index, sig := in.eval(n.Index)
	if sig != nil {
		return value.NullValue, sig
	}
	rhs, sig := in.eval(n.Value)
	if sig != nil {
		return value.NullValue, sig
	}

	switch container.Kind {
	case value.Object:
		if index.Kind != value.String {
			return value.NullValue, runtimeErrorf(n, "object index must be a string, got %s", index.Kind.TypeName())
		}
		newVal := rhs
		if n.Operator != token.ASSIGN {
			old := in.objectGet(container, index.Str)
			newVal, sig = in.applyCompoundOp(n, n.Operator, old, rhs)
			if sig != nil {
				return value.NullValue, sig
			}
		}
		container.Obj.Fields.Set(index.Str, storeCopy(newVal))
		return value.NullValue, nil

	case value.Array:
		if index.Kind != value.Number {
			return value.NullValue, runtimeErrorf(n, "array index must be a number, got %s", index.Kind.TypeName())
		}
		i, ok := resolveIndex(int(index.Number), len(container.Arr))
		if !ok {
			// Out-of-range writes on arrays are silently ignored.
			return value.NullValue, nil
		}
		newVal := rhs
		if n.Operator != token.ASSIGN {
			newVal, sig = in.applyCompoundOp(n, n.Operator, container.Arr[i], rhs)
			if sig != nil {
				return value.NullValue, sig
			}
		}
		container.Arr[i] = storeCopy(newVal)
		return value.NullValue, nil

	default:
		return value.NullValue, runtimeErrorf(n, "cannot index-assign into %s", container.Kind.TypeName())
	}
}
