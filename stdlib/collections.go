package stdlib

import "github.com/jung-lang/jung/value"

func init() {
	register("len", lenFn)
	register("range", rangeFn)
	register("slice", sliceFn)
	register("sort", sortFn)
	register("reverse", reverseFn)
	register("keys", keysFn)
	register("values", valuesFn)
	register("has", hasFn)
	register("delete", deleteFn)
	register("push", pushFn)
	register("pop", popFn)
	register("map", mapFn)
	register("filter", filterFn)
	register("reduce", reduceFn)
}

// lenFn returns a string's rune count, an array's element count, or an
// object's field count (the hidden __class__ tag does not count).
func lenFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.NullValue, argErr(1, len(args), "len")
	}
	switch v := args[0]; v.Kind {
	case value.String:
		return value.NewNumber(float64(len([]rune(v.Str)))), nil
	case value.Array:
		return value.NewNumber(float64(len(v.Arr))), nil
	case value.Object:
		n := v.Obj.Fields.Len()
		if v.Obj.Fields.Has("__class__") {
			n--
		}
		return value.NewNumber(float64(n)), nil
	default:
		return value.NullValue, typeErr("len", "requires a string, array, or object")
	}
}

// rangeFn builds an inclusive-start, exclusive-end array of integers.
// One argument ranges from 0; two take an explicit start.
func rangeFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	var start, end float64
	switch len(args) {
	case 1:
		if args[0].Kind != value.Number {
			return value.NullValue, typeErr("range", "arguments must be numbers")
		}
		end = args[0].Number
	case 2:
		if args[0].Kind != value.Number || args[1].Kind != value.Number {
			return value.NullValue, typeErr("range", "arguments must be numbers")
		}
		start, end = args[0].Number, args[1].Number
	default:
		return value.NullValue, argErr(2, len(args), "range")
	}
	var out []value.Value
	for i := start; i < end; i++ {
		out = append(out, value.NewNumber(i))
	}
	return value.NewArray(out), nil
}

// sliceFn returns a new array holding arr[start:end], clamped to the
// array's bounds rather than erroring on an out-of-range end.
func sliceFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return value.NullValue, argErr(3, len(args), "slice")
	}
	arr, start, end := args[0], args[1], args[2]
	if arr.Kind != value.Array || start.Kind != value.Number || end.Kind != value.Number {
		return value.NullValue, typeErr("slice", "expects (array, number, number)")
	}
	lo, hi := clampRange(int(start.Number), int(end.Number), len(arr.Arr))
	out := make([]value.Value, hi-lo)
	copy(out, arr.Arr[lo:hi])
	return value.NewArray(out), nil
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

func sortFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.Array {
		return value.NullValue, typeErr("sort", "expects an array")
	}
	return value.NewArray(value.SortArray(args[0].Arr)), nil
}

func reverseFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.Array {
		return value.NullValue, typeErr("reverse", "expects an array")
	}
	src := args[0].Arr
	out := make([]value.Value, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}
	return value.NewArray(out), nil
}

func keysFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.Object {
		return value.NullValue, typeErr("keys", "expects an object")
	}
	var out []value.Value
	for _, k := range args[0].Obj.Fields.Keys {
		if k == "__class__" {
			continue
		}
		out = append(out, value.NewString(k))
	}
	return value.NewArray(out), nil
}

func valuesFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.Object {
		return value.NullValue, typeErr("values", "expects an object")
	}
	fields := args[0].Obj.Fields
	var out []value.Value
	for _, k := range fields.Keys {
		if k == "__class__" {
			continue
		}
		v, _ := fields.Get(k)
		out = append(out, v)
	}
	return value.NewArray(out), nil
}

func hasFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.Object || args[1].Kind != value.String {
		return value.NullValue, typeErr("has", "expects (object, string)")
	}
	return value.NewBool(args[0].Obj.Fields.Has(args[1].Str)), nil
}

// deleteFn removes a key from an object in place — objects are
// shared, reference-counted handles, so the mutation is visible
// through every alias of the same instance.
func deleteFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.Object || args[1].Kind != value.String {
		return value.NullValue, typeErr("delete", "expects (object, string)")
	}
	args[0].Obj.Fields.Delete(args[1].Str)
	return value.NullValue, nil
}

// pushFn and popFn are the free-function forms of the array methods of
// the same name (spec's Collections list keeps them separate from the
// member-dispatch form): they share callArrayMethod's exact mutation
// logic and return value, operating on this call's own copy of the
// array argument rather than the caller's variable.
func pushFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.Array {
		return value.NullValue, typeErr("push", "expects (array, value)")
	}
	result, _, err := callArrayMethod(&args[0], "push", args[1:])
	return result, err
}

func popFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.Array {
		return value.NullValue, typeErr("pop", "expects an array")
	}
	result, _, err := callArrayMethod(&args[0], "pop", nil)
	return result, err
}

// arrayAndFn resolves the flexible (array, fn) / (fn, array) argument
// order shared by map/filter/reduce.
func arrayAndFn(name string, args []value.Value) (value.Value, value.Value, error) {
	if len(args) < 2 {
		return value.NullValue, value.NullValue, argErr(2, len(args), name)
	}
	a, b := args[0], args[1]
	if a.Kind == value.Array {
		return a, b, nil
	}
	if b.Kind == value.Array {
		return b, a, nil
	}
	return value.NullValue, value.NullValue, typeErr(name, "expects an array and a function")
}

func mapFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	arr, fn, err := arrayAndFn("map", args)
	if err != nil {
		return value.NullValue, err
	}
	out := make([]value.Value, len(arr.Arr))
	for i, v := range arr.Arr {
		r, err := rt.Call(fn, []value.Value{v})
		if err != nil {
			return value.NullValue, err
		}
		out[i] = r
	}
	return value.NewArray(out), nil
}

func filterFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	arr, fn, err := arrayAndFn("filter", args)
	if err != nil {
		return value.NullValue, err
	}
	var out []value.Value
	for _, v := range arr.Arr {
		r, err := rt.Call(fn, []value.Value{v})
		if err != nil {
			return value.NullValue, err
		}
		if r.Truthy() {
			out = append(out, v)
		}
	}
	return value.NewArray(out), nil
}

// reduceFn accepts (array, fn, init) or (fn, array, init); the
// combining function is called as fn(accumulator, element).
func reduceFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return value.NullValue, argErr(3, len(args), "reduce")
	}
	var arr, fn value.Value
	switch {
	case args[0].Kind == value.Array:
		arr, fn = args[0], args[1]
	case args[1].Kind == value.Array:
		fn, arr = args[0], args[1]
	default:
		return value.NullValue, typeErr("reduce", "expects an array and a function")
	}
	acc := args[2]
	for _, v := range arr.Arr {
		r, err := rt.Call(fn, []value.Value{acc, v})
		if err != nil {
			return value.NullValue, err
		}
		acc = r
	}
	return acc, nil
}
