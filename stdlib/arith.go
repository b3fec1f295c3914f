package stdlib

import (
	"math"

	"github.com/jung-lang/jung/value"
)

func init() {
	register("abs", absFn)
	register("floor", floorFn)
	register("ceil", ceilFn)
	register("round", roundFn)
	register("sqrt", sqrtFn)
	register("min", minFn)
	register("max", maxFn)
	register("pow", powFn)
}

func oneNumber(name string, args []value.Value) (float64, error) {
	if len(args) != 1 || args[0].Kind != value.Number {
		return 0, typeErr(name, "expects a number")
	}
	return args[0].Number, nil
}

func absFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	n, err := oneNumber("abs", args)
	if err != nil {
		return value.NullValue, err
	}
	return value.NewNumber(math.Abs(n)), nil
}

func floorFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	n, err := oneNumber("floor", args)
	if err != nil {
		return value.NullValue, err
	}
	return value.NewNumber(math.Floor(n)), nil
}

func ceilFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	n, err := oneNumber("ceil", args)
	if err != nil {
		return value.NullValue, err
	}
	return value.NewNumber(math.Ceil(n)), nil
}

func roundFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	n, err := oneNumber("round", args)
	if err != nil {
		return value.NullValue, err
	}
	return value.NewNumber(math.Round(n)), nil
}

func sqrtFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	n, err := oneNumber("sqrt", args)
	if err != nil {
		return value.NullValue, err
	}
	if n < 0 {
		return value.NullValue, typeErr("sqrt", "argument must not be negative")
	}
	return value.NewNumber(math.Sqrt(n)), nil
}

func minFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NullValue, argErr(1, 0, "min")
	}
	best := args[0]
	for _, v := range args[1:] {
		if v.Kind != value.Number || best.Kind != value.Number {
			return value.NullValue, typeErr("min", "expects numbers")
		}
		if v.Number < best.Number {
			best = v
		}
	}
	return best, nil
}

func maxFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NullValue, argErr(1, 0, "max")
	}
	best := args[0]
	for _, v := range args[1:] {
		if v.Kind != value.Number || best.Kind != value.Number {
			return value.NullValue, typeErr("max", "expects numbers")
		}
		if v.Number > best.Number {
			best = v
		}
	}
	return best, nil
}

func powFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 || args[0].Kind != value.Number || args[1].Kind != value.Number {
		return value.NullValue, typeErr("pow", "expects (number, number)")
	}
	return value.NewNumber(math.Pow(args[0].Number, args[1].Number)), nil
}
