package stdlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-lang/jung/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime implements value.Runtime by invoking a Go callback
// directly instead of dispatching through an interpreter — enough to
// exercise map/filter/reduce in isolation.
type fakeRuntime struct {
	call func(fn value.Value, args []value.Value) (value.Value, error)
}

func (f *fakeRuntime) Call(fn value.Value, args []value.Value) (value.Value, error) {
	return f.call(fn, args)
}

func builtin(t *testing.T, name string) value.BuiltinFunc {
	t.Helper()
	b, ok := Registry()[name]
	require.True(t, ok, "no builtin registered under %q", name)
	return b.Fn
}

func TestLenOverStringArrayObject(t *testing.T) {
	fn := builtin(t, "len")
	v, err := fn(nil, []value.Value{value.NewString("hello")})
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.Number)

	v, err = fn(nil, []value.Value{value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2)})})
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.Number)

	m := value.NewMap()
	m.Set("a", value.NewNumber(1))
	m.Set("__class__", value.NewString("X"))
	v, err = fn(nil, []value.Value{value.NewObject(m)})
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.Number)
}

func TestRangeOneAndTwoArgs(t *testing.T) {
	fn := builtin(t, "range")
	v, err := fn(nil, []value.Value{value.NewNumber(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, len(v.Arr))
	assert.Equal(t, float64(0), v.Arr[0].Number)
	assert.Equal(t, float64(2), v.Arr[2].Number)

	v, err = fn(nil, []value.Value{value.NewNumber(5), value.NewNumber(8)})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7}, []float64{v.Arr[0].Number, v.Arr[1].Number, v.Arr[2].Number})
}

func TestRangeLengthProperty(t *testing.T) {
	fn := builtin(t, "len")
	rangeFn := builtin(t, "range")
	for _, n := range []float64{0, 1, 5} {
		r, err := rangeFn(nil, []value.Value{value.NewNumber(n)})
		require.NoError(t, err)
		l, err := fn(nil, []value.Value{r})
		require.NoError(t, err)
		assert.Equal(t, n, l.Number)
	}
}

func TestSliceClampsOutOfRange(t *testing.T) {
	fn := builtin(t, "slice")
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2), value.NewNumber(3)})
	v, err := fn(nil, []value.Value{arr, value.NewNumber(-5), value.NewNumber(100)})
	require.NoError(t, err)
	assert.Equal(t, 3, len(v.Arr))
}

func TestSortAndReverseReturnNewArrays(t *testing.T) {
	sortFn := builtin(t, "sort")
	arr := value.NewArray([]value.Value{value.NewNumber(3), value.NewNumber(1), value.NewNumber(2)})
	v, err := sortFn(nil, []value.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, []float64{v.Arr[0].Number, v.Arr[1].Number, v.Arr[2].Number})

	reverseFn := builtin(t, "reverse")
	v, err = reverseFn(nil, []value.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 3}, []float64{v.Arr[0].Number, v.Arr[1].Number, v.Arr[2].Number})
}

func TestKeysValuesHasDelete(t *testing.T) {
	m := value.NewMap()
	m.Set("a", value.NewNumber(1))
	m.Set("b", value.NewNumber(2))
	obj := value.NewObject(m)

	keysFn := builtin(t, "keys")
	v, err := keysFn(nil, []value.Value{obj})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string{v.Arr[0].Str, v.Arr[1].Str})

	valuesFn := builtin(t, "values")
	v, err = valuesFn(nil, []value.Value{obj})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, []float64{v.Arr[0].Number, v.Arr[1].Number})

	hasFn := builtin(t, "has")
	h, err := hasFn(nil, []value.Value{obj, value.NewString("a")})
	require.NoError(t, err)
	assert.True(t, h.Bool)

	deleteFn := builtin(t, "delete")
	_, err = deleteFn(nil, []value.Value{obj, value.NewString("a")})
	require.NoError(t, err)
	h, err = hasFn(nil, []value.Value{obj, value.NewString("a")})
	require.NoError(t, err)
	assert.False(t, h.Bool)
}

func TestPushAndPopFreeFunctions(t *testing.T) {
	push := builtin(t, "push")
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2)})
	v, err := push(nil, []value.Value{arr, value.NewNumber(3)})
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	pop := builtin(t, "pop")
	arr3 := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2), value.NewNumber(3)})
	v, err = pop(nil, []value.Value{arr3})
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)
}

func TestMapFilterReduceFlexibleArgumentOrder(t *testing.T) {
	rt := &fakeRuntime{call: func(fn value.Value, args []value.Value) (value.Value, error) {
		return value.NewNumber(args[0].Number * 2), nil
	}}
	mapFn := builtin(t, "map")
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2)})
	marker := value.NewBuiltin(&value.BuiltinData{Name: "double"})

	v, err := mapFn(rt, []value.Value{arr, marker})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, []float64{v.Arr[0].Number, v.Arr[1].Number})

	v, err = mapFn(rt, []value.Value{marker, arr})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, []float64{v.Arr[0].Number, v.Arr[1].Number})
}

func TestFilterKeepsTruthyResults(t *testing.T) {
	rt := &fakeRuntime{call: func(fn value.Value, args []value.Value) (value.Value, error) {
		return value.NewBool(int(args[0].Number)%2 == 0), nil
	}}
	filterFn := builtin(t, "filter")
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2), value.NewNumber(3), value.NewNumber(4)})
	marker := value.NewBuiltin(&value.BuiltinData{Name: "isEven"})

	v, err := filterFn(rt, []value.Value{arr, marker})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, []float64{v.Arr[0].Number, v.Arr[1].Number})
}

func TestReduceSumsWithInitialValue(t *testing.T) {
	rt := &fakeRuntime{call: func(fn value.Value, args []value.Value) (value.Value, error) {
		return value.NewNumber(args[0].Number + args[1].Number), nil
	}}
	reduceFn := builtin(t, "reduce")
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2), value.NewNumber(3)})
	marker := value.NewBuiltin(&value.BuiltinData{Name: "sum"})

	v, err := reduceFn(rt, []value.Value{arr, marker, value.NewNumber(10)})
	require.NoError(t, err)
	assert.Equal(t, float64(16), v.Number)
}

func TestStrIntFloatTypeConversions(t *testing.T) {
	strFn := builtin(t, "str")
	v, err := strFn(nil, []value.Value{value.NewNumber(3)})
	require.NoError(t, err)
	assert.Equal(t, "3", v.Str)

	intFn := builtin(t, "int")
	v, err = intFn(nil, []value.Value{value.NewNumber(3.9)})
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	v, err = intFn(nil, []value.Value{value.NewString("42")})
	require.NoError(t, err)
	assert.Equal(t, float64(42), v.Number)

	v, err = intFn(nil, []value.Value{value.NewBool(true)})
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.Number)

	v, err = intFn(nil, []value.Value{value.NewBool(false)})
	require.NoError(t, err)
	assert.Equal(t, float64(0), v.Number)

	floatFn := builtin(t, "float")
	v, err = floatFn(nil, []value.Value{value.NewString("2.5")})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Number)

	typeFn := builtin(t, "type")
	v, err = typeFn(nil, []value.Value{value.NewString("x")})
	require.NoError(t, err)
	assert.Equal(t, "string", v.Str)
}

func TestArithHelpers(t *testing.T) {
	abs := builtin(t, "abs")
	v, err := abs(nil, []value.Value{value.NewNumber(-4)})
	require.NoError(t, err)
	assert.Equal(t, float64(4), v.Number)

	sqrt := builtin(t, "sqrt")
	_, err = sqrt(nil, []value.Value{value.NewNumber(-1)})
	assert.Error(t, err)

	minFn := builtin(t, "min")
	v, err = minFn(nil, []value.Value{value.NewNumber(3), value.NewNumber(1), value.NewNumber(2)})
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.Number)

	maxFn := builtin(t, "max")
	v, err = maxFn(nil, []value.Value{value.NewNumber(3), value.NewNumber(1), value.NewNumber(2)})
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	pow := builtin(t, "pow")
	v, err = pow(nil, []value.Value{value.NewNumber(2), value.NewNumber(10)})
	require.NoError(t, err)
	assert.Equal(t, float64(1024), v.Number)
}

func TestSplitAndJoin(t *testing.T) {
	split := builtin(t, "split")
	v, err := split(nil, []value.Value{value.NewString("a,b,c"), value.NewString(",")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, []string{v.Arr[0].Str, v.Arr[1].Str, v.Arr[2].Str})

	join := builtin(t, "join")
	v, err = join(nil, []value.Value{value.NewArray([]value.Value{value.NewString("a"), value.NewString("b")}), value.NewString("-")})
	require.NoError(t, err)
	assert.Equal(t, "a-b", v.Str)
}

func TestArrayMethodsPushPopMutateViaPointer(t *testing.T) {
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2)})

	v, found, err := CallMethod(nil, &arr, "push", []value.Value{value.NewNumber(3)})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, float64(3), v.Number)
	assert.Equal(t, 3, len(arr.Arr))

	v, found, err = CallMethod(nil, &arr, "pop", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, float64(3), v.Number)
	assert.Equal(t, 2, len(arr.Arr))
}

func TestArrayMethodIncludesAndConcat(t *testing.T) {
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2)})
	v, found, err := CallMethod(nil, &arr, "includes", []value.Value{value.NewNumber(2)})
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, v.Bool)

	other := value.NewArray([]value.Value{value.NewNumber(3)})
	v, found, err = CallMethod(nil, &arr, "concat", []value.Value{other})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, len(v.Arr))
}

func TestStringMethods(t *testing.T) {
	s := value.NewString("  Hello World  ")
	v, found, err := CallMethod(nil, &s, "trim", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Hello World", v.Str)

	v, found, err = CallMethod(nil, &s, "upper", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "  HELLO WORLD  ", v.Str)

	v, found, err = CallMethod(nil, &s, "contains", []value.Value{value.NewString("World")})
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, v.Bool)
}

func TestCallMethodUnknownMethodNotFound(t *testing.T) {
	arr := value.NewArray(nil)
	_, found, err := CallMethod(nil, &arr, "nope", nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONRoundTrip(t *testing.T) {
	m := value.NewMap()
	m.Set("a", value.NewNumber(1))
	m.Set("b", value.NewArray([]value.Value{value.NewString("x"), value.NewBool(true)}))
	obj := value.NewObject(m)

	stringify := builtin(t, "jsonStringify")
	s, err := stringify(nil, []value.Value{obj})
	require.NoError(t, err)

	parse := builtin(t, "jsonParse")
	back, err := parse(nil, []value.Value{s})
	require.NoError(t, err)

	av, _ := back.Obj.Fields.Get("a")
	assert.Equal(t, float64(1), av.Number)
	bv, _ := back.Obj.Fields.Get("b")
	assert.Equal(t, "x", bv.Arr[0].Str)
	assert.True(t, bv.Arr[1].Bool)
}

func TestReadWriteAppendFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	writeFile := builtin(t, "writeFile")
	_, err := writeFile(nil, []value.Value{value.NewString(path), value.NewString("hello")})
	require.NoError(t, err)

	appendFile := builtin(t, "appendFile")
	_, err = appendFile(nil, []value.Value{value.NewString(path), value.NewString(" world")})
	require.NoError(t, err)

	readFile := builtin(t, "readFile")
	v, err := readFile(nil, []value.Value{value.NewString(path)})
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.Str)

	_ = os.Remove(path)
}

func TestAliasesPointAtSameBuiltin(t *testing.T) {
	reg := Registry()
	assert.Same(t, reg["str"], reg["toString"])
	assert.Same(t, reg["float"], reg["number"])
	assert.Same(t, reg["jsonStringify"], reg["stringify"])
	assert.Same(t, reg["jsonParse"], reg["parse"])
}
