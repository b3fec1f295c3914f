// Package value implements the tagged-union value model shared by the
// interpreter and the standard library: primitives carry value
// semantics, strings and arrays are deep-copied on assignment, and
// objects are heap-owned, reference-counted maps so that class
// instances exhibit "same object passed around" mutation semantics.
package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jung-lang/jung/ast"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
	Function
	Builtin
)

// TypeName returns the stable lower-case type name for a Kind, as
// returned by the built-in type() function.
func (k Kind) TypeName() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	case Function:
		return "function"
	case Builtin:
		return "function"
	default:
		return "unknown"
	}
}

// Map is the ordered string-keyed associative container backing
// object fields and class method tables (scope frames and the
// function/built-in registries use plain Go maps). Iteration follows insertion
// order, with deletions preserving the relative order of what
// remains.
type Map struct {
	index map[string]int
	Keys  []string
	Pairs map[string]Value
}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return &Map{index: map[string]int{}, Pairs: map[string]Value{}}
}

// Set inserts or updates key with val, preserving its original
// position on update or appending it on insert.
func (m *Map) Set(key string, val Value) {
	if _, ok := m.index[key]; !ok {
		m.index[key] = len(m.Keys)
		m.Keys = append(m.Keys, key)
	}
	m.Pairs[key] = val
}

// Get returns the value at key and whether key is present.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.Pairs[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Pairs[key]
	return ok
}

// Delete removes key, preserving iteration order of the rest.
func (m *Map) Delete(key string) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	delete(m.Pairs, key)
	delete(m.index, key)
	m.Keys = append(m.Keys[:i], m.Keys[i+1:]...)
	for j := i; j < len(m.Keys); j++ {
		m.index[m.Keys[j]] = j
	}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.Keys) }

// Clone returns a new Map with the same entries, in the same order:
// an independent copy, unlike the shared handle Retain gives.
func (m *Map) Clone() *Map {
	out := NewMap()
	for _, k := range m.Keys {
		out.Set(k, m.Pairs[k])
	}
	return out
}

// ObjectData is a heap-owned, reference-counted associative value. Class
// instances carry a hidden __class__ tag naming their class.
type ObjectData struct {
	Fields   *Map
	refcount int
}

// FunctionData is a non-owning reference to a function or method
// definition living in the AST: its parameter list (with
// default-expression subtrees) and its body statement list.
type FunctionData struct {
	Name       string
	Parameters []ast.Parameter
	Body       *ast.BlockStatement
}

// Runtime is the callback surface a built-in needs to invoke a
// function value (user-defined or built-in) passed to it, e.g. the
// predicate argument of filter() or the combining function of
// reduce(). It is implemented by the interpreter; the value package
// itself performs no evaluation.
type Runtime interface {
	Call(fn Value, args []Value) (Value, error)
}

// BuiltinFunc is a native operation. args are the evaluated call
// arguments; rt lets higher-order built-ins call back into
// user-defined functions. The Value returned is the call's result.
type BuiltinFunc func(rt Runtime, args []Value) (Value, error)

// BuiltinData wraps a native operation so it can be carried as a Value
// (e.g. passed to map/filter/reduce).
type BuiltinData struct {
	Name string
	Fn   BuiltinFunc
}

// Value is the tagged union. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	Arr    []Value
	Obj    *ObjectData
	Fn     *FunctionData
	Blt    *BuiltinData
}

var NullValue = Value{Kind: Null}

func NewBool(b bool) Value   { return Value{Kind: Bool, Bool: b} }
func NewNumber(n float64) Value { return Value{Kind: Number, Number: n} }
func NewString(s string) Value  { return Value{Kind: String, Str: s} }
func NewArray(elems []Value) Value {
	return Value{Kind: Array, Arr: elems}
}
func NewFunction(fn *FunctionData) Value { return Value{Kind: Function, Fn: fn} }
func NewBuiltin(b *BuiltinData) Value    { return Value{Kind: Builtin, Blt: b} }

// NewObject wraps fields as a fresh object value with refcount 1.
func NewObject(fields *Map) Value {
	return Value{Kind: Object, Obj: &ObjectData{Fields: fields, refcount: 1}}
}

// Retain returns a shared copy of an object value: the same
// underlying map, with its reference counter incremented. Retaining
// any non-object value is a no-op value copy (Go's own value
// semantics already give primitives/strings copy-on-assign-adjacent
// behavior at this layer; Deep below does the actual independent
// copies strings/arrays need).
func (v Value) Retain() Value {
	if v.Kind == Object {
		v.Obj.refcount++
	}
	return v
}

// Release decrements an object value's reference counter. It is a
// no-op for every other kind. Go's garbage collector reclaims the
// underlying Map once nothing references the ObjectData; Release's
// role is purely to track the spec's refcount invariant so that
// reference-counted sharing is observable through RefCount, not to
// drive manual memory management.
func (v Value) Release() {
	if v.Kind != Object {
		return
	}
	v.Obj.refcount--
}

// RefCount returns the current reference count of an object value, or
// 0 for any other kind.
func (v Value) RefCount() int {
	if v.Kind != Object {
		return 0
	}
	return v.Obj.refcount
}

// Deep returns an independent copy of v: strings and arrays are
// duplicated recursively; objects are shared (via Retain, matching
// §3.3's "copying an object value clones the handle"); primitives are
// already copy-by-value in Go.
func (v Value) Deep() Value {
	switch v.Kind {
	case String:
		return NewString(strings.Clone(v.Str))
	case Array:
		out := make([]Value, len(v.Arr))
		for i, e := range v.Arr {
			out[i] = e.Deep()
		}
		return NewArray(out)
	case Object:
		return v.Retain()
	default:
		return v
	}
}

// Truthy implements §3.3's truthiness rule: null, false, 0, "", and
// [] are falsy; everything else (including {}) is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Null:
		return false
	case Bool:
		return v.Bool
	case Number:
		return v.Number != 0
	case String:
		return v.Str != ""
	case Array:
		return len(v.Arr) != 0
	default:
		return true
	}
}

// Equal implements §4.3 equality: primitives by value, strings by
// content, other aggregates (array, object, function) by identity.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Null:
		return true
	case Bool:
		return a.Bool == b.Bool
	case Number:
		return a.Number == b.Number
	case String:
		return a.Str == b.Str
	case Array:
		return samePointer(a.Arr, b.Arr)
	case Object:
		return a.Obj == b.Obj
	case Function:
		return a.Fn == b.Fn
	case Builtin:
		return a.Blt == b.Blt
	default:
		return false
	}
}

func samePointer(a, b []Value) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}

// Render implements §4.3's string-rendering rule. top controls
// whether a string renders bare (top-level) or quoted (nested inside
// an array/object).
func Render(v Value, top bool) string {
	switch v.Kind {
	case Null:
		return "null"
	case Bool:
		if v.Bool {
			return "true"
		}
		return "false"
	case Number:
		return renderNumber(v.Number)
	case String:
		if top {
			return v.Str
		}
		return quoteString(v.Str)
	case Array:
		parts := make([]string, len(v.Arr))
		for i, e := range v.Arr {
			parts[i] = Render(e, false)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Object:
		fields := v.Obj.Fields
		parts := make([]string, 0, fields.Len())
		for _, k := range fields.Keys {
			if k == "__class__" {
				continue
			}
			val, _ := fields.Get(k)
			parts = append(parts, k+": "+Render(val, false))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Function, Builtin:
		return "<function>"
	default:
		return ""
	}
}

func renderNumber(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	if n >= -1e15 && n <= 1e15 && n == math.Trunc(n) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', 14, 64)
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\t':
			sb.WriteString("\\t")
		case '\r':
			sb.WriteString("\\r")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// ClassName returns the value's hidden __class__ tag and whether it
// is a class instance (an object carrying that tag).
func ClassName(v Value) (string, bool) {
	if v.Kind != Object {
		return "", false
	}
	tag, ok := v.Obj.Fields.Get("__class__")
	if !ok || tag.Kind != String {
		return "", false
	}
	return tag.Str, true
}

// SortArray returns a new array sorted numerically if every element
// is a number, lexicographically if every element is a string, and
// left in its original relative order (a stable no-op) for any other
// mix — matching the spec's "must not crash, order otherwise
// unspecified" rule for mixed-type arrays.
func SortArray(arr []Value) []Value {
	out := make([]Value, len(arr))
	copy(out, arr)

	allNumbers, allStrings := true, true
	for _, v := range out {
		if v.Kind != Number {
			allNumbers = false
		}
		if v.Kind != String {
			allStrings = false
		}
	}

	switch {
	case allNumbers:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	case allStrings:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Str < out[j].Str })
	}
	return out
}

// Debug renders a value with Go-ish detail for diagnostics/logging,
// never for user-visible output.
func Debug(v Value) string {
	return fmt.Sprintf("%s(%s)", v.Kind.TypeName(), Render(v, true))
}
