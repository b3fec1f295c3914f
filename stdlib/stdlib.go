// Package stdlib implements the jung standard library: the built-in
// registry consulted first in function-call resolution, plus the
// built-in method tables consulted when a method call's receiver is
// not a class instance.
package stdlib

import "github.com/jung-lang/jung/value"

var registry = map[string]*value.BuiltinData{}

// register adds name to the global built-in table. Called only from
// each concern file's init(), mirroring the teacher's init()-time
// registration of its std package.
func register(name string, fn value.BuiltinFunc) {
	registry[name] = &value.BuiltinData{Name: name, Fn: fn}
}

// registerAlias points an additional name at an already-registered
// built-in, for spec pairs like str/toString and jsonParse/parse.
func registerAlias(alias, existing string) {
	registry[alias] = registry[existing]
}

// Registry returns a fresh copy of the built-in table, so each
// Interpreter owns an independent map it could in principle shadow or
// extend without affecting other interpreters in the same process
// (e.g. concurrent test cases).
func Registry() map[string]*value.BuiltinData {
	out := make(map[string]*value.BuiltinData, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

func argErr(want int, got int, name string) error {
	return &ArityError{Name: name, Want: want, Got: got}
}

// ArityError reports a built-in called with the wrong argument count.
type ArityError struct {
	Name     string
	Want, Got int
}

func (e *ArityError) Error() string {
	return "wrong number of arguments to " + e.Name
}

// TypeError reports a built-in called with an argument of the wrong
// kind.
type TypeError struct {
	Name string
	Msg  string
}

func (e *TypeError) Error() string { return e.Name + ": " + e.Msg }

func typeErr(name, msg string) error { return &TypeError{Name: name, Msg: msg} }
