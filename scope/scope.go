// Package scope implements the interpreter's scope-stack environment:
// an ordered chain of frames searched innermost-first for variable
// lookup, assignment, and binding.
package scope

import "github.com/jung-lang/jung/value"

// Scope is a single frame in the scope chain. It holds its own
// bindings and a link to its enclosing frame (nil for the outermost,
// global frame).
type Scope struct {
	vars    map[string]value.Value
	parent  *Scope
}

// New creates a fresh top-level scope with no parent.
func New() *Scope {
	return &Scope{vars: map[string]value.Value{}}
}

// Push returns a new child scope chained to s. Used to give every
// block (function call, loop body, if/else branch, try/catch body)
// its own frame.
func (s *Scope) Push() *Scope {
	return &Scope{vars: map[string]value.Value{}, parent: s}
}

// Bind introduces or overwrites name in this exact frame. Used for
// `let` declarations, which always target the current scope.
func (s *Scope) Bind(name string, v value.Value) {
	s.vars[name] = v
}

// LookUp searches this frame and its ancestors, innermost first, and
// reports whether name is bound anywhere in the chain.
func (s *Scope) LookUp(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return value.NullValue, false
}

// Assign writes to the nearest enclosing frame that already defines
// name, and reports whether such a frame was found. Callers that get
// false back are expected to fall back to binding in the current
// scope (the bare-assignment-creates-a-binding rule).
func (s *Scope) Assign(name string, v value.Value) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return true
		}
	}
	return false
}

// Depth counts frames from s up to and including the outermost
// ancestor.
func (s *Scope) Depth() int {
	n := 0
	for cur := s; cur != nil; cur = cur.parent {
		n++
	}
	return n
}

// Parent returns the enclosing scope, or nil at the top.
func (s *Scope) Parent() *Scope { return s.parent }
