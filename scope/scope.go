/*
File   : mica/scope/scope.go
Author : The Mica Authors
*/
package scope

import "github.com/micalang/mica/objects"

// Scope holds the variable bindings visible to the statement currently being
// executed.
//
// Scopes form a chain: the global scope has no parent, and every function
// call pushes a child scope whose parent is the caller's scope. Lookups walk
// the chain upward, so a function body sees its parameters plus everything
// visible at the call site. Bindings always land in the current scope and
// never touch a parent, which is what makes the chain equivalent to the
// snapshot/restore contract: when the call returns and the child scope is
// discarded, every name the callee bound or shadowed reverts to the caller's
// binding. Mutations through shared array handles are the one deliberate
// exception, since those never rebind a name.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.MicaObject

	// Parent points to the enclosing scope, nil for the global scope
	Parent *Scope
}

// NewScope creates a Scope with the given parent. Pass nil for the global
// scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.MicaObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parents,
// returning the nearest binding. The second result reports whether the name
// was found anywhere on the chain.
func (s *Scope) LookUp(name string) (objects.MicaObject, bool) {
	obj, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return obj, ok
}

// Bind creates or replaces a binding in the current scope only. Parent
// bindings of the same name are shadowed, not modified.
func (s *Scope) Bind(name string, obj objects.MicaObject) {
	s.Variables[name] = obj
}
