/*
File    : golox/scope/scope.go
*/
package scope

import "github.com/golox-lang/golox/values"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping.
// Each scope maintains its own variable bindings and can access variables
// from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Block scoping: each block gets its own scope, discarded on exit
// - Assignment through the chain: a block can mutate an outer binding
//
// The scope chain is traversed upward (from child to parent) during lookup
// and assignment, acting on the first match.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]values.Value

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent
// scope. A nil parent creates the global (root) scope; a non-nil parent
// creates a nested scope that can read and assign parent variables.
//
// Example usage:
//
//	globalScope := NewScope(nil)          // Create global scope
//	blockScope := NewScope(globalScope)   // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]values.Value),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent
// scopes, innermost first, returning the first match. This order ensures
// variables in inner scopes shadow those in outer scopes.
//
// The method is safe to call even if Variables is nil (lazy initialization).
func (s *Scope) LookUp(varName string) (values.Value, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]values.Value)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a variable binding in the current scope only, without
// touching parent scopes. Re-binding an existing name in the same scope
// replaces it, and binding a name held by an outer scope shadows it; both
// are legal (`var` is a definition, not an assignment).
func (s *Scope) Bind(varName string, obj values.Value) {
	if s.Variables == nil {
		s.Variables = make(map[string]values.Value)
	}
	s.Variables[varName] = obj
}

// Assign updates an existing variable in the scope where it was defined.
// Unlike Bind, it walks the chain outward and mutates the first scope that
// holds the name, so inner blocks can modify outer variables. It never
// creates a binding: assignment to an unbound name reports false and the
// caller raises the runtime error.
func (s *Scope) Assign(varName string, obj values.Value) bool {
	if s.Variables == nil {
		s.Variables = make(map[string]values.Value)
	}
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}
