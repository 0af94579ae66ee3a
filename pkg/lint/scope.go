package lint

import "github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"

// ScopeKind classifies the declaration that owns a scope.
type ScopeKind int

// Scope kinds.
const (
	ScopeModule ScopeKind = iota
	ScopeClass
	ScopeFunction
)

// String returns the scope kind name.
func (k ScopeKind) String() string {
	switch k {
	case ScopeModule:
		return "module"
	case ScopeClass:
		return "class"
	case ScopeFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Scope is the innermost module, class or function enclosing a node.
type Scope struct {
	Kind  ScopeKind
	Owner syntax.NodeID
}

// Scopes maps every node of a tree to its enclosing scope.
type Scopes struct {
	module Scope
	byNode []Scope
}

// ResolveScopes computes the enclosing scope of every node in one
// top-down pass. A class or function declaration belongs to the scope it
// is declared in; everything beneath it belongs to the scope it opens.
// Conditionals, loops and exception blocks never open a scope.
func ResolveScopes(tree *syntax.Tree) *Scopes {
	module := Scope{Kind: ScopeModule, Owner: tree.Root()}
	s := &Scopes{
		module: module,
		byNode: make([]Scope, tree.Len()+1),
	}
	for i := range s.byNode {
		s.byNode[i] = module
	}

	var visit func(id syntax.NodeID, current Scope)
	visit = func(id syntax.NodeID, current Scope) {
		s.byNode[id] = current
		inner := current
		switch kind := tree.Kind(id); {
		case kind == syntax.KindClassDef:
			inner = Scope{Kind: ScopeClass, Owner: id}
		case kind.IsFunction():
			inner = Scope{Kind: ScopeFunction, Owner: id}
		}
		for _, child := range tree.Children(id) {
			visit(child, inner)
		}
	}
	if tree.Contains(tree.Root()) {
		visit(tree.Root(), module)
	}
	return s
}

// Of returns the enclosing scope of id. The mapping is total: ids that
// are not part of the tree resolve to the module scope.
func (s *Scopes) Of(id syntax.NodeID) Scope {
	if !id.IsValid() || int(id) >= len(s.byNode) {
		return s.module
	}
	return s.byNode[id]
}

// IsModuleLevel reports whether id is declared directly in the module.
func (s *Scopes) IsModuleLevel(id syntax.NodeID) bool {
	return s.Of(id).Kind == ScopeModule
}
