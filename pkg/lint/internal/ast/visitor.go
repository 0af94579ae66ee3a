// Package ast provides tree traversal utilities for lint rules.
package ast

import "github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"

// WalkStatements calls fn for every statement in stmts and, recursively,
// for the statements nested in their compound blocks (if/else, loops,
// with, try/except/finally, match cases). It never descends into nested
// function or class declarations, which are reported to fn but not
// entered.
func WalkStatements(tree *syntax.Tree, stmts []syntax.NodeID, fn func(id syntax.NodeID)) {
	for _, id := range stmts {
		fn(id)
		n := tree.Node(id)
		switch n.Kind {
		case syntax.KindIf, syntax.KindFor, syntax.KindAsyncFor, syntax.KindWhile,
			syntax.KindWith, syntax.KindAsyncWith, syntax.KindMatchCase:
			WalkStatements(tree, n.Body, fn)
			WalkStatements(tree, n.OrElse, fn)
		case syntax.KindTry, syntax.KindTryStar:
			WalkStatements(tree, n.Body, fn)
			for _, h := range n.Handlers {
				WalkStatements(tree, tree.Node(h).Body, fn)
			}
			WalkStatements(tree, n.OrElse, fn)
			WalkStatements(tree, n.FinalBody, fn)
		case syntax.KindMatch:
			WalkStatements(tree, n.Body, fn)
		}
	}
}

// AssignTargets returns the binding targets of an assignment statement:
// every target of an Assign, the single target of an AnnAssign. Other
// statements have none.
func AssignTargets(tree *syntax.Tree, id syntax.NodeID) []syntax.NodeID {
	n := tree.Node(id)
	switch n.Kind {
	case syntax.KindAssign:
		return n.Targets
	case syntax.KindAnnAssign:
		if n.Target.IsValid() {
			return []syntax.NodeID{n.Target}
		}
	}
	return nil
}

// FlattenTargets expands tuple, list and starred unpacking targets into
// the individual targets they bind.
func FlattenTargets(tree *syntax.Tree, targets []syntax.NodeID) []syntax.NodeID {
	var out []syntax.NodeID
	for _, id := range targets {
		n := tree.Node(id)
		switch n.Kind {
		case syntax.KindTuple, syntax.KindList:
			out = append(out, FlattenTargets(tree, n.Elts)...)
		case syntax.KindStarred:
			out = append(out, FlattenTargets(tree, []syntax.NodeID{n.Value})...)
		default:
			out = append(out, id)
		}
	}
	return out
}

// DecoratorName resolves the identifier a decorator refers to. Bare names
// and dotted accesses resolve to their final identifier, and a call
// resolves through its callee, so `@dataclass`, `@dataclasses.dataclass`
// and `@dataclass(slots=True)` all yield "dataclass". Anything else, such
// as a subscript, resolves to "".
func DecoratorName(tree *syntax.Tree, id syntax.NodeID) string {
	n := tree.Node(id)
	if n.Kind == syntax.KindCall {
		return tree.NameOf(n.Func)
	}
	return tree.NameOf(id)
}

// HasDecorator reports whether the declaration id carries a decorator
// resolving to name.
func HasDecorator(tree *syntax.Tree, id syntax.NodeID, name string) bool {
	for _, dec := range tree.Node(id).Decorators {
		if DecoratorName(tree, dec) == name {
			return true
		}
	}
	return false
}

// CountLeaves counts the operands of a boolean expression, descending
// into nested boolean expressions whatever their operator.
func CountLeaves(tree *syntax.Tree, id syntax.NodeID) int {
	n := tree.Node(id)
	if n.Kind != syntax.KindBoolOp {
		return 1
	}
	count := 0
	for _, v := range n.Values {
		count += CountLeaves(tree, v)
	}
	return count
}
