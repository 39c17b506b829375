package analyzer

import (
	"context"

	"github.com/viant/jsdbg/analyzer/scope"
	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// ClosestPath returns the deepest node containing position, nil when nothing matches
func (a *Analyzer) ClosestPath(ctx context.Context, source *graph.Source, position graph.Position) (*ast.Node, error) {
	tree, err := a.cache.Ast(ctx, source)
	if err != nil {
		return nil, err
	}
	return closestNode(tree, position, nil), nil
}

// ClosestScope returns the innermost lexical scope containing position
func (a *Analyzer) ClosestScope(ctx context.Context, source *graph.Source, position graph.Position) (*scope.Scope, error) {
	e, err := a.cache.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	node := closestNode(e.tree, position, ast.IsLexicalScope)
	if node == nil {
		return nil, nil
	}
	return e.scopeTable().ForNode(node.ID), nil
}

// ScopeChain returns the scopes enclosing position, innermost first
func (a *Analyzer) ScopeChain(ctx context.Context, source *graph.Source, position graph.Position) ([]*scope.Scope, error) {
	e, err := a.cache.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	node := closestNode(e.tree, position, ast.IsLexicalScope)
	if node == nil {
		return nil, nil
	}
	table := e.scopeTable()
	return table.Chain(table.ForNode(node.ID)), nil
}

// LookupBinding returns the nearest scope visible from position that declares name
func (a *Analyzer) LookupBinding(ctx context.Context, source *graph.Source, name string, position graph.Position) (*scope.Scope, error) {
	e, err := a.cache.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	node := closestNode(e.tree, position, ast.IsLexicalScope)
	if node == nil {
		return nil, nil
	}
	table := e.scopeTable()
	return table.Lookup(table.ForNode(node.ID), name), nil
}

// closestNode walks the tree once in pre-order. A child can only contain position
// when its parent does, so the last match is the deepest one and non-containing
// subtrees are skipped.
func closestNode(tree *ast.Tree, position graph.Position, match func(*ast.Node) bool) *ast.Node {
	if tree.IsEmpty() {
		return nil
	}
	var closest *ast.Node
	tree.Walk(func(n *ast.Node) bool {
		if !n.Span.ContainsPosition(position) {
			return false
		}
		if match == nil || match(n) {
			closest = n
		}
		return true
	})
	return closest
}
