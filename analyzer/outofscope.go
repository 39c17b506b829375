package analyzer

import (
	"context"
	"sort"

	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// OutOfScopeLocations returns the function ranges that cannot be seen from position.
// Ranges containing position are in scope, nested ranges are rolled up into their
// outermost out-of-scope ancestor and the result is sorted by start.
func (a *Analyzer) OutOfScopeLocations(ctx context.Context, source *graph.Source, position graph.Position) ([]graph.Span, error) {
	tree, err := a.cache.Ast(ctx, source)
	if err != nil {
		return nil, err
	}
	return outOfScope(tree, position), nil
}

func outOfScope(tree *ast.Tree, position graph.Position) []graph.Span {
	var candidates []graph.Span
	tree.Walk(func(n *ast.Node) bool {
		if !ast.IsFunction(n) {
			return true
		}
		span := n.Span
		// the function identifier belongs to the enclosing scope
		if ident := tree.Identifier(n); ident != nil {
			span.Start = ident.Span.End
		}
		if !span.ContainsPosition(position) {
			candidates = append(candidates, span)
		}
		return true
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start.Before(candidates[j].Start)
		}
		return candidates[j].End.Before(candidates[i].End)
	})
	result := make([]graph.Span, 0, len(candidates))
	for _, span := range candidates {
		if len(result) > 0 && result[len(result)-1].ContainsSpan(span) {
			continue
		}
		result = append(result, span)
	}
	return result
}
