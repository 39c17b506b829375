package analyzer

import (
	"context"

	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// Expression is the text a token under the cursor evaluates as
type Expression struct {
	Value    string     `yaml:"value" json:"value"`
	Location graph.Span `yaml:"location" json:"location"`
}

// TokenResolution is an expression with its visibility from the paused location
type TokenResolution struct {
	Expression *Expression `yaml:"expression" json:"expression"`
	InScope    bool        `yaml:"inScope" json:"inScope"`
}

// ClosestExpression resolves token at position to an expression.
// A member expression whose property is token wins, e.g. hovering "a" in this.foo.a
// yields "this.foo.a"; otherwise the closest identifier or this is used.
func (a *Analyzer) ClosestExpression(ctx context.Context, source *graph.Source, token string, position graph.Position) (*Expression, error) {
	e, err := a.cache.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	for _, member := range e.symbolTable().MemberExpressions {
		if member.Name == token && member.Location.ContainsPosition(position) && member.Property.ContainsPosition(position) {
			return &Expression{Value: member.Expression, Location: member.Location}, nil
		}
	}
	node := closestNode(e.tree, position, nil)
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case ast.KindThis:
		return &Expression{Value: "this", Location: node.Span}, nil
	case ast.KindIdentifier, ast.KindPropertyIdentifier, ast.KindShorthandPropertyIdentifier,
		ast.KindShorthandPropertyPattern, ast.KindPrivatePropertyIdentifier:
		if node.Text == "" {
			return nil, nil
		}
		return &Expression{Value: node.Text, Location: node.Span}, nil
	}
	return nil, nil
}

// ResolveToken resolves token at position and reports whether the expression is
// visible from paused. A nil paused location treats every expression as in scope.
func (a *Analyzer) ResolveToken(ctx context.Context, source *graph.Source, token string, position graph.Position, paused *graph.Position) (*TokenResolution, error) {
	expression, err := a.ClosestExpression(ctx, source, token, position)
	if err != nil || expression == nil {
		return nil, err
	}
	result := &TokenResolution{Expression: expression, InScope: true}
	if paused == nil {
		return result, nil
	}
	outOfScope, err := a.OutOfScopeLocations(ctx, source, *paused)
	if err != nil {
		return nil, err
	}
	for _, span := range outOfScope {
		if span.ContainsPosition(expression.Location.Start) {
			result.InScope = false
			break
		}
	}
	return result, nil
}
