package analyzer

import (
	"context"

	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// Step types understood by the debugger
const (
	StepOver = "stepOver"
	StepIn   = "stepIn"
	StepOut  = "stepOut"
	Resume   = "resume"
)

// Step is the command to issue instead of a requested step
type Step struct {
	NextStepType                 string          `yaml:"nextStepType" json:"nextStepType"`
	NextHiddenBreakpointLocation *graph.Location `yaml:"nextHiddenBreakpointLocation,omitempty" json:"nextHiddenBreakpointLocation,omitempty"`
}

// NextStep replaces a step paused on an await expression with a resume to the
// statement that follows it, so that the debugger does not walk through the
// promise machinery. Any other position keeps stepType.
func (a *Analyzer) NextStep(ctx context.Context, source *graph.Source, stepType string, paused graph.Position) (*Step, error) {
	tree, err := a.cache.Ast(ctx, source)
	if err != nil {
		return nil, err
	}
	step := &Step{NextStepType: stepType}
	await := awaitExpression(tree, closestNode(tree, paused, nil))
	if await == nil {
		return step, nil
	}
	next := tree.NextSibling(statementOf(tree, await))
	if next == nil {
		return step, nil
	}
	location := next.Span.Start.At(source.ID)
	return &Step{NextStepType: Resume, NextHiddenBreakpointLocation: &location}, nil
}

// awaitExpression returns the await expression n is or directly wraps
func awaitExpression(tree *ast.Tree, n *ast.Node) *ast.Node {
	switch {
	case n == nil:
		return nil
	case n.Is(ast.KindAwaitExpression):
		return n
	case n.Is(ast.KindExpressionStatement):
		if child := tree.FirstChild(n); child.Is(ast.KindAwaitExpression) {
			return child
		}
	case n.Is(ast.KindVariableDeclarator):
		if value := tree.Field(n, ast.FieldValue); value.Is(ast.KindAwaitExpression) {
			return value
		}
	case ast.IsDeclaration(n):
		for _, declarator := range tree.Children(n) {
			if value := tree.Field(declarator, ast.FieldValue); value.Is(ast.KindAwaitExpression) {
				return value
			}
		}
	}
	return nil
}

// statementOf returns the statement of the enclosing block or program holding n
func statementOf(tree *ast.Tree, n *ast.Node) *ast.Node {
	for current := n; current != nil; current = tree.Parent(current) {
		if parent := tree.Parent(current); parent.Is(ast.KindStatementBlock, ast.KindProgram) {
			return current
		}
	}
	return nil
}
