package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsdbg/analyzer"
	"github.com/viant/jsdbg/analyzer/scope"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/sourcetree"
)

func newRegisteredDispatcher(t *testing.T) *Dispatcher {
	a, err := analyzer.New()
	require.NoError(t, err)
	d := NewDispatcher(2, 8, nil)
	t.Cleanup(func() { _ = d.Close() })
	Register(d, a, sourcetree.NewTree(nil, nil))
	return d
}

func TestRegister_Analysis(t *testing.T) {
	d := newRegisteredDispatcher(t)
	ctx := context.Background()
	assert.Equal(t, 9, d.Methods())

	source := &graph.Source{ID: "square.js", URL: "http://example.com/square.js", Text: "function square(n) { return n * n; }\nvar two = square(2);"}
	symbols := &graph.Symbols{}
	require.NoError(t, d.Call(ctx, MethodGetSymbols, &SourceArgs{Source: source}, symbols))
	require.Len(t, symbols.Functions, 1)
	assert.Equal(t, "square", symbols.Functions[0].Name)
	assert.Equal(t, []string{"n"}, symbols.Functions[0].ParameterNames)
	var variables []string
	for _, variable := range symbols.Variables {
		variables = append(variables, variable.Name)
	}
	assert.Equal(t, []string{"n", "two"}, variables)

	closest := &scope.Scope{}
	require.NoError(t, d.Call(ctx, MethodGetClosestScope, &PositionArgs{Source: source, Position: graph.Position{Line: 1, Column: 16}}, closest))
	assert.Equal(t, scope.KindFunction, closest.Kind)
	assert.Equal(t, "square", closest.Name)
	assert.True(t, closest.Binds("n"), "bindings survive the JSON boundary")
	assert.False(t, closest.Binds("two"))

	var outOfScope []graph.Span
	require.NoError(t, d.Call(ctx, MethodGetOutOfScopeLocations, &PositionArgs{Source: source, Position: graph.Position{Line: 2, Column: 4}}, &outOfScope))
	require.Len(t, outOfScope, 1)
	assert.Equal(t, graph.Position{Line: 1, Column: 15}, outOfScope[0].Start)

	async := &graph.Source{ID: "async.js", Text: "async function f(){ await g(); h(); }"}
	step := &analyzer.Step{}
	require.NoError(t, d.Call(ctx, MethodGetNextStep, &StepArgs{Source: async, StepType: analyzer.StepOver, Paused: graph.Position{Line: 1, Column: 20}}, step))
	assert.Equal(t, analyzer.Resume, step.NextStepType)
	require.NotNil(t, step.NextHiddenBreakpointLocation)
	assert.Equal(t, graph.Location{SourceID: "async.js", Line: 1, Column: 31}, *step.NextHiddenBreakpointLocation)

	expression := &analyzer.Expression{}
	require.NoError(t, d.Call(ctx, MethodGetClosestExpression, &ExpressionArgs{Source: source, Token: "two", Position: graph.Position{Line: 2, Column: 5}}, expression))
	assert.Equal(t, "two", expression.Value)

	resolution := &analyzer.TokenResolution{}
	paused := graph.Position{Line: 2, Column: 0}
	require.NoError(t, d.Call(ctx, MethodResolveToken, &ExpressionArgs{Source: source, Token: "n", Position: graph.Position{Line: 1, Column: 28}, Paused: &paused}, resolution))
	require.NotNil(t, resolution.Expression)
	assert.Equal(t, "n", resolution.Expression.Value)
	assert.False(t, resolution.InScope)

	err := d.Call(ctx, MethodGetSymbols, &SourceArgs{}, symbols)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestRegister_Tree(t *testing.T) {
	d := newRegisteredDispatcher(t)
	ctx := context.Background()
	sources := []*graph.Source{
		{ID: "1", URL: "http://example.com/a/b/c.js"},
		{ID: "2", URL: "http://example.com/a/b/x.js"},
	}
	result := &TreeResult{}
	require.NoError(t, d.Call(ctx, MethodCreateTree, &TreeArgs{Sources: sources[:1]}, result))
	require.NotNil(t, result.SourceTree)
	assert.Equal(t, []string{"example.com"}, result.SourceTree.Names())

	debuggee := "http://cdn.com/"
	update := &TreeArgs{Sources: append(sources, &graph.Source{ID: "3", URL: "http://cdn.com/lib.js"}), DebuggeeURL: &debuggee}
	require.NoError(t, d.Call(ctx, MethodUpdateTree, update, result))
	assert.Equal(t, []string{"cdn.com", "example.com"}, result.SourceTree.Names())
	assert.Empty(t, result.Violations)
	assert.True(t, result.SourceTree.Children[1].IsDirectory(), "directories survive the JSON boundary")

	var directories []NodeRef
	require.NoError(t, d.Call(ctx, MethodGetDirectories, &DirectoriesArgs{URL: "http://example.com/a/b/x.js"}, &directories))
	assert.Equal(t, []NodeRef{
		{Name: "x.js", Path: "example.com/a/b/x.js"},
		{Name: "a/b", Path: "example.com/a/b"},
		{Name: "example.com", Path: "example.com"},
	}, directories)

	conflict := &TreeArgs{Sources: []*graph.Source{{ID: "4", URL: "http://example.com/a/b/x.js/y.js"}}}
	require.NoError(t, d.Call(ctx, MethodUpdateTree, conflict, result))
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "example.com/a/b/x.js")

	debuggee, projectRoot := "http://example.com/", "example.com"
	recreate := &TreeArgs{Sources: sources, DebuggeeURL: &debuggee, ProjectRoot: &projectRoot}
	result = &TreeResult{}
	require.NoError(t, d.Call(ctx, MethodCreateTree, recreate, result))
	assert.Empty(t, result.Violations, "sources replaced by create are not rebuilt")
	assert.Equal(t, []string{"a/b"}, result.SourceTree.Names())
}
