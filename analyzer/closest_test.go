package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsdbg/analyzer/scope"
	"github.com/viant/jsdbg/inspector/graph"
)

const nested = `var top = 1;
function outer(a) {
  var b = a;
  if (b) {
    let c = b;
    return function inner(d) {
      return c + d;
    };
  }
}
`

func TestAnalyzer_ClosestScope_Monotonic(t *testing.T) {
	a := newTestAnalyzer(t)
	source := &graph.Source{ID: "nested.js", Text: nested}
	table, err := a.Scopes(context.Background(), source)
	require.NoError(t, err)
	require.True(t, len(table.Scopes) > 3)

	for i, line := range strings.Split(nested, "\n") {
		for column := 0; column <= len(line); column++ {
			position := graph.Position{Line: i + 1, Column: column}
			closest, err := a.ClosestScope(context.Background(), source, position)
			require.NoError(t, err)
			require.NotNil(t, closest, position.String())
			assert.True(t, closest.Span.ContainsPosition(position), position.String())
			for _, candidate := range table.Scopes {
				if candidate.Span.ContainsPosition(position) {
					assert.True(t, candidate.Span.ContainsSpan(closest.Span), "%v: %v does not nest in %v", position, closest.Span, candidate.Span)
				}
			}
		}
	}
}

func TestAnalyzer_ScopeChain(t *testing.T) {
	a := newTestAnalyzer(t)
	source := &graph.Source{ID: "nested.js", Text: nested}
	chain, err := a.ScopeChain(context.Background(), source, graph.Position{Line: 7, Column: 13})
	require.NoError(t, err)

	var kinds []scope.Kind
	for _, s := range chain {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []scope.Kind{scope.KindBlock, scope.KindFunction, scope.KindBlock, scope.KindBlock, scope.KindFunction, scope.KindProgram}, kinds)
	assert.Equal(t, "inner", chain[1].Name)
	assert.Equal(t, "outer", chain[4].Name)

	owner, err := a.LookupBinding(context.Background(), source, "c", graph.Position{Line: 7, Column: 13})
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, chain[2], owner)

	owner, err = a.LookupBinding(context.Background(), source, "b", graph.Position{Line: 7, Column: 13})
	require.NoError(t, err)
	assert.Equal(t, chain[4], owner)
}

func TestAnalyzer_ClosestPath(t *testing.T) {
	a := newTestAnalyzer(t)
	node, err := a.ClosestPath(context.Background(), &graph.Source{ID: "nested.js", Text: nested}, graph.Position{Line: 3, Column: 6})
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "b", node.Text)

	node, err = a.ClosestPath(context.Background(), &graph.Source{ID: "broken.js", Text: "var = ;"}, graph.Position{Line: 1, Column: 1})
	require.NoError(t, err)
	assert.Nil(t, node, "an unparseable source has no nodes")
}

func TestAnalyzer_ClosestExpression(t *testing.T) {
	code := "class A { m() { return this.foo.a + bar; } }"
	tests := []struct {
		description string
		token       string
		column      int
		expected    string
	}{
		{description: "last property of a member chain", token: "a", column: 32, expected: "this.foo.a"},
		{description: "inner member", token: "foo", column: 29, expected: "this.foo"},
		{description: "this", token: "this", column: 24, expected: "this"},
		{description: "identifier", token: "bar", column: 37, expected: "bar"},
		{description: "nothing under the cursor", token: "class", column: 2},
	}
	a := newTestAnalyzer(t)
	source := &graph.Source{ID: "member.js", Text: code}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := a.ClosestExpression(context.Background(), source, tc.token, graph.Position{Line: 1, Column: tc.column})
			require.NoError(t, err)
			if tc.expected == "" {
				assert.Nil(t, actual)
				return
			}
			require.NotNil(t, actual)
			assert.Equal(t, tc.expected, actual.Value)
		})
	}
}

func TestAnalyzer_ResolveToken(t *testing.T) {
	a := newTestAnalyzer(t)
	source := &graph.Source{ID: "nested.js", Text: nested}

	inside := graph.Position{Line: 7, Column: 7}
	resolution, err := a.ResolveToken(context.Background(), source, "d", graph.Position{Line: 7, Column: 17}, &inside)
	require.NoError(t, err)
	require.NotNil(t, resolution)
	assert.Equal(t, "d", resolution.Expression.Value)
	assert.True(t, resolution.InScope)

	outside := graph.Position{Line: 1, Column: 4}
	resolution, err = a.ResolveToken(context.Background(), source, "d", graph.Position{Line: 7, Column: 17}, &outside)
	require.NoError(t, err)
	assert.False(t, resolution.InScope)

	resolution, err = a.ResolveToken(context.Background(), source, "d", graph.Position{Line: 7, Column: 17}, nil)
	require.NoError(t, err)
	assert.True(t, resolution.InScope)
}
