package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsdbg/inspector/graph"
)

func span(startLine, startColumn, endLine, endColumn int) graph.Span {
	return graph.Span{
		Start: graph.Position{Line: startLine, Column: startColumn},
		End:   graph.Position{Line: endLine, Column: endColumn},
	}
}

func TestAnalyzer_OutOfScopeLocations(t *testing.T) {
	code := `function outer() {
  function inner() {
  }
}
function sibling() {
}
var x = 1;
var arrow = () => {};
`
	tests := []struct {
		description string
		position    graph.Position
		expected    []graph.Span
	}{
		{
			description: "top level sees no function body",
			position:    graph.Position{Line: 7, Column: 4},
			expected:    []graph.Span{span(1, 14, 4, 1), span(5, 16, 6, 1), span(8, 12, 8, 20)},
		},
		{
			description: "inside inner the enclosing functions are visible",
			position:    graph.Position{Line: 3, Column: 0},
			expected:    []graph.Span{span(5, 16, 6, 1), span(8, 12, 8, 20)},
		},
		{
			description: "inside outer only inner is hidden",
			position:    graph.Position{Line: 1, Column: 17},
			expected:    []graph.Span{span(2, 16, 3, 3), span(5, 16, 6, 1), span(8, 12, 8, 20)},
		},
		{
			description: "function name belongs to the enclosing scope",
			position:    graph.Position{Line: 5, Column: 10},
			expected:    []graph.Span{span(1, 14, 4, 1), span(5, 16, 6, 1), span(8, 12, 8, 20)},
		},
	}
	a := newTestAnalyzer(t)
	source := &graph.Source{ID: "scopes.js", Text: code}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := a.OutOfScopeLocations(context.Background(), source, tc.position)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestAnalyzer_OutOfScopeLocations_Empty(t *testing.T) {
	actual, err := newTestAnalyzer(t).OutOfScopeLocations(context.Background(), &graph.Source{ID: "broken.js", Text: "function ("}, graph.Position{Line: 1})
	require.NoError(t, err)
	assert.NotNil(t, actual)
	assert.Empty(t, actual)
}
