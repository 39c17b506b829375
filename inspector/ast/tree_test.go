package ast

import (
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

// function f(a, {b, c: [d]}) { let e; }
func sampleTree() *Tree {
	tree := NewTree(span(1, 0, 1, 38))
	fn := tree.Add(RootID, KindFunctionDeclaration, "", span(1, 0, 1, 38), "")
	tree.Add(fn.ID, KindIdentifier, FieldName, span(1, 9, 1, 10), "f")
	params := tree.Add(fn.ID, KindFormalParameters, FieldParameters, span(1, 10, 1, 26), "")
	tree.Add(params.ID, KindIdentifier, "", span(1, 11, 1, 12), "a")
	object := tree.Add(params.ID, KindObjectPattern, "", span(1, 14, 1, 25), "")
	tree.Add(object.ID, KindShorthandPropertyPattern, "", span(1, 15, 1, 16), "b")
	pair := tree.Add(object.ID, KindPairPattern, "", span(1, 18, 1, 24), "")
	tree.Add(pair.ID, KindPropertyIdentifier, FieldKey, span(1, 18, 1, 19), "c")
	array := tree.Add(pair.ID, KindArrayPattern, FieldValue, span(1, 21, 1, 24), "")
	tree.Add(array.ID, KindIdentifier, "", span(1, 22, 1, 23), "d")
	body := tree.Add(fn.ID, KindStatementBlock, FieldBody, span(1, 27, 1, 38), "")
	let := tree.Add(body.ID, KindLexicalDeclaration, "", span(1, 29, 1, 35), "")
	declarator := tree.Add(let.ID, KindVariableDeclarator, "", span(1, 33, 1, 34), "")
	tree.Add(declarator.ID, KindIdentifier, FieldName, span(1, 33, 1, 34), "e")
	return tree
}

func TestTree_Walk(t *testing.T) {
	tree := sampleTree()
	var kinds []string
	tree.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return !n.Is(KindFormalParameters)
	})
	assert.Equal(t, []string{
		KindProgram, KindFunctionDeclaration, KindIdentifier, KindFormalParameters,
		KindStatementBlock, KindLexicalDeclaration, KindVariableDeclarator, KindIdentifier,
	}, kinds)
}

func TestTree_Navigation(t *testing.T) {
	tree := sampleTree()
	fn := tree.FirstChild(tree.Root())
	require.NotNil(t, fn)
	assert.True(t, IsFunction(fn))
	assert.Equal(t, "f", tree.Identifier(fn).Text)
	assert.Equal(t, []string{"a", "b", "d"}, tree.ParameterNames(fn))
	assert.True(t, tree.IsVariableDeclaring(fn))

	body := tree.Field(fn, FieldBody)
	require.NotNil(t, body)
	assert.Nil(t, tree.NextSibling(body))
	assert.Equal(t, body, tree.NextSibling(tree.Field(fn, FieldParameters)))

	e := tree.Node(tree.Len() - 1)
	assert.Equal(t, "e", e.Text)
	assert.Equal(t, body, tree.Ancestor(e, IsLexicalScope))
	assert.Equal(t, fn, tree.Ancestor(e, IsFunction))
	assert.Nil(t, tree.Ancestor(e, func(n *Node) bool { return n.Is(KindClass) }))
	assert.Nil(t, tree.Parent(tree.Root()))
	assert.True(t, tree.Root().IsRoot())
}

func TestEmpty(t *testing.T) {
	tree := Empty()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.Len())
	var nilNode *Node
	assert.False(t, nilNode.Is(KindProgram))
	assert.Nil(t, tree.Node(5))
}
