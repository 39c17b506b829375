package javascript

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// ErrSyntax is returned when source text does not parse cleanly
var ErrSyntax = errors.New("syntax error")

// Inspector parses JavaScript source into an ast.Tree
type Inspector struct {
	config *graph.Config
}

// NewInspector creates a new JavaScript Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Inspector{config: config}
}

// InspectSource parses src as a whole JavaScript file
func (i *Inspector) InspectSource(ctx context.Context, src []byte) (*ast.Tree, error) {
	tree := ast.NewTree(graph.SpanOf(string(src)))
	if err := i.InspectFragment(ctx, tree, src, graph.Position{Line: 1}); err != nil {
		return nil, err
	}
	return tree, nil
}

// InspectFragment parses src and appends its statements to the program root of tree.
// Node positions are shifted by offset, the position of the fragment's first byte
// in the enclosing document.
func (i *Inspector) InspectFragment(ctx context.Context, tree *ast.Tree, src []byte, offset graph.Position) error {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	parsed, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}
	defer parsed.Close()

	rootNode := parsed.RootNode()
	if rootNode.HasError() && !i.config.TolerateSyntaxErrors {
		return fmt.Errorf("%w at %v", ErrSyntax, firstError(rootNode, offset))
	}

	b := &builder{tree: tree, src: src, offset: offset}
	cursor := sitter.NewTreeCursor(rootNode)
	defer cursor.Close()
	b.visitChildren(cursor, ast.RootID)
	return nil
}

// builder copies named tree-sitter nodes into the ast arena
type builder struct {
	tree   *ast.Tree
	src    []byte
	offset graph.Position
}

func (b *builder) visitChildren(cursor *sitter.TreeCursor, parent int) {
	if !cursor.GoToFirstChild() {
		return
	}
	for {
		node := cursor.CurrentNode()
		if node.IsNamed() && node.Type() != ast.KindComment {
			child := b.tree.Add(parent, node.Type(), cursor.CurrentFieldName(), span(node, b.offset), "")
			switch {
			case child.Kind == ast.KindString:
				child.Text = unquote(node.Content(b.src))
			case node.ChildCount() == 0:
				child.Text = node.Content(b.src)
			default:
				b.visitChildren(cursor, child.ID)
			}
		}
		if !cursor.GoToNextSibling() {
			break
		}
	}
	cursor.GoToParent()
}

func span(node *sitter.Node, offset graph.Position) graph.Span {
	return graph.Span{
		Start: position(node.StartPoint(), offset),
		End:   position(node.EndPoint(), offset),
	}
}

func position(point sitter.Point, offset graph.Position) graph.Position {
	result := graph.Position{Line: int(point.Row) + offset.Line, Column: int(point.Column)}
	if point.Row == 0 {
		result.Column += offset.Column
	}
	return result
}

// firstError returns the position of the first error or missing node
func firstError(node *sitter.Node, offset graph.Position) graph.Position {
	if node.IsError() || node.IsMissing() {
		return position(node.StartPoint(), offset)
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if child.HasError() || child.IsMissing() {
			return firstError(child, offset)
		}
	}
	return position(node.StartPoint(), offset)
}

func unquote(literal string) string {
	if len(literal) >= 2 {
		quote := literal[0]
		if (quote == '"' || quote == '\'' || quote == '`') && literal[len(literal)-1] == quote {
			return literal[1 : len(literal)-1]
		}
	}
	return literal
}
