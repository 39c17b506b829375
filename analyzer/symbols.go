package analyzer

import (
	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// AnonymousName is recorded for declarations without a resolvable name
const AnonymousName = "anonymous"

// extractSymbols collects declarations in one pre-order walk
func extractSymbols(tree *ast.Tree) *graph.Symbols {
	symbols := &graph.Symbols{
		Functions: []*graph.Declaration{},
		Variables: []*graph.Declaration{},
	}
	tree.Walk(func(n *ast.Node) bool {
		if tree.IsVariableDeclaring(n) {
			symbols.Variables = append(symbols.Variables, variableDeclarations(tree, n)...)
		}
		if ast.IsFunction(n) {
			symbols.Functions = append(symbols.Functions, &graph.Declaration{
				Name:           functionName(tree, n),
				Location:       n.Span,
				ParameterNames: tree.ParameterNames(n),
			})
		}
		if n.Is(ast.KindClassDeclaration) {
			name := AnonymousName
			if ident := tree.Identifier(n); ident != nil {
				name = ident.Text
			}
			symbols.Variables = append(symbols.Variables, &graph.Declaration{Name: name, Location: n.Span})
		}
		if n.Is(ast.KindMemberExpression) {
			if member := memberExpression(tree, n); member != nil {
				symbols.MemberExpressions = append(symbols.MemberExpressions, member)
			}
		}
		return true
	})
	return symbols
}

// variableDeclarations returns one declaration per name bound by n
func variableDeclarations(tree *ast.Tree, n *ast.Node) []*graph.Declaration {
	var result []*graph.Declaration
	switch {
	case n.Is(ast.KindPair):
		result = append(result, declaration(tree.PropertyName(n), n.Span))
	case ast.IsDeclaration(n):
		for _, declarator := range tree.Children(n) {
			target := tree.Field(declarator, ast.FieldName)
			if target.Is(ast.KindIdentifier) {
				result = append(result, declaration(target.Text, declarator.Span))
				continue
			}
			for _, ident := range tree.BoundIdentifiers(target) {
				result = append(result, declaration(ident.Text, ident.Span))
			}
		}
	case ast.IsFunction(n):
		for _, param := range tree.Parameters(n) {
			for _, ident := range tree.BoundIdentifiers(param) {
				result = append(result, declaration(ident.Text, ident.Span))
			}
		}
	}
	return result
}

func declaration(name string, span graph.Span) *graph.Declaration {
	if name == "" {
		name = AnonymousName
	}
	return &graph.Declaration{Name: name, Location: span}
}

// functionName resolves a function name from its identifier, the object key or class
// field holding it, the declarator it initializes or the assignment target.
func functionName(tree *ast.Tree, fn *ast.Node) string {
	if ident := tree.Identifier(fn); ident != nil {
		return ident.Text
	}
	parent := tree.Parent(fn)
	switch {
	case parent.Is(ast.KindPair):
		if name := tree.PropertyName(parent); name != "" {
			return name
		}
	case parent.Is(ast.KindFieldDefinition, ast.KindPublicFieldDefinition):
		if property := tree.Field(parent, ast.FieldProperty); property != nil && property.Text != "" {
			return property.Text
		}
		if name := tree.Identifier(parent); name != nil {
			return name.Text
		}
	case parent.Is(ast.KindVariableDeclarator):
		if name := tree.Field(parent, ast.FieldName); name.Is(ast.KindIdentifier) && fn.Field == ast.FieldValue {
			return name.Text
		}
	case parent.Is(ast.KindAssignmentExpression):
		if fn.Field != ast.FieldRight {
			break
		}
		left := tree.Field(parent, ast.FieldLeft)
		if left.Is(ast.KindMemberExpression) {
			if property := tree.Field(left, ast.FieldProperty); property != nil && property.Text != "" {
				return property.Text
			}
		}
		if left.Is(ast.KindIdentifier) {
			return left.Text
		}
	}
	return AnonymousName
}

// memberExpression describes a property access rooted at an identifier or this
func memberExpression(tree *ast.Tree, n *ast.Node) *graph.MemberExpression {
	property := tree.Field(n, ast.FieldProperty)
	if property == nil || property.Text == "" {
		return nil
	}
	expression, ok := memberPath(tree, n)
	if !ok {
		return nil
	}
	return &graph.MemberExpression{
		Name:       property.Text,
		Expression: expression,
		Location:   n.Span,
		Property:   property.Span,
	}
}

// memberPath rebuilds the dotted text of an object chain such as this.foo.a
func memberPath(tree *ast.Tree, n *ast.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Kind {
	case ast.KindIdentifier:
		return n.Text, n.Text != ""
	case ast.KindThis:
		return "this", true
	case ast.KindMemberExpression:
		object, ok := memberPath(tree, tree.Field(n, ast.FieldObject))
		property := tree.Field(n, ast.FieldProperty)
		if !ok || property == nil || property.Text == "" {
			return "", false
		}
		return object + "." + property.Text, true
	}
	return "", false
}
