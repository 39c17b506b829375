package ast

var functionKinds = []string{
	KindFunctionDeclaration,
	KindGeneratorFunctionDeclaration,
	KindFunctionExpression,
	KindFunction,
	KindGeneratorFunction,
	KindArrowFunction,
	KindMethodDefinition,
}

// IsFunction returns true for function declarations and expressions, arrow functions and methods
func IsFunction(n *Node) bool {
	return n.Is(functionKinds...)
}

// IsLexicalScope returns true for blocks, functions and the program root
func IsLexicalScope(n *Node) bool {
	return n.Is(KindStatementBlock, KindProgram) || IsFunction(n)
}

// IsDeclaration returns true for var, let and const statements
func IsDeclaration(n *Node) bool {
	return n.Is(KindVariableDeclaration, KindLexicalDeclaration)
}

// IsVariableDeclaring returns true for declaration statements, functions with at least
// one parameter and object properties whose value is not a function
func (t *Tree) IsVariableDeclaring(n *Node) bool {
	switch {
	case IsDeclaration(n):
		return true
	case IsFunction(n):
		return len(t.Parameters(n)) > 0
	case n.Is(KindPair):
		value := t.Field(n, FieldValue)
		return value != nil && !IsFunction(value)
	}
	return false
}

// Parameters returns the parameter nodes of a function
func (t *Tree) Parameters(fn *Node) []*Node {
	if single := t.Field(fn, FieldParameter); single != nil {
		return []*Node{single}
	}
	return t.Children(t.Field(fn, FieldParameters))
}

// ParameterNames returns the names bound by the parameters of fn
func (t *Tree) ParameterNames(fn *Node) []string {
	var names []string
	for _, param := range t.Parameters(fn) {
		for _, ident := range t.BoundIdentifiers(param) {
			names = append(names, ident.Text)
		}
	}
	return names
}

// BoundIdentifiers returns the identifier nodes bound by a declaration target:
// a plain identifier or an object/array destructuring pattern.
func (t *Tree) BoundIdentifiers(pattern *Node) []*Node {
	if pattern == nil {
		return nil
	}
	switch pattern.Kind {
	case KindIdentifier, KindShorthandPropertyPattern:
		return []*Node{pattern}
	case KindAssignmentPattern, KindObjectAssignmentPattern:
		return t.BoundIdentifiers(t.Field(pattern, FieldLeft))
	case KindPairPattern:
		return t.BoundIdentifiers(t.Field(pattern, FieldValue))
	case KindRestPattern:
		return t.BoundIdentifiers(t.FirstChild(pattern))
	case KindObjectPattern, KindArrayPattern:
		var result []*Node
		for _, child := range t.Children(pattern) {
			result = append(result, t.BoundIdentifiers(child)...)
		}
		return result
	}
	return nil
}

// IsVarDeclaration returns true for function scoped var statements
func (t *Tree) IsVarDeclaration(n *Node) bool {
	return n.Is(KindVariableDeclaration)
}

// Identifier returns the identifier naming a function or class, if any
func (t *Tree) Identifier(n *Node) *Node {
	name := t.Field(n, FieldName)
	if name == nil || name.Text == "" {
		return nil
	}
	return name
}

// PropertyName returns the key of an object pair as text
func (t *Tree) PropertyName(pair *Node) string {
	key := t.Field(pair, FieldKey)
	if key == nil {
		return ""
	}
	return key.Text
}
