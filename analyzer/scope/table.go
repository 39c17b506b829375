package scope

import (
	"github.com/viant/jsdbg/inspector/ast"
)

// Table holds every scope of one parsed source. Scopes refer to their parent by ID.
type Table struct {
	Scopes []*Scope
	byNode map[int]int
}

// Get returns a scope by ID or nil
func (t *Table) Get(id int) *Scope {
	if id < 0 || id >= len(t.Scopes) {
		return nil
	}
	return t.Scopes[id]
}

// Root returns the program scope
func (t *Table) Root() *Scope {
	return t.Get(0)
}

// Parent returns the enclosing scope of s, nil for the program scope
func (t *Table) Parent(s *Scope) *Scope {
	if s == nil {
		return nil
	}
	return t.Get(s.ParentID)
}

// ForNode returns the scope owned by an ast node
func (t *Table) ForNode(nodeID int) *Scope {
	id, ok := t.byNode[nodeID]
	if !ok {
		return nil
	}
	return t.Scopes[id]
}

// Chain returns s followed by all its ancestors up to the program scope
func (t *Table) Chain(s *Scope) []*Scope {
	var result []*Scope
	for ; s != nil; s = t.Parent(s) {
		result = append(result, s)
	}
	return result
}

// Lookup returns the nearest scope starting at s that binds name
func (t *Table) Lookup(s *Scope, name string) *Scope {
	for ; s != nil; s = t.Parent(s) {
		if s.Binds(name) {
			return s
		}
	}
	return nil
}

// Build creates the scope table of a tree
func Build(tree *ast.Tree) *Table {
	table := &Table{byNode: make(map[int]int)}
	tree.Walk(func(n *ast.Node) bool {
		if ast.IsLexicalScope(n) {
			table.add(tree, n)
		}
		return true
	})
	tree.Walk(func(n *ast.Node) bool {
		table.declare(tree, n)
		return true
	})
	return table
}

func (t *Table) add(tree *ast.Tree, n *ast.Node) {
	parentID := NoParent
	if parent := tree.Ancestor(n, ast.IsLexicalScope); parent != nil {
		parentID = t.byNode[parent.ID]
	}
	s := &Scope{ID: len(t.Scopes), Kind: KindBlock, Node: n.ID, ParentID: parentID, Span: n.Span}
	switch {
	case n.Is(ast.KindProgram):
		s.Kind = KindProgram
	case ast.IsFunction(n):
		s.Kind = KindFunction
		if ident := tree.Identifier(n); ident != nil {
			s.Name = ident.Text
		}
	}
	t.byNode[n.ID] = s.ID
	t.Scopes = append(t.Scopes, s)
}

// enclosing returns the scope a declaration at n belongs to
func (t *Table) enclosing(tree *ast.Tree, n *ast.Node, functionLevel bool) *Scope {
	match := ast.IsLexicalScope
	if functionLevel {
		match = func(node *ast.Node) bool {
			return ast.IsFunction(node) || node.IsRoot()
		}
	}
	if owner := tree.Ancestor(n, match); owner != nil {
		return t.ForNode(owner.ID)
	}
	return t.Root()
}

func (t *Table) declare(tree *ast.Tree, n *ast.Node) {
	switch {
	case ast.IsFunction(n):
		own := t.ForNode(n.ID)
		for _, param := range tree.Parameters(n) {
			for _, ident := range tree.BoundIdentifiers(param) {
				own.bind(ident.Text)
			}
		}
		ident := tree.Identifier(n)
		if ident == nil || n.Is(ast.KindMethodDefinition) {
			return
		}
		if n.Is(ast.KindFunctionDeclaration, ast.KindGeneratorFunctionDeclaration) {
			t.enclosing(tree, n, false).bind(ident.Text)
			return
		}
		own.bind(ident.Text) // named function expressions see their own name
	case n.Is(ast.KindClassDeclaration):
		if ident := tree.Identifier(n); ident != nil {
			t.enclosing(tree, n, false).bind(ident.Text)
		}
	case ast.IsDeclaration(n):
		target := t.enclosing(tree, n, tree.IsVarDeclaration(n))
		for _, declarator := range tree.Children(n) {
			for _, ident := range tree.BoundIdentifiers(tree.Field(declarator, ast.FieldName)) {
				target.bind(ident.Text)
			}
		}
	case n.Is(ast.KindImportClause):
		root := t.Root()
		for _, name := range importedNames(tree, n) {
			root.bind(name)
		}
	case n.Is(ast.KindCatchClause):
		body := t.ForNode(fieldID(tree, n, ast.FieldBody))
		if body == nil {
			return
		}
		for _, ident := range tree.BoundIdentifiers(tree.Field(n, ast.FieldParameter)) {
			body.bind(ident.Text)
		}
	}
}

func fieldID(tree *ast.Tree, n *ast.Node, field string) int {
	if child := tree.Field(n, field); child != nil {
		return child.ID
	}
	return -1
}

// importedNames returns local names introduced by an import clause
func importedNames(tree *ast.Tree, clause *ast.Node) []string {
	var names []string
	for _, child := range tree.Children(clause) {
		switch child.Kind {
		case ast.KindIdentifier:
			names = append(names, child.Text)
		case ast.KindNamespaceImport:
			if ident := tree.FirstChild(child, ast.KindIdentifier); ident != nil {
				names = append(names, ident.Text)
			}
		case ast.KindNamedImports:
			for _, specifier := range tree.Children(child) {
				local := tree.Field(specifier, ast.FieldAlias)
				if local == nil {
					local = tree.Field(specifier, ast.FieldName)
				}
				if local != nil && local.Text != "" {
					names = append(names, local.Text)
				}
			}
		}
	}
	return names
}
