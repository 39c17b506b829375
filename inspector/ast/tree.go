package ast

import "github.com/viant/jsdbg/inspector/graph"

// RootID is the arena index of the program node
const RootID = 0

// Tree is an arena of nodes rooted at a program node
type Tree struct {
	Nodes []*Node
}

// NewTree creates a tree holding a bare program root spanning span
func NewTree(span graph.Span) *Tree {
	return &Tree{Nodes: []*Node{{ID: RootID, Kind: KindProgram, Parent: NoParent, Span: span}}}
}

// Empty creates a tree with no declarations and no scopes except the program root
func Empty() *Tree {
	return NewTree(graph.Span{Start: graph.Position{Line: 1}, End: graph.Position{Line: 1}})
}

// Root returns the program node
func (t *Tree) Root() *Node {
	return t.Nodes[RootID]
}

// IsEmpty returns true when the program has no statements
func (t *Tree) IsEmpty() bool {
	return len(t.Root().Children) == 0
}

// Len returns the number of nodes including the root
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Node returns a node by id or nil
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.Nodes) {
		return nil
	}
	return t.Nodes[id]
}

// Add appends a node as the last child of parent
func (t *Tree) Add(parent int, kind, field string, span graph.Span, text string) *Node {
	node := &Node{ID: len(t.Nodes), Kind: kind, Field: field, Parent: parent, Span: span, Text: text}
	t.Nodes = append(t.Nodes, node)
	if p := t.Node(parent); p != nil {
		p.Children = append(p.Children, node.ID)
	}
	return node
}

// Parent returns the parent of n or nil for the root
func (t *Tree) Parent(n *Node) *Node {
	if n == nil {
		return nil
	}
	return t.Node(n.Parent)
}

// Children returns the child nodes of n
func (t *Tree) Children(n *Node) []*Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	result := make([]*Node, 0, len(n.Children))
	for _, id := range n.Children {
		result = append(result, t.Nodes[id])
	}
	return result
}

// Field returns the first child of n stored under field
func (t *Tree) Field(n *Node, field string) *Node {
	if n == nil {
		return nil
	}
	for _, id := range n.Children {
		if child := t.Nodes[id]; child.Field == field {
			return child
		}
	}
	return nil
}

// FirstChild returns the first child of n, optionally restricted to kinds
func (t *Tree) FirstChild(n *Node, kinds ...string) *Node {
	if n == nil {
		return nil
	}
	for _, id := range n.Children {
		child := t.Nodes[id]
		if len(kinds) == 0 || child.Is(kinds...) {
			return child
		}
	}
	return nil
}

// NextSibling returns the node following n in its parent
func (t *Tree) NextSibling(n *Node) *Node {
	parent := t.Parent(n)
	if parent == nil {
		return nil
	}
	for i, id := range parent.Children {
		if id == n.ID && i+1 < len(parent.Children) {
			return t.Nodes[parent.Children[i+1]]
		}
	}
	return nil
}

// Ancestor returns the closest ancestor of n (excluding n) matching match
func (t *Tree) Ancestor(n *Node, match func(*Node) bool) *Node {
	for p := t.Parent(n); p != nil; p = t.Parent(p) {
		if match(p) {
			return p
		}
	}
	return nil
}

// Walk visits nodes in pre-order starting at the root.
// Children of a node are skipped when visit returns false.
func (t *Tree) Walk(visit func(n *Node) bool) {
	t.WalkFrom(t.Root(), visit)
}

// WalkFrom visits n and its descendants in pre-order
func (t *Tree) WalkFrom(n *Node, visit func(n *Node) bool) {
	if n == nil {
		return
	}
	stack := []int{n.ID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.Nodes[id]
		if !visit(node) {
			continue
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}
