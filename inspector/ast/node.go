package ast

import "github.com/viant/jsdbg/inspector/graph"

// NoParent marks the program root
const NoParent = -1

// Node is a named syntax node stored in a Tree arena.
// Parent and Children hold arena indexes, never pointers.
type Node struct {
	ID       int
	Kind     string
	Field    string // field name the node occupies in its parent, if any
	Parent   int
	Children []int
	Span     graph.Span
	Text     string // identifier text, unquoted string value or other leaf content
}

// Is returns true when node kind is one of kinds
func (n *Node) Is(kinds ...string) bool {
	if n == nil {
		return false
	}
	for _, kind := range kinds {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

// IsRoot returns true for the program root
func (n *Node) IsRoot() bool {
	return n != nil && n.Parent == NoParent
}
