package sourcetree

import "github.com/viant/jsdbg/inspector/graph"

const (
	// IndexName names the leaf holding a directory's default document
	IndexName = "(index)"
	// NoDomain groups sources without a host, such as data: URLs
	NoDomain = "(no domain)"
	// RootName names the synthetic tree root
	RootName = "root"
)

// Node is a directory or a file in the source tree.
// Directories have a non nil Children slice, leaves hold a Source or nil as an empty placeholder.
type Node struct {
	Name     string        `yaml:"name" json:"name"`
	Path     string        `yaml:"path" json:"path"` // identity key, unique within a tree
	Children []*Node       `yaml:"children,omitempty" json:"children"`
	Source   *graph.Source `yaml:"source,omitempty" json:"source,omitempty"`
}

// NewDirectory creates an empty directory node
func NewDirectory(name, path string) *Node {
	return &Node{Name: name, Path: path, Children: []*Node{}}
}

// NewLeaf creates a file node
func NewLeaf(name, path string, source *graph.Source) *Node {
	return &Node{Name: name, Path: path, Source: source}
}

// NewRoot creates the synthetic root of a tree
func NewRoot() *Node {
	return NewDirectory(RootName, "")
}

// IsDirectory returns true for directory nodes
func (n *Node) IsDirectory() bool {
	return n.Children != nil
}

// Key returns the identity of the node across rebuilds
func (n *Node) Key() string {
	return n.Path
}

// Child returns the direct child named name
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Names returns the names of the direct children
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		names = append(names, child.Name)
	}
	return names
}

// Walk visits n and its descendants in pre-order, parent is nil for n
func (n *Node) Walk(visit func(node, parent *Node)) {
	walk(n, nil, visit)
}

func walk(node, parent *Node, visit func(node, parent *Node)) {
	visit(node, parent)
	for _, child := range node.Children {
		walk(child, node, visit)
	}
}

func (n *Node) insert(index int, child *Node) {
	if index < 0 || index > len(n.Children) {
		index = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
}

func childPath(parent *Node, name string) string {
	if parent.Path == "" {
		return name
	}
	return parent.Path + "/" + name
}
