package sourcetree

// Collapse returns a copy of root where every directory below depth 1 whose only child is a
// directory is merged with it into a single "parent/child" node. Collapsing a collapsed tree is a no-op.
func Collapse(root *Node) *Node {
	return collapse(root, 0)
}

func collapse(node *Node, depth int) *Node {
	if !node.IsDirectory() {
		return NewLeaf(node.Name, node.Path, node.Source)
	}
	name, current := node.Name, node
	if depth > 1 {
		for len(current.Children) == 1 && current.Children[0].IsDirectory() {
			current = current.Children[0]
			name += "/" + current.Name
		}
	}
	result := NewDirectory(name, current.Path)
	result.Children = make([]*Node, 0, len(current.Children))
	for _, child := range current.Children {
		result.Children = append(result.Children, collapse(child, depth+1))
	}
	return result
}

// ParentMap maps the path of every node below root to its parent
func ParentMap(root *Node) map[string]*Node {
	result := map[string]*Node{}
	root.Walk(func(node, parent *Node) {
		if parent != nil {
			result[node.Path] = parent
		}
	})
	return result
}

// Index maps the path of every node below root to the node
func Index(root *Node) map[string]*Node {
	result := map[string]*Node{}
	root.Walk(func(node, parent *Node) {
		if parent != nil {
			result[node.Path] = node
		}
	})
	return result
}

// GetDirectories returns the node holding sourceURL followed by its ancestors, excluding the root.
// debuggeeURL resolves relative source URLs as it did when the tree was built.
func GetDirectories(sourceURL, debuggeeURL string, root *Node) []*Node {
	return getDirectories(ParseURL(sourceURL, debuggeeURL), Index(root), ParentMap(root))
}

func getDirectories(u URL, index, parents map[string]*Node) []*Node {
	if !u.IsValid() {
		return nil
	}
	node, ok := index[u.NodePath()]
	if ok && node.IsDirectory() {
		node, ok = index[node.Path+"/"+IndexName]
	}
	if !ok {
		return nil
	}
	var result []*Node
	for node != nil && node.Path != "" {
		result = append(result, node)
		node = parents[node.Path]
	}
	return result
}
