package sourcetree

import (
	"errors"
	"log/slog"

	"github.com/viant/jsdbg/inspector/graph"
)

// Result holds the outcome of building a tree from a source list
type Result struct {
	Uncollapsed *Node            `yaml:"-" json:"uncollapsedTree"`
	SourceTree  *Node            `yaml:"sourceTree" json:"sourceTree"`
	ParentMap   map[string]*Node `yaml:"-" json:"-"`
}

// CreateTree builds the uncollapsed and collapsed trees for sources.
// Sources breaking the tree shape are left out and reported together in the returned error.
func CreateTree(sources []*graph.Source, config *Config) (*Result, error) {
	tree := NewTree(config, nil)
	err := tree.Create(sources)
	return tree.Result(), err
}

// Tree keeps a source tree in sync with the sources loaded by the debuggee.
// It is not safe for concurrent use.
type Tree struct {
	config      Config
	logger      *slog.Logger
	builder     *Builder
	sources     []*graph.Source
	added       map[string]bool
	uncollapsed *Node
	collapsed   *Node
	index       map[string]*Node
	parents     map[string]*Node
}

// NewTree creates an empty tree
func NewTree(config *Config, logger *slog.Logger) *Tree {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tree{config: *config, logger: logger}
	t.reset()
	return t
}

// Create replaces the tree content with sources
func (t *Tree) Create(sources []*graph.Source) error {
	t.reset()
	err := t.insert(sources)
	t.recollapse()
	return err
}

// Update adds sources that are not in the tree yet.
// sources may be the full current list, already added sources are skipped.
func (t *Tree) Update(sources []*graph.Source) error {
	err := t.insert(sources)
	t.recollapse()
	return err
}

// CreateWithConfig replaces the settings and the content of the tree with a single rebuild
func (t *Tree) CreateWithConfig(config Config, sources []*graph.Source) error {
	t.config = config
	return t.Create(sources)
}

// UpdateWithConfig applies config and adds sources. Retained sources are rebuilt
// together with the new ones only when config changed.
func (t *Tree) UpdateWithConfig(config Config, sources []*graph.Source) error {
	if t.config.equal(&config) {
		return t.Update(sources)
	}
	all := make([]*graph.Source, 0, len(t.sources)+len(sources))
	all = append(append(all, t.sources...), sources...)
	return t.CreateWithConfig(config, all)
}

// Config returns a copy of the current settings
func (t *Tree) Config() Config {
	config := t.config
	config.IgnoredURLs = append([]string(nil), t.config.IgnoredURLs...)
	return config
}

// SetDebuggeeURL changes the host sorted first and rebuilds the tree
func (t *Tree) SetDebuggeeURL(debuggeeURL string) error {
	if t.config.DebuggeeURL == debuggeeURL {
		return nil
	}
	t.config.DebuggeeURL = debuggeeURL
	return t.Create(t.sources)
}

// SetProjectRoot changes the node path shown as the root and rebuilds the tree
func (t *Tree) SetProjectRoot(projectRoot string) error {
	if t.config.ProjectRoot == projectRoot {
		return nil
	}
	t.config.ProjectRoot = projectRoot
	return t.Create(t.sources)
}

// DebuggeeURL returns the current debuggee URL
func (t *Tree) DebuggeeURL() string {
	return t.config.DebuggeeURL
}

// ProjectRoot returns the current project root
func (t *Tree) ProjectRoot() string {
	return t.config.ProjectRoot
}

// Root returns the collapsed tree
func (t *Tree) Root() *Node {
	return t.collapsed
}

// Uncollapsed returns the tree with one node per path segment
func (t *Tree) Uncollapsed() *Node {
	return t.uncollapsed
}

// Result returns the current trees and parent map
func (t *Tree) Result() *Result {
	return &Result{Uncollapsed: t.uncollapsed, SourceTree: t.collapsed, ParentMap: t.parents}
}

// Lookup returns the collapsed node with path
func (t *Tree) Lookup(path string) *Node {
	if path == "" {
		return t.collapsed
	}
	return t.index[path]
}

// Parent returns the parent of node in the collapsed tree, nil for the root
func (t *Tree) Parent(node *Node) *Node {
	if node == nil {
		return nil
	}
	return t.parents[node.Path]
}

// Children returns the children of node, nil for leaves
func (t *Tree) Children(node *Node) []*Node {
	if node == nil {
		return nil
	}
	return node.Children
}

// GetDirectories returns the node holding sourceURL followed by its ancestors, excluding the root
func (t *Tree) GetDirectories(sourceURL string) []*Node {
	return getDirectories(ParseURL(sourceURL, t.config.DebuggeeURL), t.index, t.parents)
}

// Len returns the number of sources added to the tree
func (t *Tree) Len() int {
	return len(t.added)
}

func (t *Tree) reset() {
	t.builder = NewBuilder(&t.config, t.logger)
	t.added = map[string]bool{}
	t.sources = nil
	t.uncollapsed = NewRoot()
}

func (t *Tree) insert(sources []*graph.Source) error {
	var errs []error
	for _, source := range sources {
		if source == nil {
			continue
		}
		key := sourceKey(source)
		if t.added[key] {
			continue
		}
		t.added[key] = true
		t.sources = append(t.sources, source)
		if err := t.builder.AddToTree(t.uncollapsed, source); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Tree) recollapse() {
	if t.config.ProjectRoot == "" {
		t.collapsed = Collapse(t.uncollapsed)
	} else {
		view := NewRoot()
		node, depth := find(t.uncollapsed, t.config.ProjectRoot, 0)
		if node != nil && node.IsDirectory() {
			view.Children = node.Children
		}
		// children keep the depth they have in the full tree
		t.collapsed = NewRoot()
		for _, child := range view.Children {
			t.collapsed.Children = append(t.collapsed.Children, collapse(child, depth+1))
		}
	}
	t.index = Index(t.collapsed)
	t.parents = ParentMap(t.collapsed)
}

// find returns the node at path and its depth below node
func find(node *Node, path string, depth int) (*Node, int) {
	if node.Path == path {
		return node, depth
	}
	for _, child := range node.Children {
		if found, foundDepth := find(child, path, depth+1); found != nil {
			return found, foundDepth
		}
	}
	return nil, 0
}

func sourceKey(source *graph.Source) string {
	if source.ID != "" {
		return source.ID
	}
	return source.URL
}
