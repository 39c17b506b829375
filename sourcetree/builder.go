package sourcetree

import (
	"log/slog"

	"github.com/viant/jsdbg/inspector/graph"
)

// Builder inserts sources into an uncollapsed tree
type Builder struct {
	config       *Config
	debuggeeHost string
	sorter       *sorter
	logger       *slog.Logger
}

// NewBuilder creates a builder for config
func NewBuilder(config *Config, logger *slog.Logger) *Builder {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		config:       config,
		debuggeeHost: Domain(config.DebuggeeURL),
		sorter:       newSorter(),
		logger:       logger,
	}
}

// AddToTree places source under root, creating intermediate directories in sort order.
// Sources that cannot be shown are skipped without error.
func (b *Builder) AddToTree(root *Node, source *graph.Source) error {
	if source == nil || source.URL == "" {
		sourcesSkippedTotal.WithLabelValues("url").Inc()
		return nil
	}
	if b.config.ignored(source.URL) {
		sourcesSkippedTotal.WithLabelValues("ignored").Inc()
		return nil
	}
	u := ParseURL(source.URL, b.config.DebuggeeURL)
	if !u.IsValid() {
		sourcesSkippedTotal.WithLabelValues("url").Inc()
		return nil
	}
	if !b.config.underProjectRoot(u.NodePath()) {
		sourcesSkippedTotal.WithLabelValues("project").Inc()
		return nil
	}

	parts := u.Parts()
	isDirectoryURL := u.IsDirectory()
	node := root
	for i, part := range parts {
		last := i == len(parts)-1
		wantDirectory := !last || isDirectoryURL
		child := node.Child(part)
		if child == nil {
			path := childPath(node, part)
			if last && !wantDirectory {
				node.insert(b.sortIndex(node, part, false, i), NewLeaf(part, path, source))
				return nil
			}
			child = NewDirectory(part, path)
			node.insert(b.sortIndex(node, part, true, i), child)
		}
		if !last {
			if !child.IsDirectory() {
				return b.violation(child.Path, source.URL, "file used as a directory")
			}
			node = child
			continue
		}
		if !child.IsDirectory() {
			if wantDirectory {
				return b.violation(child.Path, source.URL, "file used as a directory")
			}
			child.Source = source
			return nil
		}
		name := IndexName
		if isDirectoryURL {
			name = u.Filename
		}
		return b.addIndex(child, name, source)
	}
	return nil
}

// addIndex puts the default document of a directory URL into directory
func (b *Builder) addIndex(directory *Node, name string, source *graph.Source) error {
	if existing := directory.Child(name); existing != nil {
		if existing.IsDirectory() {
			return b.violation(existing.Path, source.URL, "directory used as a file")
		}
		existing.Source = source
		return nil
	}
	leaf := NewLeaf(name, childPath(directory, name), source)
	if name == IndexName {
		directory.insert(0, leaf)
		return nil
	}
	directory.insert(b.sorter.index(directory.Children, name, false, ""), leaf)
	return nil
}

func (b *Builder) sortIndex(parent *Node, name string, isDir bool, depth int) int {
	host := ""
	if depth == 0 {
		host = b.debuggeeHost
	}
	return b.sorter.index(parent.Children, name, isDir, host)
}

func (b *Builder) violation(path, url, reason string) error {
	err := &TreeInvariantViolation{Path: path, URL: url, Reason: reason}
	invariantViolationsTotal.Inc()
	b.logger.Error("source tree invariant violated",
		slog.String("path", path),
		slog.String("url", url),
		slog.String("reason", reason))
	if panicOnViolation {
		panic(err)
	}
	return err
}
