package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/jsdbg/analyzer/scope"
	"github.com/viant/jsdbg/inspector"
	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxEntries is the number of parsed sources kept when no limit is configured
const DefaultMaxEntries = 512

// entry holds everything derived from one version of a source text
type entry struct {
	sourceID string
	hash     uint64
	tree     *ast.Tree

	scopesOnce  sync.Once
	scopes      *scope.Table
	symbolsOnce sync.Once
	symbols     *graph.Symbols
}

func (e *entry) scopeTable() *scope.Table {
	e.scopesOnce.Do(func() {
		e.scopes = scope.Build(e.tree)
	})
	return e.scopes
}

func (e *entry) symbolTable() *graph.Symbols {
	e.symbolsOnce.Do(func() {
		e.symbols = extractSymbols(e.tree)
	})
	return e.symbols
}

// Cache memoizes parsed trees by source id.
// An entry is replaced when the source text changes and the least recently used
// entry is dropped once MaxEntries is reached.
type Cache struct {
	factory *inspector.Factory
	entries *lru.Cache[string, *entry]
	group   singleflight.Group
	logger  *slog.Logger
}

// NewCache creates a cache holding at most maxEntries parsed sources
func NewCache(maxEntries int, factory *inspector.Factory, logger *slog.Logger) (*Cache, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if factory == nil {
		factory = inspector.NewFactory(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := lru.New[string, *entry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create ast cache: %w", err)
	}
	return &Cache{factory: factory, entries: entries, logger: logger}, nil
}

// Ast returns the tree of source, parsing it on first use.
// Syntax errors produce an empty tree; only context errors are returned.
func (c *Cache) Ast(ctx context.Context, source *graph.Source) (*ast.Tree, error) {
	e, err := c.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	return e.tree, nil
}

// Invalidate drops the cached tree of a source, it returns true if one was present
func (c *Cache) Invalidate(sourceID string) bool {
	return c.entries.Remove(sourceID)
}

// Purge drops all cached trees
func (c *Cache) Purge() {
	c.entries.Purge()
}

// Len returns the number of cached sources
func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) entry(ctx context.Context, source *graph.Source) (*entry, error) {
	if source == nil {
		return nil, errors.New("source was nil")
	}
	hash := source.Hash()
	if cached, ok := c.entries.Get(source.ID); ok {
		if cached.hash == hash {
			cacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		cacheLookupsTotal.WithLabelValues("stale").Inc()
		c.entries.Remove(source.ID)
	} else {
		cacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse of %s canceled: %w", source.ID, err)
	}
	key := source.ID + ":" + strconv.FormatUint(hash, 16)
	// the shared parse is not bound to any one caller
	shared := context.WithoutCancel(ctx)
	results := c.group.DoChan(key, func() (interface{}, error) {
		if cached, ok := c.entries.Get(source.ID); ok && cached.hash == hash {
			return cached, nil
		}
		parsed := &entry{sourceID: source.ID, hash: hash, tree: c.parse(shared, source)}
		if evicted := c.entries.Add(source.ID, parsed); evicted {
			cacheEvictionsTotal.Inc()
		}
		return parsed, nil
	})
	select {
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*entry), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("parse of %s canceled: %w", source.ID, ctx.Err())
	}
}

// parse never fails: a source that cannot be parsed is logged, counted and
// replaced with the part an inspector could recover, or an empty tree
func (c *Cache) parse(ctx context.Context, source *graph.Source) *ast.Tree {
	tree, err := c.factory.InspectSource(ctx, source)
	if err == nil {
		return tree
	}
	contentType := string(source.ContentType)
	if contentType == "" {
		contentType = string(graph.ContentTypeJavaScript)
	}
	parseFailuresTotal.WithLabelValues(contentType).Inc()
	c.logger.Warn("failed to parse source",
		slog.String("source", source.ID),
		slog.String("url", source.URL),
		slog.String("contentType", contentType),
		slog.Bool("partial", tree != nil),
		slog.Any("error", err))
	if tree != nil {
		return tree
	}
	return ast.Empty()
}
