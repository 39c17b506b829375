package analyzer

import (
	"context"
	"log/slog"

	"github.com/viant/jsdbg/analyzer/scope"
	"github.com/viant/jsdbg/inspector"
	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
)

// Analyzer answers static-analysis queries about sources: closest nodes and scopes,
// symbol declarations, out-of-scope ranges and await step targets.
// It is safe for concurrent use.
type Analyzer struct {
	cache        *Cache
	maxEntries   int
	parserConfig *graph.Config
	logger       *slog.Logger
}

// New creates an analyzer
func New(options ...Option) (*Analyzer, error) {
	a := &Analyzer{logger: slog.Default()}
	for _, option := range options {
		option(a)
	}
	if a.cache == nil {
		cache, err := NewCache(a.maxEntries, inspector.NewFactory(a.parserConfig), a.logger)
		if err != nil {
			return nil, err
		}
		a.cache = cache
	}
	return a, nil
}

// Cache returns the AST cache, so that callers can invalidate sources
func (a *Analyzer) Cache() *Cache {
	return a.cache
}

// Ast returns the parsed tree of source
func (a *Analyzer) Ast(ctx context.Context, source *graph.Source) (*ast.Tree, error) {
	return a.cache.Ast(ctx, source)
}

// Symbols returns the function, variable and member expression declarations of source
func (a *Analyzer) Symbols(ctx context.Context, source *graph.Source) (*graph.Symbols, error) {
	e, err := a.cache.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	return e.symbolTable(), nil
}

// Scopes returns the lexical scope table of source
func (a *Analyzer) Scopes(ctx context.Context, source *graph.Source) (*scope.Table, error) {
	e, err := a.cache.entry(ctx, source)
	if err != nil {
		return nil, err
	}
	return e.scopeTable(), nil
}
