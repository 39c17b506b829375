package analyzer

import (
	"log/slog"

	"github.com/viant/jsdbg/inspector/graph"
)

// Option configures an Analyzer
type Option func(*Analyzer)

// WithMaxEntries bounds the number of parsed sources kept in memory
func WithMaxEntries(maxEntries int) Option {
	return func(a *Analyzer) {
		a.maxEntries = maxEntries
	}
}

// WithParserConfig sets the parser configuration
func WithParserConfig(config *graph.Config) Option {
	return func(a *Analyzer) {
		a.parserConfig = config
	}
}

// WithLogger sets the logger used for parse diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithCache shares an existing cache, typically owned by the embedding application
func WithCache(cache *Cache) Option {
	return func(a *Analyzer) {
		a.cache = cache
	}
}
