package analyzer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// parseFailuresTotal counts sources whose text could not be parsed.
	// Labels: contentType (javascript, html)
	parseFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "parser",
		Name:      "failures_total",
		Help:      "Total sources that failed to parse and were replaced with an empty tree",
	}, []string{"contentType"})

	// cacheLookupsTotal counts AST cache lookups.
	// Labels: result (hit, miss, stale)
	cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Total AST cache lookups by result",
	}, []string{"result"})

	// cacheEvictionsTotal counts entries dropped because the cache was full.
	cacheEvictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Total AST cache entries evicted by size",
	})
)
