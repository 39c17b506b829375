package sourcetree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// invariantViolationsTotal counts sources rejected because they conflict with the tree shape
	invariantViolationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "sourcetree",
		Name:      "invariant_violations_total",
		Help:      "Total sources rejected by a file and directory name conflict",
	})

	// sourcesSkippedTotal counts sources left out of the tree.
	// Labels: reason (url, ignored, project)
	sourcesSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "sourcetree",
		Name:      "skipped_total",
		Help:      "Total sources not added to the tree by reason",
	}, []string{"reason"})
)
