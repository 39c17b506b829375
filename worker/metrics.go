package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts served requests.
	// Labels: method, status (ok, error)
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "worker",
		Name:      "requests_total",
		Help:      "Total dispatcher requests by method and status",
	}, []string{"method", "status"})

	// requestDuration tracks handler latency in seconds.
	// Labels: method
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jsdbg",
		Subsystem: "worker",
		Name:      "request_duration_seconds",
		Help:      "Handler latency by method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// unmatchedRepliesTotal counts replies without a waiting caller
	unmatchedRepliesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jsdbg",
		Subsystem: "worker",
		Name:      "unmatched_replies_total",
		Help:      "Total replies dropped because no caller waited for their id",
	})
)
