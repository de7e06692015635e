// Package metrics holds the process-wide Prometheus collectors,
// registered via promauto at package init the way
// longbow/internal/metrics registers its repair counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NodesVisitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balagray_nodes_visited_total",
		Help: "Total number of DFS frames visited across all searches",
	})
	SearchesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balagray_searches_completed_total",
		Help: "Total number of searches that proved their tree exhausted",
	})
	SearchesCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balagray_searches_cancelled_total",
		Help: "Total number of searches terminated by supervisor timeout",
	})
	SearchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "balagray_search_duration_seconds",
		Help:    "Wall-clock duration of one crawler search",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
	})
)
