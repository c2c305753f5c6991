package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.PathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphview_path_queries_total",
			Help: "Total number of shortest-path queries",
		},
		[]string{"status"},
	)

	r.PathQueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphview_path_query_duration_seconds",
			Help:    "Shortest-path query duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5},
		},
	)

	r.SnapshotsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_snapshots_total",
			Help: "Total number of render snapshots produced",
		},
	)
}
