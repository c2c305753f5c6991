package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEngineMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_graph_nodes_total",
			Help: "Number of nodes in the current model",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_graph_edges_total",
			Help: "Number of adjacency-kept edges in the current model",
		},
	)

	r.GraphRebuildsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_graph_rebuilds_total",
			Help: "Total number of full model rebuilds",
		},
	)

	r.ClusterRecomputesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_cluster_recomputes_total",
			Help: "Total number of full cluster recomputations",
		},
	)

	r.ClusterRecomputeDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphview_cluster_recompute_duration_seconds",
			Help:    "Duration of one full cluster recomputation in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0},
		},
	)
}
