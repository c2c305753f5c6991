package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the view engine.
type Registry struct {
	registry *prometheus.Registry

	// Simulation metrics
	SimulationTicksTotal   prometheus.Counter
	SimulationTickDuration prometheus.Histogram
	SimulationRunning      prometheus.Gauge
	SimulationPinnedNodes  prometheus.Gauge

	// Engine metrics
	GraphNodesTotal          prometheus.Gauge
	GraphEdgesTotal          prometheus.Gauge
	GraphRebuildsTotal       prometheus.Counter
	ClusterRecomputesTotal   prometheus.Counter
	ClusterRecomputeDuration prometheus.Histogram

	// Query metrics
	PathQueriesTotal  *prometheus.CounterVec
	PathQueryDuration prometheus.Histogram
	SnapshotsTotal    prometheus.Counter

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}
