// Package metrics exposes Prometheus metrics for the view engine:
// simulation tick counts and latencies, graph sizes, cluster
// recomputations, path queries and HTTP traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry creates a registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSimulationMetrics()
	r.initEngineMetrics()
	r.initQueryMetrics()
	r.initHTTPMetrics()
	return r
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordTick records one completed simulation tick.
func (r *Registry) RecordTick(duration time.Duration, pinnedNodes int) {
	r.SimulationTicksTotal.Inc()
	r.SimulationTickDuration.Observe(duration.Seconds())
	r.SimulationPinnedNodes.Set(float64(pinnedNodes))
}

// SetSimulationRunning flags whether the scheduler is issuing ticks.
func (r *Registry) SetSimulationRunning(running bool) {
	if running {
		r.SimulationRunning.Set(1)
	} else {
		r.SimulationRunning.Set(0)
	}
}

// RecordRebuild records a model rebuild and the resulting graph size.
func (r *Registry) RecordRebuild(nodes, edges int) {
	r.GraphRebuildsTotal.Inc()
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// RecordClusterRecompute records one full cluster recomputation.
func (r *Registry) RecordClusterRecompute(duration time.Duration) {
	r.ClusterRecomputesTotal.Inc()
	r.ClusterRecomputeDuration.Observe(duration.Seconds())
}

// RecordPathQuery records a shortest-path query and whether it found a
// path.
func (r *Registry) RecordPathQuery(found bool, duration time.Duration) {
	status := "found"
	if !found {
		status = "not_found"
	}
	r.PathQueriesTotal.WithLabelValues(status).Inc()
	r.PathQueryDuration.Observe(duration.Seconds())
}

// RecordSnapshot records one render snapshot request.
func (r *Registry) RecordSnapshot() {
	r.SnapshotsTotal.Inc()
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
