package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.SimulationTicksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_simulation_ticks_total",
			Help: "Total number of simulation ticks executed",
		},
	)

	r.SimulationTickDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphview_simulation_tick_duration_seconds",
			Help:    "Duration of one simulation tick in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.SimulationRunning = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_simulation_running",
			Help: "Whether the simulation scheduler is issuing ticks (1) or stopped (0)",
		},
	)

	r.SimulationPinnedNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_simulation_pinned_nodes",
			Help: "Number of nodes currently pinned by a drag or the host application",
		},
	)
}
