// Package engine wires the graph model, layout seeding, physics
// simulation, clustering, pathfinding and viewport into one facade the
// surrounding application drives.
//
// The engine is the single owner of the model. The scheduler goroutine
// is the only writer during a tick; snapshot and query calls are
// read-only consumers; pointer handlers only ever touch pins and the
// viewport. A sync.RWMutex confines all of it to one logical thread of
// control.
package engine

import (
	"sync"
	"time"

	"github.com/dd0wney/cluso-graphview/pkg/cluster"
	"github.com/dd0wney/cluso-graphview/pkg/config"
	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
	"github.com/dd0wney/cluso-graphview/pkg/logging"
	"github.com/dd0wney/cluso-graphview/pkg/metrics"
	"github.com/dd0wney/cluso-graphview/pkg/physics"
	"github.com/dd0wney/cluso-graphview/pkg/viewport"
)

// ViewMode is the analysis lens applied on top of the base layout.
type ViewMode string

const (
	ViewDefault ViewMode = "default"
	ViewHeatmap ViewMode = "heatmap"
	ViewCluster ViewMode = "cluster"
)

// ParseViewMode converts a raw view mode string, defaulting to default.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewHeatmap, ViewCluster:
		return ViewMode(s)
	default:
		return ViewDefault
	}
}

// Engine owns the live graph state and all derived views of it.
type Engine struct {
	mu sync.RWMutex

	log     logging.Logger
	metrics *metrics.Registry

	bounds    layout.Bounds
	model     *graph.Model
	transform *viewport.Transform

	layoutMode layout.Mode
	viewMode   ViewMode

	simulator  *physics.Simulator
	scheduler  *physics.Scheduler
	simEnabled bool

	clusterCount int
	clusters     cluster.Result

	hiddenTiers map[graph.Tier]bool
	searchText  string

	pathStart, pathEnd string
	currentPath        []string

	drag *viewport.Drag
}

// New creates an engine with an empty model. The scheduler is created
// stopped; call SetSimulationEnabled(true) to start ticking.
func New(cfg config.Config, log logging.Logger, reg *metrics.Registry) *Engine {
	bounds := layout.Bounds{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	e := &Engine{
		log:          log.With(logging.Component("engine")),
		metrics:      reg,
		bounds:       bounds,
		model:        graph.Build(nil, nil),
		transform:    viewport.NewTransform(bounds),
		layoutMode:   layout.ModeForce,
		viewMode:     ViewDefault,
		simulator:    physics.NewSimulator(cfg.Simulation.Params, bounds),
		clusterCount: cfg.Simulation.ClusterCount,
		hiddenTiers:  make(map[graph.Tier]bool),
	}
	e.scheduler = physics.NewScheduler(cfg.Simulation.TickInterval, e.tick)
	return e
}

// Rebuild replaces the model wholesale from raw node and edge lists:
// build, layout seeding, cluster recompute when in cluster view, and a
// cleared path. There is no cross-rebuild diffing.
func (e *Engine) Rebuild(rawNodes []graph.RawNode, rawEdges []graph.RawEdge) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.model = graph.Build(rawNodes, rawEdges)
	layout.Initialize(e.model.Nodes, e.layoutMode, e.bounds)
	e.currentPath = nil
	e.recomputeClustersLocked()

	e.metrics.RecordRebuild(e.model.NodeCount(), e.model.EdgeCount())
	e.log.Info("model rebuilt",
		logging.Count(e.model.NodeCount()),
		logging.Int("edges", e.model.EdgeCount()),
		logging.Int("raw_edges", len(e.model.Edges)))
}

// tick is the scheduler callback: one atomic simulation pass. It
// returns false, stopping the scheduler, as soon as simulation is
// disabled or the layout mode has left force.
func (e *Engine) tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.simEnabled || e.layoutMode != layout.ModeForce {
		e.metrics.SetSimulationRunning(false)
		return false
	}

	e.stepLocked()
	return true
}

// Step runs exactly one tick synchronously, independent of the
// scheduler and the enabled flag. This is the headless entry point for
// deterministic tick sequences; it still requires force layout mode.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.layoutMode != layout.ModeForce {
		return
	}
	e.stepLocked()
}

// stepLocked performs one atomic simulation pass. Callers hold the
// write lock.
func (e *Engine) stepLocked() {
	start := time.Now()
	e.simulator.Step(e.model)

	pinned := 0
	for _, node := range e.model.Nodes {
		if node.Pin != nil {
			pinned++
		}
	}
	e.metrics.RecordTick(time.Since(start), pinned)
}

// Stop halts the scheduler and waits for any in-flight tick.
func (e *Engine) Stop() {
	e.scheduler.Stop()
	e.metrics.SetSimulationRunning(false)
}

// recomputeClustersLocked reruns the full cluster assignment. Cluster
// indices are only defined in cluster view mode; elsewhere they are
// cleared. Callers hold the write lock.
func (e *Engine) recomputeClustersLocked() {
	if e.viewMode != ViewCluster {
		cluster.Clear(e.model)
		e.clusters = cluster.Result{}
		return
	}

	start := time.Now()
	e.clusters = cluster.Assign(e.model, e.clusterCount)
	e.metrics.RecordClusterRecompute(time.Since(start))
	e.log.Debug("clusters recomputed",
		logging.Int("k", e.clusterCount),
		logging.Count(len(e.clusters.Centroids)))
}
