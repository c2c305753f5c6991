package engine

import (
	"time"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
	"github.com/dd0wney/cluso-graphview/pkg/pathfind"
	"github.com/dd0wney/cluso-graphview/pkg/physics"
)

// SetLayoutMode switches the layout algorithm and reseeds positions.
// Leaving force mode stops the scheduler; entering it with simulation
// enabled starts it.
func (e *Engine) SetLayoutMode(mode layout.Mode) {
	e.mu.Lock()
	e.layoutMode = mode
	layout.Initialize(e.model.Nodes, mode, e.bounds)
	startSim := mode == layout.ModeForce && e.simEnabled
	e.mu.Unlock()

	if startSim {
		e.scheduler.Start()
		e.metrics.SetSimulationRunning(true)
	} else {
		e.scheduler.Stop()
		e.metrics.SetSimulationRunning(false)
	}
}

// LayoutMode returns the active layout mode.
func (e *Engine) LayoutMode() layout.Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.layoutMode
}

// SetViewMode switches the analysis lens. Entering cluster view
// triggers a full cluster recompute; leaving it clears cluster indices.
func (e *Engine) SetViewMode(mode ViewMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.viewMode == mode {
		return
	}
	e.viewMode = mode
	e.recomputeClustersLocked()
}

// ViewMode returns the active view mode.
func (e *Engine) ViewMode() ViewMode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.viewMode
}

// SetSimulationEnabled toggles the force simulation. The scheduler only
// runs while the layout mode is force.
func (e *Engine) SetSimulationEnabled(enabled bool) {
	e.mu.Lock()
	e.simEnabled = enabled
	start := enabled && e.layoutMode == layout.ModeForce
	e.mu.Unlock()

	if start {
		e.scheduler.Start()
		e.metrics.SetSimulationRunning(true)
	} else {
		e.scheduler.Stop()
		e.metrics.SetSimulationRunning(false)
	}
}

// SimulationEnabled reports whether the simulation is enabled.
func (e *Engine) SimulationEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.simEnabled
}

// SetParams replaces the force coefficients between ticks.
func (e *Engine) SetParams(p physics.Params) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.simulator.SetParams(p)
}

// Params returns the current force coefficients.
func (e *Engine) Params() physics.Params {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.simulator.Params()
}

// SetClusterCount changes k and recomputes the partition when cluster
// view is active.
func (e *Engine) SetClusterCount(k int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if k < 1 || k == e.clusterCount {
		return
	}
	e.clusterCount = k
	e.recomputeClustersLocked()
}

// SetTierVisible shows or hides a tier. Hidden tiers are flagged dimmed
// in snapshots rather than removed; filtering stays a render concern.
func (e *Engine) SetTierVisible(tier graph.Tier, visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if visible {
		delete(e.hiddenTiers, tier)
	} else {
		e.hiddenTiers[tier] = true
	}
}

// SetSearchText sets the highlight filter. Nodes not matching the text
// are flagged dimmed in snapshots.
func (e *Engine) SetSearchText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.searchText = text
}

// SetPathEndpoints selects the shortest-path endpoints and computes the
// path. Empty ids clear the path.
func (e *Engine) SetPathEndpoints(startID, endID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pathStart, e.pathEnd = startID, endID
	if startID == "" || endID == "" {
		e.currentPath = nil
		return
	}

	begin := time.Now()
	e.currentPath = pathfind.FindPath(e.model, startID, endID)
	e.metrics.RecordPathQuery(len(e.currentPath) > 0, time.Since(begin))
}

// CurrentPath returns the node ids of the active shortest path, empty
// when none exists.
func (e *Engine) CurrentPath() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	path := make([]string, len(e.currentPath))
	copy(path, e.currentPath)
	return path
}

// FindPath runs a one-off shortest-path query without changing the
// engine's selected endpoints.
func (e *Engine) FindPath(startID, endID string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	begin := time.Now()
	path := pathfind.FindPath(e.model, startID, endID)
	e.metrics.RecordPathQuery(len(path) > 0, time.Since(begin))
	return path
}

// Clusters returns the current cluster partition. Meaningful only in
// cluster view mode.
func (e *Engine) Clusters() ([]string, []int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	centroids := make([]string, len(e.clusters.Centroids))
	copy(centroids, e.clusters.Centroids)
	sizes := make([]int, len(e.clusters.Sizes))
	copy(sizes, e.clusters.Sizes)
	return centroids, sizes
}
