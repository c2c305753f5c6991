package engine

import (
	"strings"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
	"github.com/dd0wney/cluso-graphview/pkg/viewport"
)

// NodeSnapshot is one node as the renderer sees it.
type NodeSnapshot struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Tier        graph.Tier `json:"tier"`
	Tags        []string   `json:"tags,omitempty"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Radius      float64    `json:"radius"`
	Connections int        `json:"connections"`
	Cluster     int        `json:"cluster"`
	Pinned      bool       `json:"pinned"`
	Dimmed      bool       `json:"dimmed"`
	OnPath      bool       `json:"onPath"`
}

// EdgeSnapshot is one renderable edge. Dangling raw edges have no
// positions to draw and are not included here; they remain visible in
// the export.
type EdgeSnapshot struct {
	Source string         `json:"source"`
	Target string         `json:"target"`
	Weight float64        `json:"weight"`
	Type   graph.EdgeType `json:"type"`
}

// ViewportSnapshot is the transform state the renderer applies.
type ViewportSnapshot struct {
	Zoom   float64 `json:"zoom"`
	PanX   float64 `json:"panX"`
	PanY   float64 `json:"panY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Snapshot is a read-only per-tick view of the engine state. The
// renderer never mutates it; every slice is freshly allocated.
type Snapshot struct {
	Nodes      []NodeSnapshot   `json:"nodes"`
	Edges      []EdgeSnapshot   `json:"edges"`
	Viewport   ViewportSnapshot `json:"viewport"`
	LayoutMode layout.Mode      `json:"layoutMode"`
	ViewMode   ViewMode         `json:"viewMode"`
	Path       []string         `json:"path,omitempty"`
}

// Snapshot captures the current render state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	heatmap := e.viewMode == ViewHeatmap
	onPath := make(map[string]bool, len(e.currentPath))
	for _, id := range e.currentPath {
		onPath[id] = true
	}
	search := strings.ToLower(strings.TrimSpace(e.searchText))

	snap := Snapshot{
		Nodes:      make([]NodeSnapshot, 0, len(e.model.Nodes)),
		Edges:      make([]EdgeSnapshot, 0, e.model.EdgeCount()),
		LayoutMode: e.layoutMode,
		ViewMode:   e.viewMode,
		Viewport: ViewportSnapshot{
			Zoom:   e.transform.Zoom(),
			PanX:   e.transform.Pan().X,
			PanY:   e.transform.Pan().Y,
			Width:  e.bounds.Width,
			Height: e.bounds.Height,
		},
	}
	if len(e.currentPath) > 0 {
		snap.Path = make([]string, len(e.currentPath))
		copy(snap.Path, e.currentPath)
	}

	for _, node := range e.model.Nodes {
		snap.Nodes = append(snap.Nodes, NodeSnapshot{
			ID:          node.ID,
			Label:       node.Label,
			Tier:        node.Tier,
			Tags:        node.Tags,
			X:           node.X,
			Y:           node.Y,
			Radius:      viewport.NodeRadius(node, heatmap),
			Connections: node.Connections,
			Cluster:     node.Cluster,
			Pinned:      node.Pin != nil,
			Dimmed:      e.dimmedLocked(node, search),
			OnPath:      onPath[node.ID],
		})
	}
	for _, edge := range e.model.ValidEdges() {
		snap.Edges = append(snap.Edges, EdgeSnapshot{
			Source: edge.Source,
			Target: edge.Target,
			Weight: edge.Weight,
			Type:   edge.Type,
		})
	}

	e.metrics.RecordSnapshot()
	return snap
}

// dimmedLocked reports whether a node is filtered out by the tier
// filters or search text. Callers hold at least the read lock.
func (e *Engine) dimmedLocked(node *graph.Node, search string) bool {
	if e.hiddenTiers[node.Tier] {
		return true
	}
	if search == "" {
		return false
	}
	if strings.Contains(strings.ToLower(node.Label), search) {
		return false
	}
	if strings.Contains(strings.ToLower(node.Content), search) {
		return false
	}
	for _, tag := range node.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return false
		}
	}
	return true
}

// Stats returns aggregate statistics over the current model.
func (e *Engine) Stats() graph.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model.Statistics()
}

// ExportJSON serializes the current model to the external export
// format.
func (e *Engine) ExportJSON() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model.ExportJSON()
}

// ImportJSON replaces the model from a previously exported document,
// keeping the exported positions instead of reseeding the layout.
func (e *Engine) ImportJSON(data []byte) error {
	m, err := graph.ImportJSON(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.model = m
	e.currentPath = nil
	e.recomputeClustersLocked()
	e.metrics.RecordRebuild(m.NodeCount(), m.EdgeCount())
	return nil
}
