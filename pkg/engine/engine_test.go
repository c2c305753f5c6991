package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphview/pkg/config"
	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
	"github.com/dd0wney/cluso-graphview/pkg/logging"
	"github.com/dd0wney/cluso-graphview/pkg/metrics"
	"github.com/dd0wney/cluso-graphview/pkg/viewport"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(config.Default(), logging.NopLogger{}, metrics.NewRegistry())
	t.Cleanup(e.Stop)
	return e
}

func testGraph() ([]graph.RawNode, []graph.RawEdge) {
	nodes := []graph.RawNode{
		{ID: "a", Title: "alpha", Tier: "hyper", Tags: []string{"core"}},
		{ID: "b", Title: "beta", Tier: "regular"},
		{ID: "c", Title: "gamma", Tier: "regular"},
		{ID: "d", Title: "delta", Tier: "shadow"},
	}
	edges := []graph.RawEdge{
		{SourceID: "a", TargetID: "b", Weight: 0.9, Type: "semantic"},
		{SourceID: "b", TargetID: "c", Weight: 0.4, Type: "reference"},
		{SourceID: "c", TargetID: "ghost", Weight: 0.5, Type: "semantic"}, // dangling
	}
	return nodes, edges
}

func snapshotNode(t *testing.T, snap Snapshot, id string) NodeSnapshot {
	t.Helper()
	for _, n := range snap.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %q not in snapshot", id)
	return NodeSnapshot{}
}

func TestRebuildAndSnapshot(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	snap := e.Snapshot()
	require.Len(t, snap.Nodes, 4)
	// The dangling edge is kept out of the renderable edge list.
	require.Len(t, snap.Edges, 2)
	assert.Equal(t, layout.ModeForce, snap.LayoutMode)
	assert.Equal(t, ViewDefault, snap.ViewMode)
	assert.Equal(t, 1.0, snap.Viewport.Zoom)

	a := snapshotNode(t, snap, "a")
	assert.Equal(t, "alpha", a.Label)
	assert.Equal(t, graph.TierHyper, a.Tier)
	assert.Equal(t, 1, a.Connections)
	assert.Equal(t, 18.0, a.Radius)
	assert.False(t, a.Pinned)
	assert.False(t, a.Dimmed)

	b := snapshotNode(t, snap, "b")
	assert.Equal(t, 2, b.Connections)
	assert.Equal(t, 10.0, b.Radius)
}

func TestStatsAggregates(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	stats := e.Stats()
	assert.Equal(t, 4, stats.NodeCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 1, stats.TierCounts[graph.TierHyper])
	assert.Equal(t, 2, stats.TierCounts[graph.TierRegular])
}

func TestViewModeClusterLifecycle(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	// Outside cluster view every node is unassigned.
	snap := e.Snapshot()
	for _, n := range snap.Nodes {
		assert.Equal(t, graph.ClusterUnassigned, n.Cluster, "node %s", n.ID)
	}

	e.SetViewMode(ViewCluster)
	centroids, sizes := e.Clusters()
	require.NotEmpty(t, centroids)
	assert.Len(t, sizes, len(centroids))

	snap = e.Snapshot()
	for _, n := range snap.Nodes {
		assert.GreaterOrEqual(t, n.Cluster, 0, "node %s", n.ID)
	}

	// Leaving cluster view clears the partition.
	e.SetViewMode(ViewDefault)
	centroids, _ = e.Clusters()
	assert.Empty(t, centroids)
	snap = e.Snapshot()
	for _, n := range snap.Nodes {
		assert.Equal(t, graph.ClusterUnassigned, n.Cluster, "node %s", n.ID)
	}
}

func TestHeatmapRadiusInSnapshot(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)
	e.SetViewMode(ViewHeatmap)

	snap := e.Snapshot()
	assert.Equal(t, ViewHeatmap, snap.ViewMode)
	// b has 2 connections: radius 8 + 2*2.
	assert.Equal(t, 12.0, snapshotNode(t, snap, "b").Radius)
	// d is isolated.
	assert.Equal(t, 8.0, snapshotNode(t, snap, "d").Radius)
}

func TestPathEndpoints(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	e.SetPathEndpoints("a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, e.CurrentPath())

	snap := e.Snapshot()
	assert.True(t, snapshotNode(t, snap, "a").OnPath)
	assert.True(t, snapshotNode(t, snap, "b").OnPath)
	assert.True(t, snapshotNode(t, snap, "c").OnPath)
	assert.False(t, snapshotNode(t, snap, "d").OnPath)

	// Clearing an endpoint clears the path.
	e.SetPathEndpoints("a", "")
	assert.Empty(t, e.CurrentPath())

	// No path to an isolated node.
	e.SetPathEndpoints("a", "d")
	assert.Empty(t, e.CurrentPath())
}

func TestFindPathDoesNotChangeSelection(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	e.SetPathEndpoints("a", "b")
	path := e.FindPath("a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, path)
	assert.Equal(t, []string{"a", "b"}, e.CurrentPath())
}

func TestRebuildClearsPath(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)
	e.SetPathEndpoints("a", "c")
	require.NotEmpty(t, e.CurrentPath())

	e.Rebuild(nodes, edges)
	assert.Empty(t, e.CurrentPath())
}

func TestHeadlessStep(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	before := e.Snapshot()
	e.Step()
	after := e.Snapshot()

	moved := false
	for i := range before.Nodes {
		if before.Nodes[i].X != after.Nodes[i].X || before.Nodes[i].Y != after.Nodes[i].Y {
			moved = true
		}
	}
	assert.True(t, moved, "force step must move at least one node")
}

func TestStepIgnoredOutsideForceMode(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)
	e.SetLayoutMode(layout.ModeRadial)

	before := e.Snapshot()
	e.Step()
	after := e.Snapshot()

	assert.Equal(t, layout.ModeRadial, after.LayoutMode)
	for i := range before.Nodes {
		assert.Equal(t, before.Nodes[i].X, after.Nodes[i].X)
		assert.Equal(t, before.Nodes[i].Y, after.Nodes[i].Y)
	}
}

func TestLayoutModeReseeds(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	e.SetLayoutMode(layout.ModeRadial)
	first := e.Snapshot()
	e.SetLayoutMode(layout.ModeRadial)
	second := e.Snapshot()

	// Radial seeding is deterministic, so reseeding reproduces it.
	for i := range first.Nodes {
		assert.Equal(t, first.Nodes[i].X, second.Nodes[i].X)
		assert.Equal(t, first.Nodes[i].Y, second.Nodes[i].Y)
	}
}

func TestTierFilterDims(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	e.SetTierVisible(graph.TierShadow, false)
	snap := e.Snapshot()
	assert.True(t, snapshotNode(t, snap, "d").Dimmed)
	assert.False(t, snapshotNode(t, snap, "a").Dimmed)
	// Dimmed nodes are still present.
	assert.Len(t, snap.Nodes, 4)

	e.SetTierVisible(graph.TierShadow, true)
	snap = e.Snapshot()
	assert.False(t, snapshotNode(t, snap, "d").Dimmed)
}

func TestSearchDims(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	e.SetSearchText("ALPHA")
	snap := e.Snapshot()
	assert.False(t, snapshotNode(t, snap, "a").Dimmed, "label match is case-insensitive")
	assert.True(t, snapshotNode(t, snap, "b").Dimmed)

	// Tag matches count too.
	e.SetSearchText("core")
	snap = e.Snapshot()
	assert.False(t, snapshotNode(t, snap, "a").Dimmed)
	assert.True(t, snapshotNode(t, snap, "c").Dimmed)

	e.SetSearchText("")
	snap = e.Snapshot()
	assert.False(t, snapshotNode(t, snap, "b").Dimmed)
}

func TestPointerDragPinsNode(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	// Identity transform: screen coordinates equal world coordinates.
	a := snapshotNode(t, e.Snapshot(), "a")
	grabbed := e.PointerDown(viewport.Point{X: a.X, Y: a.Y})
	require.Equal(t, "a", grabbed)

	e.PointerMove(viewport.Point{X: a.X + 40, Y: a.Y - 25})
	snap := e.Snapshot()
	moved := snapshotNode(t, snap, "a")
	assert.True(t, moved.Pinned)

	// A simulation tick snaps the pinned node to the pin.
	e.Step()
	stepped := snapshotNode(t, e.Snapshot(), "a")
	assert.InDelta(t, a.X+40, stepped.X, 1e-9)
	assert.InDelta(t, a.Y-25, stepped.Y, 1e-9)

	e.PointerUp()
	assert.False(t, snapshotNode(t, e.Snapshot(), "a").Pinned)
}

func TestPointerDragEmptySpacePans(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	grabbed := e.PointerDown(viewport.Point{X: -500, Y: -500})
	require.Equal(t, "", grabbed)

	e.PointerMove(viewport.Point{X: -470, Y: -480})
	e.PointerUp()

	snap := e.Snapshot()
	assert.Equal(t, 30.0, snap.Viewport.PanX)
	assert.Equal(t, 20.0, snap.Viewport.PanY)
}

func TestZoomClampedThroughEngine(t *testing.T) {
	e := newTestEngine(t)
	e.SetZoom(50)
	assert.Equal(t, viewport.MaxZoom, e.Snapshot().Viewport.Zoom)
	e.ZoomBy(0.0001)
	assert.Equal(t, viewport.MinZoom, e.Snapshot().Viewport.Zoom)
}

func TestExportImportRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)
	before := e.Snapshot()

	data, err := e.ExportJSON()
	require.NoError(t, err)

	other := newTestEngine(t)
	require.NoError(t, other.ImportJSON(data))

	after := other.Snapshot()
	require.Len(t, after.Nodes, len(before.Nodes))
	require.Len(t, after.Edges, len(before.Edges))
	// Import keeps exported positions instead of reseeding.
	for i := range before.Nodes {
		assert.Equal(t, before.Nodes[i].X, after.Nodes[i].X, "node %s", before.Nodes[i].ID)
		assert.Equal(t, before.Nodes[i].Y, after.Nodes[i].Y, "node %s", before.Nodes[i].ID)
	}
}

func TestImportRejectsMalformed(t *testing.T) {
	e := newTestEngine(t)
	assert.Error(t, e.ImportJSON([]byte("{not json")))
}

func TestSetClusterCountRecomputes(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)
	e.SetViewMode(ViewCluster)

	e.SetClusterCount(1)
	centroids, _ := e.Clusters()
	assert.Len(t, centroids, 1)

	e.SetClusterCount(2)
	centroids, _ = e.Clusters()
	assert.Len(t, centroids, 2)

	// Invalid k is ignored.
	e.SetClusterCount(0)
	centroids, _ = e.Clusters()
	assert.Len(t, centroids, 2)
}

func TestSimulationToggle(t *testing.T) {
	e := newTestEngine(t)
	nodes, edges := testGraph()
	e.Rebuild(nodes, edges)

	assert.False(t, e.SimulationEnabled())
	e.SetSimulationEnabled(true)
	assert.True(t, e.SimulationEnabled())

	// Leaving force mode keeps the flag but the scheduler stops; coming
	// back restarts it.
	e.SetLayoutMode(layout.ModeHierarchical)
	assert.True(t, e.SimulationEnabled())
	e.SetLayoutMode(layout.ModeForce)

	e.SetSimulationEnabled(false)
	assert.False(t, e.SimulationEnabled())
}
