package layout

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
)

func makeNodes(tiers ...graph.Tier) []*graph.Node {
	nodes := make([]*graph.Node, len(tiers))
	for i, tier := range tiers {
		nodes[i] = &graph.Node{ID: string(rune('a' + i)), Tier: tier, VX: 1, VY: -1}
	}
	return nodes
}

var testBounds = Bounds{Width: 1000, Height: 1000}

// TestRadial_ClockPositions verifies 4 nodes land at 12, 3, 6 and 9
// o'clock at the configured radius, independent of run
func TestRadial_ClockPositions(t *testing.T) {
	nodes := makeNodes(graph.TierRegular, graph.TierRegular, graph.TierRegular, graph.TierRegular)
	Initialize(nodes, ModeRadial, testBounds)

	radius := 0.35 * 1000.0
	want := [][2]float64{
		{500, 500 - radius}, // 12 o'clock
		{500 + radius, 500}, // 3 o'clock
		{500, 500 + radius}, // 6 o'clock
		{500 - radius, 500}, // 9 o'clock
	}
	const tol = 1e-9
	for i, node := range nodes {
		if math.Abs(node.X-want[i][0]) > tol || math.Abs(node.Y-want[i][1]) > tol {
			t.Errorf("node %d at (%v, %v), want (%v, %v)", i, node.X, node.Y, want[i][0], want[i][1])
		}
	}
}

// TestRadial_Deterministic verifies two runs produce identical layouts
func TestRadial_Deterministic(t *testing.T) {
	first := makeNodes(graph.TierRegular, graph.TierMega, graph.TierHyper)
	second := makeNodes(graph.TierRegular, graph.TierMega, graph.TierHyper)
	Initialize(first, ModeRadial, testBounds)
	Initialize(second, ModeRadial, testBounds)

	for i := range first {
		if first[i].X != second[i].X || first[i].Y != second[i].Y {
			t.Errorf("node %d differs across runs: (%v,%v) vs (%v,%v)",
				i, first[i].X, first[i].Y, second[i].X, second[i].Y)
		}
	}
}

// TestForce_ScatterWithinBounds verifies the random scatter stays
// within ±30% of the canvas around its center
func TestForce_ScatterWithinBounds(t *testing.T) {
	nodes := make([]*graph.Node, 200)
	for i := range nodes {
		nodes[i] = &graph.Node{}
	}
	Initialize(nodes, ModeForce, testBounds)

	for i, node := range nodes {
		if math.Abs(node.X-500) > 300+1e-9 || math.Abs(node.Y-500) > 300+1e-9 {
			t.Errorf("node %d scattered outside ±30%%: (%v, %v)", i, node.X, node.Y)
		}
	}
}

// TestHierarchical_TierBands verifies nodes land inside their tier's
// horizontal band, ordered hyper, mega, regular, shadow
func TestHierarchical_TierBands(t *testing.T) {
	nodes := makeNodes(graph.TierShadow, graph.TierHyper, graph.TierRegular, graph.TierMega)
	Initialize(nodes, ModeHierarchical, testBounds)

	bandHeight := 1000.0 / 5
	bandCenters := map[graph.Tier]float64{
		graph.TierHyper:   0*bandHeight + bandHeight/2,
		graph.TierMega:    1*bandHeight + bandHeight/2,
		graph.TierRegular: 2*bandHeight + bandHeight/2,
		graph.TierShadow:  3*bandHeight + bandHeight/2,
	}
	for _, node := range nodes {
		center := bandCenters[node.Tier]
		if math.Abs(node.Y-center) > 25+1e-9 {
			t.Errorf("tier %s node at y=%v, want %v ±25", node.Tier, node.Y, center)
		}
	}
}

// TestHierarchical_ColumnsWrap verifies the 11th node of a band reuses
// the first column
func TestHierarchical_ColumnsWrap(t *testing.T) {
	nodes := make([]*graph.Node, 11)
	for i := range nodes {
		nodes[i] = &graph.Node{Tier: graph.TierRegular}
	}
	Initialize(nodes, ModeHierarchical, testBounds)

	if nodes[10].X != nodes[0].X {
		t.Errorf("11th node at x=%v, want wrap to first column x=%v", nodes[10].X, nodes[0].X)
	}
	if nodes[1].X == nodes[0].X {
		t.Error("adjacent columns should differ in x")
	}
}

// TestInitialize_ZeroesVelocities verifies every mode resets velocity
func TestInitialize_ZeroesVelocities(t *testing.T) {
	for _, mode := range []Mode{ModeForce, ModeRadial, ModeHierarchical} {
		nodes := makeNodes(graph.TierRegular, graph.TierMega)
		Initialize(nodes, mode, testBounds)
		for i, node := range nodes {
			if node.VX != 0 || node.VY != 0 {
				t.Errorf("%s: node %d velocity not zeroed: (%v, %v)", mode, i, node.VX, node.VY)
			}
		}
	}
}

// TestParseMode verifies unknown modes default to force
func TestParseMode(t *testing.T) {
	if got := ParseMode("radial"); got != ModeRadial {
		t.Errorf("ParseMode(radial) = %s", got)
	}
	if got := ParseMode("bogus"); got != ModeForce {
		t.Errorf("ParseMode(bogus) = %s, want force", got)
	}
}
