// Package layout seeds initial node positions for the graph view.
//
// Three modes are supported: force (random scatter around the canvas
// center, settled later by the simulator), radial (deterministic circle)
// and hierarchical (tier bands). Re-running force or hierarchical
// layouts produces different positions because their jitter is
// randomized; radial is fully deterministic. That asymmetry is
// intentional.
package layout

import (
	"math"
	"math/rand"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
)

// Mode selects the algorithm used to seed initial node positions.
type Mode string

const (
	ModeForce        Mode = "force"
	ModeRadial       Mode = "radial"
	ModeHierarchical Mode = "hierarchical"
)

// ParseMode converts a raw mode string, defaulting to force.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeRadial, ModeHierarchical:
		return Mode(s)
	default:
		return ModeForce
	}
}

// Bounds is the world-space canvas the layout targets.
type Bounds struct {
	Width  float64
	Height float64
}

const (
	radialRadiusFactor = 0.35
	forceScatterFactor = 0.30
	hierarchyColumns   = 10
	hierarchyJitter    = 25.0
)

// bandOrder is the top-to-bottom tier ordering for hierarchical layout.
var bandOrder = []graph.Tier{graph.TierHyper, graph.TierMega, graph.TierRegular, graph.TierShadow}

// Initialize places nodes for the given mode, mutating positions in
// place and zeroing velocities.
func Initialize(nodes []*graph.Node, mode Mode, bounds Bounds) {
	switch mode {
	case ModeRadial:
		initializeRadial(nodes, bounds)
	case ModeHierarchical:
		initializeHierarchical(nodes, bounds)
	default:
		initializeForce(nodes, bounds)
	}
	for _, node := range nodes {
		node.VX = 0
		node.VY = 0
	}
}

// initializeForce scatters nodes uniformly within ±30% of the canvas
// dimensions around the center. The simulation settles them afterwards.
func initializeForce(nodes []*graph.Node, bounds Bounds) {
	cx := bounds.Width / 2
	cy := bounds.Height / 2
	for _, node := range nodes {
		node.X = cx + (rand.Float64()*2-1)*forceScatterFactor*bounds.Width
		node.Y = cy + (rand.Float64()*2-1)*forceScatterFactor*bounds.Height
	}
}

// initializeRadial places node i of n at angle 2π·i/n − π/2 so the
// first node sits at 12 o'clock and nodes proceed clockwise.
func initializeRadial(nodes []*graph.Node, bounds Bounds) {
	if len(nodes) == 0 {
		return
	}
	cx := bounds.Width / 2
	cy := bounds.Height / 2
	radius := radialRadiusFactor * math.Min(bounds.Width, bounds.Height)

	for i, node := range nodes {
		angle := 2*math.Pi*float64(i)/float64(len(nodes)) - math.Pi/2
		node.X = cx + radius*math.Cos(angle)
		node.Y = cy + radius*math.Sin(angle)
	}
}

// initializeHierarchical buckets nodes into horizontal tier bands
// (hyper, mega, regular, shadow top to bottom, band height = h/5) and
// fills each band in 10 wrapping columns with ±25 units of vertical
// jitter.
func initializeHierarchical(nodes []*graph.Node, bounds Bounds) {
	bands := make(map[graph.Tier][]*graph.Node, len(bandOrder))
	for _, node := range nodes {
		bands[node.Tier] = append(bands[node.Tier], node)
	}

	bandHeight := bounds.Height / 5
	colSpacing := bounds.Width / float64(hierarchyColumns+1)

	for bandIdx, tier := range bandOrder {
		bandCenterY := float64(bandIdx)*bandHeight + bandHeight/2
		for i, node := range bands[tier] {
			col := i % hierarchyColumns
			node.X = colSpacing * float64(col+1)
			node.Y = bandCenterY + (rand.Float64()*2-1)*hierarchyJitter
		}
	}
}
