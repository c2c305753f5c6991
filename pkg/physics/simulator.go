// Package physics advances node positions under a simple force model:
// center gravity, pairwise Coulomb-style repulsion, spring attraction
// along edges, velocity damping and semi-implicit Euler integration.
// One Step is one unit of simulated time.
//
// The repulsion pass is O(n²) per tick. That is acceptable for the
// graphs this engine targets (up to a few hundred nodes) and is not
// optimized further. Convergence is not guaranteed for graphs with
// disconnected high-weight components.
package physics

import (
	"math"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
)

// Params are the tunable force coefficients.
type Params struct {
	Repulsion     float64 `json:"repulsion" yaml:"repulsion"`
	Attraction    float64 `json:"attraction" yaml:"attraction"`
	Damping       float64 `json:"damping" yaml:"damping"`
	CenterGravity float64 `json:"centerGravity" yaml:"center_gravity"`
	LinkStrength  float64 `json:"linkStrength" yaml:"link_strength"`
}

// DefaultParams returns the documented default coefficients.
func DefaultParams() Params {
	return Params{
		Repulsion:     800,
		Attraction:    0.005,
		Damping:       0.85,
		CenterGravity: 0.02,
		LinkStrength:  1.0,
	}
}

// DefaultMargin is the boundary clamp distance from the canvas edge.
const DefaultMargin = 50.0

// minDistance floors every pairwise distance. This is what keeps the
// simulation free of NaN and Infinity: no division ever sees a zero.
const minDistance = 1.0

// Simulator advances a model one tick at a time. It holds no per-tick
// state; a tick is an atomic synchronous pass over the node array.
type Simulator struct {
	params Params
	bounds layout.Bounds
	margin float64
}

// NewSimulator creates a simulator for the given canvas bounds.
func NewSimulator(params Params, bounds layout.Bounds) *Simulator {
	return &Simulator{params: params, bounds: bounds, margin: DefaultMargin}
}

// SetParams replaces the force coefficients between ticks.
func (s *Simulator) SetParams(p Params) {
	s.params = p
}

// Params returns the current force coefficients.
func (s *Simulator) Params() Params {
	return s.params
}

// Step performs one simulation tick over the model: pinned nodes snap
// to their pins with zero velocity; free nodes accumulate gravity,
// repulsion and spring forces into velocity, then damp, integrate and
// clamp into the canvas.
func (s *Simulator) Step(m *graph.Model) {
	p := s.params
	cx := s.bounds.Width / 2
	cy := s.bounds.Height / 2
	nodes := m.Nodes

	for i, node := range nodes {
		if node.Pin != nil {
			node.X = node.Pin.X
			node.Y = node.Pin.Y
			node.VX = 0
			node.VY = 0
			continue
		}

		node.VX += (cx - node.X) * p.CenterGravity
		node.VY += (cy - node.Y) * p.CenterGravity

		for j, other := range nodes {
			if i == j {
				continue
			}
			dx := node.X - other.X
			dy := node.Y - other.Y
			dist := math.Max(minDistance, math.Hypot(dx, dy))
			force := p.Repulsion / (dist * dist)
			node.VX += dx / dist * force
			node.VY += dy / dist * force
		}
	}

	// Each edge is processed once per tick and applies an equal and
	// opposite impulse to both endpoints. Pinned endpoints absorb
	// theirs (velocity stays zero).
	for _, edge := range m.ValidEdges() {
		src := m.NodeByID(edge.Source)
		dst := m.NodeByID(edge.Target)

		dx := dst.X - src.X
		dy := dst.Y - src.Y
		dist := math.Max(minDistance, math.Hypot(dx, dy))
		force := dist * p.Attraction * p.LinkStrength * (edge.Weight + 0.5)
		fx := dx / dist * force
		fy := dy / dist * force

		if src.Pin == nil {
			src.VX += fx
			src.VY += fy
		}
		if dst.Pin == nil {
			dst.VX -= fx
			dst.VY -= fy
		}
	}

	for _, node := range nodes {
		if node.Pin != nil {
			continue
		}
		node.VX *= p.Damping
		node.VY *= p.Damping
		node.X = clamp(node.X+node.VX, s.margin, s.bounds.Width-s.margin)
		node.Y = clamp(node.Y+node.VY, s.margin, s.bounds.Height-s.margin)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
