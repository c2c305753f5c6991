// Package viewport owns the mapping between screen space and world
// (simulation) space. All screen/world conversions in the application
// go through one Transform so hit-testing, dragging and rendering can
// never drift apart on independently derived formulas.
package viewport

import (
	"math"

	"github.com/dd0wney/cluso-graphview/pkg/graph"
	"github.com/dd0wney/cluso-graphview/pkg/layout"
)

// Zoom limits.
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// hitSlack widens every node's hit radius by a fixed amount so small
// nodes stay clickable.
const hitSlack = 5.0

// Point is a 2D coordinate in either space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform maps between world and screen coordinates. The forward
// mapping translates by the canvas center, scales by zoom, then
// translates back by center plus pan; ScreenToWorld is its exact
// mathematical inverse.
type Transform struct {
	bounds layout.Bounds
	zoom   float64
	pan    Point
}

// NewTransform creates an identity transform (zoom 1, no pan) for the
// given canvas.
func NewTransform(bounds layout.Bounds) *Transform {
	return &Transform{bounds: bounds, zoom: 1}
}

// Zoom returns the current zoom factor.
func (t *Transform) Zoom() float64 { return t.zoom }

// Pan returns the current pan offset in screen units.
func (t *Transform) Pan() Point { return t.pan }

// SetZoom sets the zoom factor, clamped into [MinZoom, MaxZoom].
func (t *Transform) SetZoom(z float64) {
	t.zoom = math.Min(MaxZoom, math.Max(MinZoom, z))
}

// ZoomBy multiplies the current zoom by factor, clamped.
func (t *Transform) ZoomBy(factor float64) {
	t.SetZoom(t.zoom * factor)
}

// SetPan replaces the pan offset.
func (t *Transform) SetPan(p Point) { t.pan = p }

// PanBy shifts the pan offset by a screen-space delta.
func (t *Transform) PanBy(dx, dy float64) {
	t.pan.X += dx
	t.pan.Y += dy
}

// WorldToScreen maps a world-space point to screen space:
// screen = (p − center)·zoom + center + pan.
func (t *Transform) WorldToScreen(p Point) Point {
	cx := t.bounds.Width / 2
	cy := t.bounds.Height / 2
	return Point{
		X: (p.X-cx)*t.zoom + cx + t.pan.X,
		Y: (p.Y-cy)*t.zoom + cy + t.pan.Y,
	}
}

// ScreenToWorld maps a screen-space point back to world space. It is
// the exact inverse of WorldToScreen; the round trip is the identity
// within floating-point tolerance.
func (t *Transform) ScreenToWorld(p Point) Point {
	cx := t.bounds.Width / 2
	cy := t.bounds.Height / 2
	return Point{
		X: (p.X-cx-t.pan.X)/t.zoom + cx,
		Y: (p.Y-cy-t.pan.Y)/t.zoom + cy,
	}
}

// NodeRadius returns a node's render radius in world units. Radius is
// tier-dependent except in heatmap mode, where it scales with
// connection count instead.
func NodeRadius(node *graph.Node, heatmap bool) float64 {
	if heatmap {
		return 8 + math.Min(float64(node.Connections)*2, 20)
	}
	switch node.Tier {
	case graph.TierHyper:
		return 18
	case graph.TierMega:
		return 14
	default:
		return 10
	}
}

// HitTest converts a screen point to world space and returns the
// nearest node whose render radius plus slack contains it, or nil.
func (t *Transform) HitTest(m *graph.Model, screen Point, heatmap bool) *graph.Node {
	world := t.ScreenToWorld(screen)

	var best *graph.Node
	bestDist := math.MaxFloat64
	for _, node := range m.Nodes {
		dist := math.Hypot(node.X-world.X, node.Y-world.Y)
		if dist <= NodeRadius(node, heatmap)+hitSlack && dist < bestDist {
			best = node
			bestDist = dist
		}
	}
	return best
}
