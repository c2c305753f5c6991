package viewport

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-graphview/pkg/layout"
)

// TestTransformRoundTrip verifies with property-based testing that
// ScreenToWorld is the exact inverse of WorldToScreen for any legal
// zoom and any pan offset.
func TestTransformRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("worldToScreen(screenToWorld(p)) == p", prop.ForAll(
		func(zoom, panX, panY, px, py float64) bool {
			tr := NewTransform(layout.Bounds{Width: 1200, Height: 800})
			tr.SetZoom(zoom)
			tr.SetPan(Point{X: panX, Y: panY})

			p := Point{X: px, Y: py}
			rt := tr.WorldToScreen(tr.ScreenToWorld(p))

			// Relative tolerance: points far from the origin lose
			// absolute precision in the divide/multiply pair.
			scale := math.Max(1, math.Max(math.Abs(px), math.Abs(py)))
			return math.Abs(rt.X-p.X) <= 1e-9*scale && math.Abs(rt.Y-p.Y) <= 1e-9*scale
		},
		gen.Float64Range(MinZoom, MaxZoom),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e5, 1e5),
		gen.Float64Range(-1e5, 1e5),
	))

	properties.Property("screenToWorld(worldToScreen(p)) == p", prop.ForAll(
		func(zoom, panX, panY, px, py float64) bool {
			tr := NewTransform(layout.Bounds{Width: 1200, Height: 800})
			tr.SetZoom(zoom)
			tr.SetPan(Point{X: panX, Y: panY})

			p := Point{X: px, Y: py}
			rt := tr.ScreenToWorld(tr.WorldToScreen(p))

			scale := math.Max(1, math.Max(math.Abs(px), math.Abs(py)))
			return math.Abs(rt.X-p.X) <= 1e-9*scale && math.Abs(rt.Y-p.Y) <= 1e-9*scale
		},
		gen.Float64Range(MinZoom, MaxZoom),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e5, 1e5),
		gen.Float64Range(-1e5, 1e5),
	))

	properties.TestingRun(t)
}
