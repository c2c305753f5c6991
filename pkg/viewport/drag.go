package viewport

import "github.com/dd0wney/cluso-graphview/pkg/graph"

// Drag tracks one pointer gesture. Dragging empty space pans the
// viewport; dragging a node pins it to the pointer for the duration of
// the gesture and releases it back to free simulation on End. Pins are
// the only node fields a drag ever writes, which keeps an overlapping
// simulation tick benign: the next tick simply observes the latest pin.
type Drag struct {
	transform *Transform
	node      *graph.Node // nil for a pan gesture
	last      Point       // last screen position
}

// BeginDrag starts a gesture at a screen point. A hit node becomes a
// node drag and is pinned at its current position; a miss becomes a
// pan.
func (t *Transform) BeginDrag(m *graph.Model, screen Point, heatmap bool) *Drag {
	drag := &Drag{transform: t, last: screen}
	if node := t.HitTest(m, screen, heatmap); node != nil {
		drag.node = node
		node.Pin = &graph.Pin{X: node.X, Y: node.Y}
	}
	return drag
}

// NodeID returns the id of the dragged node, or "" for a pan gesture.
func (d *Drag) NodeID() string {
	if d.node == nil {
		return ""
	}
	return d.node.ID
}

// MoveTo advances the gesture to a new screen position, updating the
// pin (node drag) or the pan offset (pan).
func (d *Drag) MoveTo(screen Point) {
	if d.node != nil {
		world := d.transform.ScreenToWorld(screen)
		d.node.Pin = &graph.Pin{X: world.X, Y: world.Y}
	} else {
		d.transform.PanBy(screen.X-d.last.X, screen.Y-d.last.Y)
	}
	d.last = screen
}

// End finishes the gesture. A dragged node's pin is cleared, returning
// it to free simulation.
func (d *Drag) End() {
	if d.node != nil {
		d.node.Pin = nil
		d.node = nil
	}
}
