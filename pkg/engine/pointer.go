package engine

import (
	"github.com/dd0wney/cluso-graphview/pkg/viewport"
)

// Pointer handlers for the UI collaborator. One gesture at a time: a
// press either grabs a node (pinning it for the drag's duration) or
// starts a pan. Gesture writes touch only pins and the viewport, so an
// overlapping simulation tick simply observes the latest pin state.

// PointerDown starts a gesture at a screen point and returns the id of
// the grabbed node, or "" for a pan.
func (e *Engine) PointerDown(screen viewport.Point) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.drag = e.transform.BeginDrag(e.model, screen, e.viewMode == ViewHeatmap)
	return e.drag.NodeID()
}

// PointerMove advances the active gesture; a no-op without one.
func (e *Engine) PointerMove(screen viewport.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != nil {
		e.drag.MoveTo(screen)
	}
}

// PointerUp ends the active gesture, releasing any dragged node back
// to free simulation.
func (e *Engine) PointerUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != nil {
		e.drag.End()
		e.drag = nil
	}
}

// HitTest returns the id of the node at a screen point, or "".
func (e *Engine) HitTest(screen viewport.Point) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if node := e.transform.HitTest(e.model, screen, e.viewMode == ViewHeatmap); node != nil {
		return node.ID
	}
	return ""
}

// SetZoom sets the viewport zoom, clamped to its valid range.
func (e *Engine) SetZoom(zoom float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform.SetZoom(zoom)
}

// ZoomBy multiplies the viewport zoom by factor, clamped.
func (e *Engine) ZoomBy(factor float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform.ZoomBy(factor)
}

// PanBy shifts the viewport pan offset by a screen-space delta.
func (e *Engine) PanBy(dx, dy float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform.PanBy(dx, dy)
}
