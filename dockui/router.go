package dockui

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"tweakdock/dock"
)

type gesture int

const (
	gestureNone gesture = iota
	// gesturePending is a press on the panel that has not yet moved past
	// the tap slop.
	gesturePending
	gestureSlider
	gesturePanel
	gestureScroll
)

// wheelStep is how far one wheel notch scrolls the rows.
const wheelStep = 24

// Router turns raw pointer events into panel gestures. A press on a slider
// track adjusts the slider. Any other press on the panel becomes a tap, a
// panel drag or a scroll of the rows, decided once the pointer leaves the
// tap slop.
type Router struct {
	panel *dock.Panel
	vel   *dock.VelocityTracker

	mode  gesture
	start r2.Vec
	last  r2.Vec
	row   *dock.Row
	track dock.Rect
}

// NewRouter returns a router driving p.
func NewRouter(p *dock.Panel) *Router {
	return &Router{panel: p, vel: dock.NewVelocityTracker(0)}
}

// Active reports whether a gesture is in progress.
func (r *Router) Active() bool { return r.mode != gestureNone }

// Press starts a gesture at at. It reports whether the panel took the press.
func (r *Router) Press(at r2.Vec, t time.Time) bool {
	r.mode = gestureNone
	if !r.panel.HitTest(at) {
		return false
	}
	r.vel.Reset()
	r.vel.Add(at, t)
	r.start, r.last = at, at

	if row, track, ok := r.panel.RowAt(at); ok {
		r.mode = gestureSlider
		r.row, r.track = row, track
		row.SetFromTrack(at.X, track)
		return true
	}
	if r.panel.State() == dock.Docking {
		// Catch the panel mid-flight.
		r.panel.BeginDrag(at)
		r.mode = gesturePanel
		return true
	}
	r.mode = gesturePending
	return true
}

// Move follows the pointer.
func (r *Router) Move(at r2.Vec, t time.Time) {
	if r.mode == gestureNone {
		return
	}
	r.vel.Add(at, t)
	switch r.mode {
	case gestureSlider:
		r.row.SetFromTrack(at.X, r.track)
	case gesturePending:
		if !dock.PastSlop(r.start, at) {
			break
		}
		v := r.vel.Velocity()
		if dock.ShouldBeginPanelDrag(r.panel.Collapsed(), r.panel.ScrollOffset(), v.Y) {
			r.panel.BeginDrag(r.start)
			r.panel.MoveDrag(at)
			r.mode = gesturePanel
		} else {
			r.panel.Scroll(r.start.Y - at.Y)
			r.mode = gestureScroll
		}
	case gesturePanel:
		r.panel.MoveDrag(at)
	case gestureScroll:
		r.panel.Scroll(r.last.Y - at.Y)
	}
	r.last = at
}

// Release ends the gesture at at.
func (r *Router) Release(at r2.Vec, t time.Time) {
	switch r.mode {
	case gesturePending:
		r.panel.Tap(at)
	case gesturePanel:
		r.vel.Add(at, t)
		r.panel.MoveDrag(at)
		r.panel.EndDrag(r.vel.Velocity())
	}
	r.reset()
}

// Cancel abandons the gesture, for example when a second finger lands.
func (r *Router) Cancel() {
	if r.mode == gesturePanel {
		r.panel.CancelDrag()
	}
	r.reset()
}

// Wheel scrolls the rows of an expanded panel under the pointer.
func (r *Router) Wheel(at r2.Vec, dy float64) {
	if dy == 0 || r.mode != gestureNone || !r.panel.HitTest(at) {
		return
	}
	r.panel.Scroll(-dy * wheelStep)
}

func (r *Router) reset() {
	r.mode = gestureNone
	r.row = nil
	r.vel.Reset()
}
