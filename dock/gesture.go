package dock

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

type pointerSample struct {
	at r2.Vec
	t  time.Time
}

// VelocityTracker estimates pointer velocity from recent samples.
type VelocityTracker struct {
	samples []pointerSample
	window  time.Duration
}

// NewVelocityTracker returns a tracker averaging over window. A zero window
// uses VelocityWindow.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	if window <= 0 {
		window = time.Duration(VelocityWindow * float64(time.Second))
	}
	return &VelocityTracker{window: window}
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() { v.samples = v.samples[:0] }

// Add records the pointer at p at time t. Samples older than the window are
// discarded.
func (v *VelocityTracker) Add(p r2.Vec, t time.Time) {
	v.samples = append(v.samples, pointerSample{at: p, t: t})
	cut := 0
	for cut < len(v.samples)-1 && t.Sub(v.samples[cut].t) > v.window {
		cut++
	}
	if cut > 0 {
		v.samples = append(v.samples[:0], v.samples[cut:]...)
	}
}

// Velocity returns the average velocity across the window in units per
// second, or zero with fewer than two distinct samples.
func (v *VelocityTracker) Velocity() r2.Vec {
	if len(v.samples) < 2 {
		return r2.Vec{}
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/dt, r2.Sub(last.at, first.at))
}

// ShouldBeginPanelDrag decides whether a drag on the panel moves the panel
// or scrolls its rows. A collapsed badge always moves. An expanded panel
// moves only when its rows are scrolled to the top and the drag heads down.
func ShouldBeginPanelDrag(collapsed bool, scrollOffset, velocityY float64) bool {
	if collapsed {
		return true
	}
	return scrollOffset <= 0 && velocityY > 0
}

// PastSlop reports whether a pointer that went down at start and is now at
// p has travelled far enough to count as a drag.
func PastSlop(start, p r2.Vec) bool {
	return r2.Norm(r2.Sub(p, start)) > TapSlop
}
