package dockui

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"tweakdock/dock"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	h, err := NewHost(dock.Options{}, dock.Insets{}, 2)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	clock := time.Unix(0, 0)
	h.now = func() time.Time {
		clock = clock.Add(16 * time.Millisecond)
		return clock
	}
	h.SetTPS(60)
	return h
}

func TestHostGeometryFromLayout(t *testing.T) {
	h := newTestHost(t)
	if _, ok := h.ScreenBounds(); ok || h.Panel.Ready() {
		t.Fatalf("geometry available before Layout")
	}
	w, ht := h.Layout(800, 1600)
	if w != 400 || ht != 800 {
		t.Fatalf("logical size %dx%d", w, ht)
	}
	if !h.Panel.Ready() {
		t.Fatalf("panel not ready after Layout")
	}
	if home := h.Panel.Layout().Home; home != (r2.Vec{X: 200, Y: dock.DefaultPadding}) {
		t.Fatalf("home %+v", home)
	}

	h.SetInsets(dock.Insets{Top: 47, Bottom: 34})
	if got := h.Panel.Position().Y; got != 47+dock.DefaultPadding {
		t.Fatalf("position after inset change %v", got)
	}

	h.SetScale(1)
	h.Layout(800, 1600)
	if b, _ := h.ScreenBounds(); b.Width() != 800 {
		t.Fatalf("scale change ignored: %+v", b)
	}
}

func TestHostPointerFrames(t *testing.T) {
	h := newTestHost(t)
	h.Layout(800, 1600)
	prm := h.Panel.NewParameter(nil, "size", 0, 0, 1)
	prm.Value()

	at := r2.Vec{X: 200, Y: 20}
	if !h.handlePointer(at, true, true, 0) {
		t.Fatalf("press on the panel not consumed")
	}
	for i := 0; i < 10; i++ {
		at.Y += 25
		h.handlePointer(at, false, true, 0)
	}
	if h.Panel.State() != dock.Dragging {
		t.Fatalf("state while dragging %v", h.Panel.State())
	}
	h.handlePointer(at, false, false, 0)
	if h.Panel.State() != dock.Docking || !h.Panel.Collapsed() {
		t.Fatalf("release: %v collapsed=%v", h.Panel.State(), h.Panel.Collapsed())
	}
	for i := 0; i < 2000 && h.Panel.Animating(); i++ {
		h.Panel.Tick(h.FrameDelta())
	}
	if h.Panel.State() != dock.Docked {
		t.Fatalf("state %v", h.Panel.State())
	}

	if h.handlePointer(r2.Vec{X: 200, Y: 400}, true, true, 0) {
		t.Fatalf("press away from the badge consumed")
	}
	h.handlePointer(r2.Vec{X: 200, Y: 400}, false, false, 0)
}

func TestHostFrameDelta(t *testing.T) {
	h := newTestHost(t)
	h.SetTPS(120)
	if got := h.FrameDelta(); got != 1.0/120 {
		t.Fatalf("frame delta %v", got)
	}
}
