// Package dockui hosts a dock.Panel inside an Ebiten game: it supplies the
// screen geometry, routes pointer input, advances animations on the frame
// clock and draws the panel.
package dockui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"tweakdock/dock"
)

// Host embeds a panel in an Ebiten game. Call Layout, Update and Draw from
// the game's methods of the same name.
type Host struct {
	Panel  *dock.Panel
	router *Router

	insets dock.Insets
	scale  float64
	tps    int

	width, height int
	pressed       bool

	content *ebiten.Image

	// now is replaced in tests.
	now func() time.Time
}

// NewHost creates a host and its panel. insets simulate a device safe area
// and scale divides the window into logical units.
func NewHost(opts dock.Options, insets dock.Insets, scale float64) (*Host, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	h := &Host{insets: insets, scale: scale, now: time.Now}
	h.Panel = dock.NewPanel(h, opts)
	h.router = NewRouter(h.Panel)
	return h, nil
}

// ScreenBounds implements dock.GeometryProvider. It is unavailable until
// the first Layout call.
func (h *Host) ScreenBounds() (dock.Rect, bool) {
	if h.width <= 0 || h.height <= 0 {
		return dock.Rect{}, false
	}
	return dock.RectAt(0, 0, float64(h.width), float64(h.height)), true
}

// SafeAreaInsets implements dock.GeometryProvider.
func (h *Host) SafeAreaInsets() dock.Insets { return h.insets }

// SetInsets changes the simulated safe area.
func (h *Host) SetInsets(in dock.Insets) {
	if in == h.insets {
		return
	}
	h.insets = in
	h.Panel.GeometryChanged()
}

// SetScale changes the UI scale. The new logical size takes effect on the
// next Layout call.
func (h *Host) SetScale(s float64) { h.scale = s }

// SetTPS sets the tick rate used as the animation step. Zero or negative
// uses the measured rate.
func (h *Host) SetTPS(tps int) { h.tps = tps }

// Layout converts the window size to logical units and reports it back to
// Ebiten. A size change relayouts the panel.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := h.scale
	if s <= 0 {
		s = 1
	}
	w := int(float64(outsideWidth) / s)
	ht := int(float64(outsideHeight) / s)
	if w != h.width || ht != h.height {
		h.width, h.height = w, ht
		h.Panel.GeometryChanged()
	}
	return w, ht
}

// Update routes pointer input and advances animations. It reports whether
// the panel consumed the pointer this frame.
func (h *Host) Update() bool {
	btn := readPointerButtons()
	if btn.multi && h.pressed {
		h.router.Cancel()
		h.pressed = false
	}
	used := h.handlePointer(PointerPosition(), btn.justPressed, btn.pressed, pointerWheel())
	if h.Panel.Animating() {
		h.Panel.Tick(h.FrameDelta())
	}
	return used
}

// handlePointer feeds one frame of pointer state to the router.
func (h *Host) handlePointer(at r2.Vec, justPressed, pressed bool, wheel float64) bool {
	now := h.now()
	used := false
	switch {
	case justPressed:
		used = h.router.Press(at, now)
		h.pressed = true
	case pressed && h.pressed:
		h.router.Move(at, now)
		used = h.router.Active()
	case h.pressed:
		h.pressed = false
		used = h.router.Active()
		h.router.Release(at, now)
	}
	if wheel != 0 {
		h.router.Wheel(at, wheel)
		used = used || h.Panel.HitTest(at)
	}
	return used
}

// FrameDelta returns the animation step for one tick, in seconds.
func (h *Host) FrameDelta() float64 {
	tps := float64(h.tps)
	if tps <= 0 {
		tps = ebiten.ActualTPS()
	}
	if tps <= 0 {
		tps = float64(ebiten.DefaultTPS)
	}
	return 1 / tps
}

// Draw renders the panel on top of screen.
func (h *Host) Draw(screen *ebiten.Image) {
	h.drawPanel(screen)
}

func rowOffset(scroll float64) r2.Vec { return r2.Vec{Y: -scroll} }
