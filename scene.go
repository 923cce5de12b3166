package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"tweakdock/dock"
	"tweakdock/motion"
)

var motionBlue = color.NRGBA{R: 120, G: 204, B: 252, A: 255}

const (
	// scenePadding insets the scene from the safe area.
	scenePadding = 12
	// pulsePeriod is one leg of the opacity pulse, in seconds.
	pulsePeriod = 2.0
	pulseMin    = 0.2
	// Per-copy start offsets of the pulse, in seconds.
	sourceDelay = 0.1
	copyDelay   = 0.2

	pressedScale = 0.8
)

// square is one replicated copy of the demo square.
type square struct {
	Center r2.Vec
	Size   float64
	// Delay offsets the opacity pulse.
	Delay float64
}

// scene is the demo: a square replicated twice over, every dimension of
// which is a tweakable parameter. It owns its parameters.
type scene struct {
	squareSize *dock.Parameter

	sourceCount *dock.Parameter
	sourceX     *dock.Parameter
	sourceY     *dock.Parameter

	copyCount *dock.Parameter
	copyX     *dock.Parameter
	copyY     *dock.Parameter

	testPrint *dock.Parameter
	published *dock.Parameter

	rotation *dock.Parameter
	response *dock.Parameter
	damping  *dock.Parameter

	press   motion.Spring1D
	clock   float64
	dirty   bool
	area    dock.Rect
	squares []square

	// changed receives every slider edit after the scene has invalidated.
	changed func(*dock.Parameter)
}

func newScene(p *dock.Panel, changed func(*dock.Parameter)) *scene {
	s := &scene{changed: changed, dirty: true}
	s.press = motion.Spring1D{Position: 1, Target: 1}

	s.squareSize = p.NewParameter(s, "squareSize", 44, 24, 144, dock.WithTitle("square.size"))
	s.sourceCount = p.NewParameter(s, "sourceCopyCount", 1, 0, 100)
	s.sourceX = p.NewParameter(s, "sourceInstanceTransformX", 0, -200, 200)
	s.sourceY = p.NewParameter(s, "sourceInstanceTransformY", 0, -200, 200)
	s.copyCount = p.NewParameter(s, "copyCopyCount", 1, 0, 100)
	s.copyX = p.NewParameter(s, "copyInstanceTransformX", 0, -200, 200)
	s.copyY = p.NewParameter(s, "copyInstanceTransformY", 0, -200, 200)
	s.testPrint = p.NewParameter(s, "testPrint", 0, -200, 200, dock.WithOnChange(func(owner dock.Owner, v float64) {
		logDebug("testPrint: %T %v", owner, v)
	}))
	s.published = p.NewParameter(s, "somePublishedValue", 0, -10, 10)
	s.rotation = p.NewParameter(s, "rotation", 0, 0, math.Pi)
	s.response = p.NewParameter(s, "response", 0.3, 0.05, 2)
	s.damping = p.NewParameter(s, "dampingFraction", 1, 0.05, 1)

	// testPrint is read first, so it heads the panel.
	s.testPrint.Value()
	s.relayout(dock.Rect{})
	s.published.Value()
	s.rotation.Value()
	s.response.Value()
	s.damping.Value()
	return s
}

// Invalidate marks the replicated layout stale.
func (s *scene) Invalidate() { s.dirty = true }

// BroadcastChange forwards slider edits to the change hook.
func (s *scene) BroadcastChange(p *dock.Parameter) {
	if s.changed != nil {
		s.changed(p)
	}
}

// relayout recomputes the copies inside area.
func (s *scene) relayout(area dock.Rect) {
	s.area = area
	s.squares = replicate(area,
		s.squareSize.Value(),
		int(s.sourceCount.Value()), r2.Vec{X: s.sourceX.Value(), Y: s.sourceY.Value()},
		int(s.copyCount.Value()), r2.Vec{X: s.copyX.Value(), Y: s.copyY.Value()},
	)
	s.dirty = false
}

// replicate lays out sourceCount rows of copyCount squares. Copy (i, j) is
// shifted by i steps of sourceStep and j steps of copyStep from the first
// square, whose centre sits one square size in from the area's corner.
func replicate(area dock.Rect, size float64, sourceCount int, sourceStep r2.Vec, copyCount int, copyStep r2.Vec) []square {
	if sourceCount <= 0 || copyCount <= 0 {
		return nil
	}
	origin := r2.Vec{X: area.X0 + size, Y: area.Y0 + size}
	out := make([]square, 0, sourceCount*copyCount)
	for i := 0; i < sourceCount; i++ {
		row := r2.Add(origin, r2.Scale(float64(i), sourceStep))
		for j := 0; j < copyCount; j++ {
			out = append(out, square{
				Center: r2.Add(row, r2.Scale(float64(j), copyStep)),
				Size:   size,
				Delay:  float64(i)*sourceDelay + float64(j)*copyDelay,
			})
		}
	}
	return out
}

// pulse returns the square opacity at time t, easing between pulseMin and
// 1 and back. Before its delay has passed a copy holds at pulseMin.
func pulse(t float64) float64 {
	if t <= 0 {
		return pulseMin
	}
	phase := math.Mod(t, 2*pulsePeriod)
	u := phase / pulsePeriod
	if u > 1 {
		u = 2 - u
	}
	eased := u * u * (3 - 2*u)
	return pulseMin + (1-pulseMin)*eased
}

// update advances the scene clock and the press spring. area is the
// scene's current bounds; pressed is whether the pointer is down on the
// scene rather than on the panel.
func (s *scene) update(dt float64, area dock.Rect, pressed bool) {
	s.clock += dt
	if s.dirty || area != s.area {
		s.relayout(area)
	}
	target := 1.0
	if pressed {
		target = pressedScale
	}
	if target != s.press.Target {
		s.press.Target = target
		s.press.Start()
	}
	s.press.Response = s.response.Value()
	s.press.DampingRatio = s.damping.Value()
	s.press.Step(dt)
}

func (s *scene) draw(screen *ebiten.Image) {
	scale := s.press.Position
	squash := math.Abs(math.Cos(s.rotation.Value()))
	for _, sq := range s.squares {
		w := sq.Size * scale * squash
		h := sq.Size * scale
		if w <= 0 || h <= 0 {
			continue
		}
		col := motionBlue
		col.A = uint8(255 * pulse(s.clock-sq.Delay))
		vector.DrawFilledRect(screen,
			float32(sq.Center.X-w/2), float32(sq.Center.Y-h/2),
			float32(w), float32(h), col, true)
	}
}

// sceneArea returns the bounds inside the safe area, less padding.
func sceneArea(screen dock.Rect, in dock.Insets) dock.Rect {
	r := dock.Rect{
		X0: screen.X0 + in.Left + scenePadding,
		Y0: screen.Y0 + in.Top + scenePadding,
		X1: screen.X1 - in.Right - scenePadding,
		Y1: screen.Y1 - in.Bottom - scenePadding,
	}
	if r.X1 < r.X0 {
		r.X1 = r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y1 = r.Y0
	}
	return r
}
