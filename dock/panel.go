// Package dock implements the floating tweak panel: a column of parameter
// sliders that can be dragged around, flung into a badge docked at a screen
// corner, and tapped back open.
//
// A Panel is driven from a single goroutine. Gesture events and Tick calls
// arrive on the same timeline, so nothing here locks.
package dock

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"tweakdock/motion"
)

// State is the panel's position in its state machine.
type State int

const (
	Expanded State = iota
	Dragging
	Docking
	Docked
)

func (s State) String() string {
	switch s {
	case Expanded:
		return "expanded"
	case Dragging:
		return "dragging"
	case Docking:
		return "docking"
	case Docked:
		return "docked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition describes a state change reported to the observer.
type Transition struct {
	From, To  State
	Collapsed bool
	// Anchor is the chosen corner when Collapsed is set.
	Anchor Anchor
	// Elapsed is the time spent animating since the last release or tap.
	Elapsed time.Duration
}

// Panel is the overlay controller. It owns the slider registry, the layout,
// the single position spring and the chrome transition. One Panel serves one
// overlay; construct separate instances for independent overlays or tests.
type Panel struct {
	opts Options
	geo  GeometryProvider
	reg  *Registry

	layout  Layout
	anchors []AnchorPoint
	ready   bool

	state     State
	collapsed bool
	anchor    Anchor
	position  r2.Vec

	spring *motion.Spring
	chrome motion.Spring1D

	dragOrigin r2.Vec
	dragStart  r2.Vec

	scroll  float64
	elapsed float64

	observer func(Transition)
}

// NewPanel creates an expanded panel on the surface described by geo. Zero
// fields in opts take their defaults.
func NewPanel(geo GeometryProvider, opts Options) *Panel {
	p := &Panel{
		geo:   geo,
		reg:   NewRegistry(),
		state: Expanded,
	}
	p.opts = normalizeOptions(opts)
	p.spring = motion.NewSpring(r2.Vec{}, p.opts.Response, p.opts.DampingRatio)
	p.chrome = motion.Spring1D{Response: ChromeResponse, DampingRatio: 1}
	p.reg.changed = p.relayout
	p.GeometryChanged()
	return p
}

func normalizeOptions(o Options) Options {
	d := DefaultOptions()
	if o.Metrics == (Metrics{}) {
		o.Metrics = d.Metrics
	}
	if o.Response <= 0 {
		o.Response = d.Response
	}
	if o.DampingRatio <= 0 {
		o.DampingRatio = d.DampingRatio
	}
	if o.Decay <= 0 || o.Decay >= 1 {
		o.Decay = d.Decay
	}
	if o.CollapseVelocity <= 0 {
		o.CollapseVelocity = d.CollapseVelocity
	}
	if len(o.Anchors) == 0 {
		o.Anchors = d.Anchors
	}
	return o
}

// NewParameter declares a parameter owned by owner and shown on this panel
// once it is first read. See NewParameter for the range rules.
func (p *Panel) NewParameter(owner Owner, id string, initial, lo, hi float64, opts ...ParamOption) *Parameter {
	return NewParameter(p.reg, owner, id, initial, lo, hi, opts...)
}

// Registry returns the slider registry.
func (p *Panel) Registry() *Registry { return p.reg }

// SetObserver installs a callback for state transitions.
func (p *Panel) SetObserver(fn func(Transition)) { p.observer = fn }

// Configure replaces the panel options, keeping the current state. A docked
// panel whose corner is no longer allowed moves to the nearest allowed one.
func (p *Panel) Configure(opts Options) {
	p.opts = normalizeOptions(opts)
	p.spring.Response = p.opts.Response
	p.spring.DampingRatio = p.opts.DampingRatio
	p.relayout()
	if !p.ready {
		return
	}
	if p.collapsed && !p.opts.Anchors.Has(p.anchor) {
		if ap, ok := Nearest(p.anchors, p.position); ok {
			p.anchor = ap.Anchor
		}
	}
	p.settleOnGeometry()
}

// GeometryChanged re-reads the screen and safe area, recomputes the layout
// and keeps the panel at its resting place. Until geometry is available the
// panel ignores gestures.
func (p *Panel) GeometryChanged() {
	wasReady := p.ready
	p.relayout()
	if !p.ready {
		return
	}
	if !wasReady {
		p.position = p.destination()
		p.spring.Reset(p.position, r2.Vec{})
		return
	}
	p.settleOnGeometry()
}

func (p *Panel) settleOnGeometry() {
	switch p.state {
	case Expanded, Docked:
		p.position = p.destination()
		p.spring.Reset(p.position, r2.Vec{})
	case Docking:
		p.spring.Target = p.destination()
	}
}

// relayout recomputes the layout from scratch. It runs on every registry and
// geometry change.
func (p *Panel) relayout() {
	if p.geo == nil {
		p.ready = false
		return
	}
	screen, ok := p.geo.ScreenBounds()
	if !ok || screen.Empty() {
		p.ready = false
		return
	}
	insets := p.geo.SafeAreaInsets()
	m := p.opts.Metrics
	p.layout = ComputeLayout(screen, insets, p.reg.Heights(m.RowHeight), m)
	for i, row := range p.reg.rows {
		row.Frame = p.layout.Rows[i]
	}
	p.anchors = p.opts.Anchors.Points(screen, insets, m)
	p.scroll = clampScroll(p.scroll, p.layout.MaxScroll)
	p.ready = true
}

func clampScroll(v, max float64) float64 {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (p *Panel) destination() r2.Vec {
	if p.collapsed {
		for _, ap := range p.anchors {
			if ap.Anchor == p.anchor {
				return ap.Point
			}
		}
	}
	return p.layout.Home
}

// BeginDrag starts moving the panel with a pointer at at. It is accepted in
// every state: any animation in flight is stopped where it is.
func (p *Panel) BeginDrag(at r2.Vec) {
	if !p.ready {
		return
	}
	p.spring.Stop()
	p.dragOrigin = p.position
	p.dragStart = at
	p.setState(Dragging)
}

// MoveDrag follows the pointer one to one.
func (p *Panel) MoveDrag(at r2.Vec) {
	if p.state != Dragging {
		return
	}
	p.position = r2.Add(p.dragOrigin, r2.Sub(at, p.dragStart))
	p.spring.Position = p.position
}

// EndDrag releases the panel with the pointer's velocity in units per
// second. A collapsed panel, or an expanded one released vertically faster
// than CollapseVelocity, docks at the allowed corner nearest to where the
// fling would come to rest. Otherwise the panel returns home.
func (p *Panel) EndDrag(velocity r2.Vec) {
	if p.state != Dragging {
		return
	}
	collapse := p.collapsed || math.Abs(velocity.Y) > p.opts.CollapseVelocity
	if collapse {
		rest := motion.PredictRestPosition(p.position, velocity, p.opts.Decay)
		ap, ok := Nearest(p.anchors, rest)
		if ok {
			p.anchor = ap.Anchor
		} else {
			collapse = false
		}
	}
	p.setCollapsed(collapse)

	p.spring.Position = p.position
	p.spring.Velocity = velocity
	p.spring.Target = p.destination()
	p.spring.Start()
	p.elapsed = 0
	p.setState(Docking)
}

// CancelDrag ends a drag without a fling.
func (p *Panel) CancelDrag() { p.EndDrag(r2.Vec{}) }

// Tap expands a docked badge when at lands on it. It reports whether the tap
// was used.
func (p *Panel) Tap(at r2.Vec) bool {
	if !p.ready || p.state != Docked || !p.HitTest(at) {
		return false
	}
	p.setCollapsed(false)
	p.spring.Reset(p.position, r2.Vec{})
	p.spring.Target = p.destination()
	p.spring.Start()
	p.elapsed = 0
	p.setState(Docking)
	return true
}

// Tick advances every running animation by dt seconds, one step each, and
// reports whether more frames are needed.
func (p *Panel) Tick(dt float64) bool {
	if p.state == Docking {
		p.position = p.spring.Step(dt)
		p.elapsed += dt
		if !p.spring.Running() {
			if p.collapsed {
				p.setState(Docked)
			} else {
				p.setState(Expanded)
			}
		}
	}
	if p.chrome.Running() {
		p.chrome.Step(dt)
	}
	return p.Animating()
}

// Animating reports whether the host should keep delivering frames.
func (p *Panel) Animating() bool {
	return p.state == Docking || p.chrome.Running()
}

func (p *Panel) setCollapsed(c bool) {
	if c == p.collapsed {
		return
	}
	p.collapsed = c
	if c {
		p.chrome.Target = 1
	} else {
		p.chrome.Target = 0
	}
	p.chrome.Start()
}

func (p *Panel) setState(s State) {
	if s == p.state {
		return
	}
	tr := Transition{
		From:      p.state,
		To:        s,
		Collapsed: p.collapsed,
		Anchor:    p.anchor,
		Elapsed:   time.Duration(p.elapsed * float64(time.Second)),
	}
	p.state = s
	if p.observer != nil {
		p.observer(tr)
	}
}

// State returns the current state.
func (p *Panel) State() State { return p.state }

// Collapsed reports whether the panel is, or is heading to, the badge.
func (p *Panel) Collapsed() bool { return p.collapsed }

// Anchor returns the docking corner; ok is false while expanded.
func (p *Panel) Anchor() (a Anchor, ok bool) { return p.anchor, p.collapsed }

// Position returns the top-centre point of the panel.
func (p *Panel) Position() r2.Vec { return p.position }

// Spring exposes the position spring.
func (p *Panel) Spring() *motion.Spring { return p.spring }

// Layout returns the last computed layout.
func (p *Panel) Layout() Layout { return p.layout }

// Anchors returns the allowed anchors resolved on the current screen.
func (p *Panel) Anchors() []AnchorPoint { return p.anchors }

// Metrics returns the panel measurements.
func (p *Panel) Metrics() Metrics { return p.opts.Metrics }

// Ready reports whether geometry is available.
func (p *Panel) Ready() bool { return p.ready }

// Visible reports whether there is anything to show: geometry is available
// and at least one parameter is registered.
func (p *Panel) Visible() bool { return p.ready && p.reg.Len() > 0 }

// Chrome returns the current decoration.
func (p *Panel) Chrome() Chrome {
	return chromeAt(p.chrome.Position, p.layout.Container, p.opts.Metrics.BadgeSize)
}

// Frame returns the panel rectangle on screen.
func (p *Panel) Frame() Rect {
	return topCenterRect(p.position, p.Chrome().Size)
}

// HitTest reports whether pt lies on the panel.
func (p *Panel) HitTest(pt r2.Vec) bool {
	return p.Visible() && p.Frame().Contains(pt)
}

// Scroll moves the rows by dy, clamped to the content. A collapsed panel
// does not scroll.
func (p *Panel) Scroll(dy float64) {
	if p.collapsed {
		return
	}
	p.scroll = clampScroll(p.scroll+dy, p.layout.MaxScroll)
}

// ScrollOffset returns how far the rows are scrolled.
func (p *Panel) ScrollOffset() float64 { return p.scroll }

// RowRect returns row's frame on screen for the expanded panel.
func (p *Panel) RowRect(row *Row) Rect {
	f := p.Frame()
	return row.Frame.Offset(r2.Vec{X: f.X0, Y: f.Y0 - p.scroll})
}

// RowAt finds the slider track under pt. Only a resting expanded panel
// exposes its sliders.
func (p *Panel) RowAt(pt r2.Vec) (*Row, Rect, bool) {
	if !p.Visible() || p.collapsed || p.state != Expanded {
		return nil, Rect{}, false
	}
	if !p.Frame().Contains(pt) {
		return nil, Rect{}, false
	}
	for _, row := range p.reg.rows {
		track := row.Track(p.RowRect(row), p.opts.Metrics.Padding)
		if track.Contains(pt) {
			return row, track, true
		}
	}
	return nil, Rect{}, false
}
