package dock

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"tweakdock/motion"
)

type fakeGeometry struct {
	screen Rect
	insets Insets
	ok     bool
}

func (g *fakeGeometry) ScreenBounds() (Rect, bool) { return g.screen, g.ok }
func (g *fakeGeometry) SafeAreaInsets() Insets     { return g.insets }

func phoneGeometry() *fakeGeometry {
	return &fakeGeometry{screen: RectAt(0, 0, 400, 800), ok: true}
}

func settle(t *testing.T, p *Panel) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !p.Tick(1.0 / 60) {
			return
		}
	}
	t.Fatalf("panel still animating in state %v", p.State())
}

// dragTo drags the panel so that its position ends exactly at dst.
func dragTo(p *Panel, dst r2.Vec) {
	start := p.Position()
	p.BeginDrag(start)
	p.MoveDrag(dst)
}

func anchorPoint(t *testing.T, p *Panel, a Anchor) r2.Vec {
	t.Helper()
	for _, ap := range p.Anchors() {
		if ap.Anchor == a {
			return ap.Point
		}
	}
	t.Fatalf("anchor %v not available", a)
	return r2.Vec{}
}

func collapse(t *testing.T, p *Panel) {
	t.Helper()
	dragTo(p, p.Position())
	p.EndDrag(r2.Vec{X: 0, Y: 1000})
	settle(t, p)
	if p.State() != Docked {
		t.Fatalf("expected docked after fling, got %v", p.State())
	}
}

func TestPanelStartsExpandedAtHome(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	if p.State() != Expanded {
		t.Fatalf("initial state %v", p.State())
	}
	home := r2.Vec{X: 200, Y: DefaultPadding}
	if p.Position() != home {
		t.Fatalf("position %+v, want %+v", p.Position(), home)
	}
	if p.Visible() {
		t.Fatalf("panel without rows should not be visible")
	}
	p.NewParameter(nil, "a", 0, 0, 1).Value()
	if !p.Visible() {
		t.Fatalf("panel with a row should be visible")
	}
}

func TestPanelWithoutGeometryIgnoresGestures(t *testing.T) {
	geo := &fakeGeometry{}
	p := NewPanel(geo, Options{})
	p.BeginDrag(r2.Vec{X: 10, Y: 10})
	if p.State() != Expanded {
		t.Fatalf("drag began without geometry: %v", p.State())
	}
	p.MoveDrag(r2.Vec{X: 50, Y: 50})
	p.EndDrag(r2.Vec{Y: 2000})
	if p.State() != Expanded || p.Collapsed() {
		t.Fatalf("release without geometry changed state: %v collapsed=%v", p.State(), p.Collapsed())
	}
	if p.Tap(r2.Vec{}) {
		t.Fatalf("tap accepted without geometry")
	}

	geo.screen = RectAt(0, 0, 400, 800)
	geo.ok = true
	p.GeometryChanged()
	if !p.Ready() || p.Position() != p.Layout().Home {
		t.Fatalf("geometry arrival did not place panel at home: %+v", p.Position())
	}
}

func TestDragFollowsPointer(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	start := p.Position()
	p.BeginDrag(r2.Vec{X: 210, Y: 30})
	p.MoveDrag(r2.Vec{X: 260, Y: 130})
	want := r2.Add(start, r2.Vec{X: 50, Y: 100})
	if p.Position() != want {
		t.Fatalf("position %+v, want %+v", p.Position(), want)
	}
	if p.State() != Dragging {
		t.Fatalf("state %v", p.State())
	}
	p.Tick(1.0 / 60)
	if p.Position() != want {
		t.Fatalf("tick moved a dragged panel")
	}
}

func TestSlowReleaseReturnsHome(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	dragTo(p, r2.Vec{X: 120, Y: 300})
	p.EndDrag(r2.Vec{X: 100, Y: 400})
	if p.State() != Docking || p.Collapsed() {
		t.Fatalf("state %v collapsed=%v", p.State(), p.Collapsed())
	}
	settle(t, p)
	if p.State() != Expanded {
		t.Fatalf("state %v", p.State())
	}
	if p.Position() != p.Layout().Home {
		t.Fatalf("position %+v, want home %+v", p.Position(), p.Layout().Home)
	}
}

func TestFastVerticalReleaseCollapses(t *testing.T) {
	for _, vy := range []float64{600, -600} {
		p := NewPanel(phoneGeometry(), Options{})
		dragTo(p, r2.Vec{X: 200, Y: 200})
		v := r2.Vec{X: 0, Y: vy}
		p.EndDrag(v)
		if !p.Collapsed() || p.State() != Docking {
			t.Fatalf("vy=%v: state %v collapsed=%v", vy, p.State(), p.Collapsed())
		}
		rest := motion.PredictRestPosition(r2.Vec{X: 200, Y: 200}, v, motion.ScrollDecay)
		want, _ := Nearest(p.Anchors(), rest)
		settle(t, p)
		got, ok := p.Anchor()
		if !ok || got != want.Anchor {
			t.Fatalf("vy=%v: docked at %v, want %v", vy, got, want.Anchor)
		}
		if p.State() != Docked || p.Position() != want.Point {
			t.Fatalf("vy=%v: state %v position %+v", vy, p.State(), p.Position())
		}
	}
}

func TestCollapsedDragDocksAtPredictedCorner(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	p.NewParameter(nil, "a", 0, 0, 1).Value()
	collapse(t, p)

	dragTo(p, r2.Vec{X: 300, Y: 600})
	if p.Position() != (r2.Vec{X: 300, Y: 600}) {
		t.Fatalf("drag did not reach (300,600): %+v", p.Position())
	}
	p.EndDrag(r2.Vec{X: 0, Y: 600})
	settle(t, p)

	if p.State() != Docked {
		t.Fatalf("state %v", p.State())
	}
	a, ok := p.Anchor()
	if !ok || a != BottomTrailing {
		t.Fatalf("docked at %v, want %v", a, BottomTrailing)
	}
	if p.Position() != anchorPoint(t, p, BottomTrailing) {
		t.Fatalf("position %+v", p.Position())
	}
	c := p.Chrome()
	if c.Progress != 1 || c.Size != (Size{W: BadgeSize, H: BadgeSize}) {
		t.Fatalf("chrome not at badge: %+v", c)
	}
}

func TestSecondDragBeginKeepsSingleSpring(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	s := p.Spring()
	p.BeginDrag(r2.Vec{X: 200, Y: 20})
	p.MoveDrag(r2.Vec{X: 220, Y: 60})
	mid := p.Position()

	p.BeginDrag(r2.Vec{X: 0, Y: 0})
	if p.State() != Dragging {
		t.Fatalf("state %v", p.State())
	}
	if p.Spring() != s || s.Running() {
		t.Fatalf("second drag started another spring")
	}
	p.MoveDrag(r2.Vec{X: 10, Y: 5})
	want := r2.Add(mid, r2.Vec{X: 10, Y: 5})
	if p.Position() != want {
		t.Fatalf("position %+v, want %+v", p.Position(), want)
	}
	p.EndDrag(r2.Vec{})
	settle(t, p)
	if p.State() != Expanded {
		t.Fatalf("state %v", p.State())
	}
}

func TestDragInterruptsDocking(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	dragTo(p, r2.Vec{X: 200, Y: 300})
	p.EndDrag(r2.Vec{Y: 900})
	for i := 0; i < 5; i++ {
		p.Tick(1.0 / 60)
	}
	caught := p.Position()
	vel := p.Spring().Velocity
	p.BeginDrag(r2.Vec{X: 1, Y: 1})
	if p.Spring().Running() {
		t.Fatalf("spring still running after drag began")
	}
	if p.Position() != caught || p.Spring().Velocity != vel {
		t.Fatalf("drag did not take over in place")
	}
	p.Tick(1.0 / 60)
	if p.Position() != caught {
		t.Fatalf("tick applied stale motion: %+v -> %+v", caught, p.Position())
	}
}

func TestTapOnlyExpandsDockedBadge(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	p.NewParameter(nil, "a", 0, 0, 1).Value()
	if p.Tap(p.Position()) {
		t.Fatalf("tap accepted while expanded")
	}
	collapse(t, p)

	off := r2.Add(p.Position(), r2.Vec{X: 200, Y: 200})
	if p.Tap(off) {
		t.Fatalf("tap off the badge accepted")
	}
	on := r2.Add(p.Position(), r2.Vec{X: 0, Y: BadgeSize / 2})
	if !p.Tap(on) {
		t.Fatalf("tap on badge rejected")
	}
	if p.State() != Docking || p.Collapsed() {
		t.Fatalf("state %v collapsed=%v", p.State(), p.Collapsed())
	}
	settle(t, p)
	if p.State() != Expanded || p.Position() != p.Layout().Home {
		t.Fatalf("state %v position %+v", p.State(), p.Position())
	}
	if c := p.Chrome(); c.Progress != 0 || c.ContentAlpha != 1 {
		t.Fatalf("chrome not restored: %+v", c)
	}
}

func TestTopCornersPolicy(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{Anchors: TopCorners()})
	dragTo(p, r2.Vec{X: 350, Y: 700})
	p.EndDrag(r2.Vec{Y: 800})
	settle(t, p)
	a, _ := p.Anchor()
	if a != TopTrailing {
		t.Fatalf("docked at %v, want %v", a, TopTrailing)
	}
}

func TestGeometryChangeKeepsDockedCorner(t *testing.T) {
	geo := phoneGeometry()
	p := NewPanel(geo, Options{})
	dragTo(p, r2.Vec{X: 350, Y: 700})
	p.EndDrag(r2.Vec{Y: 800})
	settle(t, p)
	a, _ := p.Anchor()

	geo.screen = RectAt(0, 0, 800, 400)
	geo.insets = Insets{Left: 44, Right: 44, Bottom: 21}
	p.GeometryChanged()
	if got, _ := p.Anchor(); got != a {
		t.Fatalf("anchor changed from %v to %v", a, got)
	}
	if p.Position() != anchorPoint(t, p, a) {
		t.Fatalf("position %+v not at %v", p.Position(), a)
	}
}

func TestConfigureMovesOffDisallowedCorner(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	dragTo(p, r2.Vec{X: 350, Y: 700})
	p.EndDrag(r2.Vec{Y: 800})
	settle(t, p)

	p.Configure(Options{Anchors: TopCorners()})
	a, _ := p.Anchor()
	if a != TopTrailing {
		t.Fatalf("anchor %v, want %v", a, TopTrailing)
	}
	if p.Position() != anchorPoint(t, p, TopTrailing) {
		t.Fatalf("position %+v", p.Position())
	}
}

func TestObserverSeesTransitions(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	var got []Transition
	p.SetObserver(func(tr Transition) { got = append(got, tr) })

	dragTo(p, r2.Vec{X: 200, Y: 300})
	p.EndDrag(r2.Vec{Y: 700})
	settle(t, p)

	want := []State{Dragging, Docking, Docked}
	if len(got) != len(want) {
		t.Fatalf("transitions %+v", got)
	}
	for i, s := range want {
		if got[i].To != s {
			t.Fatalf("transition %d to %v, want %v", i, got[i].To, s)
		}
	}
	last := got[len(got)-1]
	if !last.Collapsed || last.Elapsed <= 0 {
		t.Fatalf("final transition %+v", last)
	}
}

func TestChromeRunsWithPosition(t *testing.T) {
	p := NewPanel(phoneGeometry(), Options{})
	p.NewParameter(nil, "a", 0, 0, 1).Value()
	dragTo(p, r2.Vec{X: 200, Y: 300})
	p.EndDrag(r2.Vec{Y: 700})
	start := p.Position()
	p.Tick(1.0 / 60)
	if p.Position() == start {
		t.Fatalf("position did not move on first tick")
	}
	if c := p.Chrome(); c.Progress <= 0 || c.Progress >= 1 {
		t.Fatalf("chrome did not advance alongside position: %v", c.Progress)
	}
}

func TestChromeEndpoints(t *testing.T) {
	expanded := Size{W: 352, H: 216}
	c := chromeAt(0, expanded, BadgeSize)
	if c.Size != expanded || c.CornerRadius != 0 || c.ShadowOpacity != 0 || c.BackdropOpacity != 0 || c.ContentAlpha != 1 {
		t.Fatalf("expanded chrome %+v", c)
	}
	if c.ContentScale != (r2.Vec{X: 1, Y: 1}) {
		t.Fatalf("expanded scale %+v", c.ContentScale)
	}
	c = chromeAt(1, expanded, BadgeSize)
	if c.Size != (Size{W: BadgeSize, H: BadgeSize}) || c.CornerRadius != BadgeSize/2 {
		t.Fatalf("docked chrome %+v", c)
	}
	if c.ShadowOpacity != badgeShadowOpacity || c.BackdropOpacity != 1 || c.ContentAlpha != 0 {
		t.Fatalf("docked chrome %+v", c)
	}
	if math.Abs(c.ContentScale.X-BadgeSize/352.0) > 1e-12 || math.Abs(c.ContentScale.Y-BadgeSize/216.0) > 1e-12 {
		t.Fatalf("docked scale %+v", c.ContentScale)
	}
	if got := chromeAt(2, expanded, BadgeSize); got.Progress != 1 {
		t.Fatalf("progress not clamped: %v", got.Progress)
	}
}

func TestRowAtAndScroll(t *testing.T) {
	geo := &fakeGeometry{screen: RectAt(0, 0, 400, 400), ok: true}
	p := NewPanel(geo, Options{})
	var params []*Parameter
	for _, id := range []string{"a", "b", "c", "d"} {
		prm := p.NewParameter(nil, id, 0, 0, 10)
		prm.Value()
		params = append(params, prm)
	}
	l := p.Layout()
	if l.MaxScroll <= 0 {
		t.Fatalf("expected scrollable content: %+v", l)
	}

	f := p.Frame()
	first := r2.Vec{X: f.X0 + f.Width()/2, Y: f.Y0 + DefaultRowHeight*3/4}
	row, track, ok := p.RowAt(first)
	if !ok || row.Param != params[0] {
		t.Fatalf("RowAt first row failed")
	}
	if track.X0 != f.X0+DefaultPadding || track.X1 != f.X1-DefaultPadding {
		t.Fatalf("track %+v in frame %+v", track, f)
	}

	p.Scroll(DefaultRowHeight + DefaultPadding)
	row, _, ok = p.RowAt(first)
	if !ok || row.Param != params[1] {
		t.Fatalf("scrolled RowAt should hit second row")
	}
	p.Scroll(1e6)
	if p.ScrollOffset() != l.MaxScroll {
		t.Fatalf("scroll %v, max %v", p.ScrollOffset(), l.MaxScroll)
	}
	p.Scroll(-1e6)
	if p.ScrollOffset() != 0 {
		t.Fatalf("scroll %v", p.ScrollOffset())
	}

	if _, _, ok := p.RowAt(r2.Vec{X: -5, Y: -5}); ok {
		t.Fatalf("RowAt outside panel")
	}
}

func TestCornerSelectionPrefersBottomTrailing(t *testing.T) {
	screen := RectAt(0, 0, 400, 800)
	pts := AllCorners().Points(screen, Insets{}, DefaultMetrics())
	ap, ok := Nearest(pts, r2.Vec{X: 390, Y: 790})
	if !ok || ap.Anchor != BottomTrailing {
		t.Fatalf("nearest %v", ap.Anchor)
	}
}

func TestStateString(t *testing.T) {
	if Docked.String() != "docked" || State(42).String() != "State(42)" {
		t.Fatalf("unexpected state names")
	}
}
