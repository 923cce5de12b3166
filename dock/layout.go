package dock

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Layout is the panel geometry derived from the screen and the rows.
type Layout struct {
	Screen Rect
	Insets Insets

	// Container is the expanded panel size.
	Container Size
	// Content is the size of the scrollable column of rows.
	Content Size
	// Rows holds one frame per row in content coordinates.
	Rows []Rect

	// Home is where the expanded panel rests.
	Home r2.Vec
	// MaxScroll is how far the content can scroll.
	MaxScroll float64
}

// ComputeLayout derives the panel geometry from the screen bounds, the safe
// area and the row heights. It depends on nothing else, so it can be rerun
// from scratch whenever any input changes.
func ComputeLayout(screen Rect, insets Insets, heights []float64, m Metrics) Layout {
	pad := m.Padding
	l := Layout{Screen: screen, Insets: insets}

	maxW := math.Min(screen.Width(), m.MaxWidth) - 2*pad
	w := maxW - (insets.Left + insets.Right) - 2*pad
	if w < 0 {
		w = 0
	}
	maxH := screen.Height()*0.5 - 2*pad
	capH := maxH - (insets.Top + insets.Bottom) - 2*pad
	if capH < 0 {
		capH = 0
	}

	l.Rows = make([]Rect, len(heights))
	y := 0.0
	bottom := 0.0
	for i, h := range heights {
		l.Rows[i] = RectAt(0, y, w, h)
		bottom = y + h
		y = bottom + pad
	}

	l.Content = Size{W: w, H: bottom}
	l.Container = Size{W: w, H: math.Min(bottom, capH)}
	if over := l.Content.H - l.Container.H; over > 0 {
		l.MaxScroll = over
	}
	l.Home = r2.Vec{X: screen.X0 + screen.Width()/2, Y: screen.Y0 + insets.Top + pad}
	return l
}
