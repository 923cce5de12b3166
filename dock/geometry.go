package dock

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Size is a width and height pair.
type Size struct {
	W, H float64
}

// Insets are the safe-area margins reserved by the display surface.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// GeometryProvider reports the surface the overlay floats on. ScreenBounds
// returns false while the overlay is not attached to a display.
type GeometryProvider interface {
	ScreenBounds() (Rect, bool)
	SafeAreaInsets() Insets
}

// RectAt builds a rectangle from an origin and size.
func RectAt(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Size() Size      { return Size{W: r.Width(), H: r.Height()} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Contains checks whether the given point lies within the rectangle.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X <= r.X1 && p.Y <= r.Y1
}

// Offset moves the rectangle by p.
func (r Rect) Offset(p r2.Vec) Rect {
	return Rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y}
}

// Intersect returns the overlapping area of r and o.
// If there is no overlap, an empty rectangle is returned.
func (r Rect) Intersect(o Rect) Rect {
	if r.X0 < o.X0 {
		r.X0 = o.X0
	}
	if r.Y0 < o.Y0 {
		r.Y0 = o.Y0
	}
	if r.X1 > o.X1 {
		r.X1 = o.X1
	}
	if r.Y1 > o.Y1 {
		r.Y1 = o.Y1
	}
	if r.X1 < r.X0 {
		r.X1 = r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y1 = r.Y0
	}
	return r
}

// Image converts the rectangle to an image.Rectangle, growing it to whole
// pixels.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: int(math.Floor(r.X0)), Y: int(math.Floor(r.Y0))},
		Max: image.Point{X: int(math.Ceil(r.X1)), Y: int(math.Ceil(r.Y1))},
	}
}

// topCenterRect places a box of the given size so that its top edge is
// centred on p. The panel is positioned by this point.
func topCenterRect(p r2.Vec, s Size) Rect {
	return RectAt(p.X-s.W/2, p.Y, s.W, s.H)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
