package dock

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Anchor is a screen corner the collapsed badge can park at.
type Anchor int

const (
	TopLeading Anchor = iota
	TopTrailing
	BottomLeading
	BottomTrailing
)

var anchorNames = [...]string{
	TopLeading:     "top-leading",
	TopTrailing:    "top-trailing",
	BottomLeading:  "bottom-leading",
	BottomTrailing: "bottom-trailing",
}

func (a Anchor) String() string {
	if a < TopLeading || a > BottomTrailing {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor accepts the names produced by String, case-insensitively.
// Underscores and spaces are treated as dashes.
func ParseAnchor(s string) (Anchor, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for i, name := range anchorNames {
		if norm == name {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown anchor %q", s)
}

// AnchorSet is the docking policy: the anchors a collapsed panel may use.
type AnchorSet []Anchor

// AllCorners allows docking at every corner.
func AllCorners() AnchorSet {
	return AnchorSet{TopLeading, TopTrailing, BottomLeading, BottomTrailing}
}

// TopCorners restricts docking to the two top corners.
func TopCorners() AnchorSet {
	return AnchorSet{TopLeading, TopTrailing}
}

// ParseAnchorSet parses a list of anchor names. The shorthands "all" and
// "top" select AllCorners and TopCorners.
func ParseAnchorSet(names []string) (AnchorSet, error) {
	if len(names) == 1 {
		switch strings.ToLower(strings.TrimSpace(names[0])) {
		case "all", "corners":
			return AllCorners(), nil
		case "top":
			return TopCorners(), nil
		}
	}
	var set AnchorSet
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		a, err := ParseAnchor(n)
		if err != nil {
			return nil, err
		}
		if !set.Has(a) {
			set = append(set, a)
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("anchor set is empty")
	}
	return set, nil
}

// Has reports whether a is allowed.
func (s AnchorSet) Has(a Anchor) bool {
	for _, x := range s {
		if x == a {
			return true
		}
	}
	return false
}

// AnchorPoint is an anchor resolved against the current screen.
type AnchorPoint struct {
	Anchor Anchor
	Point  r2.Vec
}

// Points resolves the allowed anchors to panel positions for the given
// screen. Positions address the top centre of the badge, matching how the
// panel itself is positioned. The result is in anchor declaration order
// regardless of the order of s.
func (s AnchorSet) Points(screen Rect, insets Insets, m Metrics) []AnchorPoint {
	if screen.Empty() {
		return nil
	}
	half := m.BadgeSize / 2
	left := screen.X0 + insets.Left + m.AnchorInset + half
	right := screen.X1 - insets.Right - m.AnchorInset - half
	top := screen.Y0 + insets.Top + m.AnchorInset
	bottom := screen.Y1 - insets.Bottom - m.AnchorInset - m.BadgeSize

	pts := make([]AnchorPoint, 0, len(s))
	for a := TopLeading; a <= BottomTrailing; a++ {
		if !s.Has(a) {
			continue
		}
		p := r2.Vec{X: left, Y: top}
		switch a {
		case TopTrailing:
			p.X = right
		case BottomLeading:
			p.Y = bottom
		case BottomTrailing:
			p.X = right
			p.Y = bottom
		}
		pts = append(pts, AnchorPoint{Anchor: a, Point: p})
	}
	return pts
}

// Nearest returns the anchor closest to p by Euclidean distance. Ties go to
// the earlier entry, so callers passing Points output get declaration order.
func Nearest(points []AnchorPoint, p r2.Vec) (AnchorPoint, bool) {
	if len(points) == 0 {
		return AnchorPoint{}, false
	}
	best := points[0]
	min := math.Inf(1)
	for _, ap := range points {
		d := r2.Norm(r2.Sub(ap.Point, p))
		if d < min {
			min = d
			best = ap
		}
	}
	return best, true
}
