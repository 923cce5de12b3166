package dock

import "gonum.org/v1/gonum/spatial/r2"

// Chrome is the panel decoration at one point of the expand/collapse
// transition. Progress 0 is the expanded panel, 1 the docked badge.
type Chrome struct {
	Progress float64

	// Size is the current container size.
	Size Size

	CornerRadius  float64
	ShadowOpacity float64
	ShadowRadius  float64
	ShadowOffsetY float64

	// BackdropOpacity is the opacity of the blurred badge background.
	BackdropOpacity float64
	// ContentAlpha is the opacity of the rows.
	ContentAlpha float64
	// ContentScale shrinks the rows toward the badge size.
	ContentScale r2.Vec
}

const (
	badgeShadowOpacity = 0.3
	badgeShadowRadius  = 4
	badgeShadowOffsetY = 2
)

// chromeAt interpolates between the expanded container and the badge.
func chromeAt(progress float64, expanded Size, badge float64) Chrome {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	c := Chrome{
		Progress: progress,
		Size: Size{
			W: lerp(expanded.W, badge, progress),
			H: lerp(expanded.H, badge, progress),
		},
		CornerRadius:    lerp(0, badge/2, progress),
		ShadowOpacity:   lerp(0, badgeShadowOpacity, progress),
		ShadowRadius:    lerp(0, badgeShadowRadius, progress),
		ShadowOffsetY:   lerp(0, badgeShadowOffsetY, progress),
		BackdropOpacity: progress,
		ContentAlpha:    1 - progress,
		ContentScale:    r2.Vec{X: 1, Y: 1},
	}
	if expanded.W > 0 {
		c.ContentScale.X = lerp(1, badge/expanded.W, progress)
	}
	if expanded.H > 0 {
		c.ContentScale.Y = lerp(1, badge/expanded.H, progress)
	}
	return c
}
