package dock

import "tweakdock/motion"

const (
	// DefaultRowHeight is the fixed height of every slider row.
	DefaultRowHeight = 64
	// DefaultPadding separates rows and insets the container from the
	// screen edges.
	DefaultPadding = 12
	// DefaultMaxWidth caps the expanded panel width on wide screens.
	DefaultMaxWidth = 400

	// BadgeSize is the diameter of the docked badge.
	BadgeSize = 64
	// AnchorInset is the margin between a docked badge and the safe area.
	AnchorInset = 24

	// CollapseVelocity is the vertical release speed, in units per second,
	// above which an expanded panel collapses into the badge.
	CollapseVelocity = 500

	// ChromeResponse is the duration of the expand/collapse chrome
	// transition, in seconds. It is critically damped.
	ChromeResponse = 0.4

	// TapSlop is how far a pointer may travel before a press stops being a
	// tap and becomes a drag.
	TapSlop = 8

	// VelocityWindow is the span of pointer history used to measure release
	// velocity, in seconds.
	VelocityWindow = 0.1
)

// Metrics groups the fixed layout measurements.
type Metrics struct {
	RowHeight   float64
	Padding     float64
	MaxWidth    float64
	BadgeSize   float64
	AnchorInset float64
}

// DefaultMetrics returns the stock panel measurements.
func DefaultMetrics() Metrics {
	return Metrics{
		RowHeight:   DefaultRowHeight,
		Padding:     DefaultPadding,
		MaxWidth:    DefaultMaxWidth,
		BadgeSize:   BadgeSize,
		AnchorInset: AnchorInset,
	}
}

// Options configures a Panel.
type Options struct {
	Metrics Metrics

	// Response and DampingRatio tune the position spring.
	Response     float64
	DampingRatio float64

	// Decay is the per-millisecond velocity retention used to predict where
	// a fling would stop.
	Decay float64

	// CollapseVelocity is the vertical release speed that collapses an
	// expanded panel.
	CollapseVelocity float64

	// Anchors lists the corners a collapsed panel may dock to.
	Anchors AnchorSet
}

// DefaultOptions returns options matching the stock four-corner panel.
func DefaultOptions() Options {
	return Options{
		Metrics:          DefaultMetrics(),
		Response:         motion.DefaultResponse,
		DampingRatio:     motion.DefaultDampingRatio,
		Decay:            motion.ScrollDecay,
		CollapseVelocity: CollapseVelocity,
		Anchors:          AllCorners(),
	}
}
