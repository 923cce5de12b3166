package motion

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ScrollDecay is the per-millisecond velocity retention of a standard
// scroll view fling.
const ScrollDecay = 0.998

// PredictRestPosition returns where a point moving at velocity (units per
// second) comes to rest when its speed decays as v(t) = v0 * k^t, t in
// milliseconds. The result is the integral of that curve to infinity:
// p + v / (-1000 * ln k).
//
// A zero velocity, or a k outside (0, 1), returns p unchanged.
func PredictRestPosition(p, v r2.Vec, k float64) r2.Vec {
	if v == (r2.Vec{}) || k <= 0 || k >= 1 {
		return p
	}
	travel := 1 / (-1000 * math.Log(k))
	return r2.Add(p, r2.Scale(travel, v))
}
