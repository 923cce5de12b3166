// Package motion holds the physics used to animate the tweak panel: a
// response/damping parameterized spring and a closed-form decay predictor.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultResponse is the characteristic period of the panel spring, in
	// seconds.
	DefaultResponse = 0.6
	// DefaultDampingRatio keeps the panel slightly under-damped.
	DefaultDampingRatio = 0.9

	// Epsilon is the distance from the target below which a spring may
	// settle.
	Epsilon = 0.5
	// VelocityEpsilon is the speed, in units per second, below which a
	// spring may settle.
	VelocityEpsilon = 1.0
)

// coefficients caches the harmonica spring for the last time step used.
// A fixed tick rate repeats the same dt every frame; a varying one just
// recomputes.
type coefficients struct {
	dt, response, damping float64
	spring                harmonica.Spring
	ok                    bool
}

func (c *coefficients) get(dt, response, damping float64) harmonica.Spring {
	if c.ok && c.dt == dt && c.response == response && c.damping == damping {
		return c.spring
	}
	c.spring = harmonica.NewSpring(dt, AngularFrequency(response), damping)
	c.dt, c.response, c.damping, c.ok = dt, response, damping, true
	return c.spring
}

// AngularFrequency converts a response time in seconds into the angular
// frequency of the equivalent undamped oscillator.
func AngularFrequency(response float64) float64 {
	if response <= 0 {
		response = DefaultResponse
	}
	return 2 * math.Pi / response
}

// Spring drives a 2-D point toward Target. Response and DampingRatio describe
// the motion instead of stiffness and mass: DampingRatio 1 is critically
// damped, above 1 overdamped, below 1 oscillates.
type Spring struct {
	Position r2.Vec
	Velocity r2.Vec
	Target   r2.Vec

	Response     float64
	DampingRatio float64

	running bool
	coef    coefficients
}

// NewSpring returns a stopped spring resting at pos.
func NewSpring(pos r2.Vec, response, dampingRatio float64) *Spring {
	return &Spring{
		Position:     pos,
		Target:       pos,
		Response:     response,
		DampingRatio: dampingRatio,
	}
}

// Start resumes integration from the current position and velocity.
func (s *Spring) Start() { s.running = true }

// Stop freezes the spring where it is. Position and Velocity keep their last
// values so a new gesture can take over from them.
func (s *Spring) Stop() { s.running = false }

// Running reports whether Step will move the spring.
func (s *Spring) Running() bool { return s.running }

// Reset moves the spring to pos with velocity vel without starting it.
func (s *Spring) Reset(pos, vel r2.Vec) {
	s.Position = pos
	s.Velocity = vel
	s.running = false
}

// Settled reports whether the spring is within Epsilon of its target and
// nearly at rest.
func (s *Spring) Settled() bool {
	return r2.Norm(r2.Sub(s.Target, s.Position)) < Epsilon && r2.Norm(s.Velocity) < VelocityEpsilon
}

// Step advances the spring by dt seconds and returns the new position. A
// stopped spring, or a non-positive dt, leaves the state untouched. When the
// spring settles it snaps onto Target and stops.
func (s *Spring) Step(dt float64) r2.Vec {
	if !s.running || dt <= 0 {
		return s.Position
	}
	h := s.coef.get(dt, s.Response, s.DampingRatio)
	s.Position.X, s.Velocity.X = h.Update(s.Position.X, s.Velocity.X, s.Target.X)
	s.Position.Y, s.Velocity.Y = h.Update(s.Position.Y, s.Velocity.Y, s.Target.Y)
	if s.Settled() {
		s.Position = s.Target
		s.Velocity = r2.Vec{}
		s.running = false
	}
	return s.Position
}

// Spring1D is the scalar form of Spring, used for eased transitions such as
// the panel chrome.
type Spring1D struct {
	Position, Velocity, Target float64
	Response, DampingRatio     float64

	running bool
	coef    coefficients
}

// Start resumes integration.
func (s *Spring1D) Start() { s.running = true }

// Stop freezes the spring in place.
func (s *Spring1D) Stop() { s.running = false }

// Running reports whether Step will move the spring.
func (s *Spring1D) Running() bool { return s.running }

// Step advances the spring by dt seconds and returns the new position.
func (s *Spring1D) Step(dt float64) float64 {
	if !s.running || dt <= 0 {
		return s.Position
	}
	h := s.coef.get(dt, s.Response, s.DampingRatio)
	s.Position, s.Velocity = h.Update(s.Position, s.Velocity, s.Target)
	// Scalar springs animate unit ranges, so the thresholds are scaled down.
	if math.Abs(s.Target-s.Position) < Epsilon/1000 && math.Abs(s.Velocity) < VelocityEpsilon/1000 {
		s.Position = s.Target
		s.Velocity = 0
		s.running = false
	}
	return s.Position
}
