// Package physics holds the small per-frame simulations the scene runs:
// the damped spring behind spring/helix objects and flow particles.
package physics

import "math"

// Spring constants
const (
	Stiffness = 0.1
	Damping   = 0.08

	MinDisplacement = -0.8
	MaxDisplacement = 1.5

	// RestEpsilon is the displacement below which the spring is at rest
	RestEpsilon = 0.001
	// DragSensitivity converts vertical pointer pixels to displacement
	DragSensitivity = 0.01
)

// Spring is the state of the single draggable spring in a scene.
// Active is the index of the spring object, or -1.
type Spring struct {
	Active       int
	Displacement float64
	Velocity     float64
	Dragging     bool
}

// NewSpring returns a spring at rest with no active object
func NewSpring() Spring {
	return Spring{Active: -1}
}

// Grab starts a drag on object index
func (s *Spring) Grab(index int) {
	s.Active = index
	s.Dragging = true
}

// Drag moves the spring by a vertical pointer delta, clamped to the drag range
func (s *Spring) Drag(dy float64) {
	d := s.Displacement + dy*DragSensitivity
	s.Displacement = math.Max(MinDisplacement, math.Min(MaxDisplacement, d))
}

// Release lets the spring oscillate freely. The active object is kept so the
// decaying motion still renders on it.
func (s *Spring) Release() {
	s.Dragging = false
}

// Reset zeroes the spring without touching the active object
func (s *Spring) Reset() {
	s.Displacement = 0
	s.Velocity = 0
}

// AtRest reports whether the displacement is within RestEpsilon of zero
func (s *Spring) AtRest() bool {
	return math.Abs(s.Displacement) <= RestEpsilon
}

// Step advances the spring by one fixed explicit-Euler step. Nothing happens
// while it is held or already at rest.
func (s *Spring) Step() {
	if s.Dragging || s.AtRest() {
		return
	}
	s.Velocity += -Stiffness * s.Displacement
	s.Velocity *= 1 - Damping
	s.Displacement += s.Velocity
}
