package scene

import (
	"math"
	"strings"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// AnimationKind names the procedural motion attached to an object
type AnimationKind int

const (
	AnimationNone AnimationKind = iota
	AnimationRotate
	AnimationOscillate
	AnimationCompress
	AnimationFlow
)

func (k AnimationKind) String() string {
	switch k {
	case AnimationRotate:
		return "rotate"
	case AnimationOscillate:
		return "oscillate"
	case AnimationCompress:
		return "compress"
	case AnimationFlow:
		return "flow"
	default:
		return "none"
	}
}

// Animation defaults
const (
	DefaultAnimationSpeed  = 1.0
	DefaultOscillateAmount = 20.0
	DefaultCompressAmount  = 0.3
)

// Animation is a resolved animation with defaults applied
type Animation struct {
	Kind      AnimationKind
	Axis      geometry.Axis
	Speed     float64
	Amplitude float64
}

// Offsets are added to an object's base transform for one instant
type Offsets struct {
	Rotation geometry.Vector3
	Position geometry.Vector3
	Scale    geometry.Vector3
}

// NewAnimation resolves a raw animation block. Unknown types yield nil.
func NewAnimation(spec *AnimationSpec) *Animation {
	if spec == nil {
		return nil
	}

	a := &Animation{Speed: spec.Speed}
	if a.Speed == 0 {
		a.Speed = DefaultAnimationSpeed
	}

	switch strings.ToLower(spec.Type) {
	case "rotate":
		a.Kind = AnimationRotate
		a.Axis = geometry.ParseAxis(spec.Axis, geometry.AxisZ)
	case "oscillate":
		a.Kind = AnimationOscillate
		a.Axis = geometry.ParseAxis(spec.Axis, geometry.AxisY)
		a.Amplitude = orDefault(spec.Amplitude, DefaultOscillateAmount)
	case "compress":
		a.Kind = AnimationCompress
		a.Axis = geometry.ParseAxis(spec.Axis, geometry.AxisY)
		a.Amplitude = orDefault(spec.Amplitude, DefaultCompressAmount)
	case "flow":
		a.Kind = AnimationFlow
		a.Axis = geometry.ParseAxis(spec.Axis, geometry.AxisY)
	default:
		return nil
	}
	return a
}

// At returns the offsets at simulation time t (seconds).
// Flow animations drive particles only and contribute nothing here.
func (a *Animation) At(t float64) Offsets {
	var o Offsets
	if a == nil {
		return o
	}
	phase := t * a.Speed
	switch a.Kind {
	case AnimationRotate:
		o.Rotation = o.Rotation.With(a.Axis, phase)
	case AnimationOscillate:
		o.Position = o.Position.With(a.Axis, math.Sin(phase)*a.Amplitude)
	case AnimationCompress:
		o.Scale = o.Scale.With(a.Axis, math.Sin(phase)*a.Amplitude)
	}
	return o
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
