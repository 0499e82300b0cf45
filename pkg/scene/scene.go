package scene

import (
	"github.com/gogpu/gg"
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/mesh"
)

const (
	// UnitScale converts scene units to world units
	UnitScale = 50.0

	DefaultColor   = "#38bdf8"
	DefaultOpacity = 0.8
)

// Scene is the ordered list of live objects. Order is hit-test priority and
// the painter's tie-break.
type Scene struct {
	Title       string
	Description string
	Objects     []Object
}

// BuildOptions tune how a description becomes a scene
type BuildOptions struct {
	// UnitScale overrides the scene-to-world multiplier when positive
	UnitScale float64
	// OnUnknownShape is called for every shape name with no generator
	OnUnknownShape func(index int, shape string)
}

// Build resolves a description into a scene, sharing meshes through lib
func Build(desc *Description, lib *mesh.Library, opts BuildOptions) *Scene {
	unit := opts.UnitScale
	if unit <= 0 {
		unit = UnitScale
	}

	s := &Scene{}
	if desc == nil {
		return s
	}
	s.Title = desc.Title
	s.Description = desc.Description
	s.Objects = make([]Object, 0, len(desc.Elements))

	for i, el := range desc.Elements {
		kind := mesh.ParseKind(el.Shape)
		if kind == mesh.KindUnknown && opts.OnUnknownShape != nil {
			opts.OnUnknownShape(i, el.Shape)
		}

		param := 0
		switch kind {
		case mesh.KindGear:
			param = el.Teeth
		case mesh.KindSpring:
			param = el.Coils
		}

		hex := el.Color
		if hex == "" {
			hex = DefaultColor
		}
		opacity := DefaultOpacity
		if el.Opacity != nil {
			opacity = *el.Opacity
		}

		s.Objects = append(s.Objects, Object{
			Shape: el.Shape,
			Kind:  kind,
			Mesh:  lib.Get(kind, param),
			Transform: Transform{
				Position: triple(el.Position, 0).Mul(unit),
				Rotation: triple(el.Rotation, 0),
				Scale:    triple(el.Scale, 1),
			},
			Material: Material{
				Color:   gg.Hex(hex),
				Opacity: opacity,
				Hex:     hex,
			},
			Label:     el.Label,
			Animation: NewAnimation(el.Animation),
		})
	}
	return s
}

// HasFlow reports whether any object carries a flow animation
func (s *Scene) HasFlow() bool {
	for i := range s.Objects {
		if a := s.Objects[i].Animation; a != nil && a.Kind == AnimationFlow {
			return true
		}
	}
	return false
}

// Bounds returns the world-space bounding box of all base-transformed vertices
func (s *Scene) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := range s.Objects {
		for _, v := range s.Objects[i].WorldVertices() {
			bbox.Extend(v)
		}
	}
	return bbox
}

func triple(values []float64, fallback float64) geometry.Vector3 {
	v := geometry.Vector3{X: fallback, Y: fallback, Z: fallback}
	if len(values) > 0 {
		v.X = values[0]
	}
	if len(values) > 1 {
		v.Y = values[1]
	}
	if len(values) > 2 {
		v.Z = values[2]
	}
	return v
}
