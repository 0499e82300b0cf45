package scene

import (
	"github.com/gogpu/gg"
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/mesh"
)

// Transform places a mesh in the world: scale, then rotate, then translate
type Transform struct {
	Position geometry.Vector3
	Rotation geometry.Vector3
	Scale    geometry.Vector3
}

// Apply maps a local vertex to world space
func (t Transform) Apply(v geometry.Vector3) geometry.Vector3 {
	return v.Scale(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// Material is the flat colour and base opacity of an object
type Material struct {
	Color   gg.RGBA
	Opacity float64
	// Hex keeps the colour as written so snapshots and exports stay readable.
	Hex string
}

// Object is one live element of a scene. Mesh is shared and read-only;
// Transform and Material are owned by the object and mutated by interaction.
type Object struct {
	Shape     string
	Kind      mesh.Kind
	Mesh      *mesh.Mesh
	Transform Transform
	Material  Material
	Label     string
	Animation *Animation
}

// WorldVertices returns the mesh vertices under the base transform,
// without animation or explode offsets
func (o *Object) WorldVertices() []geometry.Vector3 {
	if o.Mesh == nil {
		return nil
	}
	out := make([]geometry.Vector3, len(o.Mesh.Vertices))
	for i, v := range o.Mesh.Vertices {
		out[i] = o.Transform.Apply(v)
	}
	return out
}

// HasFaces reports whether the object renders filled polygons
func (o *Object) HasFaces() bool {
	return o.Mesh != nil && len(o.Mesh.Faces) > 0
}
