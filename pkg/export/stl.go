package export

import (
	"io"

	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/philipparndt/goholo/pkg/stl"
)

// BuildModel fan-triangulates every face into an STL model in scene units.
// Faceless objects contribute nothing.
func BuildModel(objects []scene.Object, opts Options) *stl.Model {
	name := opts.Name
	if name == "" {
		name = "goholo"
	}
	model := stl.NewModel(name)
	div := opts.divisor()

	for i := range objects {
		obj := &objects[i]
		if !obj.HasFaces() {
			continue
		}
		verts := obj.WorldVertices()
		for _, face := range obj.Mesh.Faces {
			poly := make([]geometry.Vector3, len(face))
			for j, idx := range face {
				poly[j] = verts[idx].Mul(1 / div)
			}
			for _, tri := range geometry.Fan(poly) {
				model.AddTriangle(tri)
			}
		}
	}
	return model
}

// WriteSTL writes the triangulated scene as ASCII or binary STL
func WriteSTL(w io.Writer, objects []scene.Object, opts Options, binary bool) error {
	model := BuildModel(objects, opts)
	if binary {
		return stl.WriteBinary(w, model)
	}
	return stl.WriteASCII(w, model)
}
