// Package mesh generates the local-space vertex, edge and face lists for
// every supported shape kind.
package mesh

import (
	"fmt"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Edge is an undirected pair of vertex indices
type Edge [2]int

// Mesh is the immutable geometry shared by every object of the same kind.
// Faces are ordered vertex index lists of length three or more.
type Mesh struct {
	Vertices []geometry.Vector3
	Edges    []Edge
	Faces    [][]int
}

// Empty reports whether the mesh has no vertices
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Vertices) == 0
}

// Validate checks that every edge and face index refers to an existing vertex
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, e := range m.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("edge %d references vertex out of range: %v (have %d vertices)", i, e, n)
		}
	}
	for i, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices, need at least 3", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d references vertex %d out of range (have %d vertices)", i, idx, n)
			}
		}
	}
	return nil
}

// Bounds returns the local-space bounding box
func (m *Mesh) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
