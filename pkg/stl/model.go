package stl

import (
	"math"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Model is a named triangle soup, the unit STL files carry
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a triangle
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the box around every triangle vertex
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea sums the triangle areas
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume is the enclosed volume of a closed, outward-wound model, summed as
// signed tetrahedra against the origin. Open models give a meaningless value.
func (m *Model) Volume() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.V1.Dot(t.V2.Cross(t.V3))
	}
	return math.Abs(total) / 6
}
