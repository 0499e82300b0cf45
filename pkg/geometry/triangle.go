package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the unit normal from the winding V1, V2, V3
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Fan splits a convex polygon into triangles sharing its first vertex.
// Each triangle carries its own winding normal; slivers with no area take
// the polygon's normal. Polygons with fewer than three points produce nothing.
func Fan(points []Vector3) []Triangle {
	if len(points) < 3 {
		return nil
	}
	var polygon Vector3
	tris := make([]Triangle, 0, len(points)-2)
	for i := 1; i < len(points)-1; i++ {
		tri := Triangle{V1: points[0], V2: points[i], V3: points[i+1]}
		tri.Normal = tri.CalculateNormal()
		if tri.Normal == (Vector3{}) {
			if polygon == (Vector3{}) {
				polygon = PolygonNormal(points).Normalize()
			}
			tri.Normal = polygon
		}
		tris = append(tris, tri)
	}
	return tris
}
