package geometry

const degenerateNormal = 1e-12

// PolygonNormal returns the unnormalized normal of a planar polygon.
//
// It uses the cross product of the first two edges. Quads that collapse to
// a point on one edge (sphere poles) fall back to Newell's method over all
// vertices. A zero vector means the polygon has no area.
func PolygonNormal(points []Vector3) Vector3 {
	if len(points) < 3 {
		return Vector3{}
	}
	n := points[1].Sub(points[0]).Cross(points[2].Sub(points[0]))
	if n.Length() > degenerateNormal {
		return n
	}

	var newell Vector3
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		newell.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		newell.Y += (cur.Z - next.Z) * (cur.X + next.X)
		newell.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	if newell.Length() > degenerateNormal {
		return newell
	}
	return Vector3{}
}
