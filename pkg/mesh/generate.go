package mesh

import (
	"math"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Shape dimensions in local units.
const (
	BoxHalfExtent = 50.0

	CylinderRadius     = 50.0
	CylinderHalfHeight = 50.0
	CylinderSegments   = 12

	SphereRadius   = 50.0
	SphereRings    = 8
	SphereSegments = 12

	TorusMajorRadius = 40.0
	TorusTubeRadius  = 15.0
	TorusSegments    = 16
	TorusTubeSides   = 8

	GearOuterRadius  = 50.0
	GearInnerRatio   = 0.85
	GearHalfHeight   = 10.0
	DefaultGearTeeth = 12

	SpringRadius        = 30.0
	SpringHeight        = 100.0
	SpringPointsPerCoil = 12
	DefaultSpringCoils  = 8
)

// Generate builds the mesh for kind. Faces are wound so their normals point
// away from the shape's interior.
//
// param is the tooth count for gears and the coil count for springs; values
// <= 0 select the default. Unknown kinds produce an empty mesh.
func Generate(kind Kind, param int) *Mesh {
	switch kind {
	case KindBox:
		return box()
	case KindCylinder:
		return cylinder()
	case KindCone:
		return cone()
	case KindSphere:
		return sphere()
	case KindTorus:
		return torus()
	case KindGear:
		if param <= 0 {
			param = DefaultGearTeeth
		}
		return gear(param)
	case KindSpring:
		if param <= 0 {
			param = DefaultSpringCoils
		}
		return spring(param)
	default:
		return &Mesh{}
	}
}

func box() *Mesh {
	s := BoxHalfExtent
	return &Mesh{
		Vertices: []geometry.Vector3{
			{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
			{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
		},
		Edges: []Edge{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Faces: [][]int{
			{3, 2, 1, 0}, {6, 7, 4, 5}, {7, 3, 0, 4},
			{2, 6, 5, 1}, {0, 1, 5, 4}, {7, 6, 2, 3},
		},
	}
}

// ring returns n points on a circle of radius r in the XZ plane at height y
func ring(n int, r, y float64) []geometry.Vector3 {
	points := make([]geometry.Vector3, n)
	for i := range points {
		theta := float64(i) / float64(n) * 2 * math.Pi
		points[i] = geometry.Vector3{X: math.Cos(theta) * r, Y: y, Z: math.Sin(theta) * r}
	}
	return points
}

func reversed(face []int) []int {
	out := make([]int, len(face))
	for i, idx := range face {
		out[len(face)-1-i] = idx
	}
	return out
}

// cylinder: top ring at indices [0, n), bottom ring at [n, 2n)
func cylinder() *Mesh {
	n := CylinderSegments
	m := &Mesh{}
	m.Vertices = append(ring(n, CylinderRadius, CylinderHalfHeight), ring(n, CylinderRadius, -CylinderHalfHeight)...)

	top := make([]int, n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Edges = append(m.Edges, Edge{i, next}, Edge{n + i, n + next}, Edge{i, n + i})
		m.Faces = append(m.Faces, []int{i, next, n + next, n + i})
		top[i] = i
	}

	bottom := make([]int, n)
	for i := range bottom {
		bottom[i] = n + i
	}
	m.Faces = append(m.Faces, reversed(top), bottom)
	return m
}

// cone: base ring at [0, n), apex last
func cone() *Mesh {
	n := CylinderSegments
	m := &Mesh{}
	m.Vertices = append(ring(n, CylinderRadius, CylinderHalfHeight), geometry.Vector3{Y: -CylinderHalfHeight})
	apex := n

	base := make([]int, n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Edges = append(m.Edges, Edge{i, next}, Edge{i, apex})
		m.Faces = append(m.Faces, []int{i, next, apex})
		base[i] = i
	}
	m.Faces = append(m.Faces, reversed(base))
	return m
}

// sphere: SphereRings+1 latitude rows of SphereSegments points, poles included
func sphere() *Mesh {
	rows, n := SphereRings, SphereSegments
	m := &Mesh{}
	for lat := 0; lat <= rows; lat++ {
		phi := float64(lat) / float64(rows) * math.Pi
		sinPhi, cosPhi := math.Sincos(phi)
		m.Vertices = append(m.Vertices, ring(n, SphereRadius*sinPhi, SphereRadius*cosPhi)...)
	}

	for lat := 0; lat <= rows; lat++ {
		for lon := 0; lon < n; lon++ {
			cur := lat*n + lon
			next := lat*n + (lon+1)%n
			m.Edges = append(m.Edges, Edge{cur, next})
			if lat == rows {
				continue
			}
			below := cur + n
			belowNext := next + n
			m.Edges = append(m.Edges, Edge{cur, below})
			m.Faces = append(m.Faces, []int{cur, next, belowNext, below})
		}
	}
	return m
}

func torus() *Mesh {
	segs, sides := TorusSegments, TorusTubeSides
	m := &Mesh{}
	for i := 0; i < segs; i++ {
		theta := float64(i) / float64(segs) * 2 * math.Pi
		sinT, cosT := math.Sincos(theta)
		for j := 0; j < sides; j++ {
			phi := float64(j) / float64(sides) * 2 * math.Pi
			sinP, cosP := math.Sincos(phi)
			r := TorusMajorRadius + TorusTubeRadius*cosP
			m.Vertices = append(m.Vertices, geometry.Vector3{X: r * cosT, Y: TorusTubeRadius * sinP, Z: r * sinT})
		}
	}

	for i := 0; i < segs; i++ {
		for j := 0; j < sides; j++ {
			cur := i*sides + j
			nextSeg := ((i+1)%segs)*sides + j
			nextTube := i*sides + (j+1)%sides
			diag := ((i+1)%segs)*sides + (j+1)%sides
			m.Edges = append(m.Edges, Edge{cur, nextSeg}, Edge{cur, nextTube})
			m.Faces = append(m.Faces, []int{cur, nextTube, diag, nextSeg})
		}
	}
	return m
}

// gear: 2*teeth samples alternating outer and inner radius, extruded in Y.
// Top profile at [0, n), bottom at [n, 2n).
func gear(teeth int) *Mesh {
	n := teeth * 2
	m := &Mesh{}
	profile := func(y float64) {
		for i := 0; i < n; i++ {
			theta := float64(i) / float64(n) * 2 * math.Pi
			r := GearOuterRadius
			if i%2 == 1 {
				r = GearOuterRadius * GearInnerRatio
			}
			m.Vertices = append(m.Vertices, geometry.Vector3{X: math.Cos(theta) * r, Y: y, Z: math.Sin(theta) * r})
		}
	}
	profile(GearHalfHeight)
	profile(-GearHalfHeight)

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Edges = append(m.Edges, Edge{i, next}, Edge{n + i, n + next}, Edge{i, n + i})
		m.Faces = append(m.Faces, []int{i, next, n + next, n + i})
	}
	return m
}

// spring: a helical polyline with no faces, rising from -h/2 to +h/2
func spring(coils int) *Mesh {
	total := coils * SpringPointsPerCoil
	m := &Mesh{Vertices: make([]geometry.Vector3, 0, total+1)}
	for i := 0; i <= total; i++ {
		theta := float64(i) / float64(SpringPointsPerCoil) * 2 * math.Pi
		y := float64(i)/float64(total)*SpringHeight - SpringHeight/2
		m.Vertices = append(m.Vertices, geometry.Vector3{X: math.Cos(theta) * SpringRadius, Y: y, Z: math.Sin(theta) * SpringRadius})
		if i > 0 {
			m.Edges = append(m.Edges, Edge{i - 1, i})
		}
	}
	return m
}
