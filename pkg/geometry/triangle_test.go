package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestFanTriangulatesQuad(t *testing.T) {
	quad := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(2, 2, 0),
		NewVector3(0, 2, 0),
	}

	tris := Fan(quad)
	if len(tris) != 2 {
		t.Fatalf("Fan failed: expected 2 triangles, got %d", len(tris))
	}

	total := tris[0].Area() + tris[1].Area()
	if math.Abs(total-4.0) > 1e-10 {
		t.Errorf("Fan area failed: expected 4, got %v", total)
	}
	if tris[0].Normal != NewVector3(0, 0, 1) {
		t.Errorf("Fan normal failed: expected (0, 0, 1), got %v", tris[0].Normal)
	}

	if Fan(quad[:2]) != nil {
		t.Error("Fan of a segment should produce no triangles")
	}
}

func TestFanCollapsedPoleQuad(t *testing.T) {
	// first two points coincide, as on a sphere pole row
	quad := []Vector3{
		NewVector3(0, 1, 0),
		NewVector3(0, 1, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 0, 1),
	}

	tris := Fan(quad)
	if len(tris) != 2 {
		t.Fatalf("Fan failed: expected 2 triangles, got %d", len(tris))
	}
	expected := tris[1].CalculateNormal()
	if expected.Length() == 0 {
		t.Fatal("CalculateNormal failed: expected a normal for the non-degenerate triangle")
	}
	if tris[0].Normal.Sub(expected).Length() > 1e-10 {
		t.Errorf("Fan sliver normal failed: expected %v, got %v", expected, tris[0].Normal)
	}
	if tris[1].Normal != expected {
		t.Errorf("Fan normal failed: expected %v, got %v", expected, tris[1].Normal)
	}
}
