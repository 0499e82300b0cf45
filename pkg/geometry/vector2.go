package geometry

import "math"

// Vector2 is a point or offset on the 2D raster surface
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}
