package geometry

import "math"

// Rect is an axis-aligned rectangle in screen space, used for hit-testing
// projected objects. The zero value is not empty; use NewRect.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect returns an empty rectangle
func NewRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Extend grows the rectangle to cover p
func (r *Rect) Extend(p Vector2) {
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
}

// IsEmpty reports whether the rectangle covers no point
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Contains reports whether p lies inside the rectangle, edges included
func (r Rect) Contains(p Vector2) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Expand returns the rectangle grown by pad on every side
func (r Rect) Expand(pad float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{MinX: r.MinX - pad, MinY: r.MinY - pad, MaxX: r.MaxX + pad, MaxY: r.MaxY + pad}
}

// Width returns the horizontal extent, zero when empty
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the vertical extent, zero when empty
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}
