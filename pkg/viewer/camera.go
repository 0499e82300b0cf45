package viewer

import (
	"math"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Camera and projection constants
const (
	// CameraDistance is added to camera-space depth before the perspective divide
	CameraDistance = 1000.0
	FocalLength    = 1000.0

	MinZoom     = 0.4
	MaxZoom     = 3.5
	DefaultZoom = 1.2

	RotateSensitivity = 0.01
	ZoomSensitivity   = 0.001
	AutoRotateStep    = 0.0005

	// minDepth bounds the perspective denominator for points at or behind the eye
	minDepth = 1.0
)

// DefaultRotation is the camera orientation after load and reset
var DefaultRotation = geometry.Vector3{X: 0.3, Y: -0.5, Z: 0}

// Camera is the orbit rig: Euler rotation applied to the whole scene, a
// screen-space pan offset and a perspective zoom factor.
type Camera struct {
	Rotation geometry.Vector3
	Pan      geometry.Vector2
	Zoom     float64
}

// NewCamera creates a camera in the default pose
func NewCamera() Camera {
	return Camera{Rotation: DefaultRotation, Zoom: DefaultZoom}
}

// Reset restores the default pose
func (c *Camera) Reset() {
	*c = NewCamera()
}

// Orbit rotates the scene by a pointer delta in pixels
func (c *Camera) Orbit(dx, dy float64) {
	c.Rotation.X += dy * RotateSensitivity
	c.Rotation.Y += dx * RotateSensitivity
}

// PanBy shifts the projection centre by a pointer delta in pixels
func (c *Camera) PanBy(dx, dy float64) {
	c.Pan.X += dx
	c.Pan.Y += dy
}

// ZoomBy applies a wheel delta multiplicatively. Positive dy zooms out.
func (c *Camera) ZoomBy(dy float64) {
	factor := math.Max(0.1, 1-dy*ZoomSensitivity)
	c.Zoom = clampZoom(c.Zoom * factor)
}

// Yaw turns the scene about the vertical axis
func (c *Camera) Yaw(delta float64) {
	c.Rotation.Y += delta
}

// ToCamera rotates a world point into camera space
func (c Camera) ToCamera(world geometry.Vector3) geometry.Vector3 {
	return world.Rotate(c.Rotation)
}

// Project maps a camera-space point to screen coordinates and returns the
// perspective scale used. Depths at or behind the eye get the maximal scale
// instead of dividing by zero or flipping sign.
func (c Camera) Project(p geometry.Vector3, vp Viewport) (geometry.Vector2, float64) {
	scale := FocalLength * c.Zoom / math.Max(p.Z+CameraDistance, minDepth)
	center := vp.Center()
	return geometry.Vector2{
		X: center.X + c.Pan.X + p.X*scale,
		Y: center.Y + c.Pan.Y + p.Y*scale,
	}, scale
}

// ProjectWorld rotates a world point into camera space and projects it
func (c Camera) ProjectWorld(world geometry.Vector3, vp Viewport) (screen geometry.Vector2, depth, scale float64) {
	cam := c.ToCamera(world)
	screen, scale = c.Project(cam, vp)
	return screen, cam.Z, scale
}

// Viewport is the raster surface size in pixels
type Viewport struct {
	Width, Height float64
}

// Center returns the middle of the surface
func (v Viewport) Center() geometry.Vector2 {
	return geometry.Vector2{X: v.Width / 2, Y: v.Height / 2}
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
