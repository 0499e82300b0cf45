package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

var testViewport = Viewport{Width: 800, Height: 600}

func TestZoomStaysInRange(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 50; i++ {
		c.ZoomBy(-1000)
	}
	assert.Equal(t, MaxZoom, c.Zoom)

	for i := 0; i < 50; i++ {
		c.ZoomBy(5000)
	}
	assert.Equal(t, MinZoom, c.Zoom)
}

func TestZoomIsMultiplicative(t *testing.T) {
	c := NewCamera()
	c.ZoomBy(-100)
	assert.InDelta(t, DefaultZoom*1.1, c.Zoom, 1e-9)
	c.ZoomBy(100)
	assert.InDelta(t, DefaultZoom*1.1*0.9, c.Zoom, 1e-9)
}

func TestProjectOriginToCentre(t *testing.T) {
	c := NewCamera()
	c.Pan = geometry.Vector2{X: 15, Y: -5}

	screen, scale := c.Project(geometry.Vector3{}, testViewport)
	assert.InDelta(t, 415, screen.X, 1e-9)
	assert.InDelta(t, 295, screen.Y, 1e-9)
	assert.InDelta(t, FocalLength*DefaultZoom/CameraDistance, scale, 1e-9)
}

func TestProjectClampsDepth(t *testing.T) {
	c := NewCamera()
	for _, z := range []float64{-CameraDistance, -CameraDistance - 0.5, -5000} {
		screen, scale := c.Project(geometry.Vector3{X: 10, Y: 10, Z: z}, testViewport)
		assert.False(t, math.IsInf(scale, 0) || math.IsNaN(scale), "z=%v", z)
		assert.Positive(t, scale, "z=%v", z)
		assert.True(t, finite(screen), "z=%v", z)
		assert.Equal(t, FocalLength*DefaultZoom/minDepth, scale)
	}
}

func TestNearerPointsProjectLarger(t *testing.T) {
	c := NewCamera()
	_, near := c.Project(geometry.Vector3{Z: -200}, testViewport)
	_, far := c.Project(geometry.Vector3{Z: 200}, testViewport)
	assert.Greater(t, near, far)
}

func TestOrbitPanAndReset(t *testing.T) {
	c := NewCamera()
	c.Orbit(10, 20)
	assert.InDelta(t, DefaultRotation.Y+0.1, c.Rotation.Y, 1e-9)
	assert.InDelta(t, DefaultRotation.X+0.2, c.Rotation.X, 1e-9)

	c.PanBy(3, 4)
	assert.Equal(t, geometry.Vector2{X: 3, Y: 4}, c.Pan)

	c.Reset()
	assert.Equal(t, NewCamera(), c)
}
