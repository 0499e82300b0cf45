package viewer

import (
	"testing"

	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/mesh"
	"github.com/philipparndt/goholo/pkg/physics"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScene(t *testing.T, elements ...scene.ShapeSpec) *scene.Scene {
	t.Helper()
	s := scene.Build(&scene.Description{Elements: elements}, mesh.NewLibrary(), scene.BuildOptions{})
	require.Len(t, s.Objects, len(elements))
	return s
}

func restFrame() FrameState {
	return FrameState{Explode: 1, Spring: physics.NewSpring()}
}

func TestExplodeIncreasesSeparation(t *testing.T) {
	s := buildScene(t,
		scene.ShapeSpec{Shape: "box", Position: []float64{-1, 0, 0}},
		scene.ShapeSpec{Shape: "box", Position: []float64{1, 0.5, 0}},
	)

	separation := func(fs FrameState) float64 {
		a := FrameTransform(&s.Objects[0], 0, fs).Position
		b := FrameTransform(&s.Objects[1], 1, fs).Position
		return a.Distance(b)
	}

	normal := separation(restFrame())
	fs := restFrame()
	fs.Explode = DefaultExplodeFactor
	exploded := separation(fs)

	assert.Greater(t, exploded, normal)
	assert.InDelta(t, normal*DefaultExplodeFactor, exploded, 1e-9)
}

func TestExplodeSpreadsProjectedCentres(t *testing.T) {
	s := buildScene(t,
		scene.ShapeSpec{Shape: "box", Position: []float64{-1, 0, 0}},
		scene.ShapeSpec{Shape: "cone", Position: []float64{1, 0.5, 0}},
	)
	front := Camera{Zoom: DefaultZoom}

	screenGap := func(cam Camera, explode float64) float64 {
		fs := restFrame()
		fs.Explode = explode
		a := ProjectObject(&s.Objects[0], 0, fs, cam, testViewport)
		b := ProjectObject(&s.Objects[1], 1, fs, cam, testViewport)
		return a.Center.Distance(b.Center)
	}

	// both centres sit at the same depth, so the gap scales exactly
	normal := screenGap(front, 1)
	exploded := screenGap(front, DefaultExplodeFactor)
	assert.Greater(t, exploded, normal)
	assert.InDelta(t, normal*DefaultExplodeFactor, exploded, 1e-6)

	assert.Greater(t, screenGap(NewCamera(), DefaultExplodeFactor), screenGap(NewCamera(), 1))
}

func TestFrameTransformAddsAnimation(t *testing.T) {
	s := buildScene(t, scene.ShapeSpec{
		Shape:     "torus",
		Rotation:  []float64{0.5, 0, 0},
		Animation: &scene.AnimationSpec{Type: "rotate", Axis: "z", Speed: 2},
	})

	fs := restFrame()
	fs.Time = 1.5
	tr := FrameTransform(&s.Objects[0], 0, fs)
	assert.InDelta(t, 0.5, tr.Rotation.X, 1e-9)
	assert.InDelta(t, 3.0, tr.Rotation.Z, 1e-9)

	// the base transform is untouched
	assert.Zero(t, s.Objects[0].Transform.Rotation.Z)
}

func TestSpringScalesActiveObject(t *testing.T) {
	s := buildScene(t, scene.ShapeSpec{Shape: "spring", Scale: []float64{1, 2, 1}})

	fs := restFrame()
	fs.Spring.Grab(0)
	fs.Spring.Drag(50)

	tr := FrameTransform(&s.Objects[0], 0, fs)
	assert.InDelta(t, 2*1.5, tr.Scale.Y, 1e-9)
	assert.InDelta(t, 1, tr.Scale.X, 1e-9)

	// another object index is not affected
	other := FrameTransform(&s.Objects[0], 1, fs)
	assert.InDelta(t, 2, other.Scale.Y, 1e-9)
}

func TestSpringSuppressesOscillationWhileDragged(t *testing.T) {
	s := buildScene(t, scene.ShapeSpec{
		Shape:     "spring",
		Animation: &scene.AnimationSpec{Type: "oscillate", Amplitude: 1},
	})

	fs := restFrame()
	fs.Time = 1
	free := FrameTransform(&s.Objects[0], 0, fs)
	assert.NotZero(t, free.Position.Y)

	fs.Spring.Grab(0)
	held := FrameTransform(&s.Objects[0], 0, fs)
	assert.Zero(t, held.Position.Y)
}

func TestProjectObjectBounds(t *testing.T) {
	s := buildScene(t, scene.ShapeSpec{Shape: "box"})
	p := ProjectObject(&s.Objects[0], 0, restFrame(), NewCamera(), testViewport)

	require.Len(t, p.Screen, 8)
	assert.False(t, p.Bounds.IsEmpty())
	assert.True(t, p.Hit(testViewport.Center()))
	assert.False(t, p.Hit(geometry.Vector2{X: 5, Y: 5}))
	assert.InDelta(t, 400, p.Center.X, 1e-9)
	assert.InDelta(t, 300, p.Center.Y, 1e-9)
}

func TestEmptyMeshUsesHitRadius(t *testing.T) {
	s := buildScene(t, scene.ShapeSpec{Shape: "teapot"})
	p := ProjectObject(&s.Objects[0], 0, restFrame(), NewCamera(), testViewport)

	assert.True(t, p.Bounds.IsEmpty())
	assert.Empty(t, p.Screen)
	assert.True(t, p.Hit(geometry.Vector2{X: 400 + HitRadius - 1, Y: 300}))
	assert.False(t, p.Hit(geometry.Vector2{X: 400 + HitRadius + 1, Y: 300}))
}
