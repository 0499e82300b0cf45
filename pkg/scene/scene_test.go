package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonScene = `{
  "elements": [
    {"shape": "cube", "position": [1, 0, -2], "color": "#ff0000", "opacity": 0},
    {"shape": "gear", "teeth": 6, "label": "DRIVE", "animation": {"type": "rotate", "speed": 2}},
    {"shape": "helix", "coils": 3, "animation": {"type": "oscillate"}},
    {"shape": "teapot"}
  ]
}`

func TestParseJSONAppliesDefaults(t *testing.T) {
	desc, err := Parse([]byte(jsonScene))
	require.NoError(t, err)
	require.Len(t, desc.Elements, 4)

	var unknown []string
	s := Build(desc, mesh.NewLibrary(), BuildOptions{
		OnUnknownShape: func(_ int, shape string) { unknown = append(unknown, shape) },
	})
	require.Len(t, s.Objects, 4)
	assert.Equal(t, []string{"teapot"}, unknown)

	box := s.Objects[0]
	assert.Equal(t, mesh.KindBox, box.Kind)
	assert.Equal(t, geometry.NewVector3(50, 0, -100), box.Transform.Position)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), box.Transform.Scale)
	assert.Equal(t, 0.0, box.Material.Opacity, "explicit zero opacity is kept")
	assert.InDelta(t, 1.0, box.Material.Color.R, 1e-9)

	gear := s.Objects[1]
	assert.Len(t, gear.Mesh.Vertices, 24)
	assert.Equal(t, DefaultColor, gear.Material.Hex)
	assert.Equal(t, DefaultOpacity, gear.Material.Opacity)
	require.NotNil(t, gear.Animation)
	assert.Equal(t, AnimationRotate, gear.Animation.Kind)
	assert.Equal(t, geometry.AxisZ, gear.Animation.Axis)
	assert.Equal(t, 2.0, gear.Animation.Speed)

	spring := s.Objects[2]
	assert.Equal(t, mesh.KindSpring, spring.Kind)
	assert.Len(t, spring.Mesh.Vertices, 37)
	require.NotNil(t, spring.Animation)
	assert.Equal(t, geometry.AxisY, spring.Animation.Axis)
	assert.Equal(t, DefaultOscillateAmount, spring.Animation.Amplitude)

	teapot := s.Objects[3]
	assert.Equal(t, mesh.KindUnknown, teapot.Kind)
	assert.True(t, teapot.Mesh.Empty())
}

func TestParseBareList(t *testing.T) {
	desc, err := Parse([]byte("- shape: sphere\n- shape: ring\n"))
	require.NoError(t, err)
	require.Len(t, desc.Elements, 2)
	assert.Equal(t, "ring", desc.Elements[1].Shape)
}

func TestParseRejectsScalars(t *testing.T) {
	_, err := Parse([]byte("42"))
	assert.Error(t, err)

	_, err = Parse([]byte("elements: [unclosed"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	desc, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, desc.Elements)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonScene), 0644))

	desc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, desc.Elements, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestAnimationOffsets(t *testing.T) {
	rotate := NewAnimation(&AnimationSpec{Type: "rotate", Axis: "y", Speed: 2})
	o := rotate.At(1.5)
	assert.InDelta(t, 3.0, o.Rotation.Y, 1e-9)
	assert.Equal(t, geometry.Vector3{}, o.Position)

	osc := NewAnimation(&AnimationSpec{Type: "oscillate", Amplitude: 10})
	o = osc.At(math.Pi / 2)
	assert.InDelta(t, 10.0, o.Position.Y, 1e-9)

	compress := NewAnimation(&AnimationSpec{Type: "compress", Axis: "x"})
	o = compress.At(math.Pi / 2)
	assert.InDelta(t, DefaultCompressAmount, o.Scale.X, 1e-9)

	flow := NewAnimation(&AnimationSpec{Type: "flow"})
	assert.Equal(t, Offsets{}, flow.At(3))

	assert.Nil(t, NewAnimation(&AnimationSpec{Type: "wobble"}))
	assert.Nil(t, NewAnimation(nil))
	var none *Animation
	assert.Equal(t, Offsets{}, none.At(1))
}

func TestTransformOrder(t *testing.T) {
	tr := Transform{
		Position: geometry.NewVector3(10, 0, 0),
		Rotation: geometry.NewVector3(0, 0, math.Pi/2),
		Scale:    geometry.NewVector3(2, 1, 1),
	}
	// scale (1,0,0) -> (2,0,0), rotate about z -> (0,2,0), translate -> (10,2,0)
	got := tr.Apply(geometry.NewVector3(1, 0, 0))
	assert.InDelta(t, 10.0, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
	assert.InDelta(t, 0.0, got.Z, 1e-9)
}

func TestDemoScene(t *testing.T) {
	desc := Demo()
	s := Build(desc, mesh.NewLibrary(), BuildOptions{})
	assert.Equal(t, "ARC REACTOR MK-V", s.Title)
	assert.Len(t, s.Objects, 12)
	assert.True(t, s.HasFlow())
	for _, obj := range s.Objects {
		assert.NotEqual(t, mesh.KindUnknown, obj.Kind)
	}
}

func TestBuildNilDescription(t *testing.T) {
	s := Build(nil, mesh.NewLibrary(), BuildOptions{})
	assert.Empty(t, s.Objects)
	assert.False(t, s.HasFlow())
	assert.True(t, s.Bounds().IsEmpty())
}
