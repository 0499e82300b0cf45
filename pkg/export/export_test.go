package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipparndt/goholo/pkg/mesh"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/philipparndt/goholo/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, doc string) []scene.Object {
	t.Helper()
	desc, err := scene.Parse([]byte(doc))
	require.NoError(t, err)
	return scene.Build(desc, mesh.NewLibrary(), scene.BuildOptions{}).Objects
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestOBJSingleBox(t *testing.T) {
	objects := build(t, `{"elements":[{"shape":"box"}]}`)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, objects, Options{}))
	lines := strings.Split(buf.String(), "\n")

	assert.Equal(t, 8, countPrefix(lines, "v "))
	assert.Equal(t, 6, countPrefix(lines, "f "))
	assert.Contains(t, lines, "o Object_0_box")
	assert.Contains(t, lines, "v -1 -1 -1", "half-extent 50 divided by 50")
	assert.Contains(t, lines, "f 4 3 2 1")
}

func TestOBJGlobalOffsets(t *testing.T) {
	objects := build(t, `{"elements":[{"shape":"spring","coils":1},{"shape":"cube","position":[2,0,0]}]}`)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, objects, Options{}))
	out := buf.String()
	lines := strings.Split(out, "\n")

	springVerts := mesh.SpringPointsPerCoil + 1
	assert.Equal(t, springVerts+8, countPrefix(lines, "v "))
	assert.Equal(t, 6, countPrefix(lines, "f "), "faceless spring emits vertices only")

	first := strings.Index(out, "o Object_1_cube")
	require.Greater(t, first, 0)
	faces := out[first:]
	assert.Contains(t, faces, "f 17 16 15 14", "cube faces start after the spring's 13 vertices")
	assert.Contains(t, faces, "v 3 1 1")
}

func TestOBJEmptyScene(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, nil, Options{}))
	assert.Equal(t, objHeader, buf.String())
}

func TestOBJUnknownShapeKeepsName(t *testing.T) {
	objects := build(t, `{"elements":[{"shape":"teapot"}]}`)
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, objects, Options{}))
	assert.Contains(t, buf.String(), "o Object_0_teapot\n\n")
}

func TestSTLRoundTrip(t *testing.T) {
	objects := build(t, `{"elements":[{"shape":"box"},{"shape":"spring"},{"shape":"cone"}]}`)
	// box: 6 quads -> 12, cone: 12 side tris + 12-gon cap -> 12 + 10
	const triangles = 12 + 12 + 10

	for _, format := range []Format{FormatSTL, FormatSTLBinary} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, objects, format, Options{Name: "reactor"}))

			model, err := stl.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, triangles, model.TriangleCount())

			bbox := model.BoundingBox()
			assert.InDelta(t, -1.0, bbox.Min.X, 1e-6)
			assert.InDelta(t, 1.0, bbox.Max.Y, 1e-6)
		})
	}
}

func TestSTLBoxSurfaceArea(t *testing.T) {
	objects := build(t, `[{"shape":"box","scale":[2,1,1]}]`)
	model := BuildModel(objects, Options{})
	// 4x2x2 box in scene units
	assert.InDelta(t, 2*(4*2+4*2+2*2), model.SurfaceArea(), 1e-9)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("STL")
	require.NoError(t, err)
	assert.Equal(t, FormatSTL, f)
	assert.Equal(t, "stl", f.Extension())

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatOBJ, f)
	assert.Equal(t, "text/plain", f.MediaType())

	_, err = ParseFormat("fbx")
	assert.Error(t, err)
}
