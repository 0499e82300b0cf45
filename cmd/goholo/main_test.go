package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const benchScene = `title: BENCH
elements:
  - shape: box
    label: BASE
  - shape: gear
    position: [0, 2, 0]
    teeth: 8
  - shape: spring
    position: [3, 0, 0]
`

// execute runs the CLI with an isolated config directory
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() {
		logger.Log = zap.NewNop()
		logger.Sugar = logger.Log.Sugar()
	})

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(benchScene), 0644))
	return path
}

func TestRenderWritesPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "frame.png")

	out, err := execute(t, "render", writeScene(t), "-o", output, "--width", "320", "--height", "200", "--frames", "3", "--explode")
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderRejectsBadSize(t *testing.T) {
	_, err := execute(t, "render", "-o", filepath.Join(t.TempDir(), "x.png"), "--width", "0")
	assert.Error(t, err)
}

func TestExportOBJ(t *testing.T) {
	output := filepath.Join(t.TempDir(), "bench.obj")

	out, err := execute(t, "export", writeScene(t), "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 object(s)")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "# GOHOLO 3D EXPORT"))
	assert.Contains(t, content, "o Object_0_box")
	assert.Contains(t, content, "o Object_1_gear")
	assert.Contains(t, content, "o Object_2_spring")
}

func TestExportSTLToStdout(t *testing.T) {
	out, err := execute(t, "export", writeScene(t), "-o", "-", "--format", "stl")
	require.NoError(t, err)

	model, err := stl.Decode(strings.NewReader(out))
	require.NoError(t, err)
	// box: 6 quads, gear with 8 teeth: 16 side quads, spring: none
	assert.Equal(t, 12+32, model.TriangleCount())
}

func TestExportDefaultName(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "goholo.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("export:\n  directory: "+dir+"\n  format: stl-binary\n"), 0644))

	_, err := execute(t, "--config", configPath, "export", writeScene(t))
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "goholo_export_*.stl"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := execute(t, "export", "--format", "fbx", "-o", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", writeScene(t), "--edges", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Title: BENCH")
	assert.Contains(t, out, `#0 box "BASE": 8 vertices, 12 edges, 6 faces`)
	assert.Contains(t, out, "#2 spring: 97 vertices, 96 edges, 0 faces")
	assert.Contains(t, out, "Objects: 3")
	assert.Contains(t, out, "Longest Edges:")
	assert.Contains(t, out, "  2. object #")
}

func TestInfoDemo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "File: (built-in demo)")
	assert.Contains(t, out, "Objects: 12")
}

func TestInfoMissingScene(t *testing.T) {
	_, err := execute(t, "info", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "render:")
	assert.Contains(t, out, "width: 800")

	path := filepath.Join(t.TempDir(), "saved.yaml")
	_, err = execute(t, "config", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: obj")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "goholo version")
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "goholo")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestInfoEdgesBetween(t *testing.T) {
	out, err := execute(t, "info", writeScene(t), "--edges-between", "1.9,2.1")
	require.NoError(t, err)

	// only the box has edges two units long
	assert.Contains(t, out, "Edges from 1.900 units to 2.100 units: 12")
	assert.Contains(t, out, "  12. object #0")
	assert.NotContains(t, out, "object #1")

	_, err = execute(t, "info", writeScene(t), "--edges-between", "3,1")
	assert.Error(t, err)
	_, err = execute(t, "info", writeScene(t), "--edges-between", "1")
	assert.Error(t, err)
}

func TestRenderWithoutSimulation(t *testing.T) {
	output := filepath.Join(t.TempDir(), "still.png")
	_, err := execute(t, "render", "-o", output, "--frames", "0", "--width", "64", "--height", "48")
	require.NoError(t, err)
	_, err = os.Stat(output)
	assert.NoError(t, err)

	_, err = execute(t, "render", "-o", output, "--frames", "-1")
	assert.Error(t, err)
}
