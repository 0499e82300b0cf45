package config

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/philipparndt/goholo/pkg/export"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/philipparndt/goholo/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero width":         func(c *Config) { c.Render.Width = 0 },
		"negative height":    func(c *Config) { c.Render.Height = -1 },
		"zero fps":           func(c *Config) { c.Render.FPS = 0 },
		"negative particles": func(c *Config) { c.Scene.ParticleBudget = -5 },
		"unknown format":     func(c *Config) { c.Export.Format = "fbx" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestExportFormat(t *testing.T) {
	cfg := Default()
	cfg.Export.Format = "stl-binary"
	format, err := cfg.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, export.FormatSTLBinary, format)
}

func TestEngineOptionsZeroParticlesDisables(t *testing.T) {
	cfg := Default()
	cfg.Scene.ParticleBudget = 0

	opts := cfg.EngineOptions()
	assert.Negative(t, opts.ParticleBudget)

	e := viewer.NewEngine(opts)
	e.Load(&scene.Description{Elements: []scene.ShapeSpec{
		{Shape: "cone", Animation: &scene.AnimationSpec{Type: "flow"}},
	}})
	assert.Empty(t, e.Particles())
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.Width = 320
	cfg.Render.Height = 240
	cfg.Render.Background = "#102030"
	cfg.Scene.PreserveCamera = true
	cfg.Scene.ParticleBudget = 10
	cfg.Export.Divisor = 10

	opts := cfg.EngineOptions()
	assert.Equal(t, 320.0, opts.Width)
	assert.Equal(t, 240.0, opts.Height)
	assert.Equal(t, gg.Hex("#102030"), opts.Background)
	assert.True(t, opts.PreserveCamera)
	assert.Equal(t, 10, opts.ParticleBudget)
	assert.Equal(t, 10.0, opts.UnitDivisor)
	assert.Equal(t, 50.0, opts.UnitScale)
	assert.Equal(t, viewer.DefaultExplodeFactor, opts.ExplodeFactor)
	assert.Equal(t, viewer.DefaultFontSize, opts.FontSize)
}
