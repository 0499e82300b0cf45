package config

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/philipparndt/goholo/pkg/export"
	"github.com/philipparndt/goholo/pkg/viewer"
)

// Validate reports settings no engine can run with
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("render fps must be positive, got %d", c.Render.FPS)
	}
	if c.Scene.ParticleBudget < 0 {
		return fmt.Errorf("particle budget must not be negative, got %d", c.Scene.ParticleBudget)
	}
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	return nil
}

// ExportFormat parses the configured export format
func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Export.Format)
}

// EngineOptions converts the settings into viewer engine options
func (c *Config) EngineOptions() viewer.Options {
	opts := viewer.DefaultOptions()
	opts.Width = float64(c.Render.Width)
	opts.Height = float64(c.Render.Height)
	if c.Render.Background != "" {
		opts.Background = gg.Hex(c.Render.Background)
	}
	if c.Render.FontSize > 0 {
		opts.FontSize = c.Render.FontSize
	}
	opts.UnitScale = c.Scene.UnitScale
	opts.PreserveCamera = c.Scene.PreserveCamera
	opts.ParticleBudget = c.Scene.ParticleBudget
	if opts.ParticleBudget == 0 {
		opts.ParticleBudget = -1
	}
	if c.Scene.ExplodeFactor > 0 {
		opts.ExplodeFactor = c.Scene.ExplodeFactor
	}
	if c.Export.Divisor > 0 {
		opts.UnitDivisor = c.Export.Divisor
	}
	return opts
}
