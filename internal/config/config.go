// Package config handles goholo configuration loading and management.
package config

// Config holds all goholo settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds surface and frame settings.
type RenderConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FPS        int     `yaml:"fps"`
	Background string  `yaml:"background"` // hex colour
	FontSize   float64 `yaml:"font_size"`
}

// SceneConfig holds scene building and simulation settings.
type SceneConfig struct {
	UnitScale      float64 `yaml:"unit_scale"`
	PreserveCamera bool    `yaml:"preserve_camera"`
	ParticleBudget int     `yaml:"particle_budget"`
	ExplodeFactor  float64 `yaml:"explode_factor"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Format    string  `yaml:"format"`
	Divisor   float64 `yaml:"divisor"`
	Directory string  `yaml:"directory"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      800,
			Height:     600,
			FPS:        60,
			Background: "#020617",
			FontSize:   10,
		},
		Scene: SceneConfig{
			UnitScale:      50,
			PreserveCamera: false,
			ParticleBudget: 60,
			ExplodeFactor:  1.8,
		},
		Export: ExportConfig{
			Format:    "obj",
			Divisor:   50,
			Directory: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
