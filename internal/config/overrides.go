package config

// Overrides carries command-line values. Nil fields leave the loaded
// configuration untouched.
type Overrides struct {
	Width          *int
	Height         *int
	FPS            *int
	Background     *string
	PreserveCamera *bool
	ExportFormat   *string
	Divisor        *float64
	LogLevel       *string
	LogFile        *string
}

// Apply copies every set override into c (highest priority).
func (c *Config) Apply(o Overrides) {
	if o.Width != nil {
		c.Render.Width = *o.Width
	}
	if o.Height != nil {
		c.Render.Height = *o.Height
	}
	if o.FPS != nil {
		c.Render.FPS = *o.FPS
	}
	if o.Background != nil {
		c.Render.Background = *o.Background
	}
	if o.PreserveCamera != nil {
		c.Scene.PreserveCamera = *o.PreserveCamera
	}
	if o.ExportFormat != nil {
		c.Export.Format = *o.ExportFormat
	}
	if o.Divisor != nil {
		c.Export.Divisor = *o.Divisor
	}
	if o.LogLevel != nil {
		c.Logging.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		c.Logging.LogFile = *o.LogFile
	}
}
