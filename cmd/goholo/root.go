package main

import (
	"fmt"

	"github.com/philipparndt/goholo/internal/config"
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/philipparndt/goholo/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions carries the persistent flags and the configuration they
// resolve to once a subcommand starts
type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "goholo",
		Short: "Software-rendered holographic 3D scene viewer",
		Long: `goholo renders declarative scenes of procedural solids (boxes, cylinders,
cones, spheres, tori, gears and springs) as translucent holograms on a 2D
raster, without a GPU. Scenes can be viewed interactively, rendered to PNG,
inspected and exported as OBJ or STL.`,
		Version:           version.GetFullVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Sync() },
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default ./goholo.yaml, then the user config directory)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")

	cmd.AddCommand(
		newRenderCmd(opts),
		newExportCmd(opts),
		newInfoCmd(opts),
		newViewCmd(opts),
		newConfigCmd(opts),
		newCompletionCmd(),
	)
	return cmd
}

// setup loads the configuration, applies flag overrides and starts logging
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	var ov config.Overrides
	if cmd.Flags().Changed("log-level") {
		ov.LogLevel = &o.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		ov.LogFile = &o.logFile
	}
	cfg.Apply(ov)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Debug("configuration loaded", zap.String("file", o.configPath), zap.String("command", cmd.Name()))

	o.cfg = cfg
	return nil
}

// apply merges command flag overrides and validates the result
func (o *rootOptions) apply(ov config.Overrides) error {
	o.cfg.Apply(ov)
	return o.cfg.Validate()
}

// loadScene reads the scene named by the first argument, or the demo
func loadScene(args []string) (*scene.Description, string, error) {
	if len(args) == 0 || args[0] == "" {
		return scene.Demo(), "", nil
	}
	desc, err := scene.LoadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return desc, args[0], nil
}
