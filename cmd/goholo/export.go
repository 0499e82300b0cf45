package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/goholo/internal/config"
	"github.com/philipparndt/goholo/pkg/viewer"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	output  string
	format  string
	divisor float64
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [scene]",
		Short: "Export scene geometry as OBJ or STL",
		Long: `Export every object of a scene under its base transform. Animation and the
exploded view are never applied. Coordinates are divided by --divisor so one
scene unit becomes one file unit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ov config.Overrides
			if cmd.Flags().Changed("format") {
				ov.ExportFormat = &opts.format
			}
			if cmd.Flags().Changed("divisor") {
				ov.Divisor = &opts.divisor
			}
			if err := root.apply(ov); err != nil {
				return err
			}
			return runExport(cmd, root.cfg, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default goholo_export_<ms>.<ext> in the export directory)")
	f.StringVarP(&opts.format, "format", "f", "obj", "export format: obj, stl or stl-binary")
	f.Float64Var(&opts.divisor, "divisor", 50, "world units per file unit")
	return cmd
}

func runExport(cmd *cobra.Command, cfg *config.Config, opts *exportOptions, args []string) error {
	desc, _, err := loadScene(args)
	if err != nil {
		return err
	}
	format, err := cfg.ExportFormat()
	if err != nil {
		return err
	}

	engine := viewer.NewEngine(cfg.EngineOptions())
	engine.Load(desc)
	blob, err := engine.Export(format)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(blob.Data)
		return err
	}

	path := opts.output
	if path == "" {
		path = filepath.Join(cfg.Export.Directory, blob.Name)
	}
	if err := os.WriteFile(path, blob.Data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d object(s) to %s (%s, %d bytes)\n", len(engine.Objects()), path, format, len(blob.Data))
	return nil
}
