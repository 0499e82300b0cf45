package main

import (
	"github.com/philipparndt/goholo/internal/app"
	"github.com/philipparndt/goholo/internal/config"
	"github.com/spf13/cobra"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	var preserveCamera bool

	cmd := &cobra.Command{
		Use:   "view [scene]",
		Short: "Open the interactive viewer",
		Long: `Open a window showing the scene. The scene file is watched and reloaded
whenever it changes. Without a scene the built-in demo is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ov config.Overrides
			if cmd.Flags().Changed("preserve-camera") {
				ov.PreserveCamera = &preserveCamera
			}
			if err := root.apply(ov); err != nil {
				return err
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return app.Run(root.cfg, path)
		},
	}
	cmd.Flags().BoolVar(&preserveCamera, "preserve-camera", false, "keep the camera when the scene reloads")
	return cmd
}
