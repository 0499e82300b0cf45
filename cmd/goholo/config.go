package main

import (
	"fmt"

	"github.com/philipparndt/goholo/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var (
		save   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and flags are merged.
Use --save to store it in the user config directory (` + config.ConfigDir() + `)
or --output to write it elsewhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg

			switch {
			case output != "":
				if err := cfg.SaveTo(output); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", output)
				return nil
			case save:
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", config.ConfigDir())
				return nil
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write to the user config directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file")
	return cmd
}
