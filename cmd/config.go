package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/grab/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change grab settings",
	Long: `Show the settings file location and current values. Subcommands change
individual settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path, err := config.Path()
		if err != nil {
			return err
		}

		basePath := cfg.BasePath
		if basePath == "" {
			basePath = "(working directory)"
		}

		fmt.Fprintf(cmd.OutOrStdout(), "file:      %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "base_path: %s\n", basePath)

		return nil
	},
}

var configSetBasePathCmd = &cobra.Command{
	Use:   "set-base-path <directory>",
	Short: "Set the default base directory for the clone tree",
	Long: `Store the base directory new clones go under. The value is kept as given,
so ~ still expands at use time on whatever machine reads it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cfg.BasePath = args[0]

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "base_path set to %s\n", args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetBasePathCmd)
}
