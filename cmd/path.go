package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/grab/internal/giturl"
)

var pathCmd = &cobra.Command{
	Use:   "path <repository-url>",
	Short: "Print where a repository URL would be cloned",
	Long: `Resolve a repository URL and print the destination directory it maps to,
without cloning anything or touching the filesystem.

Examples:
  grab path https://github.com/golang/go
  cd "$(grab path -b ~/src https://github.com/golang/go)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseFlag, _ := cmd.Flags().GetString("base-path")

		basePath, err := resolveBasePath(baseFlag)
		if err != nil {
			return err
		}

		loc, err := giturl.Resolve(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), loc.Dir(basePath))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
	addBasePathFlag(pathCmd.Flags())
}
