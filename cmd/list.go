package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inovacc/grab/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the clones present under the base directory",
	Long: `Scan the base directory for repositories laid out as host/owner/project
and list the ones that contain a git clone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseFlag, _ := cmd.Flags().GetString("base-path")
		fullPath, _ := cmd.Flags().GetBool("full-path")

		basePath, err := resolveBasePath(baseFlag)
		if err != nil {
			return err
		}

		entries, err := core.Walk(basePath)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No clones found.")
			fmt.Fprintln(cmd.OutOrStdout(), "Create one with: grab clone <repository-url>")

			return nil
		}

		for _, entry := range entries {
			if fullPath {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
				continue
			}
			loc := entry.Location
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(loc.Host, loc.Owner, loc.Project))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addBasePathFlag(listCmd.Flags())
	listCmd.Flags().BoolP("full-path", "p", false, "Print absolute paths instead of host/owner/project")
}
