package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inovacc/grab/internal/backend"
	"github.com/inovacc/grab/internal/core"
	"github.com/inovacc/grab/internal/giturl"
	"github.com/inovacc/grab/internal/store"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <repository-url>",
	Short: "Clone a repository into the tree",
	Long: `Clone a Git repository into <base>/<host>/<owner>/<project>, creating the
host and owner directories first.

The base directory is taken from --base-path, then from the base_path
setting, then from the current working directory. With --dry-run every step
is printed instead of executed and nothing on disk is touched.

Successful clones are remembered in the registry (see 'grab history')
unless --no-save is given.

Examples:
  grab clone https://github.com/libjpeg-turbo/libjpeg-turbo.git
  grab clone -b ~/src https://gitlab.com/inkscape/inkscape.git
  grab clone --dry-run https://github.com/golang/go`,
	Args: cobra.ExactArgs(1),
	RunE: runClone,
}

func runClone(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	baseFlag, _ := cmd.Flags().GetString("base-path")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	confirm, _ := cmd.Flags().GetBool("confirm")
	noSave, _ := cmd.Flags().GetBool("no-save")

	basePath, err := resolveBasePath(baseFlag)
	if err != nil {
		return err
	}

	var b backend.Backend
	if dryRun {
		d := backend.NewDryRun()
		d.Out = cmd.OutOrStdout()
		b = d
	} else {
		s := backend.NewSystem()
		s.Stdout = cmd.OutOrStdout()
		s.Stderr = cmd.ErrOrStderr()
		s.Confirm = confirm
		b = s
	}

	if err := core.NewCloner(b).Run(cmd.Context(), rawURL, basePath); err != nil {
		return err
	}

	if dryRun || noSave {
		return nil
	}

	if err := recordClone(rawURL, basePath); err != nil {
		// The clone itself succeeded; a registry problem is not fatal.
		slog.Warn("failed to record clone",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// recordClone remembers a finished clone in the registry.
func recordClone(rawURL, basePath string) error {
	loc, err := giturl.Resolve(rawURL)
	if err != nil {
		return err
	}

	reg, err := store.OpenDefault()
	if err != nil {
		return err
	}
	defer func() { _ = reg.Close() }()

	return reg.Save(loc, rawURL, loc.Dir(basePath))
}

func init() {
	rootCmd.AddCommand(cloneCmd)
	addBasePathFlag(cloneCmd.Flags())
	cloneCmd.Flags().Bool("dry-run", false, "Print the steps without executing them")
	cloneCmd.Flags().Bool("confirm", false, "Ask before spawning git (interactive sessions only)")
	cloneCmd.Flags().Bool("no-save", false, "Skip recording the clone in the registry")
}
