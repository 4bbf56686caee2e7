package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/inovacc/grab/internal/config"
)

// addBasePathFlag registers the shared base directory flag on a flag set.
func addBasePathFlag(fs *pflag.FlagSet) {
	fs.StringP("base-path", "b", "", "Base directory of the clone tree (default: base_path setting, then the working directory)")
}

// resolveBasePath picks the base directory for a run: the flag wins, then
// the base_path setting, then the current working directory.
func resolveBasePath(flagValue string) (string, error) {
	base := flagValue

	if base == "" {
		cfg, err := config.Load()
		if err != nil {
			return "", err
		}
		base = cfg.BasePath
	}

	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}

		return wd, nil
	}

	return expandPath(base)
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// formatTimeSince renders how long ago t was, in the largest round unit.
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
