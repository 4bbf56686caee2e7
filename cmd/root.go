package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/grab/internal/application"
	"github.com/inovacc/grab/internal/git"
)

// version is set at build time via -ldflags "-X github.com/inovacc/grab/cmd.version=..."
var version = "dev"

var (
	logLevelFlag string
	logJSONFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Clone Git repositories into a tidy host/owner/project tree",
	Long: `Grab clones Git repositories into a directory layout derived from the
repository URL:

  <base>/<host>/<owner>/<project>

so clones from different hosting services never collide and any repository
has exactly one place on disk. The clone itself is delegated to the git
command-line tool.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(logLevelFlag, logJSONFlag)
	},
}

// Execute runs the root command and translates failures into the process
// exit code. A failed git child process keeps its own exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		code := git.GetExitCode(err)
		if code <= 0 {
			code = 1
		}
		os.Exit(code)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// setupLogger points the default slog logger at stderr with the level and
// format selected by the global flags.
func setupLogger(level string, jsonOutput bool) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&logJSONFlag, "log-json", false, "Emit logs as JSON instead of text")
}
