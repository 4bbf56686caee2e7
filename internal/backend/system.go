package backend

import (
	"context"
	"fmt"
	"io"
	"os"

	shellescape "al.essio.dev/pkg/shellescape"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/inovacc/grab/internal/git"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// System is the live backend: directories are created on disk and the clone
// runs as a real git child process.
type System struct {
	Git     *git.Client
	Stdout  io.Writer
	Stderr  io.Writer
	Confirm bool // Ask before spawning git (interactive sessions only)
}

var _ Backend = (*System)(nil)

// NewSystem creates a live backend wired to the process stdio.
func NewSystem() *System {
	return &System{
		Git:    git.NewClient(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (s *System) EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Clone echoes the command line it is about to run, optionally asks for
// confirmation, then hands off to git.
func (s *System) Clone(ctx context.Context, cloneURL, targetPath string) error {
	cmdline := shellescape.QuoteCommand([]string{"git", "clone", cloneURL, targetPath})
	fmt.Fprintln(s.Stderr, cmdline)

	if s.Confirm && term.IsTerminal(int(os.Stdin.Fd())) {
		var proceed bool
		confirm := huh.NewConfirm().
			Title("Run this command?").
			Description(cmdline).
			Affirmative("Yes").
			Negative("No").
			Value(&proceed)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			return err
		}
		if !proceed {
			return ErrCancelled
		}
	}

	return s.Git.Clone(ctx, cloneURL, targetPath)
}

func (s *System) AnnounceNavigation(targetPath string) {
	fmt.Fprintln(s.Stdout, pathStyle.Render(shellescape.QuoteCommand([]string{"cd", targetPath})))
}

func (s *System) ReportOutcome() {
	fmt.Fprintln(s.Stdout, successStyle.Render("Repository cloned successfully."))
}
