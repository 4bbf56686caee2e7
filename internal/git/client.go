// Package git shells out to the system git binary.
package git

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Client runs git subcommands as child processes.
type Client struct {
	GitPath string // Path to the git executable
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
}

// NewClient creates a client wired to the process stdio. When git is not on
// PATH the lookup failure surfaces on the first spawn instead.
func NewClient() *Client {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		gitPath = "git"
	}

	return &Client{
		GitPath: gitPath,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// Command creates a git command
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, c.GitPath, args...)
}

// Clone runs `git clone cloneURL targetPath` with stdio attached, so
// progress output and any authentication prompt reach the user directly.
// It blocks until git exits.
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath string) error {
	cmd := c.Command(ctx, "clone", cloneURL, targetPath)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	cmd.Stdin = c.Stdin

	if err := cmd.Run(); err != nil {
		return NewGitError(err)
	}

	return nil
}
