package git

import (
	"errors"
	"fmt"
	"os/exec"
)

// GitError represents a git command error
type GitError struct {
	ExitCode int
	err      error
}

// NewGitError wraps an exec failure, keeping the child's exit code when it
// ran to completion and -1 when it never started.
func NewGitError(err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		err:      err,
	}
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git command failed: %v", e.err)
}

func (e *GitError) Unwrap() error {
	return e.err
}

// GetExitCode returns the exit code from a git error, 0 for nil, or -1 if
// not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
