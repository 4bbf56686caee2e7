// Package backend abstracts the side effects of a clone run so the same
// orchestration can either execute them or merely describe them.
package backend

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the user declines the confirmation prompt.
var ErrCancelled = errors.New("cancelled")

// Backend performs the observable steps of a clone run in order: directory
// preparation, the clone itself, then the user-facing wrap-up.
type Backend interface {
	// EnsureDir creates path and any missing parents.
	EnsureDir(path string) error

	// Clone fetches cloneURL into targetPath and blocks until done.
	Clone(ctx context.Context, cloneURL, targetPath string) error

	// AnnounceNavigation tells the user where the clone landed. A child
	// process cannot change its parent shell's directory, so this only
	// prints the cd command to run.
	AnnounceNavigation(targetPath string)

	// ReportOutcome prints the closing success message.
	ReportOutcome()
}
