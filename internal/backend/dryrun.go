package backend

import (
	"context"
	"fmt"
	"io"
	"os"

	shellescape "al.essio.dev/pkg/shellescape"
)

const dryRunPrefix = "DRY RUN: "

// DryRun prints each step instead of performing it. Nothing on disk is
// touched and no process is spawned, so every step reports success.
type DryRun struct {
	Out io.Writer
}

var _ Backend = (*DryRun)(nil)

// NewDryRun creates a simulation backend writing to stdout.
func NewDryRun() *DryRun {
	return &DryRun{Out: os.Stdout}
}

func (d *DryRun) EnsureDir(path string) error {
	d.describe(shellescape.QuoteCommand([]string{"mkdir", "-p", path}))
	return nil
}

func (d *DryRun) Clone(_ context.Context, cloneURL, targetPath string) error {
	d.describe(shellescape.QuoteCommand([]string{"git", "clone", cloneURL, targetPath}))
	return nil
}

func (d *DryRun) AnnounceNavigation(targetPath string) {
	d.describe(shellescape.QuoteCommand([]string{"cd", targetPath}))
}

func (d *DryRun) ReportOutcome() {
	d.describe("Repository cloned successfully.")
}

func (d *DryRun) describe(line string) {
	fmt.Fprintln(d.Out, dryRunPrefix+line)
}
