package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/grab/internal/backend"
	"github.com/inovacc/grab/internal/giturl"
)

// Cloner drives one clone run against an injected backend.
type Cloner struct {
	Backend backend.Backend
	Logger  *slog.Logger
}

// NewCloner creates a cloner using the default logger.
func NewCloner(b backend.Backend) *Cloner {
	return &Cloner{Backend: b, Logger: slog.Default()}
}

// Run clones rawURL under basePath/host/owner/project. The base path is
// joined verbatim; callers decide how relative paths are anchored. When the
// URL does not resolve the backend is never invoked.
func (c *Cloner) Run(ctx context.Context, rawURL, basePath string) error {
	loc, err := giturl.Resolve(rawURL)
	if err != nil {
		return err
	}

	ownerDir := loc.OwnerDir(basePath)
	targetDir := loc.Dir(basePath)

	c.Logger.Debug("resolved repository",
		slog.String("host", loc.Host),
		slog.String("owner", loc.Owner),
		slog.String("project", loc.Project),
		slog.String("target", targetDir),
	)

	if err := c.Backend.EnsureDir(ownerDir); err != nil {
		return fmt.Errorf("create %s: %w", ownerDir, err)
	}

	if err := c.Backend.Clone(ctx, rawURL, targetDir); err != nil {
		return fmt.Errorf("clone %s: %w", rawURL, err)
	}

	c.Backend.AnnounceNavigation(targetDir)
	c.Backend.ReportOutcome()

	c.Logger.Info("repository cloned",
		slog.String("url", rawURL),
		slog.String("path", targetDir),
	)

	return nil
}
