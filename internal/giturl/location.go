package giturl

import (
	"fmt"
	"path/filepath"
)

// Location identifies a repository by where it lives: the hosting service,
// the account that owns it, and the project name.
type Location struct {
	Host    string
	Owner   string
	Project string
}

// FullName returns the "owner/project" string
func (l Location) FullName() string {
	return fmt.Sprintf("%s/%s", l.Owner, l.Project)
}

// OwnerDir returns the directory grouping this owner's clones under base.
func (l Location) OwnerDir(base string) string {
	return filepath.Join(base, l.Host, l.Owner)
}

// Dir returns the directory a clone of this repository occupies under base.
func (l Location) Dir(base string) string {
	return filepath.Join(base, l.Host, l.Owner, l.Project)
}
