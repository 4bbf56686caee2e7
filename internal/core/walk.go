package core

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inovacc/grab/internal/giturl"
)

// Entry is one clone found in the tree.
type Entry struct {
	Location giturl.Location
	Path     string
}

// Walk scans base for directories laid out as host/owner/project and
// returns the ones holding a git clone, in lexical order. A missing base
// yields an empty result, not an error.
func Walk(base string) ([]Entry, error) {
	hosts, err := subdirs(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, host := range hosts {
		owners, err := subdirs(filepath.Join(base, host))
		if err != nil {
			return nil, err
		}
		for _, owner := range owners {
			projects, err := subdirs(filepath.Join(base, host, owner))
			if err != nil {
				return nil, err
			}
			for _, project := range projects {
				path := filepath.Join(base, host, owner, project)
				if !isClone(path) {
					continue
				}
				entries = append(entries, Entry{
					Location: giturl.Location{Host: host, Owner: owner, Project: project},
					Path:     path,
				})
			}
		}
	}

	return entries, nil
}

// subdirs lists the names of the directories directly under path.
func subdirs(path string) ([]string, error) {
	items, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, item := range items {
		if item.IsDir() {
			names = append(names, item.Name())
		}
	}

	return names, nil
}

// isClone reports whether dir contains a .git directory.
func isClone(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
