package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/grab/internal/giturl"
	"github.com/inovacc/grab/internal/store"
)

func TestCloneDryRun(t *testing.T) {
	base := t.TempDir()
	t.Cleanup(func() { _ = cloneCmd.Flags().Set("dry-run", "false") })

	stdout, _, err := executeCommand(t, "clone", "--dry-run", "-b", base, "https://github.com/author/project.git")
	if err != nil {
		t.Fatalf("clone --dry-run failed: %v", err)
	}

	ownerDir := filepath.Join(base, "github.com", "author")
	targetDir := filepath.Join(ownerDir, "project")

	want := strings.Join([]string{
		"DRY RUN: mkdir -p " + ownerDir,
		"DRY RUN: git clone https://github.com/author/project.git " + targetDir,
		"DRY RUN: cd " + targetDir,
		"DRY RUN: Repository cloned successfully.",
		"",
	}, "\n")
	if stdout != want {
		t.Errorf("clone --dry-run output = %q, want %q", stdout, want)
	}

	left, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("os.ReadDir(%q) failed: %v", base, err)
	}
	if len(left) != 0 {
		t.Errorf("dry run touched the base directory: %v", left)
	}
}

func TestCloneResolveFailure(t *testing.T) {
	base := t.TempDir()
	t.Cleanup(func() { _ = cloneCmd.Flags().Set("dry-run", "false") })

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "scp shorthand",
			input:    "git@github.com:author/project.git",
			expected: giturl.ErrMalformedURL,
		},
		{
			name:     "path only",
			input:    "/author/project",
			expected: giturl.ErrMissingHost,
		},
		{
			name:     "owner without project",
			input:    "https://github.com/author",
			expected: giturl.ErrMissingPathSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "clone", "--dry-run", "-b", base, tt.input)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("clone(%q) error = %v, want %v", tt.input, err, tt.expected)
			}
			if stdout != "" {
				t.Errorf("clone(%q) printed %q before failing", tt.input, stdout)
			}
		})
	}
}

func TestCloneRequiresURL(t *testing.T) {
	_, _, err := executeCommand(t, "clone")
	if err == nil {
		t.Fatal("expected an error when no repository URL is given")
	}
}

func TestRecordClone(t *testing.T) {
	project := fmt.Sprintf("run-%d", time.Now().UnixNano())
	rawURL := fmt.Sprintf("https://github.com/recorded/%s.git", project)

	if err := recordClone(rawURL, "/srv/code"); err != nil {
		t.Fatalf("recordClone() failed: %v", err)
	}

	reg, err := store.OpenDefault()
	if err != nil {
		t.Fatalf("store.OpenDefault() failed: %v", err)
	}
	defer func() { _ = reg.Close() }()

	records, err := reg.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}

	wantPath := filepath.Join("/srv/code", "github.com", "recorded", project)
	for _, rec := range records {
		if rec.URL != rawURL {
			continue
		}
		if rec.Path != wantPath {
			t.Errorf("recorded path = %q, want %q", rec.Path, wantPath)
		}
		if rec.Project != project {
			t.Errorf("recorded project = %q, want %q", rec.Project, project)
		}

		return
	}

	t.Errorf("recordClone() left no record for %q", rawURL)
}
