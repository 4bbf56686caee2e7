package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func makeCloneDir(t *testing.T, base, host, owner, project string) string {
	t.Helper()

	dir := filepath.Join(base, host, owner, project)
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("os.MkdirAll() failed: %v", err)
	}

	return dir
}

func TestListEmpty(t *testing.T) {
	base := t.TempDir()

	stdout, _, err := executeCommand(t, "list", "-b", base)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := "No clones found.\nCreate one with: grab clone <repository-url>\n"
	if stdout != want {
		t.Errorf("list output = %q, want %q", stdout, want)
	}
}

func TestList(t *testing.T) {
	base := t.TempDir()
	makeCloneDir(t, base, "github.com", "author", "project")
	makeCloneDir(t, base, "gitlab.com", "inkscape", "inkscape")

	// A project directory without .git is not a clone.
	if err := os.MkdirAll(filepath.Join(base, "github.com", "author", "scratch"), 0o755); err != nil {
		t.Fatalf("os.MkdirAll() failed: %v", err)
	}

	stdout, _, err := executeCommand(t, "list", "-b", base)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := "github.com/author/project\ngitlab.com/inkscape/inkscape\n"
	if stdout != want {
		t.Errorf("list output = %q, want %q", stdout, want)
	}
}

func TestListFullPath(t *testing.T) {
	base := t.TempDir()
	dir := makeCloneDir(t, base, "github.com", "author", "project")
	t.Cleanup(func() { _ = listCmd.Flags().Set("full-path", "false") })

	stdout, _, err := executeCommand(t, "list", "-b", base, "--full-path")
	if err != nil {
		t.Fatalf("list --full-path failed: %v", err)
	}

	if want := dir + "\n"; stdout != want {
		t.Errorf("list --full-path output = %q, want %q", stdout, want)
	}
}
