package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/grab/internal/giturl"
)

func openTestRegistry(t *testing.T) (*Registry, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "registry.db")
	reg, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })

	return reg, path
}

func TestRegistrySaveAndAll(t *testing.T) {
	reg, _ := openTestRegistry(t)

	first := giturl.Location{Host: "github.com", Owner: "author", Project: "project"}
	second := giturl.Location{Host: "gitlab.com", Owner: "team", Project: "tool"}

	require.NoError(t, reg.Save(first, "https://github.com/author/project.git", "/src/github.com/author/project"))
	require.NoError(t, reg.Save(second, "https://gitlab.com/team/tool.git", "/src/gitlab.com/team/tool"))

	records, err := reg.All()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Bucket iteration is ordered by key, so the github URL comes first.
	assert.Equal(t, "https://github.com/author/project.git", records[0].URL)
	assert.Equal(t, "github.com", records[0].Host)
	assert.Equal(t, "author", records[0].Owner)
	assert.Equal(t, "project", records[0].Project)
	assert.Equal(t, "/src/github.com/author/project", records[0].Path)
	assert.NotEmpty(t, records[0].UID)
	assert.False(t, records[0].ClonedAt.IsZero())

	assert.Equal(t, "https://gitlab.com/team/tool.git", records[1].URL)
}

func TestRegistrySaveDuplicateURL(t *testing.T) {
	reg, _ := openTestRegistry(t)
	loc := giturl.Location{Host: "github.com", Owner: "author", Project: "project"}

	require.NoError(t, reg.Save(loc, "https://github.com/author/project.git", "/first/path"))
	require.NoError(t, reg.Save(loc, "https://github.com/author/project.git", "/second/path"))

	records, err := reg.All()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/first/path", records[0].Path)
}

func TestRegistrySaveDuplicatePath(t *testing.T) {
	reg, _ := openTestRegistry(t)
	loc := giturl.Location{Host: "github.com", Owner: "author", Project: "project"}

	require.NoError(t, reg.Save(loc, "https://github.com/author/project.git", "/same/path"))
	require.NoError(t, reg.Save(loc, "ssh://git@github.com/author/project.git", "/same/path"))

	records, err := reg.All()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://github.com/author/project.git", records[0].URL)
}

func TestRegistrySaveEmptyURL(t *testing.T) {
	reg, _ := openTestRegistry(t)

	err := reg.Save(giturl.Location{}, "", "/some/path")
	assert.Error(t, err)
}

func TestRegistryPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")

	reg, err := Open(path)
	require.NoError(t, err)
	loc := giturl.Location{Host: "github.com", Owner: "author", Project: "project"}
	require.NoError(t, reg.Save(loc, "https://github.com/author/project.git", "/src/project"))
	require.NoError(t, reg.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	records, err := reopened.All()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
