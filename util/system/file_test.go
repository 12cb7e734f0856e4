package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("contents"), 0644))
	return path
}

func TestDoesFileExist(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "some.cfg")

	assert.True(t, DoesFileExist(path))
	assert.False(t, DoesFileExist(filepath.Join(dir, "missing.cfg")))
	assert.False(t, DoesFileExist(dir), "a directory is not a file")
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "some.cfg")

	resolved, err := ResolveFile(dir, "some.cfg", true)
	assert.NoError(t, err)
	assert.Equal(t, path, resolved)

	resolved, err = ResolveFile("/elsewhere", path, true)
	assert.NoError(t, err)
	assert.Equal(t, path, resolved, "absolute paths ignore the base dir")

	_, err = ResolveFile(dir, "missing.cfg", true)
	assert.Error(t, err)

	_, err = ResolveFile(dir, "missing.cfg", false)
	assert.NoError(t, err)

	_, err = ResolveFile(dir, "", false)
	assert.Error(t, err)
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()

	resolved, err := ResolveDirectory(dir, ".", true)
	assert.NoError(t, err)
	assert.Equal(t, dir, resolved)

	_, err = ResolveDirectory(dir, "missing-subdir", true)
	assert.Error(t, err)

	resolved, err = ResolveDirectory(dir, "missing-subdir", false)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "missing-subdir"), resolved)
}

func TestFindFileUpwards(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, "default.cfg")
	nestedDir := filepath.Join(rootDir, "util", "setup")
	require.NoError(t, os.MkdirAll(nestedDir, 0755))

	foundDir, err := FindFileUpwards(nestedDir, "default.cfg")
	assert.NoError(t, err)
	assert.Equal(t, rootDir, foundDir)

	_, err = FindFileUpwards(nestedDir, "no-such-file.cfg")
	assert.Error(t, err)
}

func TestEnsureDirExist(t *testing.T) {
	dir := t.TempDir()
	subdir := filepath.Join(dir, "a", "b")

	assert.NoError(t, EnsureDirExist(subdir))
	assert.True(t, DoesDirExist(subdir))
	assert.NoError(t, EnsureDirExist(subdir), "existing dir is fine")
}
