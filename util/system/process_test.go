package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward.pid")

	require.NoError(t, WritePidFile(path, 12345))

	pid, err := ReadPidFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 12345, pid)
}

func TestReadPidFileCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0644))

	_, err := ReadPidFile(path)
	assert.Error(t, err)
}

func TestIsProcessAlive(t *testing.T) {
	assert.True(t, IsProcessAlive(os.Getpid()))

	// outside the valid pid range on linux, cannot be alive
	const bogusPid = 1 << 30
	assert.False(t, IsProcessAlive(bogusPid))
}

func TestTerminatePidFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward.pid")

	assert.NoError(t, TerminatePidFile(path))
}

func TestTerminatePidFileStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward.pid")
	const bogusPid = 1 << 30
	require.NoError(t, WritePidFile(path, bogusPid))

	assert.NoError(t, TerminatePidFile(path))
	assert.False(t, DoesFileExist(path), "stale pid file is removed")
}

func TestTerminatePidFileCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward.pid")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	assert.NoError(t, TerminatePidFile(path))
	assert.False(t, DoesFileExist(path), "corrupted pid file is removed")
}
