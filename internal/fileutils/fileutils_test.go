package fileutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent.
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestSaveReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploads", "statement.pdf")

	require.NoError(t, SaveReader(path, bytes.NewBufferString("%PDF-1.5 content")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.5 content", string(data))

	// Overwrites existing content.
	require.NoError(t, SaveReader(path, bytes.NewBufferString("new")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
