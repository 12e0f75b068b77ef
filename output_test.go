package unslpk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFolder(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "pkg.slpk")
	require.NoError(t, os.WriteFile(archive, []byte("package"), 0666))

	folder, err := outputFolder(archive)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pkg"), folder)

	fi, err := os.Stat(folder)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestOutputFolderRemovesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(filepath.Join(stale, "old"), 0777))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "old", "data"), []byte("stale"), 0666))

	folder, err := outputFolder(filepath.Join(dir, "pkg.slpk"))
	require.NoError(t, err)
	require.Equal(t, stale, folder)

	entries, err := os.ReadDir(folder)
	require.NoError(t, err)
	assert.Empty(t, entries, "output folder not empty after resolution")
}

func TestOutputFolderOccupiedByFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg"), []byte("unrelated"), 0666))

	_, err := outputFolder(filepath.Join(dir, "pkg.slpk"))
	require.ErrorIs(t, err, ErrOutputIsFile)
}

func TestOutputFolderNoExtension(t *testing.T) {
	_, err := outputFolder(filepath.Join(t.TempDir(), "pkg"))
	require.ErrorIs(t, err, ErrNoExtension)

	// A dotfile's "extension" is its whole name, leaving no stem.
	_, err = outputFolder(filepath.Join(t.TempDir(), ".slpk"))
	require.ErrorIs(t, err, ErrNoExtension)
}
