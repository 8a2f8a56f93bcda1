package packager

import (
	"archive/zip"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "cube-1.svg")
	require.NoError(t, os.WriteFile(sheet, []byte("<svg/>"), 0644))

	generated := map[string][]byte{
		"cube-front.svg": []byte("<svg>front</svg>"),
	}

	path, err := Bundle(BundleConfig{
		Name:      "cube",
		OutputDir: filepath.Join(dir, "out"),
		Files:     []string{sheet},
		Generated: maps.All(generated),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "cube.zip"), path)

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	contents := map[string]string{}
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		contents[f.Name] = string(data)
	}

	assert.Equal(t, []string{"cube-1.svg", "cube-front.svg"}, slices.Sorted(maps.Keys(contents)))
	assert.Equal(t, "<svg/>", contents["cube-1.svg"])
	assert.Equal(t, "<svg>front</svg>", contents["cube-front.svg"])
}

func TestBundleMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Bundle(BundleConfig{
		Name:      "broken",
		OutputDir: dir,
		Files:     []string{filepath.Join(dir, "missing.svg")},
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBundleEntriesShareHeaders(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "cube-1.svg")
	require.NoError(t, os.WriteFile(sheet, []byte("<svg/>"), 0755))
	modified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(sheet, modified, modified))

	path, err := Bundle(BundleConfig{
		Name:      "cube",
		OutputDir: dir,
		Files:     []string{sheet},
		Generated: maps.All(map[string][]byte{"notes.txt": []byte("hello")}),
	})
	require.NoError(t, err)

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 2)
	for _, f := range r.File {
		assert.Equal(t, zip.Deflate, f.Method, f.Name)
		assert.Equal(t, os.FileMode(0644), f.Mode().Perm(), f.Name)
	}
	assert.True(t, r.File[0].Modified.Equal(modified), "file entry keeps its modification time")
}
