package preview

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/widget/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xfmoulet/qoi"
)

func sheet(name string, w, h int) Sheet {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return Sheet{Name: name, Image: img}
}

func TestViewerPaging(t *testing.T) {
	v := New(material.NewTheme(), []Sheet{sheet("a", 4, 6), sheet("b", 4, 6), sheet("c", 4, 6)})
	assert.Equal(t, 0, v.Current())
	assert.Equal(t, "Sheet 1/3: a", v.Title())

	v.Next()
	v.Next()
	assert.Equal(t, "Sheet 3/3: c", v.Title())
	v.Next()
	assert.Equal(t, 0, v.Current())
	v.Prev()
	assert.Equal(t, 2, v.Current())
}

func TestViewerEmpty(t *testing.T) {
	v := New(material.NewTheme(), nil)
	v.Next()
	v.Prev()
	assert.Equal(t, 0, v.Current())
	assert.Equal(t, "No sheets", v.Title())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, s := range []Sheet{sheet("cube-2", 3, 5), sheet("cube-1", 8, 2)} {
		f, err := os.Create(filepath.Join(dir, s.Name+".qoi"))
		require.NoError(t, err)
		require.NoError(t, qoi.Encode(f, s.Image))
		require.NoError(t, f.Close())
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cube-1.svg"), []byte("<svg/>"), 0644))

	sheets, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "cube-1", sheets[0].Name)
	assert.Equal(t, image.Pt(8, 2), sheets[0].Image.Bounds().Size())
	assert.Equal(t, "cube-2", sheets[1].Name)
}
