package export

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/packing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xfmoulet/qoi"
)

// cubeCorner is a tetrahedron with 50 mm legs.
func cubeCorner() []mesh.Triangle {
	o := geom.NewVertex(0, 0, 0)
	x := geom.NewVertex(50, 0, 0)
	y := geom.NewVertex(0, 50, 0)
	z := geom.NewVertex(0, 0, 50)
	return []mesh.Triangle{
		mesh.NewTriangle(o, y, x, geom.Direction(0, 0, -1)),
		mesh.NewTriangle(o, x, z, geom.Direction(0, -1, 0)),
		mesh.NewTriangle(o, z, y, geom.Direction(-1, 0, 0)),
		mesh.NewTriangle(x, y, z, geom.Direction(1, 1, 1)),
	}
}

func packedSheet(t *testing.T) (*mesh.Pool, []*packing.Bin) {
	t.Helper()
	pool, err := mesh.NewPool(cubeCorner(), geom.DefaultTolerances())
	require.NoError(t, err)
	pool.Link()
	pool.AlignRoot()
	pool.Unfold(mesh.Unlimited)
	islands := pool.Slice()
	require.Len(t, islands, 1)

	boxes := make([]packing.Box, 0, len(islands))
	for _, island := range islands {
		boxes = append(boxes, packing.NewBox(island.Root, island.Bounds))
	}
	a4, err := packing.ISOA(4)
	require.NoError(t, err)
	bins, err := packing.Pack(boxes, a4)
	require.NoError(t, err)
	require.Len(t, bins, 1)
	return pool, bins
}

func TestPlacement(t *testing.T) {
	box := packing.Box{Width: 30, Height: 10, X: 5, Y: 7}
	p := placement(box).Apply(geom.NewVertex(30, 10, 0))
	assert.InDelta(t, 35, p.X(), 1e-9)
	assert.InDelta(t, 17, p.Y(), 1e-9)

	box.Rotated = true
	tests := []struct {
		u, v, x, y float64
	}{
		{0, 0, 5, 37},
		{30, 0, 5, 7},
		{0, 10, 15, 37},
		{30, 10, 15, 7},
	}
	m := placement(box)
	for _, tt := range tests {
		p := m.Apply(geom.NewVertex(tt.u, tt.v, 0))
		assert.InDelta(t, tt.x, p.X(), 1e-9, "x of (%v, %v)", tt.u, tt.v)
		assert.InDelta(t, tt.y, p.Y(), 1e-9, "y of (%v, %v)", tt.u, tt.v)
	}
}

func TestWriteSheet(t *testing.T) {
	pool, bins := packedSheet(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, pool, bins[0], Options{Resolution: 1}))
	out := buf.String()

	assert.Contains(t, out, `width="210mm"`)
	assert.Contains(t, out, `height="297mm"`)
	assert.Contains(t, out, `viewBox="0 0 21000 29700"`)
	// six perimeter edges and three folds, each fold drawn once
	assert.Equal(t, 9, strings.Count(out, "<line"))
	assert.NotContains(t, out, "<rect")
}

func TestWriteSheetDebug(t *testing.T) {
	pool, bins := packedSheet(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, pool, bins[0], Options{Resolution: 1, Debug: true}))
	out := buf.String()

	assert.Equal(t, len(bins[0].Boxes), strings.Count(out, "<rect"))
	assert.Equal(t, len(bins[0].Corners), strings.Count(out, "<circle"))
}

func TestSegmentsStayOnSheet(t *testing.T) {
	pool, bins := packedSheet(t)
	f := bins[0].Format
	for _, s := range sheetSegments(pool, bins[0]) {
		for _, p := range [][2]float64{{s.x1, s.y1}, {s.x2, s.y2}} {
			assert.GreaterOrEqual(t, p[0], -1e-6)
			assert.GreaterOrEqual(t, p[1], -1e-6)
			assert.LessOrEqual(t, p[0], f.Width+1e-6)
			assert.LessOrEqual(t, p[1], f.Height+1e-6)
		}
	}
}

func TestRasterize(t *testing.T) {
	pool, bins := packedSheet(t)
	img := Rasterize(pool, bins[0], Options{Resolution: 1})
	assert.Equal(t, 210*pixelsPerMM, img.Bounds().Dx())
	assert.Equal(t, 297*pixelsPerMM, img.Bounds().Dy())

	white := color.RGBAModel.Convert(paper)
	inked := 0
	for y := range img.Bounds().Dy() {
		for x := range img.Bounds().Dx() {
			if img.At(x, y) != white {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
}

func TestWriteRaster(t *testing.T) {
	pool, bins := packedSheet(t)

	var buf bytes.Buffer
	require.NoError(t, WriteRaster(&buf, pool, bins[0], Options{Resolution: 0.5}))
	img, err := qoi.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 420, img.Bounds().Dx())
	assert.Equal(t, 594, img.Bounds().Dy())
}

func TestWriteProjection(t *testing.T) {
	pool, err := mesh.NewPool(cubeCorner(), geom.DefaultTolerances())
	require.NoError(t, err)

	for _, view := range Views {
		var buf bytes.Buffer
		require.NoError(t, WriteProjection(&buf, pool, view, Options{Resolution: 1}))
		out := buf.String()
		assert.Equal(t, 4, strings.Count(out, "<polygon"), view.String())
		// 50 mm model plus two 10 mm margins
		assert.Contains(t, out, `width="70mm"`, view.String())
	}
}

func TestWriteSheetsNamesFiles(t *testing.T) {
	pool, bins := packedSheet(t)
	dir := t.TempDir()

	paths, err := WriteSheets(dir, "corner", pool, bins, Options{Resolution: 1})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "corner-1.svg"))
}
