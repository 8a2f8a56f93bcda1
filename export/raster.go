package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/packing"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/vector"
)

// pixelsPerMM is the raster density at resolution 1, about 100 dpi.
const pixelsPerMM = 4

var paper = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Rasterize renders the sheet of bin onto a white image.
func Rasterize(pool *mesh.Pool, bin *packing.Bin, opts Options) *image.RGBA {
	ppm := pixelsPerMM * opts.scale() / unitsPerMM
	w := max(1, int(math.Ceil(bin.Format.Width*ppm)))
	h := max(1, int(math.Ceil(bin.Format.Height*ppm)))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	segments := sheetSegments(pool, bin)
	for _, style := range []mesh.EdgeStyle{mesh.StyleInner, mesh.StylePerimeter, mesh.StyleCut} {
		ls := lineStyles[style]
		z := vector.NewRasterizer(w, h)
		half := max(0.5, ls.widthM*ppm/2)
		n := 0
		for _, seg := range segments {
			if seg.style != style {
				continue
			}
			strokeLine(z,
				seg.x1*ppm, (bin.Format.Height-seg.y1)*ppm,
				seg.x2*ppm, (bin.Format.Height-seg.y2)*ppm,
				half)
			n++
		}
		if n == 0 {
			continue
		}
		z.Draw(img, img.Bounds(), image.NewUniform(ls.color), image.Point{})
	}
	return img
}

// strokeLine adds the outline of a line with half width hw to z.
func strokeLine(z *vector.Rasterizer, x1, y1, x2, y2, hw float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// normal and tangent offsets, the tangent one squares the line ends
	nx, ny := -dy/l*hw, dx/l*hw
	tx, ty := dx/l*hw, dy/l*hw
	z.MoveTo(float32(x1-tx+nx), float32(y1-ty+ny))
	z.LineTo(float32(x2+tx+nx), float32(y2+ty+ny))
	z.LineTo(float32(x2+tx-nx), float32(y2+ty-ny))
	z.LineTo(float32(x1-tx-nx), float32(y1-ty-ny))
	z.ClosePath()
}

// WriteRaster encodes the rasterized sheet of bin as QOI.
func WriteRaster(w io.Writer, pool *mesh.Pool, bin *packing.Bin, opts Options) error {
	if err := qoi.Encode(w, Rasterize(pool, bin, opts)); err != nil {
		return fmt.Errorf("encoding sheet %d: %w", bin.ID, err)
	}
	return nil
}

// WriteRasters writes one QOI file per bin into dir.
func WriteRasters(dir, name string, pool *mesh.Pool, bins []*packing.Bin, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(bins))
	for _, bin := range bins {
		path := filepath.Join(dir, SheetName(name, bin)+".qoi")
		if err := writeFile(path, func(w io.Writer) error {
			return WriteRaster(w, pool, bin, opts)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
