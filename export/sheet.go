package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/packing"
)

// WriteSheet draws the islands packed in bin as an SVG document sized to the
// paper format in millimeters.
func WriteSheet(w io.Writer, pool *mesh.Pool, bin *packing.Bin, opts Options) error {
	s := opts.scale()
	height := bin.Format.Height
	// sheet coordinates grow upwards, SVG coordinates downwards
	x := func(v float64) int { return round(v * s) }
	y := func(v float64) int { return round((height - v) * s) }

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.StartviewUnit(
		round(bin.Format.Width), round(bin.Format.Height), "mm",
		0, 0, x(bin.Format.Width), round(bin.Format.Height*s),
	)
	canvas.Title(fmt.Sprintf("sheet %d (%s)", bin.ID+1, bin.Format))

	segments := sheetSegments(pool, bin)
	for _, style := range []mesh.EdgeStyle{mesh.StyleInner, mesh.StylePerimeter, mesh.StyleCut} {
		ls := lineStyles[style]
		css := ls.css
		if style == mesh.StyleInner {
			css = fmt.Sprintf(css, round(2*s), round(s))
		}
		canvas.Gstyle(fmt.Sprintf("fill:none;stroke-width:%d;%s", max(1, round(ls.widthM*s)), css))
		for _, seg := range segments {
			if seg.style != style {
				continue
			}
			canvas.Line(x(seg.x1), y(seg.y1), x(seg.x2), y(seg.y2))
		}
		canvas.Gend()
	}

	canvas.Gstyle(fmt.Sprintf("fill:purple;font-family:sans-serif;font-size:%d;text-anchor:middle", round(3*s)))
	for _, seg := range segments {
		if seg.cut == mesh.NoCut {
			continue
		}
		canvas.Text(x((seg.x1+seg.x2)/2), y((seg.y1+seg.y2)/2), fmt.Sprintf("C%d", seg.cut))
	}
	canvas.Gend()

	if opts.Debug {
		writeDebug(canvas, bin, x, y, s)
	}

	canvas.End()
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing sheet %d: %w", bin.ID, err)
	}
	return nil
}

func writeDebug(canvas *svg.SVG, bin *packing.Bin, x, y func(float64) int, s float64) {
	canvas.Gstyle(fmt.Sprintf("fill:none;stroke:red;stroke-width:%d", max(1, round(0.1*s))))
	for _, box := range bin.Boxes {
		canvas.Rect(x(box.X), y(box.Y+box.PlacedHeight()), round(box.PlacedWidth()*s), round(box.PlacedHeight()*s))
	}
	canvas.Gend()

	canvas.Gstyle(fmt.Sprintf("fill:red;font-family:monospace;font-size:%d", round(4*s)))
	for _, box := range bin.Boxes {
		canvas.Text(x(box.X+1), y(box.Y+1), fmt.Sprintf("%d", box.ID))
	}
	canvas.Gend()

	for _, c := range bin.Corners {
		canvas.Circle(x(c.X), y(c.Y), round(s), "fill:"+cornerColors[c.Kind])
	}
}

// SheetName returns the file name of a sheet without extension.
func SheetName(name string, bin *packing.Bin) string {
	return fmt.Sprintf("%s-%d", name, bin.ID+1)
}

// WriteSheets writes one SVG file per bin into dir and returns the paths
// written.
func WriteSheets(dir, name string, pool *mesh.Pool, bins []*packing.Bin, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(bins))
	for _, bin := range bins {
		path := filepath.Join(dir, SheetName(name, bin)+".svg")
		if err := writeFile(path, func(w io.Writer) error {
			return WriteSheet(w, pool, bin, opts)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
