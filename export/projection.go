package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// projectionMargin surrounds projections, in millimeters.
const projectionMargin = 10

// View is an orthographic view of the model.
type View int

const (
	ViewFront View = iota
	ViewTop
	ViewSide
)

// Views lists every view in the order they are written.
var Views = []View{ViewFront, ViewTop, ViewSide}

func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewTop:
		return "top"
	case ViewSide:
		return "side"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// axes returns the horizontal and vertical axis of the view plane.
func (v View) axes() (mgl64.Vec3, mgl64.Vec3) {
	switch v {
	case ViewTop:
		return mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	case ViewSide:
		return mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}
	default:
		return mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}
	}
}

// WriteProjection draws the facets of pool, which should still be folded, as
// seen from view. Facets closer to the viewer are painted over farther ones.
func WriteProjection(w io.Writer, pool *mesh.Pool, view View, opts Options) error {
	ax1, ax2 := view.axes()
	b := pool.ProjectedBounds(ax1, ax2)
	s := opts.scale()

	width := b.Width() + 2*projectionMargin
	height := b.Height() + 2*projectionMargin
	minX, maxY := b.XMin, b.YMax

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.StartviewUnit(round(width), round(height), "mm", 0, 0, round(width*s), round(height*s))
	canvas.Title(fmt.Sprintf("%s view", view))
	canvas.Gstyle(fmt.Sprintf("fill:white;stroke:black;stroke-width:%d;stroke-linejoin:round", max(1, round(0.2*s))))
	for _, id := range mesh.ProjectionOrder(pool, ax1, ax2) {
		f := pool.Facet(id)
		vs := f.Vertices()
		xs := make([]int, len(vs))
		ys := make([]int, len(vs))
		for i, v := range vs {
			u, t := mesh.Project(v, ax1, ax2)
			xs[i] = round((u - minX + projectionMargin) * s)
			ys[i] = round((maxY - t + projectionMargin) * s)
		}
		canvas.Polygon(xs, ys)
	}
	canvas.Gend()
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s view: %w", view, err)
	}
	return nil
}

// WriteProjections writes every view of pool into dir.
func WriteProjections(dir, name string, pool *mesh.Pool, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(Views))
	for _, view := range Views {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.svg", name, view))
		if err := writeFile(path, func(w io.Writer) error {
			return WriteProjection(w, pool, view, opts)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
