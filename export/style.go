// Package export writes packed sheets and model projections as SVG and QOI
// files.
package export

import (
	"image/color"
	"math"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/packing"
)

// unitsPerMM is the number of SVG user units per millimeter at resolution 1.
const unitsPerMM = 100

// Options control how sheets are written.
type Options struct {
	// Resolution multiplies every coordinate of the written files.
	Resolution float64
	// Debug outlines every box and marks the corner candidates of each bin.
	Debug bool
}

func (o Options) scale() float64 {
	if o.Resolution <= 0 {
		return unitsPerMM
	}
	return unitsPerMM * o.Resolution
}

type lineStyle struct {
	css    string
	color  color.NRGBA
	widthM float64 // stroke width in millimeters
}

var lineStyles = map[mesh.EdgeStyle]lineStyle{
	mesh.StylePerimeter: {
		css:    "stroke:black;stroke-linecap:round",
		color:  color.NRGBA{A: 255},
		widthM: 0.3,
	},
	mesh.StyleInner: {
		css:    "stroke:gray;stroke-dasharray:%d,%d",
		color:  color.NRGBA{R: 150, G: 150, B: 150, A: 255},
		widthM: 0.15,
	},
	mesh.StyleCut: {
		css:    "stroke:purple;stroke-linecap:round",
		color:  color.NRGBA{R: 128, G: 0, B: 128, A: 255},
		widthM: 0.3,
	},
}

var cornerColors = map[packing.CornerKind]string{
	packing.CornerBottomRight: "blue",
	packing.CornerTopLeft:     "green",
	packing.CornerProjectedX:  "yellow",
	packing.CornerProjectedY:  "pink",
}

// placement maps the island of box, which starts at the origin, onto its
// position on the sheet. Rotated boxes are turned a quarter clockwise.
func placement(box packing.Box) geom.Transform {
	if !box.Rotated {
		return geom.Translation(box.X, box.Y, 0)
	}
	m := geom.Identity()
	m[0], m[1] = 0, -1
	m[4], m[5] = 1, 0
	return geom.Translation(box.X, box.Y+box.Width, 0).Mul(m)
}

// segment is one edge of the pattern in sheet millimeters.
type segment struct {
	x1, y1, x2, y2 float64
	style          mesh.EdgeStyle
	cut            int
}

// sheetSegments lists the edges to draw for a bin. Folds shared by two facets
// of the same island are only listed once, from the parent side.
func sheetSegments(pool *mesh.Pool, bin *packing.Bin) []segment {
	var out []segment
	for _, box := range bin.Boxes {
		m := placement(box)
		for _, id := range pool.IslandFacets(box.Root) {
			f := pool.Facet(id)
			for i, e := range f.Edges {
				style := f.EdgeStyle(i)
				if style == mesh.StyleInner && !e.Owned {
					continue
				}
				p1 := m.Apply(e.V1)
				p2 := m.Apply(e.V2)
				s := segment{x1: p1.X(), y1: p1.Y(), x2: p2.X(), y2: p2.Y(), style: style, cut: mesh.NoCut}
				if e.Cut {
					s.cut = e.CutNumber
				}
				out = append(out, s)
			}
		}
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
