package packing

import (
	"fmt"
	"math"

	"github.com/bloodmagesoftware/foldout/geom"
)

// boxTolerances drive the edge crossing test between boxes.
var boxTolerances = geom.Tolerances{OverlapMargin: 1e-3, Parallel: 1e-6}

// Box is the bounding rectangle of one island.
type Box struct {
	ID int
	// Root is the root facet of the island.
	Root int
	// Width and Height are the island size before rotation.
	Width, Height float64
	X, Y          float64
	// Rotated boxes are turned by a quarter turn on the sheet.
	Rotated bool
}

// NewBox builds the box of the island rooted at root.
func NewBox(root int, b geom.Bounds) Box {
	return Box{ID: -1, Root: root, Width: b.Width(), Height: b.Height()}
}

// PlacedWidth is the horizontal extent of the box on the sheet.
func (b Box) PlacedWidth() float64 {
	if b.Rotated {
		return b.Height
	}
	return b.Width
}

// PlacedHeight is the vertical extent of the box on the sheet.
func (b Box) PlacedHeight() float64 {
	if b.Rotated {
		return b.Width
	}
	return b.Height
}

func (b Box) Area() float64 {
	return b.Width * b.Height
}

func (b Box) Perimeter() float64 {
	return 2*b.Width + 2*b.Height
}

// Edge returns the sides of the box: bottom, right, top and left.
func (b Box) Edge(i int) geom.Edge {
	x1, y1 := b.X, b.Y
	x2, y2 := b.X+b.PlacedWidth(), b.Y+b.PlacedHeight()
	switch i {
	case 1:
		return geom.NewEdge(geom.NewVertex(x2, y1, 0), geom.NewVertex(x2, y2, 0))
	case 2:
		return geom.NewEdge(geom.NewVertex(x1, y2, 0), geom.NewVertex(x2, y2, 0))
	case 3:
		return geom.NewEdge(geom.NewVertex(x1, y1, 0), geom.NewVertex(x1, y2, 0))
	default:
		return geom.NewEdge(geom.NewVertex(x1, y1, 0), geom.NewVertex(x2, y1, 0))
	}
}

// Collides reports whether two placed boxes share interior area. Boxes that
// only touch along a side or at a corner do not collide.
func (b Box) Collides(other Box) bool {
	if b.contains(other) || other.contains(b) {
		return true
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if geom.Intersect(b.Edge(i), other.Edge(j), boxTolerances).Crosses(boxTolerances) {
				return true
			}
		}
	}
	// Crossing sides miss boxes stacked exactly on top of each other.
	return b.interiorOverlap(other)
}

func (b Box) contains(other Box) bool {
	return b.X <= other.X && b.X+b.PlacedWidth() >= other.X+other.PlacedWidth() &&
		b.Y <= other.Y && b.Y+b.PlacedHeight() >= other.Y+other.PlacedHeight()
}

func (b Box) interiorOverlap(other Box) bool {
	dx := math.Min(b.X+b.PlacedWidth(), other.X+other.PlacedWidth()) - math.Max(b.X, other.X)
	dy := math.Min(b.Y+b.PlacedHeight(), other.Y+other.PlacedHeight()) - math.Max(b.Y, other.Y)
	return dx > simplifyThreshold && dy > simplifyThreshold
}

func (b Box) String() string {
	r := ""
	if b.Rotated {
		r = " rotated"
	}
	return fmt.Sprintf("box %d (%g, %g, %gx%g)%s", b.ID, b.X, b.Y, b.PlacedWidth(), b.PlacedHeight(), r)
}
