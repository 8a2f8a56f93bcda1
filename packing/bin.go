package packing

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/bloodmagesoftware/foldout/geom"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	simplifyThreshold = 1e-6

	// Scores below zero reject a placement.
	scoreOutside  = -2
	scoreCollides = -1
)

// CornerKind tells where a corner candidate comes from.
type CornerKind int

const (
	CornerBottomRight CornerKind = iota
	CornerTopLeft
	// CornerProjectedX is a top-left corner slid left until it hits a box.
	CornerProjectedX
	// CornerProjectedY is a bottom-right corner slid down until it hits a box.
	CornerProjectedY
)

func (k CornerKind) String() string {
	switch k {
	case CornerBottomRight:
		return "bottom-right"
	case CornerTopLeft:
		return "top-left"
	case CornerProjectedX:
		return "projected-x"
	case CornerProjectedY:
		return "projected-y"
	default:
		return fmt.Sprintf("CornerKind(%d)", int(k))
	}
}

// Corner is a candidate position for the bottom-left corner of the next box.
type Corner struct {
	X, Y float64
	Kind CornerKind
}

// Bin is one sheet.
type Bin struct {
	ID      int
	Format  Format
	Boxes   []Box
	Corners []Corner
}

// NewBin returns an empty bin with a single corner at the origin.
func NewBin(id int, format Format) *Bin {
	return &Bin{
		ID:      id,
		Format:  format,
		Corners: []Corner{{Kind: CornerBottomRight}},
	}
}

// Score rates putting box at the given corner. Negative scores reject the
// placement: -2 when the box leaves the sheet, -1 when it collides with a
// placed box. Otherwise the score is the share of the box perimeter, in
// percent, that touches the sheet sides or other boxes.
func (b *Bin) Score(corner int, box Box, rotated bool) float64 {
	box.Rotated = rotated
	box.X = b.Corners[corner].X
	box.Y = b.Corners[corner].Y
	w, h := box.PlacedWidth(), box.PlacedHeight()

	if box.X+w > b.Format.Width+simplifyThreshold || box.Y+h > b.Format.Height+simplifyThreshold {
		return scoreOutside
	}

	var touching float64
	if box.X <= simplifyThreshold {
		touching += h
	}
	if box.Y <= simplifyThreshold {
		touching += w
	}
	if scalar.EqualWithinAbs(box.X+w, b.Format.Width, simplifyThreshold) {
		touching += h
	}
	if scalar.EqualWithinAbs(box.Y+h, b.Format.Height, simplifyThreshold) {
		touching += w
	}

	for _, other := range b.Boxes {
		if box.Collides(other) {
			return scoreCollides
		}
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				touching += geom.OverlapLength(box.Edge(i), other.Edge(j), simplifyThreshold)
			}
		}
	}
	return touching / box.Perimeter() * 100
}

// Place puts box at the given corner and recomputes the corner candidates.
func (b *Bin) Place(corner int, box Box, rotated bool) Box {
	c := b.Corners[corner]
	box.X = snap(c.X)
	box.Y = snap(c.Y)
	box.Rotated = rotated
	b.Boxes = append(b.Boxes, box)
	b.updateCorners()
	return box
}

// within tests v against the half-open range [lo, hi).
func within(v, lo, hi float64) bool {
	return v > lo-simplifyThreshold && v < hi-simplifyThreshold
}

func snap(v float64) float64 {
	if v < simplifyThreshold {
		return 0
	}
	return v
}

func (b *Bin) updateCorners() {
	b.Corners = b.Corners[:0]
	for i, box := range b.Boxes {
		bottomRight := Corner{X: box.X + box.PlacedWidth(), Y: box.Y, Kind: CornerBottomRight}
		topLeft := Corner{X: box.X, Y: box.Y + box.PlacedHeight(), Kind: CornerTopLeft}
		projX := Corner{X: 0, Y: topLeft.Y, Kind: CornerProjectedX}
		projY := Corner{X: bottomRight.X, Y: 0, Kind: CornerProjectedY}

		bottomRightSupported := bottomRight.Y <= simplifyThreshold
		topLeftSupported := topLeft.X <= simplifyThreshold
		var bottomRightTaken, topLeftTaken, projXTaken, projYTaken bool

		for j, other := range b.Boxes {
			if i == j {
				continue
			}
			ox1, oy1 := other.X, other.Y
			ox2, oy2 := other.X+other.PlacedWidth(), other.Y+other.PlacedHeight()

			// Slide the top-left corner left and the bottom-right corner down
			// until they meet a box.
			if oy1 < projX.Y && projX.Y < oy2 && ox2 > projX.X && ox2 <= topLeft.X {
				projX.X = ox2
			}
			if ox1 < projY.X && projY.X < ox2 && oy2 > projY.Y && oy2 <= bottomRight.Y {
				projY.Y = oy2
			}

			// A corner is worth keeping when it rests on top of a box or
			// against its right side.
			bottomRightSupported = bottomRightSupported ||
				(within(bottomRight.X, ox1, ox2) && scalar.EqualWithinAbs(bottomRight.Y, oy2, simplifyThreshold))
			topLeftSupported = topLeftSupported ||
				(within(topLeft.Y, oy1, oy2) && scalar.EqualWithinAbs(topLeft.X, ox2, simplifyThreshold))
		}

		for j, other := range b.Boxes {
			if i == j {
				continue
			}
			bottomRightTaken = bottomRightTaken || other.startsAt(bottomRight)
			topLeftTaken = topLeftTaken || other.startsAt(topLeft)
			projXTaken = projXTaken || other.startsAt(projX)
			projYTaken = projYTaken || other.startsAt(projY)
		}

		if bottomRightSupported && !bottomRightTaken {
			b.addCorner(bottomRight)
		}
		if topLeftSupported && !topLeftTaken {
			b.addCorner(topLeft)
		}
		if projX.X != topLeft.X && !projXTaken {
			b.addCorner(projX)
		}
		if projY.Y != bottomRight.Y && !projYTaken {
			b.addCorner(projY)
		}
	}

	slices.SortStableFunc(b.Corners, func(c1, c2 Corner) int {
		if c := cmp.Compare(c1.Y, c2.Y); c != 0 {
			return c
		}
		return cmp.Compare(c1.X, c2.X)
	})
}

func (b *Bin) addCorner(c Corner) {
	for _, existing := range b.Corners {
		if existing.X == c.X && existing.Y == c.Y {
			return
		}
	}
	b.Corners = append(b.Corners, c)
}

func (b Box) startsAt(c Corner) bool {
	return math.Abs(c.X-b.X) < simplifyThreshold && math.Abs(c.Y-b.Y) < simplifyThreshold
}

// UsedArea is the area covered by boxes.
func (b *Bin) UsedArea() float64 {
	var a float64
	for _, box := range b.Boxes {
		a += box.Area()
	}
	return a
}

func (b *Bin) String() string {
	return fmt.Sprintf("bin %d %s, %d boxes", b.ID, b.Format, len(b.Boxes))
}
