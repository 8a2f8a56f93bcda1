package geom

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned rectangle in the XY plane.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// EmptyBounds returns bounds that any Extend call replaces.
func EmptyBounds() Bounds {
	return Bounds{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether no point was ever added.
func (b Bounds) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Extend grows the bounds to contain v.
func (b Bounds) Extend(v Vertex) Bounds {
	b.XMin = math.Min(b.XMin, v[0])
	b.XMax = math.Max(b.XMax, v[0])
	b.YMin = math.Min(b.YMin, v[1])
	b.YMax = math.Max(b.YMax, v[1])
	return b
}

// Union returns the smallest bounds containing both.
func (b Bounds) Union(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return Bounds{
		XMin: math.Min(b.XMin, other.XMin),
		XMax: math.Max(b.XMax, other.XMax),
		YMin: math.Min(b.YMin, other.YMin),
		YMax: math.Max(b.YMax, other.YMax),
	}
}

func (b Bounds) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.XMax - b.XMin
}

func (b Bounds) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.YMax - b.YMin
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(%g, %g, %g, %g)", b.XMin, b.YMin, b.XMax, b.YMax)
}
