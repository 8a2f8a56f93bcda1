package geom

import (
	"math"
	"testing"
)

func TestIntersect(t *testing.T) {
	tol := DefaultTolerances()

	testCases := []struct {
		Name    string
		E1, E2  Edge
		Want    IntersectParams
		Crosses bool
	}{
		{
			Name:    "Crossing at both midpoints",
			E1:      NewEdge(NewVertex(0, 0, 0), NewVertex(2, 2, 0)),
			E2:      NewEdge(NewVertex(0, 2, 0), NewVertex(2, 0, 0)),
			Want:    IntersectParams{S: 0.5, T: 0.5},
			Crosses: true,
		},
		{
			Name:    "Crossing off center",
			E1:      NewEdge(NewVertex(0, 0, 0), NewVertex(4, 0, 0)),
			E2:      NewEdge(NewVertex(1, -1, 0), NewVertex(1, 3, 0)),
			Want:    IntersectParams{S: 0.25, T: 0.25},
			Crosses: true,
		},
		{
			Name:    "Parallel edges",
			E1:      NewEdge(NewVertex(0, 0, 0), NewVertex(1, 0, 0)),
			E2:      NewEdge(NewVertex(0, 1, 0), NewVertex(1, 1, 0)),
			Want:    NoIntersection,
			Crosses: false,
		},
		{
			Name:    "Colinear edges",
			E1:      NewEdge(NewVertex(0, 0, 0), NewVertex(1, 1, 0)),
			E2:      NewEdge(NewVertex(2, 2, 0), NewVertex(3, 3, 0)),
			Want:    NoIntersection,
			Crosses: false,
		},
		{
			Name:    "Zero length edge",
			E1:      NewEdge(NewVertex(1, 1, 0), NewVertex(1, 1, 0)),
			E2:      NewEdge(NewVertex(0, 2, 0), NewVertex(2, 0, 0)),
			Want:    NoIntersection,
			Crosses: false,
		},
		{
			Name:    "Touching at an endpoint",
			E1:      NewEdge(NewVertex(0, 0, 0), NewVertex(1, 0, 0)),
			E2:      NewEdge(NewVertex(1, 0, 0), NewVertex(1, 1, 0)),
			Want:    IntersectParams{S: 1, T: 0},
			Crosses: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Intersect(tc.E1, tc.E2, tol)
			if math.Abs(got.S-tc.Want.S) > 1e-9 || math.Abs(got.T-tc.Want.T) > 1e-9 {
				t.Errorf("Intersect() = %+v, want %+v", got, tc.Want)
			}
			if got.Crosses(tol) != tc.Crosses {
				t.Errorf("Crosses() = %v, want %v", got.Crosses(tol), tc.Crosses)
			}
		})
	}
}

func TestIntersectLocatesCrossingPoint(t *testing.T) {
	tol := DefaultTolerances()
	e1 := NewEdge(NewVertex(-1, 0.5, 0), NewVertex(3, 2.5, 0))
	e2 := NewEdge(NewVertex(2, -2, 0), NewVertex(0, 4, 0))

	p := Intersect(e1, e2, tol)
	a := e1.Lerp(p.S)
	b := e2.Lerp(p.T)
	if Distance(a, b) > 1e-9 {
		t.Errorf("crossing points differ: %v vs %v", a, b)
	}
}

func TestEdgeSameAs(t *testing.T) {
	tol := DefaultTolerances()
	e := NewEdge(NewVertex(0, 0, 0), NewVertex(1, 2, 3))

	if !e.SameAs(NewEdge(NewVertex(1, 2, 3), NewVertex(0, 0, 0)), tol) {
		t.Error("reversed edge should be the same edge")
	}
	if !e.SameAs(NewEdge(NewVertex(0.0001, 0, 0), NewVertex(1, 2, 3.0002)), tol) {
		t.Error("edge within tolerance should be the same edge")
	}
	if e.SameAs(NewEdge(NewVertex(0, 0, 0), NewVertex(1, 2, 3.1)), tol) {
		t.Error("edge outside tolerance should differ")
	}
}

func TestOverlapLength(t *testing.T) {
	testCases := []struct {
		Name   string
		E1, E2 Edge
		Want   float64
	}{
		{
			Name: "Vertical edges sharing a span",
			E1:   NewEdge(NewVertex(2, 0, 0), NewVertex(2, 5, 0)),
			E2:   NewEdge(NewVertex(2, 3, 0), NewVertex(2, 10, 0)),
			Want: 2,
		},
		{
			Name: "Horizontal edges reversed",
			E1:   NewEdge(NewVertex(0, 1, 0), NewVertex(4, 1, 0)),
			E2:   NewEdge(NewVertex(6, 1, 0), NewVertex(1, 1, 0)),
			Want: 3,
		},
		{
			Name: "Parallel on different lines",
			E1:   NewEdge(NewVertex(0, 1, 0), NewVertex(4, 1, 0)),
			E2:   NewEdge(NewVertex(0, 2, 0), NewVertex(4, 2, 0)),
			Want: 0,
		},
		{
			Name: "Perpendicular",
			E1:   NewEdge(NewVertex(0, 0, 0), NewVertex(4, 0, 0)),
			E2:   NewEdge(NewVertex(0, 0, 0), NewVertex(0, 4, 0)),
			Want: 0,
		},
		{
			Name: "Touching end to end",
			E1:   NewEdge(NewVertex(0, 0, 0), NewVertex(4, 0, 0)),
			E2:   NewEdge(NewVertex(4, 0, 0), NewVertex(8, 0, 0)),
			Want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := OverlapLength(tc.E1, tc.E2, 1e-6); math.Abs(got-tc.Want) > 1e-9 {
				t.Errorf("OverlapLength() = %g, want %g", got, tc.Want)
			}
		})
	}
}

func TestEdgeBounds(t *testing.T) {
	b := NewEdge(NewVertex(3, -1, 0), NewVertex(-2, 4, 7)).Bounds()
	if b.XMin != -2 || b.XMax != 3 || b.YMin != -1 || b.YMax != 4 {
		t.Errorf("unexpected bounds %v", b)
	}
	if b.Width() != 5 || b.Height() != 5 {
		t.Errorf("unexpected size %gx%g", b.Width(), b.Height())
	}
}
