package geom

import (
	"math"
	"testing"
)

func TestVertexSameAs(t *testing.T) {
	tol := DefaultTolerances()
	v := NewVertex(1, 2, 3)

	testCases := []struct {
		Name  string
		Other Vertex
		Same  bool
	}{
		{Name: "Identical", Other: NewVertex(1, 2, 3), Same: true},
		{Name: "Within tolerance", Other: NewVertex(1.0005, 2, 3.0005), Same: true},
		{Name: "Just outside tolerance", Other: NewVertex(1.001, 2, 3.0001), Same: false},
		{Name: "Far away", Other: NewVertex(-1, 2, 3), Same: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := v.SameAs(tc.Other, tol); got != tc.Same {
				t.Errorf("SameAs() = %v, want %v", got, tc.Same)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(NewVertex(0, 0, 0), NewVertex(3, 4, 12)); d != 13 {
		t.Errorf("Distance() = %g, want 13", d)
	}
	if d := Distance2(NewVertex(1, 1, 1), Direction(1, 1, 3)); d != 4 {
		t.Errorf("Distance2() must ignore w, got %g", d)
	}
}

func TestDirectionTo(t *testing.T) {
	d := NewVertex(1, 1, 1).DirectionTo(NewVertex(1, 4, 5), true)
	if math.Abs(d.Y()-0.6) > 1e-12 || math.Abs(d.Z()-0.8) > 1e-12 || d[3] != 0 {
		t.Errorf("DirectionTo() = %v", d)
	}
}

func TestBarycenter(t *testing.T) {
	b := Barycenter(NewVertex(0, 0, 0), NewVertex(3, 0, 0), NewVertex(0, 3, 3))
	if Distance(b, NewVertex(1, 1, 1)) > 1e-12 {
		t.Errorf("Barycenter() = %v", b)
	}
}

func TestVertexSimplify(t *testing.T) {
	v := NewVertex(1e-9, -2e-7, 0.5).Simplify(1e-6)
	if v != NewVertex(0, 0, 0.5) {
		t.Errorf("Simplify() = %v", v)
	}
}
