package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOverlapSet(t *testing.T) {
	a := make(OverlapSet)
	a.Add(1, 2)
	a.Add(4, 3)
	b := make(OverlapSet)
	b.Add(2, 1)
	b.Add(5, 6)

	if !a.Contains(2, 1) || !a.Contains(3, 4) {
		t.Error("pairs must be order independent")
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}

	testCases := []struct {
		Name string
		Got  OverlapSet
		Want []Overlap
	}{
		{Name: "Union", Got: a.Union(b), Want: []Overlap{{1, 2}, {3, 4}, {5, 6}}},
		{Name: "Intersect", Got: a.Intersect(b), Want: []Overlap{{1, 2}}},
		{Name: "Difference", Got: a.Difference(b), Want: []Overlap{{3, 4}}},
		{Name: "Difference with itself", Got: a.Difference(a), Want: []Overlap{}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := tc.Got.Pairs()
			if len(got) != len(tc.Want) {
				t.Fatalf("got %v, want %v", got, tc.Want)
			}
			for i := range got {
				if got[i] != tc.Want[i] {
					t.Errorf("got %v, want %v", got, tc.Want)
				}
			}
		})
	}

	if a.Len() != 2 || b.Len() != 2 {
		t.Error("set operations must not modify their operands")
	}
}

func TestProjectionOrder(t *testing.T) {
	p := newLinkedPool(t, tetrahedron())

	// Seen from +Z the base is the lowest facet, painted first.
	order := ProjectionOrder(p, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	if len(order) != 4 {
		t.Fatalf("got %d facets, want 4", len(order))
	}
	if order[0] != 0 {
		t.Errorf("first painted facet = %d, want the base", order[0])
	}
	for i := 1; i < len(order); i++ {
		if p.Facet(order[i]).Barycenter().Z() < p.Facet(order[i-1]).Barycenter().Z() {
			t.Errorf("facet %d painted after the higher facet %d", order[i], order[i-1])
		}
	}

	b := p.ProjectedBounds(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	if b.Width() != 1 || b.Height() != 1 {
		t.Errorf("projected bounds = %v, want the unit square", b)
	}
}
