package mesh

import (
	"cmp"
	"slices"
)

// Overlap is an unordered pair of facet ids. A is always the smaller one.
type Overlap struct {
	A, B int
}

// NewOverlap orders the pair.
func NewOverlap(a, b int) Overlap {
	if a > b {
		a, b = b, a
	}
	return Overlap{A: a, B: b}
}

// OverlapSet is a set of overlapping facet pairs.
type OverlapSet map[Overlap]struct{}

// Add inserts the pair (a, b).
func (s OverlapSet) Add(a, b int) {
	s[NewOverlap(a, b)] = struct{}{}
}

// Contains reports whether the pair (a, b) is in the set, in either order.
func (s OverlapSet) Contains(a, b int) bool {
	_, ok := s[NewOverlap(a, b)]
	return ok
}

func (s OverlapSet) Len() int {
	return len(s)
}

// Union returns the pairs found in either set.
func (s OverlapSet) Union(other OverlapSet) OverlapSet {
	out := make(OverlapSet, len(s)+len(other))
	for o := range s {
		out[o] = struct{}{}
	}
	for o := range other {
		out[o] = struct{}{}
	}
	return out
}

// Intersect returns the pairs found in both sets.
func (s OverlapSet) Intersect(other OverlapSet) OverlapSet {
	out := make(OverlapSet)
	for o := range s {
		if _, ok := other[o]; ok {
			out[o] = struct{}{}
		}
	}
	return out
}

// Difference returns the pairs of s missing from other.
func (s OverlapSet) Difference(other OverlapSet) OverlapSet {
	out := make(OverlapSet)
	for o := range s {
		if _, ok := other[o]; !ok {
			out[o] = struct{}{}
		}
	}
	return out
}

// Pairs returns the pairs sorted by (A, B).
func (s OverlapSet) Pairs() []Overlap {
	out := make([]Overlap, 0, len(s))
	for o := range s {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b Overlap) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		return cmp.Compare(a.B, b.B)
	})
	return out
}
