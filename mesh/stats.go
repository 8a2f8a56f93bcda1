package mesh

import (
	"fmt"
	"strings"
)

// Stats summarises the health of a pool.
type Stats struct {
	Facets int
	// Linked facets are part of the spanning tree, root included.
	Linked int
	// Isolated facets share no edge with the tree and are left out of
	// unfolding, slicing and packing.
	Isolated int
	// Owning facets own at least one child.
	Owning int
	// Leaves are linked facets without children.
	Leaves int
	// Depth is the number of edges on the longest root to leaf path.
	Depth int
	// Unfolded facets were reached by Unfold.
	Unfolded int
	Cuts     int
}

// Stats computes the pool health statistics.
func (p *Pool) Stats() Stats {
	s := Stats{Facets: len(p.Facets), Cuts: p.Cuts}
	for i := range p.Facets {
		f := &p.Facets[i]
		if !f.Linked {
			s.Isolated++
			continue
		}
		s.Linked++
		if f.Unfolded {
			s.Unfolded++
		}
		if len(p.Children(f.ID)) > 0 {
			s.Owning++
		} else {
			s.Leaves++
		}
	}
	s.Depth = p.depth(p.Root)
	return s
}

func (p *Pool) depth(id int) int {
	deepest := 0
	for _, child := range p.Children(id) {
		deepest = max(deepest, p.depth(child)+1)
	}
	return deepest
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "facets:    %d\n", s.Facets)
	fmt.Fprintf(&b, "linked:    %d\n", s.Linked)
	fmt.Fprintf(&b, "isolated:  %d\n", s.Isolated)
	fmt.Fprintf(&b, "owning:    %d\n", s.Owning)
	fmt.Fprintf(&b, "leaves:    %d\n", s.Leaves)
	fmt.Fprintf(&b, "depth:     %d\n", s.Depth)
	fmt.Fprintf(&b, "unfolded:  %d\n", s.Unfolded)
	fmt.Fprintf(&b, "cuts:      %d", s.Cuts)
	return b.String()
}
