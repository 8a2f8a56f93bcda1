package mesh

import (
	"github.com/bloodmagesoftware/foldout/geom"
)

// Island is one severed piece of the unfolded net, moved so that its bounds
// start at the origin.
type Island struct {
	Root   int
	Bounds geom.Bounds
}

// Width and Height of the island bounds.
func (i Island) Width() float64  { return i.Bounds.Width() }
func (i Island) Height() float64 { return i.Bounds.Height() }

// Slice cuts the unfolded tree until no island overlaps itself.
//
// Overlaps are collected bottom-up. A facet holds one overlap set per owned
// edge (everything reported below that edge) plus the set of facets its own
// edges cross. When the set of an edge shares a pair with any other set, the
// same overlap was reached through two branches and the edge is cut. The
// severed subtree becomes an island of its own. The remaining tree under the
// root is returned last.
func (p *Pool) Slice() []Island {
	var islands []Island
	p.sliceChildren(p.Root, &islands)

	b := p.IslandBounds(p.Root)
	p.translateIsland(p.Root, -b.XMin, -b.YMin)
	p.subtree(p.Root, func(f *Facet) {
		f.Island = p.Root
	})
	islands = append(islands, Island{Root: p.Root, Bounds: p.IslandBounds(p.Root)})
	return islands
}

func (p *Pool) sliceChildren(id int, islands *[]Island) OverlapSet {
	f := p.Facet(id)
	n := len(f.Edges)

	sets := make([]OverlapSet, n+1)
	for i, e := range f.Edges {
		if e.Owned && p.Facets[e.Mesh].Unfolded {
			sets[i] = p.sliceChildren(e.Mesh, islands)
		} else {
			sets[i] = make(OverlapSet)
		}
	}
	sets[n] = p.directOverlaps(id)

	for i := 0; i < n; i++ {
		if sets[i].Len() == 0 {
			continue
		}
		others := make(OverlapSet)
		for j := range sets {
			if j != i {
				others = others.Union(sets[j])
			}
		}
		if sets[i].Intersect(others).Len() == 0 {
			continue
		}

		*islands = append(*islands, p.sliceEdge(id, i))
		cut := sets[i]
		for k := range sets {
			sets[k] = sets[k].Difference(cut)
		}
	}

	out := make(OverlapSet)
	for _, s := range sets {
		out = out.Union(s)
	}
	return out
}

// sliceEdge cuts edge i of facet id and detaches the subtree behind it.
func (p *Pool) sliceEdge(id, i int) Island {
	p.Cuts++
	f := p.Facet(id)
	f.Edges[i].Cut = true
	f.Edges[i].CutNumber = p.Cuts

	childID := f.Edges[i].Mesh
	child := p.Facet(childID)
	child.Edges[child.ParentEdge].Cut = true
	child.Edges[child.ParentEdge].CutNumber = p.Cuts

	b := p.IslandBounds(childID)
	p.translateIsland(childID, -b.XMin, -b.YMin)
	p.subtree(childID, func(f *Facet) {
		f.Island = childID
	})
	return Island{Root: childID, Bounds: p.IslandBounds(childID)}
}

// directOverlaps returns the pairs (id, k) for every facet k still attached to
// the tree whose edges cross the edges of id.
func (p *Pool) directOverlaps(id int) OverlapSet {
	out := make(OverlapSet)
	f := p.Facet(id)
	for k := range p.Facets {
		other := &p.Facets[k]
		if k == id || !other.Unfolded || other.Island != NoIsland {
			continue
		}
		if p.crosses(f, other) {
			out.Add(id, k)
		}
	}
	return out
}

func (p *Pool) crosses(a, b *Facet) bool {
	for _, ea := range a.Edges {
		for _, eb := range b.Edges {
			if geom.Intersect(ea.Edge, eb.Edge, p.Tolerances).Crosses(p.Tolerances) {
				return true
			}
		}
	}
	return false
}

// Overlaps returns every pair of facets of the island rooted at root whose
// edges cross. It is empty for every island returned by Slice.
func (p *Pool) Overlaps(root int) OverlapSet {
	ids := p.IslandFacets(root)
	out := make(OverlapSet)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if p.crosses(p.Facet(a), p.Facet(b)) {
				out.Add(a, b)
			}
		}
	}
	return out
}
