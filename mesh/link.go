package mesh

// Link builds the spanning tree of the pool starting from the root facet.
//
// Facets are visited breadth first. Each visited facet scans the pool for
// facets sharing one of its unresolved edges. A facet found this way for the
// first time becomes its child: the edge is marked owned on the caller side
// and the matched edge becomes the parent edge on the child side. Facets
// that were already linked only get their edges cross-referenced, so cycles
// of the adjacency graph are broken. Facets sharing no edge with the tree
// stay unlinked.
func (p *Pool) Link() {
	root := p.Facet(p.Root)
	root.Linked = true
	root.ParentEdge = NoParent

	queue := []int{p.Root}
	for len(queue) > 0 {
		caller := queue[0]
		queue = queue[1:]
		queue = append(queue, p.linkNeighbours(caller)...)
	}
}

func (p *Pool) linkNeighbours(caller int) []int {
	f := p.Facet(caller)

	var done, all uint64
	for i, e := range f.Edges {
		all |= 1 << i
		if e.Mesh != NoMesh {
			done |= 1 << i
		}
	}

	var created []int
	for k := range p.Facets {
		if done == all {
			break
		}
		if k == caller {
			continue
		}
		candidate := p.Facet(k)
		for i := range f.Edges {
			if done&(1<<i) != 0 {
				continue
			}
			j := candidate.sharedEdge(f.Edges[i].Edge, p.Tolerances)
			if j < 0 {
				continue
			}

			f.Edges[i].Mesh = k
			candidate.Edges[j].Mesh = caller
			if !candidate.Linked {
				f.Edges[i].Owned = true
				candidate.Linked = true
				candidate.ParentEdge = j
				created = append(created, k)
			}
			done |= 1 << i
			break
		}
	}
	return created
}

// Parent returns the id of the parent facet, or NoMesh for the root and for
// unlinked facets.
func (p *Pool) Parent(id int) int {
	f := p.Facet(id)
	if f.ParentEdge == NoParent {
		return NoMesh
	}
	return f.Edges[f.ParentEdge].Mesh
}

// Children returns the ids of the facets owned by id.
func (p *Pool) Children(id int) []int {
	var out []int
	for _, e := range p.Facet(id).Edges {
		if e.Owned {
			out = append(out, e.Mesh)
		}
	}
	return out
}
