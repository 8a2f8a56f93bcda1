package mesh

import (
	"fmt"

	"github.com/bloodmagesoftware/foldout/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// NoParent marks a facet without a parent edge: the root, or a facet
	// that was never reached while linking.
	NoParent = -1
	// NoMesh marks an edge with no facet on the other side.
	NoMesh = -1
	// NoIsland marks a facet that no island claimed yet.
	NoIsland = -1
	// NoCut is the cut number of an edge that was never cut.
	NoCut = -1
)

const maxEdges = 64

// EdgeStyle tells the pattern serializer how to draw an edge.
type EdgeStyle int

const (
	// StylePerimeter is the outline of an island.
	StylePerimeter EdgeStyle = iota
	// StyleInner is a fold between two facets of the same island.
	StyleInner
	// StyleCut is an edge severed to remove an overlap.
	StyleCut
)

func (s EdgeStyle) String() string {
	switch s {
	case StylePerimeter:
		return "perimeter"
	case StyleInner:
		return "inner"
	case StyleCut:
		return "cut"
	default:
		return fmt.Sprintf("EdgeStyle(%d)", int(s))
	}
}

type (
	// LinkedEdge is a facet edge together with its link state.
	LinkedEdge struct {
		geom.Edge
		// Mesh is the id of the facet sharing this edge, or NoMesh.
		Mesh int
		// Owned is set when this facet discovered Mesh while linking and is
		// therefore its parent.
		Owned bool
		// Cut is set on both sides of an edge severed by slicing.
		Cut bool
		// CutNumber pairs the two sides of a cut edge.
		CutNumber int
	}

	// Facet is one flat polygon of the mesh.
	Facet struct {
		ID    int
		Edges []LinkedEdge
		// ParentEdge indexes Edges. NoParent for the root and for
		// unlinked facets.
		ParentEdge int
		// Normal is the unit outward normal (w=0).
		Normal geom.Vertex
		// Unfold is the accumulated transform applied during unfolding.
		Unfold geom.Transform
		// Linked is set once the facet is part of the spanning tree.
		Linked bool
		// Unfolded is set once the facet was reached by Unfold.
		Unfolded bool
		// Island is the root facet of the island this facet ended in.
		Island int
	}

	// Triangle is one record of mesh input.
	Triangle struct {
		V1, V2, V3 geom.Vertex
		// Normal may be zero, in which case it is derived from the winding.
		Normal geom.Vertex
	}
)

// NewTriangle builds a triangle record.
func NewTriangle(v1, v2, v3, normal geom.Vertex) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3, Normal: normal}
}

// NewFacet builds an unlinked facet from a closed polygon outline. The outline
// is given in winding order and the normal is taken from that winding.
func NewFacet(id int, outline []geom.Vertex, tol geom.Tolerances) (Facet, error) {
	if len(outline) < 3 || len(outline) > maxEdges {
		return Facet{}, fmt.Errorf("facet %d has %d vertices: %w", id, len(outline), ErrDegenerateFacet)
	}

	edges := make([]LinkedEdge, len(outline))
	for i := range outline {
		e := geom.NewEdge(outline[i], outline[(i+1)%len(outline)])
		if e.V1.SameAs(e.V2, tol) {
			return Facet{}, fmt.Errorf("facet %d has a zero length edge: %w", id, ErrDegenerateFacet)
		}
		edges[i] = LinkedEdge{Edge: e, Mesh: NoMesh, CutNumber: NoCut}
	}

	n := windingNormal(outline)
	if r3.Norm(n) == 0 {
		return Facet{}, fmt.Errorf("facet %d has no area: %w", id, ErrDegenerateFacet)
	}
	n = r3.Unit(n)

	return Facet{
		ID:         id,
		Edges:      edges,
		ParentEdge: NoParent,
		Normal:     geom.Direction(n.X, n.Y, n.Z),
		Unfold:     geom.Identity(),
		Island:     NoIsland,
	}, nil
}

// windingNormal sums the cross products of the fan around the first vertex
// (Newell style), which stays valid for convex polygons of any arity.
func windingNormal(outline []geom.Vertex) r3.Vec {
	origin := toR3(outline[0])
	var n r3.Vec
	for i := 1; i+1 < len(outline); i++ {
		a := r3.Sub(toR3(outline[i]), origin)
		b := r3.Sub(toR3(outline[i+1]), origin)
		n = r3.Add(n, r3.Cross(a, b))
	}
	return n
}

func toR3(v geom.Vertex) r3.Vec {
	return r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vertices returns the outline of the facet, one vertex per edge.
func (f *Facet) Vertices() []geom.Vertex {
	out := make([]geom.Vertex, len(f.Edges))
	for i, e := range f.Edges {
		out[i] = e.V1
	}
	return out
}

// Barycenter returns the center of the facet outline.
func (f *Facet) Barycenter() geom.Vertex {
	return geom.Barycenter(f.Vertices()...)
}

// Bounds returns the XY bounds of the facet alone.
func (f *Facet) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	for _, e := range f.Edges {
		b = b.Extend(e.V1).Extend(e.V2)
	}
	return b
}

// EdgeStyle returns how edge i is drawn: cut edges stay cuts, edges joining two
// facets of the same island are inner folds, everything else is perimeter.
func (f *Facet) EdgeStyle(i int) EdgeStyle {
	e := f.Edges[i]
	switch {
	case e.Cut:
		return StyleCut
	case e.Owned || i == f.ParentEdge:
		return StyleInner
	default:
		return StylePerimeter
	}
}

// IsRoot reports whether the facet sits at the top of the tree.
func (f *Facet) IsRoot() bool {
	return f.Linked && f.ParentEdge == NoParent
}

func (f *Facet) transform(m geom.Transform, simplify float64) {
	for i := range f.Edges {
		e := f.Edges[i].Transform(m)
		f.Edges[i].V1 = e.V1.Simplify(simplify)
		f.Edges[i].V2 = e.V2.Simplify(simplify)
	}
}

// sharedEdge returns the index of the unresolved edge of f that joins the
// same two points as e, or -1.
func (f *Facet) sharedEdge(e geom.Edge, tol geom.Tolerances) int {
	for i := range f.Edges {
		if f.Edges[i].Mesh == NoMesh && f.Edges[i].SameAs(e, tol) {
			return i
		}
	}
	return -1
}
