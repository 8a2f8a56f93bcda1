package mesh

import (
	"errors"
	"fmt"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tiendc/go-deepcopy"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrEmptyMesh is returned when the input holds no facet.
	ErrEmptyMesh = errors.New("mesh has no facets")
	// ErrDegenerateFacet is returned for facets without area or with
	// coincident vertices.
	ErrDegenerateFacet = errors.New("degenerate facet")
)

// Pool is the arena of facets. Facets reference each other by index, and the
// index of a facet is also its ID.
type Pool struct {
	Facets     []Facet
	Root       int
	Tolerances geom.Tolerances
	// Cuts counts the cut numbers handed out so far.
	Cuts int
}

// NewPool builds an unlinked pool from triangle records. Triangles whose
// stored normal disagrees with their winding are reversed so every facet
// winds counter-clockwise around its outward normal.
func NewPool(triangles []Triangle, tol geom.Tolerances) (*Pool, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	p := &Pool{
		Facets:     make([]Facet, 0, len(triangles)),
		Tolerances: tol,
	}
	for i, t := range triangles {
		outline := []geom.Vertex{t.V1, t.V2, t.V3}
		stored := toR3(t.Normal)
		if r3.Norm(stored) > 0 && r3.Dot(stored, windingNormal(outline)) < 0 {
			outline[1], outline[2] = outline[2], outline[1]
		}
		f, err := NewFacet(i, outline, tol)
		if err != nil {
			return nil, fmt.Errorf("building pool: %w", err)
		}
		p.Facets = append(p.Facets, f)
	}
	return p, nil
}

// Len returns the number of facets.
func (p *Pool) Len() int {
	return len(p.Facets)
}

// Facet returns the facet with the given id.
func (p *Pool) Facet(id int) *Facet {
	return &p.Facets[id]
}

// Clone returns an independent copy of the pool.
func (p *Pool) Clone() (*Pool, error) {
	var out Pool
	if err := deepcopy.Copy(&out, *p); err != nil {
		return nil, fmt.Errorf("copying pool: %w", err)
	}
	return &out, nil
}

// AlignRoot moves the whole pool rigidly so the root facet lies in the z=0
// plane, facing +Z, with its first vertex on the origin.
func (p *Pool) AlignRoot() {
	root := p.Facet(p.Root)
	n := toR3(root.Normal)
	d := root.Edges[0].Dir(false)
	x := r3.Vec{X: d[0], Y: d[1], Z: d[2]}
	y := r3.Unit(r3.Cross(n, x))
	x = r3.Unit(r3.Cross(y, n))

	frame := geom.Identity().
		SetAxis(geom.AxisX, mgl64.Vec3{x.X, x.Y, x.Z}, false).
		SetAxis(geom.AxisY, mgl64.Vec3{y.X, y.Y, y.Z}, false).
		SetAxis(geom.AxisZ, mgl64.Vec3{n.X, n.Y, n.Z}, true).
		SetAxis(geom.AxisTranslation, root.Edges[0].V1.Vec3(), false)

	p.applyAll(frame.Inverse())
}

// Scale scales every facet uniformly around the origin.
func (p *Pool) Scale(factor float64) {
	if factor == 1 {
		return
	}
	m := geom.Scaling(factor)
	for i := range p.Facets {
		p.Facets[i].transform(m, 0)
	}
}

func (p *Pool) applyAll(m geom.Transform) {
	for i := range p.Facets {
		f := &p.Facets[i]
		f.transform(m, p.Tolerances.Simplify)
		f.Normal = m.ApplyDirection(f.Normal).Simplify(p.Tolerances.Simplify).Normalize()
	}
}

// subtree calls fn for id and every facet below it, stopping at cut edges and
// at facets the unfolding never reached.
func (p *Pool) subtree(id int, fn func(f *Facet)) {
	f := p.Facet(id)
	fn(f)
	for _, e := range f.Edges {
		if e.Owned && !e.Cut && p.Facets[e.Mesh].Unfolded {
			p.subtree(e.Mesh, fn)
		}
	}
}

// IslandFacets lists the facets drawn with the island rooted at root.
func (p *Pool) IslandFacets(root int) []int {
	var ids []int
	p.subtree(root, func(f *Facet) {
		ids = append(ids, f.ID)
	})
	return ids
}

// IslandBounds returns the XY bounds of the island rooted at root.
func (p *Pool) IslandBounds(root int) geom.Bounds {
	b := geom.EmptyBounds()
	p.subtree(root, func(f *Facet) {
		b = b.Union(f.Bounds())
	})
	return b
}

func (p *Pool) translateIsland(root int, dx, dy float64) {
	m := geom.Translation(dx, dy, 0)
	p.subtree(root, func(f *Facet) {
		f.transform(m, p.Tolerances.Simplify)
	})
}
