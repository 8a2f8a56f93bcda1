package mesh

import (
	"slices"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// ProjectionOrder returns the facet ids of the pool sorted for painting an
// orthographic projection onto the plane (ax1, ax2): facets farthest along
// ax1 x ax2 come last, so they end up drawn on top.
func ProjectionOrder(p *Pool, ax1, ax2 mgl64.Vec3) []int {
	normal := ax1.Cross(ax2)
	depth := make([]float64, len(p.Facets))
	ids := make([]int, len(p.Facets))
	for i := range p.Facets {
		ids[i] = i
		depth[i] = p.Facets[i].Barycenter().Vec3().Dot(normal)
	}
	slices.SortStableFunc(ids, func(a, b int) int {
		switch {
		case depth[a] < depth[b]:
			return -1
		case depth[a] > depth[b]:
			return 1
		}
		return 0
	})
	return ids
}

// Project maps a point onto the plane (ax1, ax2).
func Project(v geom.Vertex, ax1, ax2 mgl64.Vec3) (float64, float64) {
	p := v.Vec3()
	return p.Dot(ax1), p.Dot(ax2)
}

// ProjectedBounds returns the bounds of the projection of every facet onto the
// plane (ax1, ax2).
func (p *Pool) ProjectedBounds(ax1, ax2 mgl64.Vec3) geom.Bounds {
	b := geom.EmptyBounds()
	for i := range p.Facets {
		for _, v := range p.Facets[i].Vertices() {
			x, y := Project(v, ax1, ax2)
			b = b.Extend(geom.NewVertex(x, y, 0))
		}
	}
	return b
}
