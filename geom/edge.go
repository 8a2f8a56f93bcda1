package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// IntersectParams locates the crossing point of two edges along each edge's
// direction: P = e1.V1 + S*e1.Dir() = e2.V1 + T*e2.Dir().
type IntersectParams struct {
	S, T float64
}

// NoIntersection is returned for parallel, colinear or degenerate edges.
var NoIntersection = IntersectParams{S: -1, T: -1}

// Crosses reports whether both parameters lie strictly inside the tolerance band,
// which excludes endpoint touches.
func (p IntersectParams) Crosses(tol Tolerances) bool {
	return tol.Inside(p.S) && tol.Inside(p.T)
}

// Edge is an ordered pair of vertices.
type Edge struct {
	V1, V2 Vertex
}

// NewEdge builds an edge from two vertices.
func NewEdge(v1, v2 Vertex) Edge {
	return Edge{V1: v1, V2: v2}
}

// Dir returns the vector going from V1 to V2.
func (e Edge) Dir(normalized bool) mgl64.Vec3 {
	return e.V1.DirectionTo(e.V2, normalized).Vec3()
}

// Length returns the euclidean length of the edge.
func (e Edge) Length() float64 {
	return Distance(e.V1, e.V2)
}

// Midpoint returns the center of the edge.
func (e Edge) Midpoint() Vertex {
	return Barycenter(e.V1, e.V2)
}

// Lerp returns the point of parameter t, with Lerp(0) == V1 and Lerp(1) == V2.
func (e Edge) Lerp(t float64) Vertex {
	d := e.Dir(false)
	return FromVec3(e.V1.Vec3().Add(d.Mul(t)), 1)
}

// SameAs reports whether both edges join the same two points, in either order.
func (e Edge) SameAs(other Edge, tol Tolerances) bool {
	return (e.V1.SameAs(other.V1, tol) && e.V2.SameAs(other.V2, tol)) ||
		(e.V1.SameAs(other.V2, tol) && e.V2.SameAs(other.V1, tol))
}

// Transform returns the edge with both vertices transformed.
func (e Edge) Transform(m Transform) Edge {
	return Edge{V1: m.Apply(e.V1), V2: m.Apply(e.V2)}
}

// Bounds returns the XY bounding box of the edge.
func (e Edge) Bounds() Bounds {
	return EmptyBounds().Extend(e.V1).Extend(e.V2)
}

// Intersect computes the parameters of the crossing of e1 and e2 in the XY
// plane. Edges whose directions are parallel within tol.Parallel return
// NoIntersection.
func Intersect(e1, e2 Edge, tol Tolerances) IntersectParams {
	u := e1.Dir(false)
	v := e2.Dir(false)
	det := u[1]*v[0] - u[0]*v[1]
	lu := math.Hypot(u[0], u[1])
	lv := math.Hypot(v[0], v[1])
	if math.Abs(det) <= tol.Parallel*lu*lv {
		return NoIntersection
	}

	dx := (e2.V1[0] - e1.V1[0]) / det
	dy := (e2.V1[1] - e1.V1[1]) / det
	return IntersectParams{
		S: dy*v[0] - dx*v[1],
		T: dy*u[0] - dx*u[1],
	}
}

// OverlapLength returns how long two axis-aligned edges run along each other.
// Edges that are not both vertical on the same x or both horizontal on the
// same y do not overlap.
func OverlapLength(e1, e2 Edge, eps float64) float64 {
	vertical := func(e Edge) bool { return math.Abs(e.V1[0]-e.V2[0]) <= eps }
	horizontal := func(e Edge) bool { return math.Abs(e.V1[1]-e.V2[1]) <= eps }

	switch {
	case vertical(e1) && vertical(e2) && math.Abs(e1.V1[0]-e2.V1[0]) <= eps:
		return intervalOverlap(e1.V1[1], e1.V2[1], e2.V1[1], e2.V2[1])
	case horizontal(e1) && horizontal(e2) && math.Abs(e1.V1[1]-e2.V1[1]) <= eps:
		return intervalOverlap(e1.V1[0], e1.V2[0], e2.V1[0], e2.V2[0])
	}
	return 0
}

func intervalOverlap(a1, a2, b1, b2 float64) float64 {
	start := math.Max(math.Min(a1, a2), math.Min(b1, b2))
	end := math.Min(math.Max(a1, a2), math.Max(b1, b2))
	if end <= start {
		return 0
	}
	return end - start
}
