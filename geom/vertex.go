package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a homogeneous 3D point (w=1) or direction (w=0).
type Vertex mgl64.Vec4

// NewVertex returns the point (x, y, z, 1).
func NewVertex(x, y, z float64) Vertex {
	return Vertex{x, y, z, 1}
}

// Direction returns the direction (x, y, z, 0).
func Direction(x, y, z float64) Vertex {
	return Vertex{x, y, z, 0}
}

func (v Vertex) X() float64 { return v[0] }
func (v Vertex) Y() float64 { return v[1] }
func (v Vertex) Z() float64 { return v[2] }

// Vec3 drops the homogeneous coordinate.
func (v Vertex) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// FromVec3 builds a vertex from a 3D vector and a homogeneous coordinate.
func FromVec3(v mgl64.Vec3, w float64) Vertex {
	return Vertex{v[0], v[1], v[2], w}
}

// Distance2 returns the squared euclidean distance between two vertices,
// ignoring the homogeneous coordinate.
func Distance2(a, b Vertex) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the euclidean distance between two vertices.
func Distance(a, b Vertex) float64 {
	return math.Sqrt(Distance2(a, b))
}

// SameAs reports whether both vertices are close enough to be the same point.
func (v Vertex) SameAs(other Vertex, tol Tolerances) bool {
	return Distance2(v, other) < tol.Distance2()
}

// DirectionTo returns the direction from v to other, normalized on request.
func (v Vertex) DirectionTo(other Vertex, normalized bool) Vertex {
	d := mgl64.Vec3{other[0] - v[0], other[1] - v[1], other[2] - v[2]}
	if normalized && d.Len() > 0 {
		d = d.Normalize()
	}
	return FromVec3(d, 0)
}

// Normalize scales the xyz part to unit length, keeping w.
func (v Vertex) Normalize() Vertex {
	d := v.Vec3()
	if d.Len() == 0 {
		return v
	}
	return FromVec3(d.Normalize(), v[3])
}

// Simplify flushes coefficients smaller than threshold to zero.
func (v Vertex) Simplify(threshold float64) Vertex {
	for i := range v {
		if math.Abs(v[i]) < threshold {
			v[i] = 0
		}
	}
	return v
}

// Barycenter returns the geometric center of the vertices.
func Barycenter(vertices ...Vertex) Vertex {
	if len(vertices) == 0 {
		return NewVertex(0, 0, 0)
	}
	var sum mgl64.Vec3
	for _, v := range vertices {
		sum = sum.Add(v.Vec3())
	}
	return FromVec3(sum.Mul(1/float64(len(vertices))), 1)
}
