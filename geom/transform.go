package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects a column of a homogeneous transform.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisTranslation
)

// Transform is a 4x4 homogeneous matrix (column-major, like mgl64.Mat4).
type Transform mgl64.Mat4

// Identity returns the identity transform.
func Identity() Transform {
	return Transform(mgl64.Ident4())
}

// Translation returns a pure translation.
func Translation(x, y, z float64) Transform {
	return Transform(mgl64.Translate3D(x, y, z))
}

// Scaling returns a uniform scale around the origin.
func Scaling(s float64) Transform {
	return Transform(mgl64.Scale3D(s, s, s))
}

// RotationX returns a rotation of theta radians around the X axis.
func RotationX(theta float64) Transform {
	return Transform(mgl64.HomogRotate3DX(theta))
}

// At returns the coefficient at (row, col).
func (t Transform) At(row, col int) float64 {
	return mgl64.Mat4(t).At(row, col)
}

// Mul returns t * other: other is applied first.
func (t Transform) Mul(other Transform) Transform {
	return Transform(mgl64.Mat4(t).Mul4(mgl64.Mat4(other)))
}

// Apply transforms a vertex. Directions (w=0) are not translated.
func (t Transform) Apply(v Vertex) Vertex {
	return Vertex(mgl64.Mat4(t).Mul4x1(mgl64.Vec4(v)))
}

// ApplyDirection transforms v as a direction regardless of its w.
func (t Transform) ApplyDirection(v Vertex) Vertex {
	v[3] = 0
	return t.Apply(v)
}

// SetAxis writes vec into the given column, normalizing it first on request.
func (t Transform) SetAxis(col Axis, vec mgl64.Vec3, normalize bool) Transform {
	if normalize && vec.Len() > 0 {
		vec = vec.Normalize()
	}
	m := mgl64.Mat4(t)
	for row := 0; row < 3; row++ {
		m.Set(row, int(col), vec[row])
	}
	return Transform(m)
}

// Inverse returns the inverse of a rigid transform: the rotation block is
// transposed and the translation becomes -R^T * p.
func (t Transform) Inverse() Transform {
	m := mgl64.Mat4(t)
	out := mgl64.Ident4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, m.At(j, i))
		}
	}
	for i := 0; i < 3; i++ {
		out.Set(i, 3, -(out.At(i, 0)*m.At(0, 3) + out.At(i, 1)*m.At(1, 3) + out.At(i, 2)*m.At(2, 3)))
	}
	return Transform(out)
}

// Simplify flushes coefficients smaller than threshold to zero.
func (t Transform) Simplify(threshold float64) Transform {
	for i := range t {
		if math.Abs(t[i]) < threshold {
			t[i] = 0
		}
	}
	return t
}

// ApproxEqual compares two transforms coefficient by coefficient.
func (t Transform) ApproxEqual(other Transform, eps float64) bool {
	for i := range t {
		if math.Abs(t[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity reports whether t is the identity within eps.
func (t Transform) IsIdentity(eps float64) bool {
	return t.ApproxEqual(Identity(), eps)
}
