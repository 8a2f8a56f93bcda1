package mesh

import (
	"math"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Unlimited disables the depth limit of Unfold. Any negative depth does.
const Unlimited = -1

// Unfold flattens the spanning tree onto the plane of the root facet.
//
// The root keeps the identity transform. Every other facet is rotated around
// its parent edge until its normal matches the parent's, then moved along with
// everything its parent went through. maxDepth bounds the number of tree
// levels unfolded below the root; a negative value unfolds the whole tree. Facets
// below the limit keep their 3D position and are ignored by slicing.
func (p *Pool) Unfold(maxDepth int) {
	root := p.Facet(p.Root)
	root.Unfold = geom.Identity()
	root.Unfolded = true
	for _, child := range p.Children(p.Root) {
		p.unfold(child, 1, maxDepth)
	}
}

func (p *Pool) unfold(id, depth, maxDepth int) {
	if maxDepth >= 0 && depth > maxDepth {
		return
	}

	f := p.Facet(id)
	parent := p.Facet(p.Parent(id))

	// The parent normal is only updated once all its children are done, so it
	// still lives in the same space as this facet's vertices.
	hinge := hingeFrame(f.Edges[f.ParentEdge].Edge, parent.Normal)
	rot := hingeRotation(hinge, f.Normal).Simplify(p.Tolerances.Simplify)

	f.Unfold = parent.Unfold.Mul(hinge).Mul(rot).Mul(hinge.Inverse()).Simplify(p.Tolerances.Simplify)
	f.Unfolded = true
	f.transform(f.Unfold, p.Tolerances.Simplify)

	for _, child := range p.Children(id) {
		p.unfold(child, depth+1, maxDepth)
	}

	f.Normal = f.Unfold.ApplyDirection(f.Normal).Simplify(p.Tolerances.Simplify).Normalize()
}

// hingeFrame maps the local frame of a hinge to world space: X runs along the
// edge, Z is the parent normal and the origin is the edge midpoint.
func hingeFrame(edge geom.Edge, parentNormal geom.Vertex) geom.Transform {
	x := edge.Dir(true)
	z := parentNormal.Vec3()
	y := z.Cross(x)
	return geom.Identity().
		SetAxis(geom.AxisX, x, true).
		SetAxis(geom.AxisY, y, true).
		SetAxis(geom.AxisZ, z, true).
		SetAxis(geom.AxisTranslation, edge.Midpoint().Vec3(), false)
}

// hingeRotation returns the rotation around the hinge X axis that brings
// normal onto the hinge Z axis.
func hingeRotation(hinge geom.Transform, normal geom.Vertex) geom.Transform {
	n := normal.Vec3()
	y := mgl64.Vec3{hinge.At(0, 1), hinge.At(1, 1), hinge.At(2, 1)}
	z := mgl64.Vec3{hinge.At(0, 2), hinge.At(1, 2), hinge.At(2, 2)}
	theta := math.Pi/2 - math.Atan2(z.Dot(n), y.Dot(n))
	return geom.RotationX(theta)
}
