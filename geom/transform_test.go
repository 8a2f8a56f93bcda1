package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformInverse(t *testing.T) {
	frame := Identity().
		SetAxis(AxisX, mgl64.Vec3{1, 1, 0}, true).
		SetAxis(AxisY, mgl64.Vec3{-1, 1, 0}, true).
		SetAxis(AxisZ, mgl64.Vec3{0, 0, 1}, true).
		SetAxis(AxisTranslation, mgl64.Vec3{3, -2, 5}, false)

	if got := frame.Mul(frame.Inverse()); !got.IsIdentity(1e-12) {
		t.Errorf("frame * inverse is not the identity: %v", got)
	}
	if got := frame.Inverse().Mul(frame); !got.IsIdentity(1e-12) {
		t.Errorf("inverse * frame is not the identity: %v", got)
	}
}

func TestTransformApply(t *testing.T) {
	rot := RotationX(math.Pi / 2)
	got := rot.Apply(NewVertex(0, 1, 0))
	if Distance(got, NewVertex(0, 0, 1)) > 1e-12 {
		t.Errorf("rotating Y around X gave %v", got)
	}

	move := Translation(1, 2, 3)
	if p := move.Apply(NewVertex(1, 1, 1)); Distance(p, NewVertex(2, 3, 4)) > 1e-12 {
		t.Errorf("translated point = %v", p)
	}
	if d := move.Apply(Direction(1, 1, 1)); Distance(d, Direction(1, 1, 1)) > 1e-12 {
		t.Errorf("directions must not be translated, got %v", d)
	}
	if d := move.ApplyDirection(NewVertex(1, 0, 0)); d != Direction(1, 0, 0) {
		t.Errorf("ApplyDirection() = %v", d)
	}
}

func TestTransformSimplify(t *testing.T) {
	m := RotationX(math.Pi / 2)
	if m.At(1, 1) == 0 {
		t.Skip("platform produced an exact cosine")
	}
	s := m.Simplify(1e-6)
	if s.At(1, 1) != 0 || s.At(2, 2) != 0 {
		t.Errorf("small cosine terms were not flushed: %v", s)
	}
	if s.At(2, 1) != 1 || s.At(1, 2) != -1 {
		t.Errorf("sine terms must survive: %v", s)
	}
}

func TestScaling(t *testing.T) {
	p := Scaling(2.5).Apply(NewVertex(1, -2, 4))
	if Distance(p, NewVertex(2.5, -5, 10)) > 1e-12 {
		t.Errorf("scaled point = %v", p)
	}
}
