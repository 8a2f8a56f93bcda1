package meshio

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/hschendel/stl"
)

func cornerSolid() *stl.Solid {
	o := stl.Vec3{0, 0, 0}
	x := stl.Vec3{10, 0, 0}
	y := stl.Vec3{0, 10, 0}
	z := stl.Vec3{0, 0, 10}
	return &stl.Solid{
		Name: "corner",
		Triangles: []stl.Triangle{
			{Normal: stl.Vec3{0, 0, -1}, Vertices: [3]stl.Vec3{o, y, x}},
			{Normal: stl.Vec3{0, -1, 0}, Vertices: [3]stl.Vec3{o, x, z}},
			{Normal: stl.Vec3{-1, 0, 0}, Vertices: [3]stl.Vec3{o, z, y}},
			// Normal left out on purpose.
			{Vertices: [3]stl.Vec3{x, y, z}},
		},
	}
}

func TestRead(t *testing.T) {
	for _, ascii := range []bool{false, true} {
		solid := cornerSolid()
		solid.IsAscii = ascii

		var buf bytes.Buffer
		if err := solid.WriteAll(&buf); err != nil {
			t.Fatalf("writing stl: %v", err)
		}

		triangles, err := Read(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("Read() ascii=%v error = %v", ascii, err)
		}
		if len(triangles) != 4 {
			t.Fatalf("got %d triangles, want 4", len(triangles))
		}
		if triangles[1].V2.X() != 10 {
			t.Errorf("second triangle = %+v", triangles[1])
		}

		n := triangles[3].Normal
		want := 1 / math.Sqrt(3)
		if math.Abs(n.X()-want) > 1e-6 || math.Abs(n.Y()-want) > 1e-6 || math.Abs(n.Z()-want) > 1e-6 {
			t.Errorf("missing normal recomputed as %v", n)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.stl")
	if err := cornerSolid().WriteFile(path); err != nil {
		t.Fatalf("writing stl: %v", err)
	}

	triangles, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if _, err := mesh.NewPool(triangles, geom.DefaultTolerances()); err != nil {
		t.Errorf("pool from file: %v", err)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.stl")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestConvertEmpty(t *testing.T) {
	if _, err := convert(&stl.Solid{Name: "empty"}); !errors.Is(err, mesh.ErrEmptyMesh) {
		t.Errorf("convert() error = %v, want ErrEmptyMesh", err)
	}
}
