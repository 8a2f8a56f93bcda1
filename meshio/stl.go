// Package meshio reads triangle meshes from STL files, ASCII or binary.
package meshio

import (
	"fmt"
	"io"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// Read parses an STL stream.
func Read(r io.ReadSeeker) ([]mesh.Triangle, error) {
	solid, err := stl.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stl: %w", err)
	}
	return convert(solid)
}

// ReadFile parses the STL file at path.
func ReadFile(path string) ([]mesh.Triangle, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	triangles, err := convert(solid)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return triangles, nil
}

func convert(solid *stl.Solid) ([]mesh.Triangle, error) {
	if len(solid.Triangles) == 0 {
		return nil, mesh.ErrEmptyMesh
	}

	out := make([]mesh.Triangle, len(solid.Triangles))
	for i, t := range solid.Triangles {
		v1, v2, v3 := toR3(t.Vertices[0]), toR3(t.Vertices[1]), toR3(t.Vertices[2])
		n := toR3(t.Normal)
		if r3.Norm(n) == 0 {
			// Some exporters leave the normal out.
			n = r3.Cross(r3.Sub(v2, v1), r3.Sub(v3, v1))
		}
		if r3.Norm(n) > 0 {
			n = r3.Unit(n)
		}
		out[i] = mesh.NewTriangle(vertex(v1), vertex(v2), vertex(v3), geom.Direction(n.X, n.Y, n.Z))
	}
	return out, nil
}

func toR3(v stl.Vec3) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func vertex(v r3.Vec) geom.Vertex {
	return geom.NewVertex(v.X, v.Y, v.Z)
}
