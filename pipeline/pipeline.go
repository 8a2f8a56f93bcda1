// Package pipeline runs a mesh through linking, unfolding, slicing and
// packing.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/meshio"
	"github.com/bloodmagesoftware/foldout/packing"
	"github.com/bloodmagesoftware/foldout/project"
)

type (
	// Timing is the wall time one stage took.
	Timing struct {
		Stage    string
		Duration time.Duration
	}

	// Result holds everything a run produced.
	Result struct {
		// Name is used for the written files.
		Name string
		// Pool is the unfolded and sliced pool.
		Pool *mesh.Pool
		// Snapshot is the linked pool before unfolding, scaled like Pool.
		Snapshot *mesh.Pool
		Islands  []mesh.Island
		Format   packing.Format
		Bins     []*packing.Bin
		Mesh     mesh.Stats
		Packing  packing.Stats
		Timings  []Timing
	}
)

// stage runs fn and records how long it took.
func (r *Result) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("before %s: %w", name, err)
	}
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	r.Timings = append(r.Timings, Timing{Stage: name, Duration: time.Since(start)})
	return nil
}

// Run unfolds triangles and packs the pieces onto sheets of the configured
// paper format. The context is checked between stages.
func Run(ctx context.Context, triangles []mesh.Triangle, cfg *project.Config) (*Result, error) {
	format, err := cfg.PaperFormat()
	if err != nil {
		return nil, fmt.Errorf("paper format: %w", err)
	}

	r, err := Unfold(ctx, triangles, cfg)
	if err != nil {
		return nil, err
	}
	r.Format = format

	err = r.stage(ctx, "pack", func() error {
		boxes := make([]packing.Box, 0, len(r.Islands))
		for _, island := range r.Islands {
			boxes = append(boxes, packing.NewBox(island.Root, island.Bounds))
		}
		bins, err := packing.Pack(boxes, format)
		if err != nil {
			return err
		}
		r.Bins = bins
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.Packing = packing.Summarize(r.Bins)
	return r, nil
}

// Unfold runs every stage up to slicing: the result holds the islands at the
// size they are packed with, but no bins.
func Unfold(ctx context.Context, triangles []mesh.Triangle, cfg *project.Config) (*Result, error) {
	r := &Result{Name: cfg.Name}
	if r.Name == "" {
		r.Name = "pattern"
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"link", func() error {
			pool, err := mesh.NewPool(triangles, cfg.Tolerances)
			if err != nil {
				return err
			}
			pool.Link()
			r.Pool = pool
			return nil
		}},
		{"snapshot", func() error {
			snapshot, err := r.Pool.Clone()
			if err != nil {
				return err
			}
			snapshot.Scale(cfg.WorldScaling)
			r.Snapshot = snapshot
			return nil
		}},
		{"unfold", func() error {
			r.Pool.AlignRoot()
			r.Pool.Unfold(cfg.MaxDepth)
			r.Pool.Scale(cfg.WorldScaling)
			return nil
		}},
		{"slice", func() error {
			r.Islands = r.Pool.Slice()
			return nil
		}},
	}

	for _, s := range steps {
		if err := r.stage(ctx, s.name, s.fn); err != nil {
			return nil, err
		}
	}

	r.Mesh = r.Pool.Stats()
	return r, nil
}

// RunFile reads the STL file at path and runs it. Without a configured name,
// the file name is used.
func RunFile(ctx context.Context, path string, cfg *project.Config) (*Result, error) {
	triangles, err := meshio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	named := *cfg
	if named.Name == "" {
		named.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Run(ctx, triangles, &named)
}

// Total is the time all stages took together.
func (r *Result) Total() time.Duration {
	var d time.Duration
	for _, t := range r.Timings {
		d += t.Duration
	}
	return d
}
