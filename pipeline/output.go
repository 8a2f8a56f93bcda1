package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/bloodmagesoftware/foldout/export"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/packager"
	"github.com/bloodmagesoftware/foldout/project"
)

// projectionTimeout bounds the rendering of a single view.
const projectionTimeout = 30 * time.Second

// Written lists the files a result was written to.
type Written struct {
	Sheets      []string
	Rasters     []string
	Projections []string
	// Archive is empty unless the output was bundled.
	Archive string
}

// Write stores the sheets of r and the extra outputs cfg asks for in
// cfg.Output.Directory.
func (r *Result) Write(cfg *project.Config) (*Written, error) {
	dir := cfg.Output.Directory
	opts := export.Options{Resolution: cfg.Resolution, Debug: cfg.Output.SVGDebug}
	w := &Written{}

	sheets, err := export.WriteSheets(dir, r.Name, r.Pool, r.Bins, opts)
	if err != nil {
		return nil, fmt.Errorf("writing sheets: %w", err)
	}
	w.Sheets = sheets

	if cfg.Output.Raster {
		rasters, err := export.WriteRasters(dir, r.Name, r.Pool, r.Bins, opts)
		if err != nil {
			return nil, fmt.Errorf("writing rasters: %w", err)
		}
		w.Rasters = rasters
	}

	if !cfg.Output.Archive {
		if cfg.Output.Projection {
			projections, err := export.WriteProjections(dir, r.Name, r.Snapshot, opts)
			if err != nil {
				return nil, fmt.Errorf("writing projections: %w", err)
			}
			w.Projections = projections
		}
		return w, nil
	}

	var projErr error
	var views iter.Seq2[string, []byte] = func(yield func(string, []byte) bool) {}
	if cfg.Output.Projection {
		views = projectionsIterator(r.Snapshot, r.Name, opts, &projErr)
	}

	configData, err := cfg.Marshal()
	if err != nil {
		return nil, err
	}
	generated := func(yield func(string, []byte) bool) {
		for name, data := range views {
			if !yield(name, data) {
				return
			}
		}
		yield(project.FileName(), configData)
	}

	archive, err := packager.Bundle(packager.BundleConfig{
		Name:      r.Name,
		OutputDir: dir,
		Files:     append(append([]string{}, w.Sheets...), w.Rasters...),
		Generated: generated,
	})
	if err != nil {
		return nil, fmt.Errorf("bundling: %w", err)
	}
	if projErr != nil {
		return nil, projErr
	}
	w.Archive = archive
	return w, nil
}

// projectionsIterator yields (fileName, svgBytes) pairs for every view of
// snapshot. A view that fails or takes longer than projectionTimeout stops the
// iteration and is reported through errp.
func projectionsIterator(snapshot *mesh.Pool, name string, opts export.Options, errp *error) iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, view := range export.Views {
			ctx, cancel := context.WithTimeout(context.Background(), projectionTimeout)

			type result struct {
				bytes []byte
				err   error
			}
			resultChan := make(chan result, 1)

			go func() {
				var buf bytes.Buffer
				err := export.WriteProjection(&buf, snapshot, view, opts)
				resultChan <- result{bytes: buf.Bytes(), err: err}
			}()

			select {
			case <-ctx.Done():
				cancel()
				*errp = fmt.Errorf("rendering %s view: %w", view, ctx.Err())
				return
			case res := <-resultChan:
				cancel()
				if res.err != nil {
					*errp = res.err
					return
				}
				if !yield(fmt.Sprintf("%s-%s.svg", name, view), res.bytes) {
					return
				}
			}
		}
	}
}
