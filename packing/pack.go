package packing

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrBoxTooLarge is returned when a box fits the format in neither
// orientation.
var ErrBoxTooLarge = errors.New("box does not fit the paper format")

// Validate checks that every box fits the format in at least one orientation.
func Validate(boxes []Box, format Format) error {
	if err := format.Validate(); err != nil {
		return err
	}
	var errs []error
	for _, box := range boxes {
		if !fits(box, format, false) && !fits(box, format, true) {
			errs = append(errs, fmt.Errorf("island %d is %.1fx%.1fmm, %s is %gx%gmm: %w",
				box.Root, box.Width, box.Height, format.Name, format.Width, format.Height, ErrBoxTooLarge))
		}
	}
	return errors.Join(errs...)
}

func fits(box Box, format Format, rotated bool) bool {
	box.Rotated = rotated
	return box.PlacedWidth() <= format.Width+simplifyThreshold &&
		box.PlacedHeight() <= format.Height+simplifyThreshold
}

// LowerBound is the number of bins the total box area needs at least.
func LowerBound(boxes []Box, format Format) int {
	var area float64
	for _, box := range boxes {
		area += box.Area()
	}
	return int(math.Ceil(area / format.Area()))
}

// Pack places every box on as few sheets as the corner heuristic finds.
//
// Boxes are taken by decreasing area and turned to lie wider than tall. As
// many bins as the area lower bound asks for are opened up front. Each box
// goes to the (bin, corner, orientation) with the best positive score; when
// nothing scores, a new bin is opened for it.
func Pack(boxes []Box, format Format) ([]*Bin, error) {
	if err := Validate(boxes, format); err != nil {
		return nil, err
	}

	sorted := slices.Clone(boxes)
	slices.SortStableFunc(sorted, func(a, b Box) int {
		switch {
		case a.Area() > b.Area():
			return -1
		case a.Area() < b.Area():
			return 1
		}
		return 0
	})
	for i := range sorted {
		sorted[i].ID = i
		sorted[i].Rotated = sorted[i].Width < sorted[i].Height
	}

	bins := make([]*Bin, 0, LowerBound(sorted, format))
	for i := 0; i < cap(bins); i++ {
		bins = append(bins, NewBin(i, format))
	}

	for _, box := range sorted {
		var (
			best        float64
			bestBin     *Bin
			bestCorner  int
			bestRotated bool
		)
		for _, bin := range bins {
			for c := range bin.Corners {
				for _, rotated := range []bool{box.Rotated, !box.Rotated} {
					if score := bin.Score(c, box, rotated); score > best {
						best, bestBin, bestCorner, bestRotated = score, bin, c, rotated
					}
				}
			}
		}

		if bestBin != nil {
			bestBin.Place(bestCorner, box, bestRotated)
			continue
		}

		bin := NewBin(len(bins), format)
		bins = append(bins, bin)
		rotated := box.Rotated
		if !fits(box, format, rotated) {
			rotated = !rotated
		}
		bin.Place(0, box, rotated)
	}
	return bins, nil
}
