package packing

import "fmt"

// Stats summarises a packing.
type Stats struct {
	Bins       int
	Boxes      int
	LowerBound int
	// Fill is the share of the sheet area covered by boxes, between 0 and 1.
	Fill float64
}

// Summarize computes the packing statistics of bins.
func Summarize(bins []*Bin) Stats {
	var s Stats
	var used, total float64
	var boxes []Box
	for _, bin := range bins {
		s.Bins++
		s.Boxes += len(bin.Boxes)
		used += bin.UsedArea()
		total += bin.Format.Area()
		boxes = append(boxes, bin.Boxes...)
	}
	if total > 0 {
		s.Fill = used / total
		s.LowerBound = LowerBound(boxes, bins[0].Format)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%d boxes on %d sheets (lower bound %d), %.1f%% filled", s.Boxes, s.Bins, s.LowerBound, s.Fill*100)
}
