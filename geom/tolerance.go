package geom

// Tolerances groups the epsilon values every approximate comparison in the
// unfolding pipeline relies on. They are tuned empirically for meshes whose
// unit is the millimeter.
type Tolerances struct {
	// VertexDistance is the maximum distance between two vertices that are
	// considered the same point.
	VertexDistance float64 `yaml:"vertex_distance"`
	// OverlapMargin is the band at both ends of an edge where a crossing is
	// treated as an endpoint touch rather than an overlap.
	OverlapMargin float64 `yaml:"overlap_margin"`
	// Simplify is the magnitude under which matrix and vector coefficients
	// are flushed to zero.
	Simplify float64 `yaml:"simplify"`
	// Parallel is the smallest |sin| of the angle between two edges for
	// which an intersection is computed.
	Parallel float64 `yaml:"parallel"`
}

// DefaultTolerances returns the tolerances used when nothing else is configured.
func DefaultTolerances() Tolerances {
	return Tolerances{
		VertexDistance: 1e-3,
		OverlapMargin:  1e-3,
		Simplify:       1e-6,
		Parallel:       1e-6,
	}
}

// Distance2 returns the squared vertex distance tolerance.
func (t Tolerances) Distance2() float64 {
	return t.VertexDistance * t.VertexDistance
}

// Inside reports whether the parameter lies strictly inside (margin, 1-margin).
func (t Tolerances) Inside(p float64) bool {
	return p > t.OverlapMargin && p < 1-t.OverlapMargin
}
