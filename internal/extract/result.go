package extract

import "github.com/hupe1980/corrgraph/correlation"

// Result holds the three parallel edge sequences of one extraction.
type Result struct {
	Sources []uint32
	Targets []uint32
	Weights []float32

	// Pairs is the number of row pairs visited.
	Pairs int
	// Undefined counts pairs without a correlation (too few joint
	// observations, zero variance or NaN).
	Undefined int
}

// Len returns the number of edges.
func (r Result) Len() int {
	return len(r.Weights)
}

// keep applies the sign policy and threshold and appends the edge if it survives.
func (r *Result) keep(i, j int, corr, minCorr float64, mode correlation.Mode) {
	w, ok := mode.Apply(corr, minCorr)
	if !ok {
		return
	}
	r.Sources = append(r.Sources, uint32(i)) //nolint:gosec // rows-1 fits in uint32, checked by Run
	r.Targets = append(r.Targets, uint32(j)) //nolint:gosec // j < i
	r.Weights = append(r.Weights, float32(w))
}
