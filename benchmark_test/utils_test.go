package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/testutil"
)

// shape is one benchmark matrix configuration.
type shape struct {
	rows    int
	cols    int
	missing float64
}

func (s shape) String() string {
	return fmt.Sprintf("rows=%d/cols=%d/missing=%.2f", s.rows, s.cols, s.missing)
}

var shapes = []shape{
	{rows: 64, cols: 32},
	{rows: 256, cols: 32},
	{rows: 256, cols: 128},
	{rows: 256, cols: 128, missing: 0.1},
	{rows: 1024, cols: 24},
}

// fixture fills a kernel buffer with a deterministic matrix of the given shape.
// Half of the rows follow a shared base signal so that a realistic share of
// pairs survives a moderate threshold.
func fixture(tb testing.TB, k *corrgraph.Kernel, s shape) (*corrgraph.Buffer, corrgraph.Matrix) {
	tb.Helper()

	rng := testutil.NewRNG(4711)
	base := rng.Gaussian(s.cols)

	buf, err := k.Allocate(s.rows * s.cols)
	if err != nil {
		tb.Fatal(err)
	}
	data := buf.Float64s()
	for i := 0; i < s.rows; i++ {
		var row []float64
		if i%2 == 0 {
			row = rng.Correlated(base, 0.5)
		} else {
			row = rng.Gaussian(s.cols)
		}
		copy(data[i*s.cols:], row)
	}
	rng.InjectMissing(data, s.missing)

	m, err := buf.Matrix(s.rows, s.cols)
	if err != nil {
		tb.Fatal(err)
	}
	return buf, m
}
