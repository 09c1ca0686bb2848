package corrgraph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/correlation"
	"github.com/hupe1980/corrgraph/testutil"
)

// TestNoOutstandingMemory verifies that every buffer and edge list released
// exactly once leaves the kernel with nothing accounted.
func TestNoOutstandingMemory(t *testing.T) {
	tests := []struct {
		name    string
		offHeap bool
		method  correlation.Method
		mode    correlation.Mode
		missing float64
	}{
		{name: "Pearson signed", method: correlation.MethodPearson, mode: correlation.Signed},
		{name: "Pearson absolute with missing", method: correlation.MethodPearson, mode: correlation.Absolute, missing: 0.2},
		{name: "Spearman signed off-heap", offHeap: true, method: correlation.MethodSpearman, mode: correlation.Signed},
		{name: "Spearman absolute with missing", method: correlation.MethodSpearman, mode: correlation.Absolute, missing: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &corrgraph.BasicMetricsCollector{}
			k := corrgraph.New(
				corrgraph.WithOffHeap(tt.offHeap),
				corrgraph.WithMetricsCollector(metrics),
			)
			rng := testutil.NewRNG(1234)

			const rounds = 20
			for r := 0; r < rounds; r++ {
				rows, cols := 3+r%7, 5+r%11

				buf, err := k.Allocate(rows * cols)
				require.NoError(t, err)
				data := buf.Float64s()
				copy(data, rng.GaussianMatrix(rows, cols))
				rng.InjectMissing(data, tt.missing)

				m, err := buf.Matrix(rows, cols)
				require.NoError(t, err)

				el, err := k.Edges(tt.method, m, 0.1, tt.mode)
				require.NoError(t, err)

				require.NoError(t, k.ReleaseEdges(el))
				require.NoError(t, k.Release(buf))
			}

			assert.Zero(t, k.MemoryUsage(), "bytes still accounted")
			assert.Zero(t, k.Outstanding(), "regions still live")
			assert.Positive(t, k.PeakMemoryUsage())

			stats := metrics.GetStats()
			assert.Equal(t, int64(rounds), stats.AllocateCount)
			assert.Equal(t, int64(rounds), stats.ReleaseCount)
			assert.Equal(t, int64(rounds), stats.ReleaseEdgesCount)
			assert.Zero(t, stats.AllocateErrors+stats.ReleaseErrors+stats.ExtractErrors+stats.ReleaseEdgesErrors)
		})
	}
}

// TestReleaseOrder verifies that outputs outlive their inputs.
func TestReleaseOrder(t *testing.T) {
	k := corrgraph.New()

	buf, err := k.Allocate(8)
	require.NoError(t, err)
	copy(buf.Float64s(), []float64{1, 2, 3, 4, 2, 4, 6, 8})
	m, err := buf.Matrix(2, 4)
	require.NoError(t, err)

	el, err := k.PearsonEdges(m, 0.5, correlation.Signed)
	require.NoError(t, err)

	// Input first; the edge list owns its own memory.
	require.NoError(t, k.Release(buf))
	require.Equal(t, 1, el.Len())
	assert.Equal(t, corrgraph.Edge{Source: 1, Target: 0, Weight: 1}, el.At(0))

	require.NoError(t, k.ReleaseEdges(el))
	assert.Zero(t, k.MemoryUsage())
}

func BenchmarkEdges(b *testing.B) {
	for _, method := range []correlation.Method{correlation.MethodPearson, correlation.MethodSpearman} {
		for _, rows := range []int{50, 200} {
			b.Run(fmt.Sprintf("%s/rows=%d", method, rows), func(b *testing.B) {
				const cols = 48
				k := corrgraph.New()
				rng := testutil.NewRNG(4711)
				m, err := corrgraph.NewMatrix(rng.GaussianMatrix(rows, cols), rows, cols)
				require.NoError(b, err)

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					el, err := k.Edges(method, m, 0.3, correlation.Absolute)
					if err != nil {
						b.Fatal(err)
					}
					_ = k.ReleaseEdges(el)
				}
			})
		}
	}
}
