package integration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/abi"
	"github.com/hupe1980/corrgraph/correlation"
	"github.com/hupe1980/corrgraph/table"
	"github.com/hupe1980/corrgraph/testutil"
)

// TestE2E_SurfacesAgree extracts the same matrix through the kernel, the
// address registry and the table layer and checks that all three agree.
func TestE2E_SurfacesAgree(t *testing.T) {
	const rows, cols = 12, 30
	rng := testutil.NewRNG(8)
	base := rng.Gaussian(cols)

	raw := make([][]float64, rows)
	names := make([]string, rows)
	for i := range raw {
		if i%3 == 0 {
			raw[i] = rng.Gaussian(cols)
		} else {
			raw[i] = rng.Correlated(base, 0.4)
		}
		rng.InjectMissing(raw[i], 0.1)
		names[i] = string(rune('a' + i))
	}
	data := testutil.Stack(raw...)

	for _, method := range []correlation.Method{correlation.MethodPearson, correlation.MethodSpearman} {
		for _, flag := range []uint32{0, 1} {
			mode := correlation.ModeFromFlag(flag)
			t.Run(method.String()+"/"+mode.String(), func(t *testing.T) {
				k := corrgraph.New()

				// 1. Kernel
				m, err := corrgraph.NewMatrix(data, rows, cols)
				require.NoError(t, err)
				direct, err := k.Edges(method, m, 0.25, mode)
				require.NoError(t, err)
				require.Positive(t, direct.Len())

				// 2. Registry
				reg := abi.NewRegistry(k)
				ptr := reg.Alloc(rows * cols)
				copy(reg.Buffer(ptr).Float64s(), data)
				h := reg.Edges(method, ptr, rows, cols, 0.25, mode)
				require.NotZero(t, h)

				viaABI := reg.EdgeList(h)
				assert.Equal(t, direct.Sources(), viaABI.Sources())
				assert.Equal(t, direct.Targets(), viaABI.Targets())
				assert.Equal(t, direct.Weights(), viaABI.Weights())

				hdr, ok := reg.Header(h)
				require.True(t, ok)
				assert.Equal(t, abi.Word(direct.Len()), hdr.Len)

				// 3. Table
				tbl, err := table.FromRows(names, raw)
				require.NoError(t, err)
				g, err := tbl.Build(k, method, 0.25, mode)
				require.NoError(t, err)
				require.Len(t, g.Links, direct.Len())
				for i, e := range direct.All() {
					assert.Equal(t, names[e.Source], g.Links[i].Source)
					assert.Equal(t, names[e.Target], g.Links[i].Target)
					assert.InDelta(t, float64(e.Weight), g.Links[i].Weight, 1e-6)
				}

				// 4. Release everything
				require.NoError(t, reg.FreeEdges(h))
				require.NoError(t, reg.Dealloc(ptr, rows*cols))
				require.NoError(t, k.ReleaseEdges(direct))
				assert.Zero(t, reg.Outstanding())
				assert.Zero(t, k.MemoryUsage())
				assert.Zero(t, k.Outstanding())
			})
		}
	}
}

// TestE2E_OffHeapMatchesHeap checks that the backing of the input buffer does
// not influence the result.
func TestE2E_OffHeapMatchesHeap(t *testing.T) {
	const rows, cols = 20, 16
	values := testutil.NewRNG(5).GaussianMatrix(rows, cols)

	extract := func(k *corrgraph.Kernel) []float32 {
		buf, err := k.Allocate(rows * cols)
		require.NoError(t, err)
		copy(buf.Float64s(), values)
		m, err := buf.Matrix(rows, cols)
		require.NoError(t, err)

		el, err := k.SpearmanEdges(m, 0, correlation.Absolute)
		require.NoError(t, err)
		w := append([]float32(nil), el.Weights()...)

		require.NoError(t, k.ReleaseEdges(el))
		require.NoError(t, k.Release(buf))
		assert.Zero(t, k.MemoryUsage())
		return w
	}

	heap := extract(corrgraph.New())
	offHeap := extract(corrgraph.New(corrgraph.WithOffHeap(true)))
	assert.Equal(t, heap, offHeap)

	for _, w := range heap {
		assert.Equal(t, float64(w), float64(float32(correlation.Round2(float64(w)))))
		assert.False(t, math.IsNaN(float64(w)))
	}
}
