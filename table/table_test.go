package table

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/correlation"
)

func TestFromRows(t *testing.T) {
	nan := math.NaN()

	t.Run("DropsRowsWithoutFiniteValues", func(t *testing.T) {
		tbl, err := FromRows(
			[]string{"a", "b", "c", "d"},
			[][]float64{
				{1, 2, 3},
				{nan, math.Inf(1), nan},
				{4, nan, 6},
				{},
			},
		)
		require.NoError(t, err)

		assert.Equal(t, 2, tbl.Rows())
		assert.Equal(t, 3, tbl.Cols())
		assert.Equal(t, []string{"a", "c"}, tbl.Names())
		assert.Equal(t, []float64{1, 2, 3}, tbl.Row(0))
		assert.True(t, math.IsNaN(tbl.Row(1)[1]))
	})

	t.Run("PadsAndTruncates", func(t *testing.T) {
		tbl, err := FromRows(
			[]string{"a", "b", "c"},
			[][]float64{
				{1, 2, 3},
				{4},
				{5, 6, 7, 8},
			},
		)
		require.NoError(t, err)

		row := tbl.Row(1)
		assert.Equal(t, 4.0, row[0])
		assert.True(t, math.IsNaN(row[1]))
		assert.True(t, math.IsNaN(row[2]))
		assert.Equal(t, []float64{5, 6, 7}, tbl.Row(2))
	})

	t.Run("InfinityBecomesMissing", func(t *testing.T) {
		tbl, err := FromRows([]string{"a"}, [][]float64{{math.Inf(-1), 2}})
		require.NoError(t, err)
		assert.True(t, math.IsNaN(tbl.Row(0)[0]))
		assert.Equal(t, 2.0, tbl.Row(0)[1])
	})

	t.Run("NamesMismatch", func(t *testing.T) {
		_, err := FromRows([]string{"a"}, [][]float64{{1}, {2}})
		assert.ErrorIs(t, err, ErrNamesMismatch)
	})

	t.Run("Empty", func(t *testing.T) {
		tbl, err := FromRows(nil, nil)
		require.NoError(t, err)
		assert.Zero(t, tbl.Rows())
	})
}

func TestTable_Build(t *testing.T) {
	nan := math.NaN()
	tbl, err := FromRows(
		[]string{"alpha", "beta", "gamma", "empty"},
		[][]float64{
			{1, 2, 3, 4, 5},
			{2, 4, 6, 8, nan},
			{5, 4, 3, 2, 1},
			{nan, nan, nan, nan, nan},
		},
	)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Rows())

	t.Run("Signed", func(t *testing.T) {
		k := corrgraph.New()

		g, err := tbl.Build(k, correlation.MethodPearson, 0.9, correlation.Signed)
		require.NoError(t, err)

		assert.Equal(t, []string{"alpha", "beta", "gamma"}, g.Nodes)
		assert.Equal(t, []Link{{Source: "beta", Target: "alpha", Weight: 1}}, g.Links)
		assert.Zero(t, k.MemoryUsage())
		assert.Zero(t, k.Outstanding())
	})

	t.Run("Absolute", func(t *testing.T) {
		k := corrgraph.New()

		g, err := tbl.Build(k, correlation.MethodSpearman, 0.9, correlation.Absolute)
		require.NoError(t, err)

		assert.Equal(t, []Link{
			{Source: "beta", Target: "alpha", Weight: 1},
			{Source: "gamma", Target: "alpha", Weight: 1},
			{Source: "gamma", Target: "beta", Weight: 1},
		}, g.Links)
		assert.Zero(t, k.MemoryUsage())
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		k := corrgraph.New()

		_, err := tbl.Build(k, correlation.Method(5), 0, correlation.Signed)
		assert.ErrorIs(t, err, corrgraph.ErrUnknownMethod)
		assert.Zero(t, k.MemoryUsage())
	})

	t.Run("MemoryLimit", func(t *testing.T) {
		k := corrgraph.New(corrgraph.WithMemoryLimit(8))

		_, err := tbl.Build(k, correlation.MethodPearson, 0, correlation.Signed)
		assert.ErrorIs(t, err, corrgraph.ErrMemoryLimitExceeded)
	})

	t.Run("JSON", func(t *testing.T) {
		g, err := tbl.Build(corrgraph.New(), correlation.MethodPearson, 0.9, correlation.Signed)
		require.NoError(t, err)

		out, err := json.Marshal(g)
		require.NoError(t, err)
		assert.JSONEq(t, `{"nodes":["alpha","beta","gamma"],"links":[{"source":"beta","target":"alpha","weight":1}]}`, string(out))
	})
}

func TestTable_BuildEmpty(t *testing.T) {
	tbl, err := FromRows([]string{"x"}, [][]float64{{math.NaN()}})
	require.NoError(t, err)

	g, err := tbl.Build(corrgraph.New(), correlation.MethodPearson, 0, correlation.Signed)
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Links)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 0.8, roundHalfUp(float64(float32(0.8))))
	assert.Equal(t, 0.35, roundHalfUp(float64(float32(0.35))))
	assert.Equal(t, 1.0, roundHalfUp(float64(float32(1))))
	assert.Equal(t, 0.13, roundHalfUp(0.125))
}
