package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/corrgraph/correlation"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Gaussian returns n standard-normal values.
func (r *RNG) Gaussian(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.NormFloat64()
	}
	return out
}

// GaussianMatrix returns a rows×cols row-major matrix of independent
// standard-normal values.
func (r *RNG) GaussianMatrix(rows, cols int) []float64 {
	return r.Gaussian(rows * cols)
}

// Correlated returns base plus gaussian noise scaled by noise. Small noise
// yields a row strongly (positively) correlated with base.
func (r *RNG) Correlated(base []float64, noise float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, len(base))
	for i, v := range base {
		out[i] = v + r.rand.NormFloat64()*noise
	}
	return out
}

// InjectMissing replaces roughly frac of the values in data with NaN and
// returns how many were replaced.
func (r *RNG) InjectMissing(data []float64, frac float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := range data {
		if r.rand.Float64() < frac {
			data[i] = math.NaN()
			n++
		}
	}
	return n
}

// Stack concatenates equal-length rows into one row-major matrix.
func Stack(rows ...[]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// RankRows replaces every row of a NaN-free matrix by its ranks.
func RankRows(data []float64, rows, cols int) []float64 {
	out := make([]float64, 0, rows*cols)
	for i := range rows {
		out = append(out, correlation.Rank(data[i*cols:i*cols+cols])...)
	}
	return out
}
