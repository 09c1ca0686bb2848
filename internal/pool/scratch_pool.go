// Package pool provides object pools for allocation-free edge extraction.
// Uses sync.Pool for automatic memory reuse and bitsets for row bookkeeping.
package pool

import (
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/corrgraph/internal/mask"
)

const (
	// DefaultRows is the initial capacity of the sparse-row bitset.
	DefaultRows = 4096

	// DefaultCols is the initial capacity of the per-pair buffers.
	DefaultCols = 1024
)

// Scratch holds the buffers one extraction reuses across row pairs.
// A Scratch serves a single extraction at a time.
type Scratch struct {
	// Sparse marks rows with fewer than two observed columns. No pair
	// involving such a row has a correlation.
	Sparse *bitset.BitSet

	// Joint receives the jointly observed columns of the current pair.
	Joint *mask.Set

	// X and Y receive the jointly observed values of the current pair.
	X []float64
	Y []float64

	// RankX, RankY and Idx are rank scratch.
	RankX []float64
	RankY []float64
	Idx   []int
}

var scratchPool = sync.Pool{
	New: func() any {
		return &Scratch{
			Sparse: bitset.New(DefaultRows),
			Joint:  mask.New(),
			X:      make([]float64, 0, DefaultCols),
			Y:      make([]float64, 0, DefaultCols),
			RankX:  make([]float64, 0, DefaultCols),
			RankY:  make([]float64, 0, DefaultCols),
			Idx:    make([]int, 0, DefaultCols),
		}
	},
}

// Get retrieves a Scratch sized for cols columns from the pool.
func Get(cols int) *Scratch {
	s := scratchPool.Get().(*Scratch)
	s.Reset(cols)
	return s
}

// Put returns a Scratch to the pool for reuse. Oversized buffers are dropped
// so that one huge matrix does not pin its scratch forever.
func Put(s *Scratch) {
	if s.Sparse.Len() > DefaultRows*16 {
		s.Sparse = bitset.New(DefaultRows)
	}
	if cap(s.X) > DefaultCols*16 {
		s.X = make([]float64, 0, DefaultCols)
		s.Y = make([]float64, 0, DefaultCols)
		s.RankX = make([]float64, 0, DefaultCols)
		s.RankY = make([]float64, 0, DefaultCols)
		s.Idx = make([]int, 0, DefaultCols)
	}
	scratchPool.Put(s)
}

// Reset clears the Scratch and makes every buffer hold at least cols values.
func (s *Scratch) Reset(cols int) {
	s.Sparse.ClearAll()
	s.X = ensure(s.X, cols)
	s.Y = ensure(s.Y, cols)
	s.RankX = ensure(s.RankX, cols)
	s.RankY = ensure(s.RankY, cols)
	if cap(s.Idx) < cols {
		s.Idx = make([]int, 0, cols)
	}
	s.Idx = s.Idx[:0]
}

func ensure(b []float64, n int) []float64 {
	if cap(b) < n {
		return make([]float64, 0, n)
	}
	return b[:0]
}

// MarkSparse records that row has fewer than two observations.
func (s *Scratch) MarkSparse(row int) {
	s.Sparse.Set(uint(row))
}

// IsSparse reports whether row was marked sparse.
func (s *Scratch) IsSparse(row int) bool {
	return s.Sparse.Test(uint(row))
}

// MarkSparseRows marks every row whose mask holds fewer than two columns and
// returns how many were marked.
func (s *Scratch) MarkSparseRows(masks []*mask.Set) int {
	n := 0
	for i, m := range masks {
		if m.Len() < 2 {
			s.MarkSparse(i)
			n++
		}
	}
	return n
}
