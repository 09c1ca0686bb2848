package corrgraph

import "github.com/hupe1980/corrgraph/internal/mem"

// Buffer is a float64 region owned by the caller between Kernel.Allocate and
// Kernel.Release. A Buffer must not be used from several goroutines at once.
type Buffer struct {
	block    *mem.Block
	n        int
	bytes    int64
	released bool
}

// Float64s returns the writable contents, or nil once released.
// Freshly allocated contents are unspecified.
func (b *Buffer) Float64s() []float64 {
	if b == nil || b.released {
		return nil
	}
	return b.block.Float64s()
}

// Len returns the element count, or 0 once released.
func (b *Buffer) Len() int {
	if b == nil || b.released {
		return 0
	}
	return b.n
}

// OffHeap reports whether the buffer is backed by a memory mapping.
func (b *Buffer) OffHeap() bool {
	return b != nil && !b.released && b.block.OffHeap()
}

// Released reports whether the buffer was returned to its kernel.
func (b *Buffer) Released() bool {
	return b != nil && b.released
}

// Matrix returns a validated row-major view of the first rows*cols elements.
func (b *Buffer) Matrix(rows, cols int) (Matrix, error) {
	return NewMatrix(b.Float64s(), rows, cols)
}
