package mem

import (
	"math"

	"github.com/hupe1980/corrgraph/internal/mmap"
)

// Block is a float64 region with exactly one owner.
type Block struct {
	data    []float64
	mapping *mmap.Mapping
}

// NewHeap returns an aligned heap block of n elements.
func NewHeap(n int) (*Block, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	return &Block{data: AllocAlignedFloat64(n)}, nil
}

// NewOffHeap returns a block of n elements backed by an anonymous mapping.
// On platforms without mappings it behaves like NewHeap.
func NewOffHeap(n int) (*Block, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	if !mmap.Supported() {
		return NewHeap(n)
	}

	m, err := mmap.MapAnon(n * Float64Size)
	if err != nil {
		return nil, err
	}
	// Extraction reads the block row after row. The hint is advisory; a
	// refused madvise leaves the mapping fully usable.
	_ = m.Advise(mmap.AccessSequential)

	return &Block{
		data:    bytesToFloat64s(m.Bytes(), n),
		mapping: m,
	}, nil
}

func checkLen(n int) error {
	if n <= 0 || n > math.MaxInt/Float64Size-Alignment {
		return ErrInvalidLength
	}
	return nil
}

// Float64s returns the block contents. The slice is nil after Free.
func (b *Block) Float64s() []float64 {
	return b.data
}

// Len returns the number of elements in the block.
func (b *Block) Len() int {
	return len(b.data)
}

// Bytes returns the logical size of the block in bytes.
func (b *Block) Bytes() int64 {
	return int64(len(b.data)) * Float64Size
}

// OffHeap reports whether the block lives outside the Go heap.
func (b *Block) OffHeap() bool {
	return b.mapping != nil
}

// Free returns the memory. Heap blocks are dropped for the collector; mapped
// blocks are unmapped immediately. Free is idempotent.
func (b *Block) Free() error {
	b.data = nil
	if b.mapping != nil {
		return b.mapping.Close()
	}
	return nil
}
