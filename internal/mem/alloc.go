package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of heap blocks (one cache line).
const Alignment = 64

// Float64Size is the size in bytes of one element.
const Float64Size = 8

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so the start can be shifted up to Alignment-1 bytes.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedFloat64 allocates a float64 slice of n elements with 64-byte alignment.
func AllocAlignedFloat64(n int) []float64 {
	if n <= 0 {
		return nil
	}
	return bytesToFloat64s(AllocAligned(n*Float64Size), n)
}

// bytesToFloat64s reinterprets b as n float64 values. b must be 8-byte aligned
// and at least n*8 bytes long.
func bytesToFloat64s(b []byte, n int) []float64 {
	ptr := unsafe.Pointer(&b[0])            //nolint:gosec // alignment is guaranteed by the callers
	return unsafe.Slice((*float64)(ptr), n) //nolint:gosec // length checked by the callers
}
