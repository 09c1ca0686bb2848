// Package mem provides float64 block allocation for caller-populated matrices.
//
// # Aligned Allocation
//
// Heap blocks start on a 64-byte boundary so row scans stay cache-line
// aligned regardless of where the allocator placed the backing array.
//
// # Off-Heap Blocks
//
// NewOffHeap backs a block with an anonymous mapping (internal/mmap). The
// memory is invisible to the garbage collector and is returned to the OS in
// Free. Platforms without mappings transparently receive a heap block.
package mem
