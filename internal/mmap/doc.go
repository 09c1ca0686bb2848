// Package mmap provides anonymous read-write mappings for off-heap buffers.
//
// # Overview
//
// Matrices handed across the foreign-call boundary can be large (rows × cols
// float64 values). Backing them with anonymous mappings keeps them outside the
// Go garbage collector: the memory is returned to the OS exactly when the
// owner calls Close, never earlier and never later.
//
// # Usage
//
//	m, err := mmap.MapAnon(8 * n)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) hints
//   - Windows: VirtualAlloc/VirtualFree (advise is a no-op)
//   - Other targets (wasip1, js, plan9): plain heap slices; Close drops the reference
//
// Supported() reports whether the current platform provides real mappings.
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close returns.
package mmap
