// Package abi exposes a corrgraph.Kernel through five flat operations that
// exchange raw addresses, for hosts that share linear memory with the module
// (a WebAssembly host, typically):
//
//	alloc_f64(len) -> ptr
//	dealloc_f64(ptr, len)
//	pearson_edges(ptr, rows, cols, min_corr, take_abs) -> handle
//	spearman_edges(ptr, rows, cols, min_corr, take_abs) -> handle
//	free_edges(handle)
//
// A handle is the address of a Header. The host reads the three edge arrays
// directly from the addresses it holds and must call free_edges exactly once.
//
// Every address handed out is recorded in a Registry, which keeps the backing
// object reachable until it is released and resolves addresses by lookup, so
// no integer is ever turned back into a pointer.
package abi
