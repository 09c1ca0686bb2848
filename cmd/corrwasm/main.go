//go:build wasip1

// Command corrwasm is the WebAssembly reactor exporting the correlation graph
// kernel to a JavaScript host.
//
// Build with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o corrgraph.wasm ./cmd/corrwasm
//
// Addresses and lengths cross the boundary as 32-bit integers. A handle
// points at seven consecutive uint32 words: sources, targets, weights, len,
// sources cap, targets cap, weights cap.
package main

import (
	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/abi"
	"github.com/hupe1980/corrgraph/correlation"
)

var registry = abi.NewRegistry(corrgraph.New())

//go:wasmexport alloc_f64
func allocF64(n uint32) uint32 {
	return uint32(registry.Alloc(int(n))) //nolint:gosec // wasm addresses are 32-bit
}

//go:wasmexport dealloc_f64
func deallocF64(ptr, n uint32) {
	_ = registry.Dealloc(uintptr(ptr), int(n))
}

//go:wasmexport pearson_edges
func pearsonEdges(ptr, rows, cols uint32, minCorr float64, takeAbs uint32) uint32 {
	h := registry.PearsonEdges(uintptr(ptr), int(rows), int(cols), minCorr, correlation.ModeFromFlag(takeAbs))
	return uint32(h) //nolint:gosec // wasm addresses are 32-bit
}

//go:wasmexport spearman_edges
func spearmanEdges(ptr, rows, cols uint32, minCorr float64, takeAbs uint32) uint32 {
	h := registry.SpearmanEdges(uintptr(ptr), int(rows), int(cols), minCorr, correlation.ModeFromFlag(takeAbs))
	return uint32(h) //nolint:gosec // wasm addresses are 32-bit
}

//go:wasmexport free_edges
func freeEdges(h uint32) {
	_ = registry.FreeEdges(uintptr(h))
}

func main() {}
