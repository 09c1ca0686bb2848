package corrgraph_test

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/correlation"
)

// Example demonstrates the buffer and edge list lifecycle.
func Example() {
	k := corrgraph.New()

	values := []float64{
		1, 2, 3, 4, 5, 6,     // row 0
		2, 4, 6, 8, 10, 12,   // row 1, perfectly correlated with row 0
		1, -1, -1, -1, -1, 1, // row 2, uncorrelated
	}

	buf, err := k.Allocate(len(values))
	if err != nil {
		log.Fatal(err)
	}
	copy(buf.Float64s(), values)

	m, err := buf.Matrix(3, 6)
	if err != nil {
		log.Fatal(err)
	}

	edges, err := k.PearsonEdges(m, 0.99, correlation.Signed)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range edges.All() {
		fmt.Printf("%d -> %d: %.2f\n", e.Source, e.Target, e.Weight)
	}

	_ = k.ReleaseEdges(edges)
	_ = k.Release(buf)

	fmt.Println("outstanding bytes:", k.MemoryUsage())
	// Output:
	// 1 -> 0: 1.00
	// outstanding bytes: 0
}

// ExampleKernel_SpearmanEdges shows missing observations and the absolute mode.
func ExampleKernel_SpearmanEdges() {
	k := corrgraph.New()
	nan := math.NaN()

	m, err := corrgraph.NewMatrix([]float64{
		1, 2, 3, 4, nan,
		10, 20, 30, 40, 50,
		9, 7, 5, 3, 1,
	}, 3, 5)
	if err != nil {
		log.Fatal(err)
	}

	edges, err := k.SpearmanEdges(m, 0.9, correlation.Absolute)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = k.ReleaseEdges(edges) }()

	for _, e := range edges.All() {
		fmt.Printf("%d -> %d: %.2f\n", e.Source, e.Target, e.Weight)
	}
	// Output:
	// 1 -> 0: 1.00
	// 2 -> 0: 1.00
	// 2 -> 1: 1.00
}

// ExampleWithMemoryLimit demonstrates bounding the memory held by a kernel.
func ExampleWithMemoryLimit() {
	k := corrgraph.New(corrgraph.WithMemoryLimit(1 << 10))

	_, err := k.Allocate(1 << 10)
	fmt.Println(errors.Is(err, corrgraph.ErrMemoryLimitExceeded))
	// Output: true
}
