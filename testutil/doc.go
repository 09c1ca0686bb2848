// Package testutil provides testing utilities for corrgraph.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG and generators for row-major float64
// matrices with controlled correlation structure and missing values.
//
// # Random Matrices
//
//	rng := testutil.NewRNG(seed)
//	data := rng.GaussianMatrix(rows, cols)    // independent standard-normal rows
//	row := rng.Correlated(base, 0.1)          // base plus gaussian noise
//	rng.InjectMissing(data, 0.05)             // ~5% NaN
//
// # Reference Transforms
//
//	ranked := testutil.RankRows(data, rows, cols) // row-wise ranks (no NaN)
package testutil
