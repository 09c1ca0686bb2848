// Package extract scans every unordered row pair of a matrix and accumulates
// the thresholded correlation edges.
//
// Pairs are visited with i ascending from 0 and, for each i, j ascending from
// 0 to i-1. Edges are emitted in that order as (i, j, weight) with j < i, so
// the output of a given matrix is fully reproducible.
//
// Pearson correlates the raw rows with pairwise NaN masking. Spearman builds
// the jointly observed subset of each pair, ranks both sides independently and
// correlates the ranks. Both round to two decimals before the sign policy and
// the inclusive threshold are applied.
//
// Callers validate the matrix shape; this package assumes
// len(data) >= rows*cols and rows-1 fits in uint32.
package extract
