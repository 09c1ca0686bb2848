// Package correlation provides the correlation primitives behind edge extraction.
//
// # Primitives
//
//   - Round2: two-decimal round-half-to-even, bit-for-bit reproducible
//   - PairPearson: Pearson correlation of two matrix rows with NaN masking
//   - Pearson: Pearson correlation of two already-filtered slices
//   - Rank / RankInto: 1-based ranks with ties averaged
//
// # Missing Values
//
// A NaN in either row excludes that column from the pair (pairwise masking).
// A pair with fewer than two jointly observed columns, a non-positive variance
// on either side, or an undefined result has no correlation (ok == false).
//
// # Usage
//
//	r, ok := correlation.PairPearson(data, cols, i, j)
//	rho, ok := correlation.Pearson(correlation.Rank(x), correlation.Rank(y))
//	w, keep := correlation.Absolute.Apply(correlation.Round2(rho), 0.8)
package correlation
