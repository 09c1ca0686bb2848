package correlation

import (
	"cmp"
	"slices"
)

// Rank returns the 1-based rank of every value, in the original order.
// Tied values share the mean of the ranks they jointly occupy, so a pair tied
// for ranks 2 and 3 both receive 2.5. values must not contain NaN.
func Rank(values []float64) []float64 {
	return RankInto(nil, nil, values)
}

// RankInto is Rank with caller-provided scratch space. dst receives the ranks
// and idx is used for the sort permutation; both are grown when too small.
// The returned slice aliases dst when its capacity suffices.
func RankInto(dst []float64, idx []int, values []float64) []float64 {
	n := len(values)
	dst = grow(dst, n)
	if cap(idx) < n {
		idx = make([]int, n)
	}
	idx = idx[:n]

	for k := range idx {
		idx[k] = k
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	for i := 0; i < n; {
		j := i
		v := values[idx[i]]
		for j+1 < n && values[idx[j+1]] == v {
			j++
		}

		// Positions i..j (0-based) hold ranks i+1..j+1.
		rank := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			dst[idx[k]] = rank
		}
		i = j + 1
	}

	return dst
}

func grow(s []float64, n int) []float64 {
	if s == nil || cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
