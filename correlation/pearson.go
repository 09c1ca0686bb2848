package correlation

import (
	"math"

	"github.com/viterin/vek"
)

// PairPearson computes the Pearson correlation of rows i and j of a row-major
// matrix with cols columns, skipping every column where either value is NaN.
//
// It returns false when fewer than two columns are jointly observed, when
// either row has non-positive variance over those columns, or when the result
// is NaN. On success the value is rounded with Round2.
//
// The caller guarantees both rows lie inside data.
func PairPearson(data []float64, cols, i, j int) (float64, bool) {
	rowI := data[i*cols : i*cols+cols]
	rowJ := data[j*cols : j*cols+cols]

	var sumX, sumY, sumXX, sumYY, sumXY float64
	n := 0

	for k := range rowI {
		x := rowI[k]
		y := rowJ[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}

		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}

	if n < 2 {
		return 0, false
	}

	corr, ok := fromSums(float64(n), sumX, sumY, sumXX, sumYY, sumXY)
	if !ok {
		return 0, false
	}
	return Round2(corr), true
}

// Pearson computes the Pearson correlation of two equal-length slices that
// contain no missing values. The result is not rounded.
//
// It returns false when the lengths differ, when fewer than two values are
// given, when either side has non-positive variance, or when the result is NaN.
func Pearson(x, y []float64) (float64, bool) {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0, false
	}

	return fromSums(float64(n),
		vek.Sum(x), vek.Sum(y),
		vek.Dot(x, x), vek.Dot(y, y), vek.Dot(x, y),
	)
}

// fromSums evaluates cov / sqrt(varX * varY) from raw moments.
func fromSums(n, sumX, sumY, sumXX, sumYY, sumXY float64) (float64, bool) {
	cov := sumXY - (sumX*sumY)/n
	varX := sumXX - (sumX*sumX)/n
	varY := sumYY - (sumY*sumY)/n

	if varX <= 0 || varY <= 0 {
		return 0, false
	}

	corr := cov / math.Sqrt(varX*varY)
	if math.IsNaN(corr) {
		return 0, false
	}
	return corr, true
}
