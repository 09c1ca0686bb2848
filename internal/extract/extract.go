package extract

import (
	"errors"
	"fmt"

	"github.com/hupe1980/corrgraph/correlation"
	"github.com/hupe1980/corrgraph/internal/conv"
	"github.com/hupe1980/corrgraph/internal/mask"
	"github.com/hupe1980/corrgraph/internal/pool"
)

// ErrTooManyRows is returned by Run when a row index does not fit the uint32
// edge endpoints.
var ErrTooManyRows = errors.New("extract: row index exceeds uint32")

// Run dispatches to Pearson or Spearman. Pearson and Spearman assume every
// row index fits in a uint32; Run checks that before extracting.
func Run(method correlation.Method, data []float64, rows, cols int, minCorr float64, mode correlation.Mode) (Result, error) {
	if rows > 0 {
		if _, err := conv.IntToUint32(rows - 1); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrTooManyRows, err)
		}
	}

	switch method {
	case correlation.MethodPearson:
		return Pearson(data, rows, cols, minCorr, mode), nil
	case correlation.MethodSpearman:
		return Spearman(data, rows, cols, minCorr, mode), nil
	default:
		return Result{}, correlation.ErrUnknownMethod
	}
}

// Pearson extracts edges using the masked pairwise Pearson correlation.
// Cost is O(rows² × cols).
func Pearson(data []float64, rows, cols int, minCorr float64, mode correlation.Mode) Result {
	var res Result
	masks := mask.Rows(data, rows, cols)

	sc := pool.Get(cols)
	defer pool.Put(sc)
	sc.MarkSparseRows(masks)

	for i := 0; i < rows; i++ {
		if sc.IsSparse(i) {
			res.Pairs += i
			res.Undefined += i
			continue
		}
		for j := 0; j < i; j++ {
			res.Pairs++

			// Cheap reject before scanning both rows.
			if sc.IsSparse(j) || mask.JointLen(masks[i], masks[j]) < 2 {
				res.Undefined++
				continue
			}

			corr, ok := correlation.PairPearson(data, cols, i, j)
			if !ok {
				res.Undefined++
				continue
			}
			res.keep(i, j, corr, minCorr, mode)
		}
	}

	return res
}

// Spearman extracts edges using the rank correlation of each pair's jointly
// observed values. Ranks are recomputed per pair because the observed subset
// differs from pair to pair. Cost is O(rows² × cols × log cols).
func Spearman(data []float64, rows, cols int, minCorr float64, mode correlation.Mode) Result {
	var res Result
	masks := mask.Rows(data, rows, cols)

	// Scratch reused across pairs.
	sc := pool.Get(cols)
	defer pool.Put(sc)
	sc.MarkSparseRows(masks)

	for i := 0; i < rows; i++ {
		if sc.IsSparse(i) {
			res.Pairs += i
			res.Undefined += i
			continue
		}
		rowI := data[i*cols : i*cols+cols]
		for j := 0; j < i; j++ {
			res.Pairs++

			if sc.IsSparse(j) || mask.JointLen(masks[i], masks[j]) < 2 {
				res.Undefined++
				continue
			}

			rowJ := data[j*cols : j*cols+cols]
			x, y := sc.X[:0], sc.Y[:0]
			sc.Joint.Joint(masks[i], masks[j]).ForEach(func(col uint32) bool {
				x = append(x, rowI[col])
				y = append(y, rowJ[col])
				return true
			})

			sc.RankX = correlation.RankInto(sc.RankX, sc.Idx, x)
			sc.RankY = correlation.RankInto(sc.RankY, sc.Idx, y)

			corr, ok := correlation.Pearson(sc.RankX, sc.RankY)
			if !ok {
				res.Undefined++
				continue
			}
			res.keep(i, j, correlation.Round2(corr), minCorr, mode)
		}
	}

	return res
}
