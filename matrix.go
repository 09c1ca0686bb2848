package corrgraph

import "github.com/hupe1980/corrgraph/internal/conv"

// Matrix is a row-major view over rows*cols float64 values. NaN marks a
// missing observation. Values past rows*cols are ignored.
type Matrix struct {
	Data []float64
	Rows int
	Cols int
}

// NewMatrix returns a validated view over data.
func NewMatrix(data []float64, rows, cols int) (Matrix, error) {
	m := Matrix{Data: data, Rows: rows, Cols: cols}
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// Validate checks that the shape is non-empty and covered by Data.
func (m Matrix) Validate() error {
	if len(m.Data) == 0 || m.Rows <= 0 || m.Cols <= 0 {
		return ErrEmptyMatrix
	}

	n, err := conv.MulInt(m.Rows, m.Cols)
	if err != nil {
		return &ErrDimensionMismatch{Rows: m.Rows, Cols: m.Cols, Actual: len(m.Data), cause: err}
	}
	if len(m.Data) < n {
		return &ErrDimensionMismatch{Rows: m.Rows, Cols: m.Cols, Actual: len(m.Data)}
	}

	if _, err := conv.IntToUint32(m.Rows - 1); err != nil {
		return ErrTooManyRows
	}
	return nil
}

// Row returns row i. It panics if i is out of range.
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}
