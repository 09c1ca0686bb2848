package corrgraph

import (
	"errors"
	"fmt"

	"github.com/hupe1980/corrgraph/correlation"
	"github.com/hupe1980/corrgraph/internal/extract"
	"github.com/hupe1980/corrgraph/internal/mem"
)

var (
	// ErrEmptyMatrix is returned when the data is empty or rows or cols is not positive.
	ErrEmptyMatrix = errors.New("corrgraph: empty matrix")

	// ErrTooManyRows is returned when a row index would not fit an edge endpoint.
	ErrTooManyRows = errors.New("corrgraph: too many rows")

	// ErrInvalidLength is returned for a negative or overflowing buffer length.
	ErrInvalidLength = errors.New("corrgraph: invalid length")

	// ErrLengthMismatch is returned when a buffer is released with a length
	// other than the one it was allocated with.
	ErrLengthMismatch = errors.New("corrgraph: length mismatch")

	// ErrReleased is returned when a buffer or edge list is released twice.
	ErrReleased = errors.New("corrgraph: already released")

	// ErrMemoryLimitExceeded is returned when an allocation would cross the
	// configured memory limit.
	ErrMemoryLimitExceeded = errors.New("corrgraph: memory limit exceeded")

	// ErrUnknownMethod is returned for a correlation method other than
	// Pearson or Spearman.
	ErrUnknownMethod = correlation.ErrUnknownMethod
)

// ErrDimensionMismatch indicates that the data is shorter than rows*cols.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Rows   int
	Cols   int
	Actual int
	cause  error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("dimension mismatch: %d x %d: %v", e.Rows, e.Cols, e.cause)
	}
	return fmt.Sprintf("dimension mismatch: %d x %d needs %d values, got %d", e.Rows, e.Cols, e.Rows*e.Cols, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mem.ErrInvalidLength) {
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	if errors.Is(err, extract.ErrTooManyRows) {
		return fmt.Errorf("%w: %w", ErrTooManyRows, err)
	}

	return err
}
