package mem

import "errors"

// ErrInvalidLength is returned for non-positive or overflowing element counts.
var ErrInvalidLength = errors.New("mem: invalid length")
