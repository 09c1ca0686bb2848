package correlation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMethod is returned for a method name or value that is neither
// Pearson nor Spearman.
var ErrUnknownMethod = errors.New("correlation: unknown method")

// Method selects the correlation coefficient used for edge extraction.
type Method uint8

const (
	// MethodPearson correlates raw values (linear association).
	MethodPearson Method = iota
	// MethodSpearman correlates per-pair ranks (monotonic association).
	MethodSpearman
)

func (m Method) String() string {
	switch m {
	case MethodPearson:
		return "pearson"
	case MethodSpearman:
		return "spearman"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m == MethodPearson || m == MethodSpearman
}

// ParseMethod parses "pearson" or "spearman" (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pearson":
		return MethodPearson, nil
	case "spearman":
		return MethodSpearman, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Mode is the sign policy applied to a correlation before thresholding.
type Mode uint8

const (
	// Signed keeps only strictly positive correlations.
	Signed Mode = iota
	// Absolute keeps the magnitude of any correlation.
	Absolute
)

// ModeFromFlag decodes the integer flag used at the foreign-call boundary:
// zero means Signed, anything else means Absolute.
func ModeFromFlag(flag uint32) Mode {
	if flag != 0 {
		return Absolute
	}
	return Signed
}

func (m Mode) String() string {
	switch m {
	case Signed:
		return "signed"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Apply transforms corr according to the mode and checks it against the
// inclusive lower bound minCorr. It returns the value to store as edge weight
// and whether the edge is kept.
func (m Mode) Apply(corr, minCorr float64) (float64, bool) {
	if m == Absolute {
		corr = math.Abs(corr)
	} else if corr <= 0 {
		return 0, false
	}

	if corr < minCorr {
		return 0, false
	}
	return corr, true
}
