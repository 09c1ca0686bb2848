package corrgraph

import (
	"iter"
	"time"

	"github.com/hupe1980/corrgraph/correlation"
	"github.com/hupe1980/corrgraph/internal/extract"
)

const edgeWordSize = 4 // uint32 and float32 elements

// Edge is one thresholded correlation between rows Source and Target,
// with Target < Source.
type Edge struct {
	Source uint32
	Target uint32
	Weight float32
}

// EdgeList holds the edges of one extraction as three parallel sequences in
// emission order: Source ascending, then Target ascending.
//
// The list is owned by the caller until Kernel.ReleaseEdges. Accessors on a
// released list return nil or zero.
type EdgeList struct {
	sources []uint32
	targets []uint32
	weights []float32

	method    correlation.Method
	mode      correlation.Mode
	pairs     int
	undefined int
	bytes     int64
	released  bool
}

// Sources returns the source row of each edge. The slice aliases the list.
func (el *EdgeList) Sources() []uint32 {
	if el == nil {
		return nil
	}
	return el.sources
}

// Targets returns the target row of each edge. The slice aliases the list.
func (el *EdgeList) Targets() []uint32 {
	if el == nil {
		return nil
	}
	return el.targets
}

// Weights returns the weight of each edge. The slice aliases the list.
func (el *EdgeList) Weights() []float32 {
	if el == nil {
		return nil
	}
	return el.weights
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	if el == nil {
		return 0
	}
	return len(el.weights)
}

// Caps returns the capacities of the three sequences.
func (el *EdgeList) Caps() (sources, targets, weights int) {
	if el == nil {
		return 0, 0, 0
	}
	return cap(el.sources), cap(el.targets), cap(el.weights)
}

// At returns edge i. It panics if i is out of range.
func (el *EdgeList) At(i int) Edge {
	return Edge{Source: el.sources[i], Target: el.targets[i], Weight: el.weights[i]}
}

// All iterates the edges in emission order.
func (el *EdgeList) All() iter.Seq2[int, Edge] {
	return func(yield func(int, Edge) bool) {
		for i := range el.Len() {
			if !yield(i, el.At(i)) {
				return
			}
		}
	}
}

// Method returns the correlation method that produced the list.
func (el *EdgeList) Method() correlation.Method { return el.method }

// Mode returns the sign policy that produced the list.
func (el *EdgeList) Mode() correlation.Mode { return el.mode }

// Pairs returns the number of row pairs visited.
func (el *EdgeList) Pairs() int { return el.pairs }

// Undefined returns the number of visited pairs without a correlation.
func (el *EdgeList) Undefined() int { return el.undefined }

// Released reports whether the list was returned to its kernel.
func (el *EdgeList) Released() bool {
	return el != nil && el.released
}

// PearsonEdges extracts the edges of m using the Pearson correlation.
func (k *Kernel) PearsonEdges(m Matrix, minCorr float64, mode correlation.Mode) (*EdgeList, error) {
	return k.Edges(correlation.MethodPearson, m, minCorr, mode)
}

// SpearmanEdges extracts the edges of m using the Spearman rank correlation.
func (k *Kernel) SpearmanEdges(m Matrix, minCorr float64, mode correlation.Mode) (*EdgeList, error) {
	return k.Edges(correlation.MethodSpearman, m, minCorr, mode)
}

// Edges extracts the edges of m with the given method.
//
// Every unordered row pair (i, j), j < i, is correlated and the value rounded
// to two decimals. Signed mode drops non-positive values, Absolute mode takes
// the magnitude. Values below minCorr are dropped; the bound is inclusive.
// Pairs without a defined correlation are skipped.
//
// Input problems are the only errors: ErrEmptyMatrix, *ErrDimensionMismatch,
// ErrTooManyRows and ErrUnknownMethod. ErrMemoryLimitExceeded is returned if
// the result does not fit the configured limit.
func (k *Kernel) Edges(method correlation.Method, m Matrix, minCorr float64, mode correlation.Mode) (*EdgeList, error) {
	start := time.Now()
	el, err := k.edges(method, m, minCorr, mode)
	k.metrics.RecordExtract(method, el.Len(), time.Since(start), err)
	k.logger.WithMethod(method).WithShape(m.Rows, m.Cols).LogExtract(el.Len(), err)
	return el, err
}

func (k *Kernel) edges(method correlation.Method, m Matrix, minCorr float64, mode correlation.Mode) (*EdgeList, error) {
	if !method.Valid() {
		return nil, ErrUnknownMethod
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	res, err := extract.Run(method, m.Data, m.Rows, m.Cols, minCorr, mode)
	if err != nil {
		return nil, translateError(err)
	}

	el := &EdgeList{
		sources:   res.Sources,
		targets:   res.Targets,
		weights:   res.Weights,
		method:    method,
		mode:      mode,
		pairs:     res.Pairs,
		undefined: res.Undefined,
	}
	s, t, w := el.Caps()
	el.bytes = int64(s+t+w) * edgeWordSize
	if err := k.reserve(el.bytes); err != nil {
		return nil, err
	}
	return el, nil
}

// ReleaseEdges returns el to the kernel. A nil list is a no-op. Releasing the
// same list twice returns ErrReleased.
func (k *Kernel) ReleaseEdges(el *EdgeList) error {
	if el == nil {
		return nil
	}

	n := el.Len()
	err := k.releaseEdges(el)
	k.metrics.RecordReleaseEdges(n, err)
	k.logger.LogReleaseEdges(n, err)
	return err
}

func (k *Kernel) releaseEdges(el *EdgeList) error {
	if el.released {
		return ErrReleased
	}
	el.released = true

	k.rc.ReleaseMemory(el.bytes)
	el.sources, el.targets, el.weights = nil, nil, nil
	return nil
}
