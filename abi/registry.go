package abi

import (
	"errors"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/correlation"
)

// ErrUnknownAddress is returned for an address the registry never handed out
// or has already taken back.
var ErrUnknownAddress = errors.New("abi: unknown address")

type handle struct {
	header *Header
	edges  *corrgraph.EdgeList
}

// Registry maps the addresses given to a host onto the kernel objects behind
// them. Misuse by the host (unknown addresses, mismatched lengths, double
// release) is detected, logged at warn level and never corrupts memory.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	k       *corrgraph.Kernel
	logger  *corrgraph.Logger
	buffers map[uintptr]*corrgraph.Buffer
	handles map[uintptr]handle
}

// NewRegistry creates a Registry backed by k.
func NewRegistry(k *corrgraph.Kernel) *Registry {
	return &Registry{
		k:       k,
		logger:  k.Logger(),
		buffers: make(map[uintptr]*corrgraph.Buffer),
		handles: make(map[uintptr]handle),
	}
}

// Alloc allocates n float64 values and returns their address, or 0 when n is
// zero or the allocation fails.
func (r *Registry) Alloc(n int) uintptr {
	b, err := r.k.Allocate(n)
	if err != nil || b == nil {
		return 0
	}

	ptr := addrOf(&b.Float64s()[0])
	r.buffers[ptr] = b
	return ptr
}

// Buffer returns the live buffer at ptr, or nil.
func (r *Registry) Buffer(ptr uintptr) *corrgraph.Buffer {
	return r.buffers[ptr]
}

// Dealloc releases the buffer at ptr. n must be the length it was allocated
// with. A zero ptr or n is a no-op. An unknown ptr is ignored and a wrong n is
// rejected, leaving the buffer allocated; both return an error and are logged.
func (r *Registry) Dealloc(ptr uintptr, n int) error {
	if ptr == 0 || n == 0 {
		return nil
	}

	b, ok := r.buffers[ptr]
	if !ok {
		r.logger.LogViolation("dealloc_f64", ptr, n, ErrUnknownAddress)
		return ErrUnknownAddress
	}
	if b.Len() != n {
		r.logger.LogViolation("dealloc_f64", ptr, n, corrgraph.ErrLengthMismatch)
		return corrgraph.ErrLengthMismatch
	}

	delete(r.buffers, ptr)
	return r.k.Release(b)
}

// PearsonEdges extracts Pearson edges from the rows*cols matrix at ptr and
// returns a handle, or 0 on any error.
func (r *Registry) PearsonEdges(ptr uintptr, rows, cols int, minCorr float64, mode correlation.Mode) uintptr {
	return r.Edges(correlation.MethodPearson, ptr, rows, cols, minCorr, mode)
}

// SpearmanEdges extracts Spearman edges from the rows*cols matrix at ptr and
// returns a handle, or 0 on any error.
func (r *Registry) SpearmanEdges(ptr uintptr, rows, cols int, minCorr float64, mode correlation.Mode) uintptr {
	return r.Edges(correlation.MethodSpearman, ptr, rows, cols, minCorr, mode)
}

// Edges extracts edges with the given method and returns a handle, or 0 on
// any error. The kernel logs the cause.
func (r *Registry) Edges(method correlation.Method, ptr uintptr, rows, cols int, minCorr float64, mode correlation.Mode) uintptr {
	h, err := r.edges(method, ptr, rows, cols, minCorr, mode)
	if err != nil {
		return 0
	}
	return h
}

func (r *Registry) edges(method correlation.Method, ptr uintptr, rows, cols int, minCorr float64, mode correlation.Mode) (uintptr, error) {
	var m corrgraph.Matrix
	if ptr != 0 {
		b, ok := r.buffers[ptr]
		if !ok {
			r.logger.LogViolation("edges", ptr, rows*cols, ErrUnknownAddress)
			return 0, ErrUnknownAddress
		}
		m = corrgraph.Matrix{Data: b.Float64s(), Rows: rows, Cols: cols}
	}

	el, err := r.k.Edges(method, m, minCorr, mode)
	if err != nil {
		return 0, err
	}

	hdr, err := newHeader(el)
	if err != nil {
		_ = r.k.ReleaseEdges(el)
		return 0, err
	}
	h := addrOf(hdr)
	r.handles[h] = handle{header: hdr, edges: el}
	return h, nil
}

// Header returns a copy of the header behind h.
func (r *Registry) Header(h uintptr) (Header, bool) {
	e, ok := r.handles[h]
	if !ok {
		return Header{}, false
	}
	return *e.header, true
}

// EdgeList returns the edge list behind h, or nil.
func (r *Registry) EdgeList(h uintptr) *corrgraph.EdgeList {
	return r.handles[h].edges
}

// FreeEdges releases the edge list behind h. A zero handle is a no-op; an
// unknown or already released handle is ignored, logged and reported.
func (r *Registry) FreeEdges(h uintptr) error {
	if h == 0 {
		return nil
	}

	e, ok := r.handles[h]
	if !ok {
		r.logger.LogViolation("free_edges", h, 0, ErrUnknownAddress)
		return ErrUnknownAddress
	}

	delete(r.handles, h)
	*e.header = Header{}
	return r.k.ReleaseEdges(e.edges)
}

// Outstanding returns the number of buffers and handles not yet released.
func (r *Registry) Outstanding() int {
	return len(r.buffers) + len(r.handles)
}
