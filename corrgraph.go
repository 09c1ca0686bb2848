package corrgraph

import (
	"fmt"
	"time"

	"github.com/hupe1980/corrgraph/internal/conv"
	"github.com/hupe1980/corrgraph/internal/mem"
	"github.com/hupe1980/corrgraph/resource"
)

// Kernel allocates input buffers, extracts correlation edges and accounts for
// every region it hands out until the caller releases it.
//
// A Kernel keeps no per-call state. Its counters are atomic, so one Kernel may
// serve several goroutines, but a single Buffer or EdgeList must not be shared.
type Kernel struct {
	rc      *resource.Controller
	offHeap bool
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Kernel.
func New(optFns ...Option) *Kernel {
	o := applyOptions(optFns)
	return &Kernel{
		rc:      o.controller,
		offHeap: o.offHeap,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Allocate returns a buffer of n float64 values. A zero length yields a nil
// buffer and no error; a negative length yields ErrInvalidLength.
func (k *Kernel) Allocate(n int) (*Buffer, error) {
	start := time.Now()
	b, err := k.allocate(n)
	k.metrics.RecordAllocate(n, time.Since(start), err)
	k.logger.LogAllocate(n, b.OffHeap(), err)
	return b, err
}

func (k *Kernel) allocate(n int) (*Buffer, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return nil, ErrInvalidLength
	}

	size, err := conv.MulInt(n, mem.Float64Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	if err := k.reserve(int64(size)); err != nil {
		return nil, err
	}

	var blk *mem.Block
	if k.offHeap {
		blk, err = mem.NewOffHeap(n)
	} else {
		blk, err = mem.NewHeap(n)
	}
	if err != nil {
		k.rc.ReleaseMemory(int64(size))
		return nil, translateError(err)
	}

	return &Buffer{block: blk, n: n, bytes: int64(size)}, nil
}

// Release returns b to the kernel. A nil buffer is a no-op. Releasing the
// same buffer twice returns ErrReleased and frees nothing.
func (k *Kernel) Release(b *Buffer) error {
	if b == nil {
		return nil
	}

	n := b.Len()
	err := k.release(b)
	k.metrics.RecordRelease(n, err)
	k.logger.LogRelease(n, err)
	return err
}

func (k *Kernel) release(b *Buffer) error {
	if b.released {
		return ErrReleased
	}
	b.released = true

	err := b.block.Free()
	k.rc.ReleaseMemory(b.bytes)
	b.block = nil
	return err
}

// reserve charges bytes against the memory limit without blocking.
func (k *Kernel) reserve(bytes int64) error {
	if k.rc.TryAcquireMemory(bytes) {
		return nil
	}
	return fmt.Errorf("%w: need %d bytes, %d of %d in use",
		ErrMemoryLimitExceeded, bytes, k.rc.MemoryUsage(), k.rc.MemoryLimit())
}

// MemoryUsage returns the bytes held by live buffers and edge lists.
func (k *Kernel) MemoryUsage() int64 {
	return k.rc.MemoryUsage()
}

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (k *Kernel) PeakMemoryUsage() int64 {
	return k.rc.PeakMemoryUsage()
}

// Outstanding returns the number of buffers and edge lists not yet released.
// Empty edge lists count too.
func (k *Kernel) Outstanding() int64 {
	return k.rc.Live()
}

// Logger returns the kernel's logger.
func (k *Kernel) Logger() *Logger {
	return k.logger
}
