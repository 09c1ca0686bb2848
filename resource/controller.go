package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the limit.
var ErrMemoryLimitExceeded = errors.New("resource: memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64
}

// Controller tracks reserved memory and the number of live reservations.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64
	memPeak atomic.Int64
	live    atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	return c
}

// AcquireMemory reserves memory, blocking until it is available or ctx is canceled.
// Requests larger than the limit fail immediately. A zero-byte reservation
// never waits but still counts as live until released.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes < 0 {
		return nil
	}

	if c.memSem != nil && bytes > 0 {
		if bytes > c.cfg.MemoryLimitBytes {
			return ErrMemoryLimitExceeded
		}
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.charge(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil {
		return true
	}
	if bytes < 0 {
		return true
	}

	if c.memSem != nil && bytes > 0 {
		if !c.memSem.TryAcquire(bytes) {
			return false
		}
	}

	c.charge(bytes)
	return true
}

func (c *Controller) charge(bytes int64) {
	used := c.memUsed.Add(bytes)
	c.live.Add(1)
	for {
		peak := c.memPeak.Load()
		if used <= peak || c.memPeak.CompareAndSwap(peak, used) {
			return
		}
	}
}

// ReleaseMemory returns a reservation made by AcquireMemory or TryAcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes < 0 {
		return
	}

	if c.memSem != nil && bytes > 0 {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
	c.live.Add(-1)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (c *Controller) PeakMemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memPeak.Load()
}

// Live returns the number of reservations not yet released.
func (c *Controller) Live() int64 {
	if c == nil {
		return 0
	}
	return c.live.Load()
}

// MemoryLimit returns the configured hard limit (0 = unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}
