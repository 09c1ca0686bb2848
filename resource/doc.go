// Package resource implements memory accounting for kernel-owned buffers.
//
// Every buffer handed to a caller (input matrices, edge-list arrays) is
// charged against a Controller when it is created and credited back when the
// caller releases it. The controller therefore doubles as an allocation
// tracking harness: after a balanced sequence of allocate/release calls,
// MemoryUsage and Live both return zero.
//
// # Memory Limit
//
// A hard limit is enforced with a weighted semaphore. TryAcquireMemory is
// non-blocking and fails fast; AcquireMemory waits until memory is returned
// or ctx is canceled:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if !rc.TryAcquireMemory(8 * n) {
//	    return resource.ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(8 * n)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
