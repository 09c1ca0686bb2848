package corrgraph

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/corrgraph/correlation"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package prom
// ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordAllocate is called after each buffer allocation.
	// n is the requested element count, err is nil if successful.
	RecordAllocate(n int, duration time.Duration, err error)

	// RecordRelease is called after each buffer release.
	RecordRelease(n int, err error)

	// RecordExtract is called after each edge extraction.
	// edges is the number of edges produced (0 on error).
	RecordExtract(method correlation.Method, edges int, duration time.Duration, err error)

	// RecordReleaseEdges is called after each edge list release.
	RecordReleaseEdges(edges int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, time.Duration, error)                    {}
func (NoopMetricsCollector) RecordRelease(int, error)                                    {}
func (NoopMetricsCollector) RecordExtract(correlation.Method, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordReleaseEdges(int, error)                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount      atomic.Int64
	AllocateErrors     atomic.Int64
	AllocateElements   atomic.Int64
	AllocateTotalNanos atomic.Int64
	ReleaseCount       atomic.Int64
	ReleaseErrors      atomic.Int64
	PearsonCount       atomic.Int64
	SpearmanCount      atomic.Int64
	ExtractErrors      atomic.Int64
	ExtractEdges       atomic.Int64
	ExtractTotalNanos  atomic.Int64
	ReleaseEdgesCount  atomic.Int64
	ReleaseEdgesErrors atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(n int, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	b.AllocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.AllocateElements.Add(int64(n))
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(n int, err error) {
	b.ReleaseCount.Add(1)
	if err != nil {
		b.ReleaseErrors.Add(1)
	}
}

// RecordExtract implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExtract(method correlation.Method, edges int, duration time.Duration, err error) {
	switch method {
	case correlation.MethodPearson:
		b.PearsonCount.Add(1)
	case correlation.MethodSpearman:
		b.SpearmanCount.Add(1)
	}
	b.ExtractTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExtractErrors.Add(1)
		return
	}
	b.ExtractEdges.Add(int64(edges))
}

// RecordReleaseEdges implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReleaseEdges(edges int, err error) {
	b.ReleaseEdgesCount.Add(1)
	if err != nil {
		b.ReleaseEdgesErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocateCount:      b.AllocateCount.Load(),
		AllocateErrors:     b.AllocateErrors.Load(),
		AllocateElements:   b.AllocateElements.Load(),
		AllocateAvgNanos:   avgNanos(b.AllocateTotalNanos.Load(), b.AllocateCount.Load()),
		ReleaseCount:       b.ReleaseCount.Load(),
		ReleaseErrors:      b.ReleaseErrors.Load(),
		PearsonCount:       b.PearsonCount.Load(),
		SpearmanCount:      b.SpearmanCount.Load(),
		ExtractErrors:      b.ExtractErrors.Load(),
		ExtractEdges:       b.ExtractEdges.Load(),
		ExtractAvgNanos:    avgNanos(b.ExtractTotalNanos.Load(), b.PearsonCount.Load()+b.SpearmanCount.Load()),
		ReleaseEdgesCount:  b.ReleaseEdgesCount.Load(),
		ReleaseEdgesErrors: b.ReleaseEdgesErrors.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocateCount      int64
	AllocateErrors     int64
	AllocateElements   int64
	AllocateAvgNanos   int64
	ReleaseCount       int64
	ReleaseErrors      int64
	PearsonCount       int64
	SpearmanCount      int64
	ExtractErrors      int64
	ExtractEdges       int64
	ExtractAvgNanos    int64
	ReleaseEdgesCount  int64
	ReleaseEdgesErrors int64
}
