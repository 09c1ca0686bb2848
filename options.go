package corrgraph

import (
	"log/slog"

	"github.com/hupe1980/corrgraph/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	memoryLimit      int64
	controller       *resource.Controller
	offHeap          bool
}

// Option configures a Kernel.
type Option func(*options)

// WithMetricsCollector configures metrics collection for operations.
//
// Example:
//
//	metrics := &corrgraph.BasicMetricsCollector{}
//	k := corrgraph.New(corrgraph.WithMetricsCollector(metrics))
//	// ... use k ...
//	stats := metrics.GetStats()
//	fmt.Printf("Extractions: %d, Edges: %d\n", stats.PearsonCount+stats.SpearmanCount, stats.ExtractEdges)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := corrgraph.NewJSONLogger(slog.LevelDebug)
//	k := corrgraph.New(corrgraph.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMemoryLimit caps the bytes held by live buffers and edge lists.
// Allocations that would cross the limit fail with ErrMemoryLimitExceeded.
// Zero or a negative value means unlimited. Ignored when
// WithResourceController is also given.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithResourceController shares a controller between kernels so that they
// account against one budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithOffHeap backs buffers with anonymous memory mappings instead of the Go
// heap. Platforms without mappings silently use the heap.
func WithOffHeap(enabled bool) Option {
	return func(o *options) {
		o.offHeap = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.controller == nil {
		limit := o.memoryLimit
		if limit < 0 {
			limit = 0
		}
		o.controller = resource.NewController(resource.Config{MemoryLimitBytes: limit})
	}
	return o
}
