// Package prom implements corrgraph.MetricsCollector with Prometheus metrics.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/correlation"
)

var _ corrgraph.MetricsCollector = (*Collector)(nil)

// Collector records kernel operations as Prometheus metrics.
type Collector struct {
	opLatency *prometheus.HistogramVec
	ops       *prometheus.CounterVec
	extracts  *prometheus.CounterVec
	edges     *prometheus.CounterVec
	elements  prometheus.Counter

	reg       prometheus.Registerer
	namespace string
}

// NewCollector creates a Collector and registers its metrics with reg.
// An empty namespace defaults to "corrgraph".
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if namespace == "" {
		namespace = "corrgraph"
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of kernel operations",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total kernel operations",
		}, []string{"op", "status"}),
		extracts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Total edge extractions by method",
		}, []string{"method", "status"}),
		edges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_total",
			Help:      "Total edges produced by method",
		}, []string{"method"}),
		elements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocated_elements_total",
			Help:      "Total float64 elements allocated",
		}),
		reg:       reg,
		namespace: namespace,
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.ops, c.extracts, c.edges, c.elements} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// TrackKernel exports the live memory and region count of k as gauges.
func (c *Collector) TrackKernel(k *corrgraph.Kernel) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: c.namespace,
			Name:      "memory_bytes",
			Help:      "Bytes held by live buffers and edge lists",
		}, func() float64 { return float64(k.MemoryUsage()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: c.namespace,
			Name:      "outstanding_regions",
			Help:      "Buffers and edge lists not yet released",
		}, func() float64 { return float64(k.Outstanding()) }),
	}
	for _, g := range gauges {
		if err := c.reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}

// RecordAllocate implements corrgraph.MetricsCollector.
func (c *Collector) RecordAllocate(n int, d time.Duration, err error) {
	s := status(err)
	c.opLatency.WithLabelValues("allocate", s).Observe(d.Seconds())
	c.ops.WithLabelValues("allocate", s).Inc()
	if err == nil && n > 0 {
		c.elements.Add(float64(n))
	}
}

// RecordRelease implements corrgraph.MetricsCollector.
func (c *Collector) RecordRelease(_ int, err error) {
	c.ops.WithLabelValues("release", status(err)).Inc()
}

// RecordExtract implements corrgraph.MetricsCollector.
func (c *Collector) RecordExtract(method correlation.Method, edges int, d time.Duration, err error) {
	s := status(err)
	c.opLatency.WithLabelValues("extract", s).Observe(d.Seconds())
	c.ops.WithLabelValues("extract", s).Inc()
	c.extracts.WithLabelValues(method.String(), s).Inc()
	if err == nil {
		c.edges.WithLabelValues(method.String()).Add(float64(edges))
	}
}

// RecordReleaseEdges implements corrgraph.MetricsCollector.
func (c *Collector) RecordReleaseEdges(_ int, err error) {
	c.ops.WithLabelValues("release_edges", status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
