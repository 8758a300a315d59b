// Package metrics exports hook lifecycle calls as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rickchristie/apphook"
)

// Collector implements apphook.Recorder on top of Prometheus collectors. Pass it to
// hooks.Registry.WithRecorder.
type Collector struct {
	registry *prometheus.Registry

	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector creates a Collector registering its metrics in a private registry under
// namespace ("apphook" if empty).
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "apphook"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.calls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hook",
			Name:      "calls_total",
			Help:      "Total number of hook lifecycle calls",
		},
		[]string{"hook", "event"},
	)

	c.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "hook",
			Name:      "duration_seconds",
			Help:      "Time spent in hook lifecycle calls",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"hook", "event"},
	)

	c.registry.MustRegister(c.calls, c.duration)
	return c
}

// ObserveLifecycle implements apphook.Recorder.
func (c *Collector) ObserveLifecycle(hook string, event apphook.Lifecycle, d time.Duration) {
	c.calls.WithLabelValues(hook, event.Short()).Inc()
	c.duration.WithLabelValues(hook, event.Short()).Observe(d.Seconds())
}

// Registry returns the Prometheus registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Compile-time check that Collector implements apphook.Recorder.
var _ apphook.Recorder = (*Collector)(nil)
