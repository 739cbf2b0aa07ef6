// Package testing provides a fake telemetry.MetricsEmitter for assertions in
// unit tests, so callers can verify emitted metric names, values, and tags
// without standing up a real collector backend.
package testing

import (
	"sync"
	"time"

	"github.com/fulmenhq/levfind/telemetry"
)

// RecordedMetric is one call captured by FakeCollector.
type RecordedMetric struct {
	Name  string
	Value interface{}
	Tags  map[string]string
}

// FakeCollector implements telemetry.MetricsEmitter, recording every call in
// order for later inspection by name.
type FakeCollector struct {
	mu      sync.Mutex
	metrics []RecordedMetric
}

// NewFakeCollector returns an empty FakeCollector.
func NewFakeCollector() *FakeCollector {
	return &FakeCollector{}
}

// Reset discards all recorded metrics.
func (c *FakeCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = nil
}

// Counter records a counter emission.
func (c *FakeCollector) Counter(name string, value float64, tags map[string]string) error {
	c.record(name, value, tags)
	return nil
}

// Gauge records a gauge emission.
func (c *FakeCollector) Gauge(name string, value float64, tags map[string]string) error {
	c.record(name, value, tags)
	return nil
}

// Histogram records a duration emission.
func (c *FakeCollector) Histogram(name string, duration time.Duration, tags map[string]string) error {
	c.record(name, duration, tags)
	return nil
}

// HistogramSummary records a pre-aggregated histogram emission.
func (c *FakeCollector) HistogramSummary(name string, summary telemetry.HistogramSummary, tags map[string]string) error {
	c.record(name, summary, tags)
	return nil
}

func (c *FakeCollector) record(name string, value interface{}, tags map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = append(c.metrics, RecordedMetric{Name: name, Value: value, Tags: tags})
}

// GetMetricsByName returns every recorded metric with the given name, in
// emission order.
func (c *FakeCollector) GetMetricsByName(name string) []RecordedMetric {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []RecordedMetric
	for _, m := range c.metrics {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}
