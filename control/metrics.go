// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/simplevector/api"
)

// Metric keys written by RecordBufferStats.
const (
	MetricBufferAlloc = "buffer.total_alloc"
	MetricBufferFree  = "buffer.total_free"
	MetricBufferInUse = "buffer.in_use"
	MetricBufferSlots = "buffer.slots_allocated"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns a single metric.
func (mr *MetricsRegistry) Get(key string) (any, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	v, ok := mr.metrics[key]
	return v, ok
}

// RecordBufferStats publishes a buffer accounting snapshot in one update.
func (mr *MetricsRegistry) RecordBufferStats(s api.BufferStats) {
	mr.mu.Lock()
	mr.metrics[MetricBufferAlloc] = s.TotalAlloc
	mr.metrics[MetricBufferFree] = s.TotalFree
	mr.metrics[MetricBufferInUse] = s.InUse
	mr.metrics[MetricBufferSlots] = s.SlotsAllocated
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Updated returns the time of the last write.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}
