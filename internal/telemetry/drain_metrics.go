package telemetry

import "sync/atomic"

// DrainMetrics counts how derived queue operations reach the stored tasks:
// full drain-and-restore passes versus direct read-only inspection.
type DrainMetrics struct {
	passes   atomic.Uint64
	moved    atomic.Uint64
	inspects atomic.Uint64
}

var defaultDrainMetrics DrainMetrics

// DefaultDrainMetrics returns the process-wide drain metrics.
func DefaultDrainMetrics() *DrainMetrics {
	return &defaultDrainMetrics
}

// TraceDrain records the start of a drain-and-restore pass. The returned
// function must be called with the number of tasks moved through the scratch
// queue.
func TraceDrain() func(moved int) {
	defaultDrainMetrics.passes.Add(1)
	return func(moved int) {
		if moved > 0 {
			defaultDrainMetrics.moved.Add(uint64(moved))
		}
	}
}

// TraceInspect records a read served without draining.
func TraceInspect() {
	defaultDrainMetrics.inspects.Add(1)
}

func (m *DrainMetrics) Snapshot() (passes, moved, inspects uint64) {
	return m.passes.Load(), m.moved.Load(), m.inspects.Load()
}

func (m *DrainMetrics) Reset() {
	m.passes.Store(0)
	m.moved.Store(0)
	m.inspects.Store(0)
}
