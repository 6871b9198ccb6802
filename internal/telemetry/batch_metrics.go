package telemetry

import (
	"context"
	"sync/atomic"
	"time"
)

// BatchMetrics fasst Messwerte zu Batch-Appends zusammen.
type BatchMetrics struct {
	totalDuration atomic.Int64
	attempts      atomic.Uint64
	failures      atomic.Uint64
	moved         atomic.Uint64
}

var defaultBatchMetrics BatchMetrics

// DefaultBatchMetrics liefert die globalen Batch-Metriken.
func DefaultBatchMetrics() *BatchMetrics {
	return &defaultBatchMetrics
}

// TraceBatch startet einen Batch-Append und liefert eine Abschlussfunktion,
// die Dauer, Anzahl verschobener Tasks und Fehlerzustand meldet.
func TraceBatch(ctx context.Context) (context.Context, func(moved int, err error)) {
	start := time.Now()
	defaultBatchMetrics.attempts.Add(1)
	return ctx, func(moved int, err error) {
		elapsed := time.Since(start)
		defaultBatchMetrics.totalDuration.Add(elapsed.Nanoseconds())
		if err != nil {
			defaultBatchMetrics.failures.Add(1)
			return
		}
		if moved > 0 {
			defaultBatchMetrics.moved.Add(uint64(moved))
		}
	}
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *BatchMetrics) Snapshot() (attempts, failures, moved uint64, average time.Duration) {
	attempts = m.attempts.Load()
	failures = m.failures.Load()
	moved = m.moved.Load()
	total := m.totalDuration.Load()
	if attempts == 0 {
		return attempts, failures, moved, 0
	}
	average = time.Duration(total / int64(attempts))
	return attempts, failures, moved, average
}

// Reset setzt alle Zähler zurück.
func (m *BatchMetrics) Reset() {
	m.totalDuration.Store(0)
	m.attempts.Store(0)
	m.failures.Store(0)
	m.moved.Store(0)
}
