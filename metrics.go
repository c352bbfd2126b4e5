package labelframe

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordConstruct is called after a series or frame is built.
	RecordConstruct(duration time.Duration, err error)

	// RecordAlign is called after each aligned operation. union is the
	// number of labels of the result.
	RecordAlign(union int, duration time.Duration, err error)

	// RecordAssign is called after each selection assignment. cells is the
	// number of cells written.
	RecordAssign(cells int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConstruct(time.Duration, error)   {}
func (NoopMetricsCollector) RecordAlign(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordAssign(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConstructCount      atomic.Int64
	ConstructErrors     atomic.Int64
	ConstructTotalNanos atomic.Int64
	AlignCount          atomic.Int64
	AlignErrors         atomic.Int64
	AlignLabels         atomic.Int64
	AlignTotalNanos     atomic.Int64
	AssignCount         atomic.Int64
	AssignErrors        atomic.Int64
	AssignCells         atomic.Int64
}

// RecordConstruct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConstruct(duration time.Duration, err error) {
	b.ConstructCount.Add(1)
	b.ConstructTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConstructErrors.Add(1)
	}
}

// RecordAlign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlign(union int, duration time.Duration, err error) {
	b.AlignCount.Add(1)
	b.AlignTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AlignErrors.Add(1)
		return
	}
	b.AlignLabels.Add(int64(union))
}

// RecordAssign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssign(cells int, duration time.Duration, err error) {
	b.AssignCount.Add(1)
	if err != nil {
		b.AssignErrors.Add(1)
		return
	}
	b.AssignCells.Add(int64(cells))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConstructCount:    b.ConstructCount.Load(),
		ConstructErrors:   b.ConstructErrors.Load(),
		ConstructAvgNanos: avg(b.ConstructTotalNanos.Load(), b.ConstructCount.Load()),
		AlignCount:        b.AlignCount.Load(),
		AlignErrors:       b.AlignErrors.Load(),
		AlignLabels:       b.AlignLabels.Load(),
		AlignAvgNanos:     avg(b.AlignTotalNanos.Load(), b.AlignCount.Load()),
		AssignCount:       b.AssignCount.Load(),
		AssignErrors:      b.AssignErrors.Load(),
		AssignCells:       b.AssignCells.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConstructCount    int64
	ConstructErrors   int64
	ConstructAvgNanos int64
	AlignCount        int64
	AlignErrors       int64
	AlignLabels       int64
	AlignAvgNanos     int64
	AssignCount       int64
	AssignErrors      int64
	AssignCells       int64
}
