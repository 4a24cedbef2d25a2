package kdforest

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each forest construction.
	// points and trees describe the forest, err is nil if successful.
	RecordBuild(points, trees int, duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	// k is the number of neighbors requested, checks the number of distance
	// evaluations performed, err is nil if successful.
	RecordSearch(k, checks int, duration time.Duration, err error)

	// RecordBatchSearch is called after each batch search operation.
	// count is the number of queries submitted, failed is non-zero if the batch aborted.
	RecordBatchSearch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchSearch(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildTotalNanos   atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchTotalNanos  atomic.Int64
	SearchChecks      atomic.Int64
	BatchSearchCount  atomic.Int64
	BatchSearchItems  atomic.Int64
	BatchSearchFailed atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points, trees int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k, checks int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchChecks.Add(int64(checks))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(count, failed int, duration time.Duration) {
	b.BatchSearchCount.Add(1)
	b.BatchSearchItems.Add(int64(count))
	b.BatchSearchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:        b.BuildCount.Load(),
		BuildErrors:       b.BuildErrors.Load(),
		BuildAvgNanos:     avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		SearchAvgChecks:   avg(b.SearchChecks.Load(), b.SearchCount.Load()),
		BatchSearchCount:  b.BatchSearchCount.Load(),
		BatchSearchItems:  b.BatchSearchItems.Load(),
		BatchSearchFailed: b.BatchSearchFailed.Load(),
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
	BuildCount        int64
	BuildErrors       int64
	BuildAvgNanos     int64
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	SearchAvgChecks   int64
	BatchSearchCount  int64
	BatchSearchItems  int64
	BatchSearchFailed int64
}
