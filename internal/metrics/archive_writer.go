package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive_writer",
		Name:      "flush_total",
		Help:      "Count of archive batch flushes.",
	}, []string{"status"})
	archiveFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of archive batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	archiveFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive_writer",
		Name:      "flush_size",
		Help:      "Number of block events written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
	archiveDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive_writer",
		Name:      "dropped_total",
		Help:      "Block events dropped because the archive queue was full.",
	})
)

// ArchiveWriter tracks the block archive pipeline.
type ArchiveWriter struct{}

// NewArchiveWriter creates an ArchiveWriter metrics collector.
func NewArchiveWriter() *ArchiveWriter {
	return &ArchiveWriter{}
}

// ObserveFlush records one batch write.
func (m ArchiveWriter) ObserveFlush(err error, size int, started time.Time) {
	s := "success"
	if err != nil {
		s = "error"
	}
	archiveFlushTotal.WithLabelValues(s).Inc()
	archiveFlushDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	archiveFlushSize.Observe(float64(size))
}

func (m ArchiveWriter) ObserveDropped() {
	archiveDroppedTotal.Inc()
}
