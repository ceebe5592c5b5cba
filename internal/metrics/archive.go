package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveFlushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flushes_total",
		Help:      "Count of archive batch flushes.",
	}, []string{"status"})
	archiveFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing one archive batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	archiveFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flush_size",
		Help:      "Number of block files written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	})
)

// Archive tracks metrics for the local block archive.
type Archive struct{}

func NewArchive() *Archive {
	return &Archive{}
}

func (m Archive) ObserveArchive(err error, files int, started time.Time) {
	s := status(err)
	archiveFlushesTotal.WithLabelValues(s).Inc()
	archiveFlushDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	archiveFlushSize.Observe(float64(files))
}
