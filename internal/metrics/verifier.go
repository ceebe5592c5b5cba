package metrics

import (
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifierBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "blocks_total",
		Help:      "Count of verified or rejected blocks by source.",
	}, []string{"source", "status"})
	verifierDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "verify_duration_seconds",
		Help:      "Duration of verifying, transforming and persisting a block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})
	verifierStreamCloseInterval = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "stream_close_interval_seconds",
		Help:      "Consensus time between the starts of consecutive blocks.",
		Buckets:   []float64{.5, 1, 1.5, 2, 2.5, 3, 5, 10},
	})
)

// Verifier tracks metrics for block verification.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

func (m Verifier) ObserveVerify(err error, source model.SourceType, started time.Time) {
	src := orUnknown(string(source))
	s := status(err)
	verifierBlocksTotal.WithLabelValues(src, s).Inc()
	verifierDuration.WithLabelValues(src, s).Observe(time.Since(started).Seconds())
}

func (m Verifier) ObserveStreamClose(latency time.Duration) {
	verifierStreamCloseInterval.Observe(latency.Seconds())
}
