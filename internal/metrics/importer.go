package metrics

import (
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importerGetTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "get_total",
		Help:      "Count of block source calls by source.",
	}, []string{"source", "status"})
	importerGetDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "get_duration_seconds",
		Help:      "Duration of one block source call.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})
	importerSourceErrors = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "source_consecutive_errors",
		Help:      "Consecutive failures of each block source.",
	}, []string{"source"})
	importerTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "ticks_total",
		Help:      "Count of importer poll ticks that fetched blocks.",
	}, []string{"status"})
	importerTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "tick_duration_seconds",
		Help:      "Duration of one importer poll tick.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Importer tracks metrics for the block source selection loop.
type Importer struct{}

func NewImporter() *Importer {
	return &Importer{}
}

func (m Importer) ObserveGet(source model.SourceType, err error, started time.Time) {
	src := orUnknown(string(source))
	s := status(err)
	importerGetTotal.WithLabelValues(src, s).Inc()
	importerGetDuration.WithLabelValues(src, s).Observe(time.Since(started).Seconds())
}

func (m Importer) SetSourceErrors(source model.SourceType, count uint32) {
	importerSourceErrors.WithLabelValues(orUnknown(string(source))).Set(float64(count))
}

func (m Importer) ObserveTick(err error, started time.Time) {
	s := status(err)
	importerTicksTotal.WithLabelValues(s).Inc()
	importerTickDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
}
