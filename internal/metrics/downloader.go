package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{.5, 1, 2, 3, 5, 10, 20, 30, 60, 120}

var (
	downloaderDownloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "downloader",
		Name:      "downloads_total",
		Help:      "Count of block file downloads per node.",
	}, []string{"node", "status"})
	downloaderDownloadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "downloader",
		Name:      "download_duration_seconds",
		Help:      "Duration of downloading, decoding and verifying one block file.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "status"})
	downloaderCloudStorageLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "downloader",
		Name:      "cloud_storage_latency_seconds",
		Help:      "Time from block consensus end until the file appeared in storage.",
		Buckets:   latencyBuckets,
	})
	downloaderVerificationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "downloader",
		Name:      "verification_latency_seconds",
		Help:      "Time from block consensus end until the block was verified.",
		Buckets:   latencyBuckets,
	})
)

// Downloader tracks metrics for the file block source.
type Downloader struct{}

func NewDownloader() *Downloader {
	return &Downloader{}
}

func (m Downloader) ObserveDownload(node string, err error, started time.Time) {
	node = orUnknown(node)
	s := status(err)
	downloaderDownloadsTotal.WithLabelValues(node, s).Inc()
	downloaderDownloadDuration.WithLabelValues(node, s).Observe(time.Since(started).Seconds())
}

func (m Downloader) ObserveCloudStorageLatency(latency time.Duration) {
	downloaderCloudStorageLatency.Observe(latency.Seconds())
}

func (m Downloader) ObserveVerificationLatency(latency time.Duration) {
	downloaderVerificationLatency.Observe(latency.Seconds())
}
