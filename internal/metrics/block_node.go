package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockNodeStreamsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_node",
		Name:      "streams_total",
		Help:      "Count of block node subscriptions by outcome.",
	}, []string{"node", "status"})
	blockNodeStreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_node",
		Name:      "stream_duration_seconds",
		Help:      "Lifetime of a block node subscription.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 300, 900, 3600},
	}, []string{"node", "status"})
	blockNodeBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_node",
		Name:      "blocks_total",
		Help:      "Count of blocks delivered per block node.",
	}, []string{"node"})
	blockNodeQuarantined = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "block_node",
		Name:      "quarantined",
		Help:      "Whether a block node is currently quarantined.",
	}, []string{"node"})
)

// BlockNode tracks metrics for block node streaming.
type BlockNode struct{}

func NewBlockNode() *BlockNode {
	return &BlockNode{}
}

// ObserveStream records one finished subscription and the blocks it delivered.
func (m BlockNode) ObserveStream(node string, err error, blocks int, started time.Time) {
	node = orUnknown(node)
	s := status(err)
	blockNodeStreamsTotal.WithLabelValues(node, s).Inc()
	blockNodeStreamDuration.WithLabelValues(node, s).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		blockNodeBlocksTotal.WithLabelValues(node).Add(float64(blocks))
	}
}

func (m BlockNode) SetQuarantined(node string, quarantined bool) {
	v := 0.0
	if quarantined {
		v = 1
	}
	blockNodeQuarantined.WithLabelValues(orUnknown(node)).Set(v)
}
