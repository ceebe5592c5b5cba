package metrics

import (
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cutoverActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cutover",
		Name:      "active",
		Help:      "Stream type currently being imported (1 for the active one).",
	}, []string{"stream_type"})
	cutoverSwitchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cutover",
		Name:      "switches_total",
		Help:      "Count of stream type switches.",
	}, []string{"from", "to"})
)

// Cutover tracks which ledger stream is active.
type Cutover struct{}

func NewCutover() *Cutover {
	return &Cutover{}
}

func (m Cutover) SetActive(streamType model.StreamType) {
	for _, t := range []model.StreamType{model.StreamTypeRecord, model.StreamTypeBlock} {
		v := 0.0
		if t == streamType {
			v = 1
		}
		cutoverActive.WithLabelValues(string(t)).Set(v)
	}
}

func (m Cutover) ObserveSwitch(from, to model.StreamType) {
	cutoverSwitchesTotal.WithLabelValues(string(from), string(to)).Inc()
}
