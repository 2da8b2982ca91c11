// Package metrics implements Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal counts corruption decisions by model type and outcome
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "erratic_decisions_total",
			Help: "Total number of corruption decisions made",
		},
		[]string{"model", "outcome"},
	)

	// ReplayPacketsTotal counts packets drained from a replay source
	ReplayPacketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "erratic_replay_packets_total",
			Help: "Total number of packets read from replay sources",
		},
		[]string{"source"},
	)

	// ReplayBytesTotal counts payload bytes drained from a replay source
	ReplayBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "erratic_replay_bytes_total",
			Help: "Total payload bytes read from replay sources",
		},
		[]string{"source"},
	)
)

// Decision outcome label values
const (
	OutcomeCorrupt = "corrupt"
	OutcomeClean   = "clean"
)
