package memo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gateHits = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "memo_gate_hits_total",
		Help: "The total number of lookups answered from cache because the inputs were shallow-equal",
	}, []string{"gate"})

	gateMisses = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "memo_gate_misses_total",
		Help: "The total number of lookups that ran the wrapped computation",
	}, []string{"gate"})

	gateInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "memo_gate_invalidations_total",
		Help: "The total number of explicit cache invalidations",
	}, []string{"gate"})

	computeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "memo_gate_compute_duration_seconds",
		Help:    "Duration of the wrapped computation on cache misses",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"gate"})
)
