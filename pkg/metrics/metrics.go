package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logiflow",
		Subsystem: "sync",
		Name:      "passes_total",
		Help:      "Sync passes by outcome (completed, skipped).",
	}, []string{"outcome"})

	SyncFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logiflow",
		Subsystem: "sync",
		Name:      "failures_total",
		Help:      "Sync failures per record kind and stage.",
	}, []string{"kind", "stage"})

	SyncRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logiflow",
		Subsystem: "sync",
		Name:      "records_total",
		Help:      "Records pushed or pulled per kind.",
	}, []string{"kind", "direction"})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "logiflow",
		Subsystem: "sync",
		Name:      "pass_duration_seconds",
		Help:      "Duration of a full sync pass.",
		Buckets:   prometheus.DefBuckets,
	})

	DirectionsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logiflow",
		Subsystem: "maps",
		Name:      "directions_requests_total",
		Help:      "Directions lookups by source (cache, provider, error).",
	}, []string{"source"})

	RoutesConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "logiflow",
		Subsystem: "routes",
		Name:      "confirmed_total",
		Help:      "Routes confirmed.",
	})
)
