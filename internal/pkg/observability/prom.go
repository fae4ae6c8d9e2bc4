package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "brawlstats"
)

var (
	ChangeConsumeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "change", "consume_duration_seconds"),
		Help:    "Duration of change event handling in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"subject"})
	ChangeConsumeMessagingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "change", "consume_messaging_latency_seconds"),
		Help:    "Latency between a source record commit and its change event being consumed, in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"subject"})
	ChangeOutcome = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "change", "outcome_total"),
		Help: "Change events by how their handling ended: ack, nak or term",
	}, []string{"subject", "outcome"})
	ChangeMalformed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "change", "malformed_total"),
		Help: "Change events whose record was malformed, whether dropped or handled partially",
	}, []string{"subject", "reason"})
	StatsBatchRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "stats", "batch_rows"),
		Help:    "Rows written by a single committed stats batch",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"handler"})
	MostPlayedRecomputeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "most_played", "recompute_failures_total"),
		Help: "Most played recomputes that failed and were skipped",
	})
)
