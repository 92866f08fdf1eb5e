// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package metrics holds the console's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "churn_console"

// Submission outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeServiceError    = "service_error"
	OutcomeTransportError  = "transport_error"
	OutcomeValidationError = "validation_error"
)

// Rejection reasons.
const (
	ReasonInFlight = "in_flight"
)

// Trend cache results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Completed submission attempts by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	SubmissionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Time spent waiting on the prediction service per submission.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	StaleResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer submission had been issued.",
		},
		[]string{"mode"},
	)

	RejectedSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_submissions_total",
			Help:      "Submissions refused before reaching the prediction service.",
		},
		[]string{"mode", "reason"},
	)

	TrendCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_cache_total",
			Help:      "Trend report cache lookups by result.",
		},
		[]string{"result"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Console sessions currently held in memory.",
		},
	)
)

// Collectors returns every console collector.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SubmissionsTotal,
		SubmissionDuration,
		StaleResponsesTotal,
		RejectedSubmissionsTotal,
		TrendCacheTotal,
		ActiveSessions,
	}
}

// Register adds the console collectors to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
