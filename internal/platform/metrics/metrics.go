// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus collectors for the HTTP layer and the
marketplace actions (quote requests, status changes, onboarding).

Collectors are registered once on the default registry; [Handler] serves
them on /metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artistly_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artistly_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	quoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artistly_quote_requests_total",
			Help: "Quote requests raised per artist",
		},
		[]string{"artist_id"},
	)

	statusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artistly_submission_status_changes_total",
			Help: "Dashboard status assignments by previous and new status",
		},
		[]string{"from", "to"},
	)

	stepRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artistly_onboard_step_rejections_total",
			Help: "Wizard advances blocked by field validation, per step",
		},
		[]string{"step"},
	)

	submissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artistly_onboard_submissions_total",
			Help: "Completed onboarding applications",
		},
	)

	submissionsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artistly_onboard_submissions_pending",
			Help: "Applications currently inside the simulated submission delay",
		},
	)
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// QuoteRequested counts a quote request for an artist.
func QuoteRequested(artistID int) {
	quoteRequests.WithLabelValues(strconv.Itoa(artistID)).Inc()
}

// StatusChanged counts a dashboard status assignment.
func StatusChanged(from, to string) {
	statusChanges.WithLabelValues(from, to).Inc()
}

// StepRejected counts a wizard advance blocked on step.
func StepRejected(step int) {
	stepRejections.WithLabelValues(strconv.Itoa(step)).Inc()
}

// SubmissionStarted marks an application entering the simulated delay.
func SubmissionStarted() {
	submissionsPending.Inc()
}

// SubmissionFinished marks an application leaving the simulated delay.
func SubmissionFinished() {
	submissionsPending.Dec()
	submissions.Inc()
}
