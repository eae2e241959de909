// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mess_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mess_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mess_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Domain metrics
	MenuUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mess_menu_updates_total",
			Help: "Menu item replacements by outcome",
		},
		[]string{"outcome"},
	)

	FeedbackSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mess_feedback_submitted_total",
			Help: "Feedback submissions by rating",
		},
		[]string{"rating"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
