// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "himaya_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "himaya_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "himaya_intents_classified_total",
			Help: "Number of utterances classified per intent",
		},
		[]string{"intent", "source"},
	)

	EligibilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "himaya_eligibility_checks_total",
			Help: "Number of eligibility evaluations by entry point",
		},
		[]string{"entry"},
	)

	EligibleSchemes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "himaya_eligible_schemes",
			Help:    "Number of schemes a profile qualified for",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "himaya_users_registered_total",
			Help: "Number of registered user profiles",
		},
	)

	SMSSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "himaya_sms_sent_total",
			Help: "SMS notifications by outcome",
		},
		[]string{"status"},
	)
)
