package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for IntakeSubmissions.
const (
	OutcomeAccepted   = "accepted"
	OutcomeSuppressed = "suppressed"
	OutcomeDuplicate  = "duplicate"
	OutcomeForced     = "forced"
	OutcomeFailed     = "failed"
)

var (
	IntakeSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spartans_intake_submissions_total",
			Help: "Total number of intake submissions by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ModerationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spartans_moderation_transitions_total",
			Help: "Total number of moderation actions by target and resulting state",
		},
		[]string{"target", "state"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spartans_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spartans_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ScheduledJobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spartans_scheduled_job_runs_total",
			Help: "Total number of scheduled job runs by job and result",
		},
		[]string{"job", "result"},
	)
)
