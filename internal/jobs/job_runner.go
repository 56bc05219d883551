package jobs

import (
	"context"
	"fmt"
	"time"

	"spartans-cricket-backend/internal/config"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/metrics"
	"spartans-cricket-backend/internal/service"
)

const (
	resultSuccess = "success"
	resultSkipped = "skipped"
	resultFailure = "failure"
	resultPanic   = "panic"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
	timeout  time.Duration
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Moderation service.ModerationService
	Email      service.EmailService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		services: services,
		config:   cfg,
		timeout:  2 * time.Minute,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and records the outcome
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, "job:"+jobName)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Job panicked", "job", jobName, "panic", r)
			metrics.ScheduledJobRuns.WithLabelValues(jobName, resultPanic).Inc()
		}
	}()

	logger.InfoContext(ctx, "Starting job", "job", jobName)
	start := time.Now()
	result, err := jobFunc(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Job failed", "job", jobName, "error", err)
		metrics.ScheduledJobRuns.WithLabelValues(jobName, resultFailure).Inc()
		return
	}
	metrics.ScheduledJobRuns.WithLabelValues(jobName, result).Inc()
	logger.InfoContext(ctx, "Job completed", "job", jobName, "result", result, "duration_ms", time.Since(start).Milliseconds())
}

// SendModerationDigest emails the administrator what is still waiting for review.
// Nothing is sent when the queues are empty.
func (jr *JobRunner) SendModerationDigest() {
	jr.runWithRecovery("SendModerationDigest", func(ctx context.Context) (string, error) {
		summary, err := jr.services.Moderation.PendingSummary(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to count pending items: %w", err)
		}
		if summary.Empty() {
			logger.InfoContext(ctx, "Moderation queues empty, digest skipped")
			return resultSkipped, nil
		}

		if err := jr.services.Email.SendModerationDigest(ctx, *summary); err != nil {
			return "", fmt.Errorf("failed to send digest: %w", err)
		}
		logger.InfoContext(ctx, "Moderation digest sent",
			"join_requests", summary.NewJoinRequests,
			"registrations", summary.NewRegistrations,
			"players", summary.UnapprovedPlayers,
		)
		return resultSuccess, nil
	})
}
