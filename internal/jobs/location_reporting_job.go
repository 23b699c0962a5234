package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// EligibilityChecker answers whether the courier should currently be
// reporting location: they are on duty with at least one active delivery.
type EligibilityChecker interface {
	Check(ctx context.Context) (bool, error)
}

// ReporterRunner is a location reporting session. Run blocks until the
// context is cancelled and must be restartable.
type ReporterRunner interface {
	Run(ctx context.Context) error
}

// LocationReportingJob re-evaluates reporting eligibility every 30 seconds
// and starts or stops the reporter session accordingly. The reporter never
// outlives eligibility by more than one refresh period.
type LocationReportingJob struct {
	checker EligibilityChecker
	runner  ReporterRunner
	cron    *cron.Cron
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLocationReportingJob creates the eligibility refresh job.
func NewLocationReportingJob(
	checker EligibilityChecker, runner ReporterRunner, logger *slog.Logger,
) *LocationReportingJob {
	return &LocationReportingJob{
		checker: checker,
		runner:  runner,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "location_reporting_job"),
	}
}

// Start runs one immediate eligibility check and then schedules one every
// 30 seconds.
func (j *LocationReportingJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.Refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.Refresh(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Location reporting job started (refreshing every 30 seconds)")
	return nil
}

// Refresh checks eligibility once and reconciles the reporter session:
// eligible and not running starts it, ineligible and running stops it.
// A failed check keeps the current session state; transient backend errors
// must not flap the reporter.
func (j *LocationReportingJob) Refresh(ctx context.Context) {
	eligible, err := j.checker.Check(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Eligibility check failed", "error", err)
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	switch {
	case eligible && j.cancel == nil:
		runCtx, cancel := context.WithCancel(context.Background())
		j.cancel = cancel
		go func() {
			if runErr := j.runner.Run(runCtx); runErr != nil {
				j.logger.ErrorContext(runCtx, "Reporter session ended with error", "error", runErr)
			}
		}()
		j.logger.InfoContext(ctx, "Location reporting session started")
	case !eligible && j.cancel != nil:
		j.cancel()
		j.cancel = nil
		j.logger.InfoContext(ctx, "Location reporting session stopped")
	}
}

// Stop halts the refresh schedule and any running reporter session.
func (j *LocationReportingJob) Stop() {
	j.cron.Stop()

	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.logger.InfoContext(context.Background(), "Location reporting job stopped")
}
