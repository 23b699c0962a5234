package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the courier agent.
type JobManager struct {
	locationReportingJob *LocationReportingJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	checker EligibilityChecker, runner ReporterRunner, logger *slog.Logger,
) *JobManager {
	return &JobManager{
		locationReportingJob: NewLocationReportingJob(checker, runner, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.locationReportingJob.Start(); err != nil {
		return fmt.Errorf("failed to start location reporting job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.locationReportingJob.Stop()
}
