// Package jobs provides the scheduled background tasks of the courier agent.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LocationReportingJob - Runs every 30 seconds to re-check whether the
// courier should be reporting location and starts or stops the reporter
// session to match.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(checker, runner, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed eligibility check keeps the current session state rather than
//     flapping the reporter on transient backend errors.
//   - Reporter session errors are logged; the next refresh may start a new
//     session.
package jobs
