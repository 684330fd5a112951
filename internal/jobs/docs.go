// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the notification pipeline.
//
// # Available Jobs
//
// 1. NotificationCleanupJob - Runs hourly to delete read notifications older
// than the configured retention horizon. Unread notifications are kept
// regardless of age so that no actor loses a fact it has not seen.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, retentionDays, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and swallowed; a failed cleanup run simply leaves
// the rows for the next one.
package jobs
