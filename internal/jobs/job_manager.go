package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationCleanupJob *NotificationCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cleanupHandler commands.CleanupNotificationsCommandHandler,
	retentionDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationCleanupJob: NewNotificationCleanupJob(cleanupHandler, retentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationCleanupJob.Stop()
}
