package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationCleanupJob removes read notifications older than the retention
// horizon. Runs hourly; unread rows are never touched.
type NotificationCleanupJob struct {
	handler       commands.CleanupNotificationsCommandHandler
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewNotificationCleanupJob creates a retention cleanup job.
// retentionDays controls how long read notifications are kept.
func NewNotificationCleanupJob(
	handler commands.CleanupNotificationsCommandHandler,
	retentionDays int,
	logger *slog.Logger,
) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler:       handler,
		retentionDays: retentionDays,
		cron:          cron.New(),
		logger:        logger.With("component", "notification_cleanup_job"),
	}
}

// Start begins the cleanup job to run at the top of every hour.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

		cmd, err := commands.NewCleanupNotificationsCommand(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup command invalid", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Notification cleanup removed rows", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running hourly)",
		"retention_days", j.retentionDays)
	return nil
}

// Stop stops the cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
