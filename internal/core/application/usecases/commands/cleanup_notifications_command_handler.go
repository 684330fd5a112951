package commands

import (
	"context"
)

// CleanupNotificationsCommandHandler runs the retention cleanup that deletes
// read notifications older than the configured horizon.
type CleanupNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewCleanupNotificationsCommandHandler creates a handler for retention cleanup.
func NewCleanupNotificationsCommandHandler(uowFactory NotificationUoWFactory) CleanupNotificationsCommandHandler {
	return CleanupNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cleanup command and returns the number of rows removed.
func (h CleanupNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd CleanupNotificationsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.NotificationRepository().DeleteReadBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
