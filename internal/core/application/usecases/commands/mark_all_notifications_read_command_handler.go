package commands

import (
	"context"
	"time"
)

// MarkAllNotificationsReadCommandHandler marks an audience's unread
// notifications as read in one update.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for mark-all read updates.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the number of rows updated.
func (h MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsReadCommand,
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

	updated, err := uow.NotificationRepository().MarkAllRead(ctx, cmd.Audience(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
