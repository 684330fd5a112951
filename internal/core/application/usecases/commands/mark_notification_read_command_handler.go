package commands

import (
	"context"
	"time"
)

// MarkNotificationReadCommandHandler marks a single notification as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for single-notification read updates.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the number of rows updated (0 or 1).
// A zero count means the notification did not exist, was already read, or
// belongs to a different audience.
func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
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

	updated, err := uow.NotificationRepository().MarkRead(
		ctx, cmd.NotificationID(), cmd.Audience(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
