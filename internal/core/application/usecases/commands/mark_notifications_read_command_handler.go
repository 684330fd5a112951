package commands

import (
	"context"
	"time"
)

// MarkNotificationsReadCommandHandler marks a batch of notifications as read.
type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationsReadCommandHandler creates a handler for batch read updates.
func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the number of rows updated.
// Ids outside the audience scope are skipped, not errored.
func (h MarkNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationsReadCommand,
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

	updated, err := uow.NotificationRepository().MarkManyRead(
		ctx, cmd.NotificationIDs(), cmd.Audience(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
