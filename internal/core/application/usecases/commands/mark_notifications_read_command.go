package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand marks a batch of notifications as read, scoped
// to one audience.
type MarkNotificationsReadCommand struct {
	notificationIDs []uuid.UUID
	audience        notification.Audience

	guard guard.ConstructorGuard
}

// NewMarkNotificationsReadCommand creates a command to mark several notifications as read.
// The id list must not be empty.
func NewMarkNotificationsReadCommand(
	notificationIDs []uuid.UUID,
	audience notification.Audience,
) (MarkNotificationsReadCommand, error) {
	if len(notificationIDs) == 0 {
		return MarkNotificationsReadCommand{}, errs.NewValueIsRequiredError("notificationIDs")
	}
	if err := audience.Validate(); err != nil {
		return MarkNotificationsReadCommand{}, err
	}

	return MarkNotificationsReadCommand{
		notificationIDs: notificationIDs,
		audience:        audience,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

// NotificationIDs returns the notifications to mark.
func (c MarkNotificationsReadCommand) NotificationIDs() []uuid.UUID {
	return c.notificationIDs
}

// Audience returns the audience scope for the update.
func (c MarkNotificationsReadCommand) Audience() notification.Audience {
	return c.audience
}
