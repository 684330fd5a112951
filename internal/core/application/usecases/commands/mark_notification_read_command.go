package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand marks one notification as read. The update is
// scoped to the audience so an actor cannot mark another actor's rows.
type MarkNotificationReadCommand struct {
	notificationID uuid.UUID
	audience       notification.Audience

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark one notification as read.
func NewMarkNotificationReadCommand(
	notificationID uuid.UUID,
	audience notification.Audience,
) (MarkNotificationReadCommand, error) {
	if err := audience.Validate(); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		notificationID: notificationID,
		audience:       audience,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark.
func (c MarkNotificationReadCommand) NotificationID() uuid.UUID {
	return c.notificationID
}

// Audience returns the audience scope for the update.
func (c MarkNotificationReadCommand) Audience() notification.Audience {
	return c.audience
}
