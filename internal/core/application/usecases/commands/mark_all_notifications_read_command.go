package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand marks every unread notification of one
// audience as read. Rows of other audiences are untouched.
type MarkAllNotificationsReadCommand struct {
	audience notification.Audience

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark an audience's notifications as read.
func NewMarkAllNotificationsReadCommand(audience notification.Audience) (MarkAllNotificationsReadCommand, error) {
	if err := audience.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return MarkAllNotificationsReadCommand{
		audience: audience,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// Audience returns the audience whose notifications are marked.
func (c MarkAllNotificationsReadCommand) Audience() notification.Audience {
	return c.audience
}
