package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCleanupNotificationsCommandIsNotConstructed = errors.New(
	"CleanupNotificationsCommand must be created via NewCleanupNotificationsCommand constructor",
)

// CleanupNotificationsCommand removes read notifications created before the
// cutoff. Unread rows are never cleaned up: an actor who has not seen a
// notification keeps it regardless of age.
type CleanupNotificationsCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCleanupNotificationsCommand creates a retention cleanup command.
func NewCleanupNotificationsCommand(cutoff time.Time) (CleanupNotificationsCommand, error) {
	if cutoff.IsZero() {
		return CleanupNotificationsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CleanupNotificationsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupNotificationsCommandIsNotConstructed)
}

// Cutoff returns the creation-time cutoff for cleanup.
func (c CleanupNotificationsCommand) Cutoff() time.Time {
	return c.cutoff
}
