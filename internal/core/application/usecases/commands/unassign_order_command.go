package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUnassignOrderCommandIsNotConstructed = errors.New(
	"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor",
)

// UnassignOrderCommand requests removal of an order's assignment, returning
// the order to the unassigned state. No notification is produced: the removal
// is deliberately silent so the delivery person is not notified of their own
// removal.
type UnassignOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewUnassignOrderCommand creates a command to unassign an order.
func NewUnassignOrderCommand(orderID int64) (UnassignOrderCommand, error) {
	if orderID <= 0 {
		return UnassignOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return UnassignOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}

// OrderID returns the order to unassign.
func (c UnassignOrderCommand) OrderID() int64 {
	return c.orderID
}
