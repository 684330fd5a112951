package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrNotifyOrderCreatedCommandIsNotConstructed = errors.New(
	"NotifyOrderCreatedCommand must be created via NewNotifyOrderCreatedCommand constructor",
)

// NotifyOrderCreatedCommand announces a freshly created order to the admin and
// customer audiences. Order creation itself belongs to the order API; this
// command is its entry point into the notification fan-out.
type NotifyOrderCreatedCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewNotifyOrderCreatedCommand creates a command announcing an order creation.
func NewNotifyOrderCreatedCommand(orderID int64) (NotifyOrderCreatedCommand, error) {
	if orderID <= 0 {
		return NotifyOrderCreatedCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return NotifyOrderCreatedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyOrderCreatedCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOrderCreatedCommandIsNotConstructed)
}

// OrderID returns the created order.
func (c NotifyOrderCreatedCommand) OrderID() int64 {
	return c.orderID
}
