package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand requests that an order be assigned to a delivery person.
// If the order already has a non-terminal assignment, it is re-targeted: the
// prior delivery person loses ownership and the status resets to to_delivery.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(100, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignOrderCommand struct {
	orderID          int64
	deliveryPersonID int64

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a delivery person.
// Both ids must be positive.
func NewAssignOrderCommand(orderID, deliveryPersonID int64) (AssignOrderCommand, error) {
	if orderID <= 0 {
		return AssignOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if deliveryPersonID <= 0 {
		return AssignOrderCommand{}, errs.NewValueIsRequiredError("deliveryPersonID")
	}

	return AssignOrderCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() int64 {
	return c.orderID
}

// DeliveryPersonID returns the delivery person receiving the order.
func (c AssignOrderCommand) DeliveryPersonID() int64 {
	return c.deliveryPersonID
}
