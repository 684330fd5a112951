package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand requests a delivery status transition on behalf
// of a delivery person. Only the currently assigned delivery person may apply
// it; a mismatched actor results in a silent no-op.
//
// Example:
//
//	cmd, err := NewChangeDeliveryStatusCommand(100, 3, assignment.InDelivery)
//	if err != nil {
//	    return err
//	}
//	applied, err := handler.Handle(ctx, cmd)
//	if !applied && err == nil {
//	    // acting delivery person no longer owns the order
//	}
type ChangeDeliveryStatusCommand struct {
	orderID          int64
	deliveryPersonID int64
	status           assignment.Status

	guard guard.ConstructorGuard
}

// NewChangeDeliveryStatusCommand creates a status transition command.
// The status must be one of the accepted lifecycle values; malformed input is
// rejected here, before any persistence is touched.
func NewChangeDeliveryStatusCommand(
	orderID, deliveryPersonID int64,
	status assignment.Status,
) (ChangeDeliveryStatusCommand, error) {
	if orderID <= 0 {
		return ChangeDeliveryStatusCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if deliveryPersonID <= 0 {
		return ChangeDeliveryStatusCommand{}, errs.NewValueIsRequiredError("deliveryPersonID")
	}
	if err := status.Validate(); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return ChangeDeliveryStatusCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		status:           status,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c ChangeDeliveryStatusCommand) OrderID() int64 {
	return c.orderID
}

// DeliveryPersonID returns the acting delivery person.
func (c ChangeDeliveryStatusCommand) DeliveryPersonID() int64 {
	return c.deliveryPersonID
}

// Status returns the requested new status.
func (c ChangeDeliveryStatusCommand) Status() assignment.Status {
	return c.status
}
