// Package orderevent defines the domain events emitted by the order-delivery
// lifecycle. Events drive the notification fan-out: each event is expanded
// into persisted notifications and live pushes for every interested audience.
package orderevent

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type identifies the kind of lifecycle event.
type Type string

const (
	// TypeCreated is emitted when an order is created (by the order API).
	TypeCreated Type = "created"

	// TypeAssigned is emitted when an order is assigned or reassigned.
	TypeAssigned Type = "assigned"

	// TypeStatusChanged is emitted when the delivery status changes.
	TypeStatusChanged Type = "statusChanged"

	// TypeCancelled is emitted when the delivery is canceled.
	TypeCancelled Type = "cancelled"
)

// Validate checks that the event type is one of the defined values.
func (t Type) Validate() error {
	switch t {
	case TypeCreated, TypeAssigned, TypeStatusChanged, TypeCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"event type is invalid",
			fmt.Errorf("%q is not a valid event type", string(t)),
		)
	}
}

// ChannelName returns the name under which the event is pushed to live
// connections ("order:assigned", "order:statusChanged", ...).
func (t Type) ChannelName() string {
	return "order:" + string(t)
}

// Event describes a single lifecycle fact about an order. DeliveryPersonID is
// nil for events on unassigned orders; StatusKey is empty for events that do
// not carry a status.
type Event struct {
	Type             Type
	OrderID          int64
	OrderNumber      string
	CustomerID       int64
	DeliveryPersonID *int64
	StatusKey        string
}

// Validate checks the event carries the fields every consumer relies on.
func (e Event) Validate() error {
	if err := e.Type.Validate(); err != nil {
		return err
	}
	if e.OrderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	if e.OrderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if e.CustomerID <= 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	return nil
}
