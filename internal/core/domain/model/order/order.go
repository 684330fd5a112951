// Package order provides the read model for commercial orders. Orders are
// created and owned by the order API; this core reads them to validate
// assignments and to address notifications, and only touches the denormalized
// delivery mirror fields.
package order

import (
	"time"

	"dispatch/internal/pkg/errs"
)

// Order is an immutable-once-created commercial document. The core never
// creates orders; RestoreOrder is the only constructor and is fed from
// persistence.
type Order struct {
	id          int64
	number      string
	customerID  int64
	totalAmount float64

	// Denormalized delivery mirror, kept in sync with the assignment row
	// inside the same transaction that mutates the assignment.
	deliveryPersonID *int64
	deliveryStatus   *string

	createdAt time.Time

	isConstructed bool
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id int64,
	number string,
	customerID int64,
	totalAmount float64,
	deliveryPersonID *int64,
	deliveryStatus *string,
	createdAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if customerID <= 0 {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	return &Order{
		id:               id,
		number:           number,
		customerID:       customerID,
		totalAmount:      totalAmount,
		deliveryPersonID: deliveryPersonID,
		deliveryStatus:   deliveryStatus,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the order was created through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return errs.NewValueIsRequiredError("order")
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// CustomerID returns the customer the order belongs to.
func (o *Order) CustomerID() int64 { return o.customerID }

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// DeliveryPersonID returns the mirrored assignee, nil when unassigned.
func (o *Order) DeliveryPersonID() *int64 { return o.deliveryPersonID }

// DeliveryStatus returns the mirrored delivery status key, nil when unassigned.
func (o *Order) DeliveryStatus() *string { return o.deliveryStatus }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }
