// Package queries contains read operations in the CQRS architecture.
// Query handlers go straight to the database with raw SQL and return
// denormalized view structs; they never load domain aggregates.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryPersonOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveryPersonOrdersQuery must be created via NewGetDeliveryPersonOrdersQuery constructor",
)

// GetDeliveryPersonOrdersQuery retrieves the orders currently assigned to one
// delivery person, optionally filtered by a text search on the order number.
type GetDeliveryPersonOrdersQuery struct {
	deliveryPersonID int64
	search           string

	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonOrdersQuery creates a query for a delivery person's orders.
// search may be empty; when set it filters by order number substring.
func NewGetDeliveryPersonOrdersQuery(deliveryPersonID int64, search string) (GetDeliveryPersonOrdersQuery, error) {
	if deliveryPersonID <= 0 {
		return GetDeliveryPersonOrdersQuery{}, errs.NewValueIsRequiredError("deliveryPersonID")
	}

	return GetDeliveryPersonOrdersQuery{
		deliveryPersonID: deliveryPersonID,
		search:           search,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPersonOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonOrdersQueryIsNotConstructed)
}

// DeliveryPersonID returns the delivery person whose orders are listed.
func (q GetDeliveryPersonOrdersQuery) DeliveryPersonID() int64 {
	return q.deliveryPersonID
}

// Search returns the order number filter, empty for no filtering.
func (q GetDeliveryPersonOrdersQuery) Search() string {
	return q.search
}

// OrderItemView is one line item of an order as exposed by the order queries.
type OrderItemView struct {
	ProductName string
	Quantity    int
	Price       float64
}

// GetDeliveryPersonOrdersQueryResponse is one assigned order with its items
// and current delivery status.
type GetDeliveryPersonOrdersQueryResponse struct {
	OrderID     int64
	OrderNumber string
	TotalAmount float64
	StatusKey   string
	ConfirmedAt *time.Time
	Items       []OrderItemView
}
