package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order for the back office, with optional
// order number search and creation date range. Orders without an assignment
// appear as unassigned rather than being filtered out.
type GetAllOrdersQuery struct {
	search string
	from   *time.Time
	to     *time.Time

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an admin order list query.
// All filters are optional: empty search and nil bounds mean no filtering.
func NewGetAllOrdersQuery(search string, from, to *time.Time) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		search: search,
		from:   from,
		to:     to,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Search returns the order number filter, empty for no filtering.
func (q GetAllOrdersQuery) Search() string { return q.search }

// From returns the inclusive lower bound on creation time, nil for none.
func (q GetAllOrdersQuery) From() *time.Time { return q.from }

// To returns the inclusive upper bound on creation time, nil for none.
func (q GetAllOrdersQuery) To() *time.Time { return q.to }

// GetAllOrdersQueryResponse is one order with items, delivery status, and
// assignee. StatusKey is "unassigned" and DeliveryPersonID nil when the order
// has no assignment.
type GetAllOrdersQueryResponse struct {
	OrderID          int64
	OrderNumber      string
	CustomerID       int64
	TotalAmount      float64
	StatusKey        string
	DeliveryPersonID *int64
	CreatedAt        time.Time
	Items            []OrderItemView
}
