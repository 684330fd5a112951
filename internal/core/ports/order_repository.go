package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the read contract for orders plus the single write
// the core owns: the denormalized delivery mirror columns.
type OrderRepository interface {
	// Get retrieves an order by id.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// SetDeliveryMirror updates the order's denormalized assignee and status
	// columns. Both nil clears the mirror (unassigned). The caller runs this
	// in the same transaction as the assignment mutation.
	SetDeliveryMirror(ctx context.Context, orderID int64, deliveryPersonID *int64, statusKey *string) error
}
