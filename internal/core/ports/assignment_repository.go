// Package ports defines the contracts between the core and infrastructure.
// These interfaces establish the persistence and live-push boundaries,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for assignment aggregates.
// At most one assignment exists per order; a missing row is the unassigned state.
type AssignmentRepository interface {
	// Add persists a new assignment. Fails if the order already has one.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// GetByOrder retrieves the assignment for an order.
	// Returns errs.ErrObjectNotFound when the order is unassigned.
	GetByOrder(ctx context.Context, orderID int64) (*assignment.Assignment, error)

	// DeleteByOrder removes the assignment for an order.
	// Returns false without error when no assignment exists.
	DeleteByOrder(ctx context.Context, orderID int64) (bool, error)
}
