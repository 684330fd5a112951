package assignment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrAssignmentIsTerminal is returned when a mutation is attempted on an
	// assignment whose status is Delivered or Canceled.
	ErrAssignmentIsTerminal = errors.New("assignment is in a terminal status")
)

// Assignment links one order to at most one delivery person and tracks the
// delivery lifecycle. It is the aggregate root mutated by the status
// transition commands.
//
// Invariants:
//   - At most one assignment exists per order; removal returns the order to
//     the unassigned state.
//   - Lifecycle timestamps are set exactly once, on first entry into the
//     corresponding status.
//   - Terminal statuses (Delivered, Canceled) accept no further mutation.
//   - Only the currently assigned delivery person may transition the status.
type Assignment struct {
	orderID          int64
	deliveryPersonID int64
	status           Status

	confirmedAt *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	canceledAt  *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewAssignment creates an assignment in ToDelivery status. ConfirmedAt is
// stamped immediately since creation is the first entry into ToDelivery.
func NewAssignment(orderID, deliveryPersonID int64, now time.Time) (*Assignment, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if deliveryPersonID <= 0 {
		return nil, errs.NewValueIsRequiredError("deliveryPersonID")
	}

	confirmed := now
	return &Assignment{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		status:           ToDelivery,
		confirmedAt:      &confirmed,
		createdAt:        now,
		updatedAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence without
// re-running the creation rules. The status still has to be valid.
func RestoreAssignment(
	orderID, deliveryPersonID int64,
	status Status,
	confirmedAt, pickedUpAt, deliveredAt, canceledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if deliveryPersonID <= 0 {
		return nil, errs.NewValueIsRequiredError("deliveryPersonID")
	}

	return &Assignment{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		status:           status,
		confirmedAt:      confirmedAt,
		pickedUpAt:       pickedUpAt,
		deliveredAt:      deliveredAt,
		canceledAt:       canceledAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// OrderID returns the order this assignment belongs to.
func (a *Assignment) OrderID() int64 {
	return a.orderID
}

// DeliveryPersonID returns the currently assigned delivery person.
func (a *Assignment) DeliveryPersonID() int64 {
	return a.deliveryPersonID
}

// Status returns the current delivery status.
func (a *Assignment) Status() Status {
	return a.status
}

// ConfirmedAt returns when the assignment first entered ToDelivery.
func (a *Assignment) ConfirmedAt() *time.Time { return a.confirmedAt }

// PickedUpAt returns when the assignment first entered InDelivery.
func (a *Assignment) PickedUpAt() *time.Time { return a.pickedUpAt }

// DeliveredAt returns when the assignment entered Delivered.
func (a *Assignment) DeliveredAt() *time.Time { return a.deliveredAt }

// CanceledAt returns when the assignment entered Canceled.
func (a *Assignment) CanceledAt() *time.Time { return a.canceledAt }

// CreatedAt returns when the assignment row was created.
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns when the assignment was last mutated.
func (a *Assignment) UpdatedAt() time.Time { return a.updatedAt }

// Retarget moves the assignment to a different delivery person and resets the
// status to ToDelivery. The prior delivery person loses ownership. Fails with
// ErrAssignmentIsTerminal once the assignment is Delivered or Canceled.
func (a *Assignment) Retarget(deliveryPersonID int64, now time.Time) error {
	if deliveryPersonID <= 0 {
		return errs.NewValueIsRequiredError("deliveryPersonID")
	}
	if a.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrAssignmentIsTerminal, a.status)
	}

	a.deliveryPersonID = deliveryPersonID
	a.status = ToDelivery
	if a.confirmedAt == nil {
		confirmed := now
		a.confirmedAt = &confirmed
	}
	a.updatedAt = now
	return nil
}

// Transition applies a status change requested by actingDeliveryPersonID.
//
// Returns (false, nil) when the acting delivery person does not own the
// assignment. This is the sole guard against a stale or reassigned actor
// mutating an order it no longer owns. Returns ErrAssignmentIsTerminal when the current
// status is terminal. On success the matching lifecycle timestamp is stamped
// if it has not been stamped before.
func (a *Assignment) Transition(actingDeliveryPersonID int64, newStatus Status, now time.Time) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}
	if actingDeliveryPersonID != a.deliveryPersonID {
		return false, nil
	}
	if a.status.IsTerminal() {
		return false, fmt.Errorf("%w: %s", ErrAssignmentIsTerminal, a.status)
	}

	a.status = newStatus
	a.stampEntry(newStatus, now)
	a.updatedAt = now
	return true, nil
}

// stampEntry records the first entry into newStatus. Timestamps are write-once,
// so re-applying a status leaves the original stamp intact.
func (a *Assignment) stampEntry(newStatus Status, now time.Time) {
	stamp := now
	switch newStatus {
	case ToDelivery:
		if a.confirmedAt == nil {
			a.confirmedAt = &stamp
		}
	case InDelivery:
		if a.pickedUpAt == nil {
			a.pickedUpAt = &stamp
		}
	case Delivered:
		if a.deliveredAt == nil {
			a.deliveredAt = &stamp
		}
	case Canceled:
		if a.canceledAt == nil {
			a.canceledAt = &stamp
		}
	case Unknown:
	}
}
