package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/orderevent"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/keyedlock"
)

var (
	// ErrOrderNotFound is returned when the order to operate on does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrAssignmentCompleted is returned when the order's delivery already
	// reached a terminal status and can no longer be re-targeted or mutated.
	ErrAssignmentCompleted = errors.New("assignment already completed")
)

// AssignOrderCommandHandler orchestrates assigning an order to a delivery person.
// Creates the assignment on first assign, re-targets it on reassign, keeps the
// order's delivery mirror in sync, and fans the assigned event out to the
// admin, customer, and new assignee audiences. The assignment mutation and the
// notification rows commit in one transaction; live pushes follow the commit.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, locks, pusher)
//	cmd, _ := NewAssignOrderCommand(100, 3)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // order id does not exist
//	case errors.Is(err, ErrAssignmentCompleted):
//	    // delivery already finished, cannot reassign
//	case err != nil:
//	    // persistence failure
//	}
type AssignOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	locks      *keyedlock.KeyedLock
	fanout     services.NotificationFanout
	pusher     LivePusher
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
// The keyed lock serializes lifecycle mutations per order.
func NewAssignOrderCommandHandler(
	uowFactory LifecycleUoWFactory,
	locks *keyedlock.KeyedLock,
	pusher LivePusher,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		fanout:     services.NewNotificationFanout(),
		pusher:     pusher,
	}
}

// Handle processes the assignment command.
// Holds the order's lock across the read-modify-write so concurrent
// assignments and status updates for the same order are linearized.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locks.Lock(cmd.OrderID())
	defer h.locks.Unlock(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	agg, err := uow.AssignmentRepository().GetByOrder(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		agg, err = assignment.NewAssignment(cmd.OrderID(), cmd.DeliveryPersonID(), now)
		if err != nil {
			return err
		}
		if err = uow.AssignmentRepository().Add(ctx, agg); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if retargetErr := agg.Retarget(cmd.DeliveryPersonID(), now); retargetErr != nil {
			if errors.Is(retargetErr, assignment.ErrAssignmentIsTerminal) {
				return ErrAssignmentCompleted
			}
			return retargetErr
		}
		if err = uow.AssignmentRepository().Update(ctx, agg); err != nil {
			return err
		}
	}

	deliveryPersonID := cmd.DeliveryPersonID()
	statusKey := agg.Status().Key()
	if err = uow.OrderRepository().SetDeliveryMirror(ctx, cmd.OrderID(), &deliveryPersonID, &statusKey); err != nil {
		return err
	}

	event := orderevent.Event{
		Type:             orderevent.TypeAssigned,
		OrderID:          ord.ID(),
		OrderNumber:      ord.Number(),
		CustomerID:       ord.CustomerID(),
		DeliveryPersonID: &deliveryPersonID,
		StatusKey:        statusKey,
	}

	notifications, err := h.fanout.FanOut(event, now)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.Push(event, notifications)
	return nil
}
