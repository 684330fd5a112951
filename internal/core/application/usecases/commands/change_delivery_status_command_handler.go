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

// ErrAssignmentNotFound is returned when a status change targets an order that
// has no assignment (the unassigned state).
var ErrAssignmentNotFound = errors.New("assignment not found")

// ChangeDeliveryStatusCommandHandler applies a delivery status transition.
// On success it stamps the matching lifecycle timestamp, updates the order's
// delivery mirror, and fans out a statusChanged (or cancelled) event to the
// admin, customer, and assigned delivery person audiences. Mutation and
// notification rows commit in one transaction; live pushes follow the commit.
//
// Ownership mismatches return (false, nil): the ownership guard protects
// against a stale or reassigned actor and is deliberately silent.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	locks      *keyedlock.KeyedLock
	fanout     services.NotificationFanout
	pusher     LivePusher
}

// NewChangeDeliveryStatusCommandHandler creates a handler for status transitions.
func NewChangeDeliveryStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	locks *keyedlock.KeyedLock,
	pusher LivePusher,
) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		fanout:     services.NewNotificationFanout(),
		pusher:     pusher,
	}
}

// Handle processes the status transition command.
// Returns (true, nil) when the transition was applied, (false, nil) on an
// ownership mismatch, ErrAssignmentNotFound when the order is unassigned, and
// ErrAssignmentCompleted when the delivery already reached a terminal status.
func (h ChangeDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDeliveryStatusCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	h.locks.Lock(cmd.OrderID())
	defer h.locks.Unlock(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agg, err := uow.AssignmentRepository().GetByOrder(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, ErrAssignmentNotFound
	}
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()

	applied, err := agg.Transition(cmd.DeliveryPersonID(), cmd.Status(), now)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentIsTerminal) {
			return false, ErrAssignmentCompleted
		}
		return false, err
	}
	if !applied {
		return false, nil
	}

	if err = uow.AssignmentRepository().Update(ctx, agg); err != nil {
		return false, err
	}

	deliveryPersonID := agg.DeliveryPersonID()
	statusKey := agg.Status().Key()
	if err = uow.OrderRepository().SetDeliveryMirror(ctx, cmd.OrderID(), &deliveryPersonID, &statusKey); err != nil {
		return false, err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, ErrOrderNotFound
	}
	if err != nil {
		return false, err
	}

	eventType := orderevent.TypeStatusChanged
	if cmd.Status() == assignment.Canceled {
		eventType = orderevent.TypeCancelled
	}

	event := orderevent.Event{
		Type:             eventType,
		OrderID:          ord.ID(),
		OrderNumber:      ord.Number(),
		CustomerID:       ord.CustomerID(),
		DeliveryPersonID: &deliveryPersonID,
		StatusKey:        statusKey,
	}

	notifications, err := h.fanout.FanOut(event, now)
	if err != nil {
		return false, err
	}
	for _, n := range notifications {
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.pusher.Push(event, notifications)
	return true, nil
}
