package commands

import (
	"context"

	"dispatch/internal/pkg/keyedlock"
)

// UnassignOrderCommandHandler removes an order's assignment and clears the
// order's delivery mirror. The removal is unconditional; when no assignment
// exists the handler reports false without raising an error, so repeating the
// call is safe.
type UnassignOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	locks      *keyedlock.KeyedLock
}

// NewUnassignOrderCommandHandler creates a handler for order unassignment.
func NewUnassignOrderCommandHandler(
	uowFactory LifecycleUoWFactory,
	locks *keyedlock.KeyedLock,
) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the unassignment command.
// Returns true when an assignment was removed, false when none existed.
// No event is emitted either way.
func (h UnassignOrderCommandHandler) Handle(ctx context.Context, cmd UnassignOrderCommand) (bool, error) {
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

	removed, err := uow.AssignmentRepository().DeleteByOrder(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err = uow.OrderRepository().SetDeliveryMirror(ctx, cmd.OrderID(), nil, nil); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
