package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/orderevent"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// NotifyOrderCreatedCommandHandler fans a created event out to the admin
// collective and the order's customer. No delivery person is involved yet, so
// the fan-out produces exactly two notification rows.
type NotifyOrderCreatedCommandHandler struct {
	uowFactory LifecycleUoWFactory
	fanout     services.NotificationFanout
	pusher     LivePusher
}

// NewNotifyOrderCreatedCommandHandler creates a handler for order creation announcements.
func NewNotifyOrderCreatedCommandHandler(
	uowFactory LifecycleUoWFactory,
	pusher LivePusher,
) NotifyOrderCreatedCommandHandler {
	return NotifyOrderCreatedCommandHandler{
		uowFactory: uowFactory,
		fanout:     services.NewNotificationFanout(),
		pusher:     pusher,
	}
}

// Handle processes the creation announcement.
// Persists the notification rows, then pushes to the live rooms.
func (h NotifyOrderCreatedCommandHandler) Handle(ctx context.Context, cmd NotifyOrderCreatedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	event := orderevent.Event{
		Type:        orderevent.TypeCreated,
		OrderID:     ord.ID(),
		OrderNumber: ord.Number(),
		CustomerID:  ord.CustomerID(),
	}

	notifications, err := h.fanout.FanOut(event, time.Now().UTC())
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
