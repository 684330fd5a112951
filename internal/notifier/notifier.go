// Package notifier bridges committed lifecycle events to live connections.
// It translates a domain event and its persisted notifications into wire
// frames and hands them to the injected publisher. Everything here is
// best-effort: command handlers call Push after commit and never learn
// whether anyone was listening.
package notifier

import (
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/orderevent"
	"dispatch/internal/core/ports"
)

// eventPayload is the wire shape of an order lifecycle event.
type eventPayload struct {
	OrderID          int64  `json:"orderId"`
	OrderNumber      string `json:"orderNumber"`
	CustomerID       int64  `json:"customerId"`
	DeliveryPersonID *int64 `json:"deliveryPersonId,omitempty"`
	Status           string `json:"status,omitempty"`
}

// notificationPayload is the wire shape of a persisted notification.
type notificationPayload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	OrderNumber string    `json:"orderNumber"`
	StatusKey   string    `json:"statusKey,omitempty"`
	EventType   string    `json:"eventType"`
	OrderID     int64     `json:"orderId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notifier implements the live pusher used by command handlers.
type Notifier struct {
	publisher ports.LivePublisher
	logger    *slog.Logger
}

// NewNotifier creates a notifier over the given publisher.
func NewNotifier(publisher ports.LivePublisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
	}
}

// Push delivers the event frame plus one notification:new frame to the room
// of every addressed audience. Rows were already committed; a room with no
// listeners simply drops the frames.
func (n *Notifier) Push(event orderevent.Event, notifications []*notification.Notification) {
	payload := eventPayload{
		OrderID:          event.OrderID,
		OrderNumber:      event.OrderNumber,
		CustomerID:       event.CustomerID,
		DeliveryPersonID: event.DeliveryPersonID,
		Status:           event.StatusKey,
	}

	for _, row := range notifications {
		room := row.Audience().Room()

		n.publisher.Publish(room, event.Type.ChannelName(), payload)
		n.publisher.Publish(room, "notification:new", notificationPayload{
			ID:          row.ID().String(),
			Title:       row.Title(),
			OrderNumber: row.Payload().OrderNumber,
			StatusKey:   row.Payload().StatusKey,
			EventType:   string(row.EventType()),
			OrderID:     row.OrderID(),
			CreatedAt:   row.CreatedAt(),
		})
	}

	n.logger.Debug("pushed lifecycle event",
		"event", event.Type.ChannelName(),
		"order_id", event.OrderID,
		"audiences", len(notifications))
}
