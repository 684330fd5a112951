package services

import (
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/orderevent"
)

// NotificationFanout is a domain service that expands one order lifecycle
// event into the set of notifications its audiences must receive.
//
// Audience matrix:
//
//	event          admin  customer  delivery person
//	created        yes    yes       -
//	assigned       yes    yes       yes (new assignee)
//	statusChanged  yes    yes       yes, if currently assigned
//	cancelled      yes    yes       yes, if was assigned
//
// The service is pure: it builds notification aggregates and leaves
// persistence and live push to the callers.
//
// Example usage:
//
//	fanout := NewNotificationFanout()
//	notifications, err := fanout.FanOut(event, time.Now())
//	if err != nil {
//	    // event was malformed
//	}
//	// persist notifications, then push them
type NotificationFanout struct{}

// NewNotificationFanout creates a new NotificationFanout instance.
func NewNotificationFanout() NotificationFanout {
	return NotificationFanout{}
}

// FanOut computes the audience set for the event and returns one notification
// per audience member: always the admin collective and the customer, plus the
// delivery person when the event carries one.
func (f NotificationFanout) FanOut(event orderevent.Event, now time.Time) ([]*notification.Notification, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	audiences := make([]notification.Audience, 0, 3)
	audiences = append(audiences, notification.NewAdminAudience())

	customer, err := notification.NewCustomerAudience(event.CustomerID)
	if err != nil {
		return nil, err
	}
	audiences = append(audiences, customer)

	if event.Type != orderevent.TypeCreated && event.DeliveryPersonID != nil {
		deliveryPerson, dpErr := notification.NewDeliveryPersonAudience(*event.DeliveryPersonID)
		if dpErr != nil {
			return nil, dpErr
		}
		audiences = append(audiences, deliveryPerson)
	}

	title := titleForEvent(event.Type)
	payload := notification.Payload{
		OrderNumber: event.OrderNumber,
		StatusKey:   event.StatusKey,
	}

	notifications := make([]*notification.Notification, 0, len(audiences))
	for _, audience := range audiences {
		n, nErr := notification.NewNotification(audience, title, payload, event.Type, event.OrderID, now)
		if nErr != nil {
			return nil, nErr
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// titleForEvent maps an event type to its opaque title translation key.
// Clients resolve the key in their own locale.
func titleForEvent(eventType orderevent.Type) string {
	switch eventType {
	case orderevent.TypeCreated:
		return "notification.order.created"
	case orderevent.TypeAssigned:
		return "notification.order.assigned"
	case orderevent.TypeStatusChanged:
		return "notification.order.statusChanged"
	case orderevent.TypeCancelled:
		return "notification.order.cancelled"
	default:
		return "notification.order.event"
	}
}
