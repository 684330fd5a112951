// Package notification provides the domain model for persisted, addressed
// notifications about order lifecycle events.
//
// One notification row exists per (event, audience member) pair. Rows are
// written before any live push so that an actor who is offline at push time
// still finds the notification on the next poll. Rows are mutated only by
// read-state updates and removed only by retention cleanup.
package notification

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/orderevent"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance was
// not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification constructor",
)

// Payload carries the facts a client needs to render the notification in its
// own language. The server never localizes: OrderNumber and StatusKey are
// typed fields and the Title is an opaque translation key.
type Payload struct {
	OrderNumber string
	StatusKey   string
}

// Notification is an addressed, persisted fact about a lifecycle event.
type Notification struct {
	id        uuid.UUID
	audience  Audience
	title     string
	payload   Payload
	eventType orderevent.Type
	orderID   int64
	isRead    bool
	createdAt time.Time
	readAt    *time.Time

	isConstructed bool
}

// NewNotification creates an unread notification for one audience member.
func NewNotification(
	audience Audience,
	title string,
	payload Payload,
	eventType orderevent.Type,
	orderID int64,
	now time.Time,
) (*Notification, error) {
	if err := audience.Validate(); err != nil {
		return nil, err
	}
	if err := eventType.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if payload.OrderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Notification{
		id:            uuid.New(),
		audience:      audience,
		title:         title,
		payload:       payload,
		eventType:     eventType,
		orderID:       orderID,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id uuid.UUID,
	audience Audience,
	title string,
	payload Payload,
	eventType orderevent.Type,
	orderID int64,
	isRead bool,
	createdAt time.Time,
	readAt *time.Time,
) (*Notification, error) {
	if err := audience.Validate(); err != nil {
		return nil, err
	}
	if err := eventType.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		audience:      audience,
		title:         title,
		payload:       payload,
		eventType:     eventType,
		orderID:       orderID,
		isRead:        isRead,
		createdAt:     createdAt,
		readAt:        readAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() uuid.UUID { return n.id }

// Audience returns the addressed recipient.
func (n *Notification) Audience() Audience { return n.audience }

// Title returns the opaque translation key for the notification title.
func (n *Notification) Title() string { return n.title }

// Payload returns the structured, translation-agnostic payload.
func (n *Notification) Payload() Payload { return n.payload }

// EventType returns the lifecycle event that produced the notification.
func (n *Notification) EventType() orderevent.Type { return n.eventType }

// OrderID returns the order the notification refers to.
func (n *Notification) OrderID() int64 { return n.orderID }

// IsRead reports whether the recipient has read the notification.
func (n *Notification) IsRead() bool { return n.isRead }

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// ReadAt returns when the notification was read, nil while unread.
func (n *Notification) ReadAt() *time.Time { return n.readAt }

// MarkRead records the read state. Marking an already-read notification is a
// no-op and keeps the original read timestamp.
func (n *Notification) MarkRead(now time.Time) {
	if n.isRead {
		return
	}
	n.isRead = true
	read := now
	n.readAt = &read
}
