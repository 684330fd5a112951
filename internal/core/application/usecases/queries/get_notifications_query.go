package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the notifications addressed to one audience,
// newest first. This is the durable fallback path for actors who were offline
// when events were pushed.
type GetNotificationsQuery struct {
	audience notification.Audience

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a notification list query for an audience.
func NewGetNotificationsQuery(audience notification.Audience) (GetNotificationsQuery, error) {
	if err := audience.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		audience: audience,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Audience returns the audience whose notifications are listed.
func (q GetNotificationsQuery) Audience() notification.Audience {
	return q.audience
}

// GetNotificationsQueryResponse is one persisted notification.
type GetNotificationsQueryResponse struct {
	ID          uuid.UUID
	Title       string
	OrderNumber string
	StatusKey   string
	EventType   string
	OrderID     int64
	IsRead      bool
	CreatedAt   time.Time
	ReadAt      *time.Time
}
