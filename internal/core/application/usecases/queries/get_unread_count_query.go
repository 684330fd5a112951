package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/guard"
)

var ErrGetUnreadCountQueryIsNotConstructed = errors.New(
	"GetUnreadCountQuery must be created via NewGetUnreadCountQuery constructor",
)

// GetUnreadCountQuery retrieves the number of unread notifications for one
// audience, typically rendered as a badge counter.
type GetUnreadCountQuery struct {
	audience notification.Audience

	guard guard.ConstructorGuard
}

// NewGetUnreadCountQuery creates an unread counter query for an audience.
func NewGetUnreadCountQuery(audience notification.Audience) (GetUnreadCountQuery, error) {
	if err := audience.Validate(); err != nil {
		return GetUnreadCountQuery{}, err
	}

	return GetUnreadCountQuery{
		audience: audience,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnreadCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadCountQueryIsNotConstructed)
}

// Audience returns the audience whose unread notifications are counted.
func (q GetUnreadCountQuery) Audience() notification.Audience {
	return q.audience
}
