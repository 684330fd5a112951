// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. Notifications are append-only apart
// from read-state updates and retention cleanup, so the repository exposes
// targeted UPDATE/DELETE operations instead of whole-aggregate saves.
package notificationrepo

import (
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/orderevent"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications. The audience is stored as a (type, nullable id) pair:
// admin rows carry a null audience id, delivery and customer rows carry
// the member id.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AudienceType string    `gorm:"index:idx_notifications_audience"`
	AudienceID   *int64    `gorm:"index:idx_notifications_audience"`
	Title        string
	OrderNumber  string
	StatusKey    string
	EventType    string
	OrderID      int64 `gorm:"index"`
	IsRead       bool
	CreatedAt    time.Time
	ReadAt       *time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification aggregate to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:           aggregate.ID(),
		AudienceType: aggregate.Audience().Kind().Key(),
		AudienceID:   aggregate.Audience().ID(),
		Title:        aggregate.Title(),
		OrderNumber:  aggregate.Payload().OrderNumber,
		StatusKey:    aggregate.Payload().StatusKey,
		EventType:    string(aggregate.EventType()),
		OrderID:      aggregate.OrderID(),
		IsRead:       aggregate.IsRead(),
		CreatedAt:    aggregate.CreatedAt(),
		ReadAt:       aggregate.ReadAt(),
	}
}

// toDomain converts a database DTO back into the notification aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	kind, err := notification.AudienceKindFromKey(dto.AudienceType)
	if err != nil {
		return nil, err
	}

	audience, err := notification.NewAudience(kind, dto.AudienceID)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		dto.ID,
		audience,
		dto.Title,
		notification.Payload{
			OrderNumber: dto.OrderNumber,
			StatusKey:   dto.StatusKey,
		},
		orderevent.Type(dto.EventType),
		dto.OrderID,
		dto.IsRead,
		dto.CreatedAt,
		dto.ReadAt,
	)
}
