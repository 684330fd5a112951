package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnreadCountQueryHandler counts an audience's unread notifications.
type GetUnreadCountQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadCountQueryHandler creates a handler for unread counters.
func NewGetUnreadCountQueryHandler(db *gorm.DB) GetUnreadCountQueryHandler {
	return GetUnreadCountQueryHandler{db: db}
}

// Handle executes the count scoped to the audience.
func (h GetUnreadCountQueryHandler) Handle(ctx context.Context, query GetUnreadCountQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	audience := query.Audience()

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE audience_type = ?
		  AND (audience_id = ? OR (?::bigint IS NULL AND audience_id IS NULL))
		  AND is_read = FALSE
	`, audience.Kind().Key(), audience.ID(), audience.ID()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
