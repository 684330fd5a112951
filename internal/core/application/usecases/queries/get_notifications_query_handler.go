package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetNotificationsQueryHandler lists an audience's notifications newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification lists.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query scoped to the audience. Admin rows carry a null
// audience id, delivery/customer rows carry their member id.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetNotificationsQueryResponse, 0)
	audience := query.Audience()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, title, order_number, status_key, event_type, order_id, is_read, created_at, read_at
		FROM notifications
		WHERE audience_type = ?
		  AND (audience_id = ? OR (?::bigint IS NULL AND audience_id IS NULL))
		ORDER BY created_at DESC, id
	`, audience.Kind().Key(), audience.ID(), audience.ID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNotificationsQueryResponse

		if err = rows.Scan(
			&resp.ID,
			&resp.Title,
			&resp.OrderNumber,
			&resp.StatusKey,
			&resp.EventType,
			&resp.OrderID,
			&resp.IsRead,
			&resp.CreatedAt,
			&resp.ReadAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
