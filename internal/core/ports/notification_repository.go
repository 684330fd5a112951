package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationRepository defines the persistence contract for notifications.
// Rows are append-only apart from read-state updates and retention cleanup.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// MarkRead marks a single notification as read if it belongs to the
	// audience and is unread. Returns the number of rows updated (0 or 1).
	MarkRead(ctx context.Context, id uuid.UUID, audience notification.Audience, readAt time.Time) (int64, error)

	// MarkManyRead marks the given notifications as read, scoped to the
	// audience. Returns the number of rows updated.
	MarkManyRead(ctx context.Context, ids []uuid.UUID, audience notification.Audience, readAt time.Time) (int64, error)

	// MarkAllRead marks every unread notification of the audience as read.
	// Returns the number of rows updated.
	MarkAllRead(ctx context.Context, audience notification.Audience, readAt time.Time) (int64, error)

	// DeleteReadBefore removes read notifications created before the cutoff.
	// Used by retention cleanup. Returns the number of rows removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
