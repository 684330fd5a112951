package notificationrepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// MarkRead marks one notification as read if it belongs to the audience and is
// still unread. A foreign or already-read id simply updates zero rows.
func (r *GormNotificationRepository) MarkRead(
	ctx context.Context,
	id uuid.UUID,
	audience notification.Audience,
	readAt time.Time,
) (int64, error) {
	result := r.audienceScope(ctx, audience).
		Where("id = ?", id).
		Where("is_read = ?", false).
		Updates(map[string]any{"is_read": true, "read_at": readAt})

	return result.RowsAffected, result.Error
}

// MarkManyRead marks the given notifications as read, scoped to the audience.
func (r *GormNotificationRepository) MarkManyRead(
	ctx context.Context,
	ids []uuid.UUID,
	audience notification.Audience,
	readAt time.Time,
) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.audienceScope(ctx, audience).
		Where("id IN ?", ids).
		Where("is_read = ?", false).
		Updates(map[string]any{"is_read": true, "read_at": readAt})

	return result.RowsAffected, result.Error
}

// MarkAllRead marks every unread notification of the audience as read.
func (r *GormNotificationRepository) MarkAllRead(
	ctx context.Context,
	audience notification.Audience,
	readAt time.Time,
) (int64, error) {
	result := r.audienceScope(ctx, audience).
		Where("is_read = ?", false).
		Updates(map[string]any{"is_read": true, "read_at": readAt})

	return result.RowsAffected, result.Error
}

// DeleteReadBefore removes read notifications created before the cutoff.
// Unread rows are kept regardless of age.
func (r *GormNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ?", true).
		Where("created_at < ?", cutoff).
		Delete(&NotificationDTO{})

	return result.RowsAffected, result.Error
}

// audienceScope restricts a statement to rows addressed to one audience.
// Admin rows are matched by a null audience id.
func (r *GormNotificationRepository) audienceScope(ctx context.Context, audience notification.Audience) *gorm.DB {
	scope := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("audience_type = ?", audience.Kind().Key())

	if id := audience.ID(); id != nil {
		return scope.Where("audience_id = ?", *id)
	}
	return scope.Where("audience_id IS NULL")
}
