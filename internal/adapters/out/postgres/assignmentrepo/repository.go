package assignmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database. The primary key on order id
// makes a duplicate assignment for the same order fail at the database level.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// GetByOrder retrieves the assignment for an order.
func (r *GormAssignmentRepository) GetByOrder(ctx context.Context, orderID int64) (*assignment.Assignment, error) {
	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByOrder removes the assignment for an order. Deleting an order that
// has no assignment reports false without error.
func (r *GormAssignmentRepository) DeleteByOrder(ctx context.Context, orderID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "order_id = ?", orderID)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
