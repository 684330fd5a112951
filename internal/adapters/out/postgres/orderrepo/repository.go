package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// SetDeliveryMirror updates the order's denormalized assignee and status
// columns. Passing both values as nil clears the mirror.
func (r *GormOrderRepository) SetDeliveryMirror(
	ctx context.Context,
	orderID int64,
	deliveryPersonID *int64,
	statusKey *string,
) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"delivery_person_id": deliveryPersonID,
			"delivery_status":    statusKey,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	return nil
}
