// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are created and owned by the order API; this
// repository reads them and writes only the denormalized delivery mirror
// columns.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for reading order rows.
// DeliveryPersonID and DeliveryStatus mirror the assignment row and are the
// only columns this service writes.
type OrderDTO struct {
	ID               int64 `gorm:"primaryKey"`
	Number           string
	CustomerID       int64 `gorm:"index"`
	TotalAmount      float64
	DeliveryPersonID *int64  `gorm:"index"`
	DeliveryStatus   *string `gorm:"type:varchar(32)"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line item. Items are read-only here and
// only surfaced by the order list queries.
type OrderItemDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderID     int64 `gorm:"index"`
	ProductName string
	Quantity    int
	Price       float64
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// toDomain converts a database DTO to the order read model.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.Number,
		dto.CustomerID,
		dto.TotalAmount,
		dto.DeliveryPersonID,
		dto.DeliveryStatus,
		dto.CreatedAt,
	)
}
