// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. It implements the repository pattern for the
// assignment aggregate, converting between the domain entity and its
// relational representation.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentDTO represents the database structure for persisting assignments.
// The order id is the primary key: at most one assignment exists per order,
// and a missing row is the unassigned state.
type AssignmentDTO struct {
	OrderID          int64 `gorm:"primaryKey"`
	DeliveryPersonID int64 `gorm:"index"`
	Status           int

	ConfirmedAt *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CanceledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		OrderID:          aggregate.OrderID(),
		DeliveryPersonID: aggregate.DeliveryPersonID(),
		Status:           int(aggregate.Status()),
		ConfirmedAt:      aggregate.ConfirmedAt(),
		PickedUpAt:       aggregate.PickedUpAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CanceledAt:       aggregate.CanceledAt(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back into the assignment aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	return assignment.RestoreAssignment(
		dto.OrderID,
		dto.DeliveryPersonID,
		assignment.Status(dto.Status),
		dto.ConfirmedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CanceledAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
