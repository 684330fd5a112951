package assignment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create assignment in to_delivery with confirmed stamp", func(t *testing.T) {
		a, err := assignment.NewAssignment(100, 3, now)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, int64(100), a.OrderID())
		assert.Equal(t, int64(3), a.DeliveryPersonID())
		assert.Equal(t, assignment.ToDelivery, a.Status())
		require.NotNil(t, a.ConfirmedAt())
		assert.Equal(t, now, *a.ConfirmedAt())
		assert.Nil(t, a.PickedUpAt())
		assert.Nil(t, a.DeliveredAt())
		assert.Nil(t, a.CanceledAt())
	})

	t.Run("should fail with non-positive order id", func(t *testing.T) {
		a, err := assignment.NewAssignment(0, 3, now)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive delivery person id", func(t *testing.T) {
		a, err := assignment.NewAssignment(100, -1, now)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("should fail validation for nil assignment", func(t *testing.T) {
		var a *assignment.Assignment

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, assignment.ErrAssignmentIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		a := &assignment.Assignment{}

		err := a.Validate()

		require.Error(t, err)
	})
}

func TestAssignment_Retarget(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	t.Run("should move assignment to new delivery person and reset status", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		_, err := a.Transition(3, assignment.InDelivery, now.Add(time.Minute))
		require.NoError(t, err)

		err = a.Retarget(5, later)

		require.NoError(t, err)
		assert.Equal(t, int64(5), a.DeliveryPersonID())
		assert.Equal(t, assignment.ToDelivery, a.Status())
	})

	t.Run("should keep original confirmed stamp on re-target", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)

		err := a.Retarget(5, later)

		require.NoError(t, err)
		require.NotNil(t, a.ConfirmedAt())
		assert.Equal(t, now, *a.ConfirmedAt(), "timestamps are set once, on first entry")
	})

	t.Run("should fail on delivered assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		_, err := a.Transition(3, assignment.Delivered, now)
		require.NoError(t, err)

		err = a.Retarget(5, later)

		require.Error(t, err)
		assert.ErrorIs(t, err, assignment.ErrAssignmentIsTerminal)
	})

	t.Run("should fail on canceled assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		_, err := a.Transition(3, assignment.Canceled, now)
		require.NoError(t, err)

		err = a.Retarget(5, later)

		require.Error(t, err)
		assert.ErrorIs(t, err, assignment.ErrAssignmentIsTerminal)
	})

	t.Run("should fail with non-positive delivery person id", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)

		err := a.Retarget(0, later)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAssignment_Transition(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should apply transition for owning delivery person", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)

		applied, err := a.Transition(3, assignment.InDelivery, now.Add(time.Minute))

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, assignment.InDelivery, a.Status())
	})

	t.Run("should silently refuse transition for non-owner", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)

		applied, err := a.Transition(7, assignment.InDelivery, now)

		require.NoError(t, err, "ownership mismatch is not an error")
		assert.False(t, applied)
		assert.Equal(t, assignment.ToDelivery, a.Status(), "status must be untouched")
	})

	t.Run("should fail on terminal assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		_, err := a.Transition(3, assignment.Delivered, now)
		require.NoError(t, err)

		applied, err := a.Transition(3, assignment.InDelivery, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, assignment.ErrAssignmentIsTerminal)
		assert.False(t, applied)
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)

		applied, err := a.Transition(3, assignment.Unknown, now)

		require.Error(t, err)
		assert.False(t, applied)
	})

	t.Run("should allow out of order transition within active statuses", func(t *testing.T) {
		// The graph is deliberately not strict below the terminal states.
		a, _ := assignment.NewAssignment(100, 3, now)

		applied, err := a.Transition(3, assignment.Delivered, now)

		require.NoError(t, err)
		assert.True(t, applied, "to_delivery -> delivered is accepted")
	})

	t.Run("should stamp lifecycle timestamps on first entry", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		pickedUp := now.Add(10 * time.Minute)
		delivered := now.Add(30 * time.Minute)

		_, err := a.Transition(3, assignment.InDelivery, pickedUp)
		require.NoError(t, err)
		_, err = a.Transition(3, assignment.Delivered, delivered)
		require.NoError(t, err)

		require.NotNil(t, a.PickedUpAt())
		assert.Equal(t, pickedUp, *a.PickedUpAt())
		require.NotNil(t, a.DeliveredAt())
		assert.Equal(t, delivered, *a.DeliveredAt())
	})

	t.Run("should not move timestamp when status is re-applied", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		first := now.Add(10 * time.Minute)
		second := now.Add(20 * time.Minute)

		_, err := a.Transition(3, assignment.InDelivery, first)
		require.NoError(t, err)
		_, err = a.Transition(3, assignment.InDelivery, second)
		require.NoError(t, err)

		require.NotNil(t, a.PickedUpAt())
		assert.Equal(t, first, *a.PickedUpAt(), "re-applying a status keeps the original stamp")
	})

	t.Run("should update updatedAt on applied transition", func(t *testing.T) {
		a, _ := assignment.NewAssignment(100, 3, now)
		later := now.Add(time.Hour)

		_, err := a.Transition(3, assignment.InDelivery, later)
		require.NoError(t, err)

		assert.Equal(t, later, a.UpdatedAt())
	})
}

func TestRestoreAssignment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore assignment from persistence", func(t *testing.T) {
		pickedUp := now.Add(time.Minute)

		a, err := assignment.RestoreAssignment(
			100, 3, assignment.InDelivery,
			&now, &pickedUp, nil, nil,
			now, pickedUp,
		)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, assignment.InDelivery, a.Status())
		assert.Equal(t, &pickedUp, a.PickedUpAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(
			100, 3, assignment.Unknown,
			nil, nil, nil, nil,
			now, now,
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}
