package assignment_test

import (
	"testing"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromKey(t *testing.T) {
	t.Run("should parse all valid status keys", func(t *testing.T) {
		cases := map[string]assignment.Status{
			"to_delivery": assignment.ToDelivery,
			"in_delivery": assignment.InDelivery,
			"delivered":   assignment.Delivered,
			"canceled":    assignment.Canceled,
		}

		for key, expected := range cases {
			status, err := assignment.StatusFromKey(key)

			require.NoError(t, err, "key %q should parse", key)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown key", func(t *testing.T) {
		status, err := assignment.StatusFromKey("shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, assignment.Unknown, status)
	})

	t.Run("should reject empty key", func(t *testing.T) {
		status, err := assignment.StatusFromKey("")

		require.Error(t, err)
		assert.Equal(t, assignment.Unknown, status)
	})

	t.Run("should reject unknown literal key", func(t *testing.T) {
		// "unknown" is a storage representation, never accepted from callers
		_, err := assignment.StatusFromKey("unknown")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, status := range []assignment.Status{
			assignment.ToDelivery,
			assignment.InDelivery,
			assignment.Delivered,
			assignment.Canceled,
		} {
			require.NoError(t, status.Validate(), "status %s should be valid", status)
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := assignment.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := assignment.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_Key(t *testing.T) {
	t.Run("should return wire keys", func(t *testing.T) {
		assert.Equal(t, "to_delivery", assignment.ToDelivery.Key())
		assert.Equal(t, "in_delivery", assignment.InDelivery.Key())
		assert.Equal(t, "delivered", assignment.Delivered.Key())
		assert.Equal(t, "canceled", assignment.Canceled.Key())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", assignment.Unknown.Key())
		assert.Equal(t, "unknown", assignment.Status(42).Key())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and canceled are terminal", func(t *testing.T) {
		assert.True(t, assignment.Delivered.IsTerminal())
		assert.True(t, assignment.Canceled.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		assert.False(t, assignment.ToDelivery.IsTerminal())
		assert.False(t, assignment.InDelivery.IsTerminal())
		assert.False(t, assignment.Unknown.IsTerminal())
	})
}
