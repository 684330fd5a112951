package orderevent_test

import (
	"testing"

	"dispatch/internal/core/domain/model/orderevent"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_Validate(t *testing.T) {
	t.Run("should accept all lifecycle event types", func(t *testing.T) {
		for _, eventType := range []orderevent.Type{
			orderevent.TypeCreated,
			orderevent.TypeAssigned,
			orderevent.TypeStatusChanged,
			orderevent.TypeCancelled,
		} {
			require.NoError(t, eventType.Validate(), "type %s should be valid", eventType)
		}
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		err := orderevent.Type("deleted").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestType_ChannelName(t *testing.T) {
	t.Run("should prefix the type with order namespace", func(t *testing.T) {
		assert.Equal(t, "order:created", orderevent.TypeCreated.ChannelName())
		assert.Equal(t, "order:assigned", orderevent.TypeAssigned.ChannelName())
		assert.Equal(t, "order:statusChanged", orderevent.TypeStatusChanged.ChannelName())
		assert.Equal(t, "order:cancelled", orderevent.TypeCancelled.ChannelName())
	})
}

func TestEvent_Validate(t *testing.T) {
	deliveryPersonID := int64(3)
	valid := orderevent.Event{
		Type:             orderevent.TypeAssigned,
		OrderID:          100,
		OrderNumber:      "ORD-100",
		CustomerID:       7,
		DeliveryPersonID: &deliveryPersonID,
		StatusKey:        "to_delivery",
	}

	t.Run("should accept complete event", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should accept created event without delivery person or status", func(t *testing.T) {
		event := orderevent.Event{
			Type:        orderevent.TypeCreated,
			OrderID:     100,
			OrderNumber: "ORD-100",
			CustomerID:  7,
		}

		require.NoError(t, event.Validate())
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		event := valid
		event.OrderID = 0

		require.Error(t, event.Validate())
	})

	t.Run("should reject missing order number", func(t *testing.T) {
		event := valid
		event.OrderNumber = ""

		require.Error(t, event.Validate())
	})

	t.Run("should reject missing customer id", func(t *testing.T) {
		event := valid
		event.CustomerID = 0

		require.Error(t, event.Validate())
	})

	t.Run("should reject invalid type", func(t *testing.T) {
		event := valid
		event.Type = orderevent.Type("unknown")

		require.Error(t, event.Validate())
	})
}
