package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryPersonOrdersQuery(t *testing.T) {
	t.Run("should accept valid input", func(t *testing.T) {
		query, err := queries.NewGetDeliveryPersonOrdersQuery(3, "ORD")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(3), query.DeliveryPersonID())
		assert.Equal(t, "ORD", query.Search())
	})

	t.Run("should accept empty search", func(t *testing.T) {
		query, err := queries.NewGetDeliveryPersonOrdersQuery(3, "")

		require.NoError(t, err)
		assert.Empty(t, query.Search())
	})

	t.Run("should reject non-positive delivery person id", func(t *testing.T) {
		_, err := queries.NewGetDeliveryPersonOrdersQuery(0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		query := queries.GetDeliveryPersonOrdersQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetDeliveryPersonOrdersQueryIsNotConstructed)
	})
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	t.Run("should accept empty filters", func(t *testing.T) {
		query := queries.NewGetAllOrdersQuery("", nil, nil)

		require.NoError(t, query.Validate())
		assert.Empty(t, query.Search())
		assert.Nil(t, query.From())
		assert.Nil(t, query.To())
	})

	t.Run("should carry date range", func(t *testing.T) {
		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		query := queries.NewGetAllOrdersQuery("ORD-1", &from, &to)

		require.NoError(t, query.Validate())
		assert.Equal(t, &from, query.From())
		assert.Equal(t, &to, query.To())
	})
}

func TestNewGetNotificationsQuery(t *testing.T) {
	t.Run("should accept valid audience", func(t *testing.T) {
		audience, err := notification.NewCustomerAudience(7)
		require.NoError(t, err)

		query, err := queries.NewGetNotificationsQuery(audience)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.Audience().IsEqual(audience))
	})

	t.Run("should reject invalid audience", func(t *testing.T) {
		_, err := queries.NewGetNotificationsQuery(notification.Audience{})

		require.Error(t, err)
	})
}

func TestNewGetUnreadCountQuery(t *testing.T) {
	t.Run("should accept valid audience", func(t *testing.T) {
		query, err := queries.NewGetUnreadCountQuery(notification.NewAdminAudience())

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("should reject invalid audience", func(t *testing.T) {
		_, err := queries.NewGetUnreadCountQuery(notification.Audience{})

		require.Error(t, err)
	})
}
