package queries

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetDeliveryPersonOrdersQueryHandler lists the orders assigned to a delivery
// person together with their items and delivery status.
type GetDeliveryPersonOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPersonOrdersQueryHandler creates a handler for delivery person order lists.
func NewGetDeliveryPersonOrdersQueryHandler(db *gorm.DB) GetDeliveryPersonOrdersQueryHandler {
	return GetDeliveryPersonOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by order id for stable output.
func (h GetDeliveryPersonOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonOrdersQuery,
) ([]GetDeliveryPersonOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDeliveryPersonOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.total_amount,
			a.status,
			a.confirmed_at
		FROM orders o
		JOIN assignments a ON a.order_id = o.id
		WHERE a.delivery_person_id = ?
		  AND (? = '' OR o.number ILIKE '%' || ? || '%')
		ORDER BY o.id
	`, query.DeliveryPersonID(), query.Search(), query.Search()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryPersonOrdersQueryResponse
		var status int

		if err = rows.Scan(
			&resp.OrderID,
			&resp.OrderNumber,
			&resp.TotalAmount,
			&status,
			&resp.ConfirmedAt,
		); err != nil {
			return nil, err
		}

		resp.StatusKey = assignment.Status(status).Key()
		resp.Items = make([]OrderItemView, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the line items for the collected orders in one query.
func (h GetDeliveryPersonOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetDeliveryPersonOrdersQueryResponse,
) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[int64]int, len(orders))
	ids := make([]int64, 0, len(orders))
	for i, o := range orders {
		index[o.OrderID] = i
		ids = append(ids, o.OrderID)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, product_name, quantity, price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item OrderItemView

		if err = rows.Scan(&orderID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
