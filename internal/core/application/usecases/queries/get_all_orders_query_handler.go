package queries

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// statusKeyUnassigned is the derived status for orders with no assignment row.
// It is not an assignment.Status value: absence of the row is its own state.
const statusKeyUnassigned = "unassigned"

// GetAllOrdersQueryHandler lists every order for the back office, including
// unassigned ones, with optional search and date range filters.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the admin order list.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. A missing assignment row is reported as the
// unassigned state, not as an error.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_id,
			o.total_amount,
			o.created_at,
			a.status,
			a.delivery_person_id
		FROM orders o
		LEFT JOIN assignments a ON a.order_id = o.id
		WHERE (? = '' OR o.number ILIKE '%' || ? || '%')
		  AND (?::timestamptz IS NULL OR o.created_at >= ?)
		  AND (?::timestamptz IS NULL OR o.created_at <= ?)
		ORDER BY o.id
	`, query.Search(), query.Search(), query.From(), query.From(), query.To(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var status *int

		if err = rows.Scan(
			&resp.OrderID,
			&resp.OrderNumber,
			&resp.CustomerID,
			&resp.TotalAmount,
			&resp.CreatedAt,
			&status,
			&resp.DeliveryPersonID,
		); err != nil {
			return nil, err
		}

		if status != nil {
			resp.StatusKey = assignment.Status(*status).Key()
		} else {
			resp.StatusKey = statusKeyUnassigned
		}
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
func (h GetAllOrdersQueryHandler) attachItems(ctx context.Context, orders []GetAllOrdersQueryResponse) error {
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
