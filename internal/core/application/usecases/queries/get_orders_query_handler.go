package queries

import (
	"context"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the admin order list from the database.
// Totals are summed from line items in SQL so the list needs one round trip.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for admin order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time, newest
// first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.order_code,
			o.status,
			o.payment_method,
			o.requested_prep_date,
			o.confirmed_prep_date,
			o.is_paid,
			o.paid_at,
			o.created_at,
			c.full_name,
			c.email,
			c.phone,
			COALESCE(SUM(i.line_total), 0) AS total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN order_items i ON i.order_id = o.id
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += ` WHERE o.status = ?`
		args = append(args, *query.Status())
	}
	sql += `
		GROUP BY o.id, c.id
		ORDER BY o.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var resp OrderSummaryResponse
		var id uuid.UUID
		var status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.OrderCode,
			&status,
			&resp.PaymentMethod,
			&resp.RequestedPrepDate,
			&resp.ConfirmedPrepDate,
			&resp.IsPaid,
			&resp.PaidAt,
			&resp.CreatedAt,
			&resp.CustomerName,
			&resp.CustomerEmail,
			&resp.CustomerPhone,
			&total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Total = money

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
