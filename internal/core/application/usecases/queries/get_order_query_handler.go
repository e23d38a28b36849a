package queries

import (
	"context"
	"database/sql"
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// order matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	resp, err := scanOrderDetail(ctx, h.db, `o.id = ?`, query.OrderID().Bytes())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderDetailResponse{}, err
	}

	return resp, nil
}

// scanOrderDetail loads one order row with its customer, then its items.
// Shared by the admin detail and tracking handlers; the caller supplies the
// WHERE clause on the orders table.
func scanOrderDetail(ctx context.Context, db *gorm.DB, where string, arg any) (OrderDetailResponse, error) {
	var resp OrderDetailResponse
	var id uuid.UUID
	var status int

	row := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_code,
			o.status,
			o.payment_method,
			o.requested_prep_date,
			o.confirmed_prep_date,
			o.notes,
			o.is_paid,
			o.paid_at,
			o.admin_comment,
			o.created_at,
			c.full_name,
			c.email,
			c.phone,
			c.whatsapp
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE `+where, arg).Row()

	err := row.Scan(
		&id,
		&resp.OrderCode,
		&status,
		&resp.PaymentMethod,
		&resp.RequestedPrepDate,
		&resp.ConfirmedPrepDate,
		&resp.Notes,
		&resp.IsPaid,
		&resp.PaidAt,
		&resp.AdminComment,
		&resp.CreatedAt,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.CustomerWhatsapp,
	)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)

	items, total, err := scanOrderItems(ctx, db, id)
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.Items = items
	resp.Total = total

	return resp, nil
}

func scanOrderItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]OrderItemResponse, kernel.Money, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			unit_price,
			quantity,
			line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID).Rows()
	if err != nil {
		return nil, kernel.Money{}, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	total := kernel.ZeroMoney()
	for rows.Next() {
		var item OrderItemResponse
		var id, productID uuid.UUID
		var unitPrice, lineTotal decimal.Decimal

		err = rows.Scan(
			&id,
			&productID,
			&item.ProductName,
			&unitPrice,
			&item.Quantity,
			&lineTotal,
		)
		if err != nil {
			return nil, kernel.Money{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, kernel.Money{}, idErr
		}
		item.ID = itemID

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, kernel.Money{}, idErr
		}
		item.ProductID = itemProductID

		unitPriceMoney, moneyErr := kernel.NewMoney(unitPrice)
		if moneyErr != nil {
			return nil, kernel.Money{}, moneyErr
		}
		item.UnitPrice = unitPriceMoney

		lineTotalMoney, moneyErr := kernel.NewMoney(lineTotal)
		if moneyErr != nil {
			return nil, kernel.Money{}, moneyErr
		}
		item.LineTotal = lineTotalMoney

		total = total.Add(item.LineTotal)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, kernel.Money{}, err
	}

	return items, total, nil
}
