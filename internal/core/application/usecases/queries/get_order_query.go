package queries

import (
	"errors"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its customer and items for the
// admin detail view.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's full detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is the read model for one order line item.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	LineTotal   kernel.Money
}

// OrderDetailResponse is the full read model of one order: workflow fields,
// flattened customer contact fields and the line items.
type OrderDetailResponse struct {
	ID                kernel.UUID
	OrderCode         string
	Status            order.Status
	PaymentMethod     string
	RequestedPrepDate time.Time
	ConfirmedPrepDate *time.Time
	Notes             *string
	IsPaid            bool
	PaidAt            *time.Time
	AdminComment      *string
	CreatedAt         time.Time
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	CustomerWhatsapp  *string
	Items             []OrderItemResponse
	Total             kernel.Money
}
