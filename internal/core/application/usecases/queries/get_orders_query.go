package queries

import (
	"errors"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the admin order list, optionally filtered by
// workflow status.
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the admin order list. A nil status
// returns every order.
func NewGetOrdersQuery(status *order.Status) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummaryResponse is one row of the admin order list: the order's
// workflow fields, the customer's contact line and the computed total.
type OrderSummaryResponse struct {
	ID                kernel.UUID
	OrderCode         string
	Status            order.Status
	PaymentMethod     string
	RequestedPrepDate time.Time
	ConfirmedPrepDate *time.Time
	IsPaid            bool
	PaidAt            *time.Time
	CreatedAt         time.Time
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	Total             kernel.Money
}
