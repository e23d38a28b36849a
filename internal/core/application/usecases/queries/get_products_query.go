// Package queries contains read-only operations against the database.
// Query handlers bypass the aggregate layer and read rows directly for
// optimal read performance in the CQRS pattern.
package queries

import (
	"errors"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves catalog products. The storefront asks for
// active products only; the admin list includes inactive ones.
type GetProductsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for the product catalog.
func NewGetProductsQuery(activeOnly bool) GetProductsQuery {
	return GetProductsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive products are filtered out.
func (q GetProductsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// ProductResponse is the read model for one catalog product.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
}
