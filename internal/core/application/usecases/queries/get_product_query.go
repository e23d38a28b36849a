package queries

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product by ID.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product identifier.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}
