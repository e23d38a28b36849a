package ports

import (
	"context"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products matching the given identifiers.
	// Missing identifiers are silently skipped; the caller decides whether
	// an incomplete result is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// Delete removes a product from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// IsReferencedByOrders reports whether any order line item points at the
	// product. Referenced products must not be deleted.
	IsReferencedByOrders(ctx context.Context, id kernel.UUID) (bool, error)
}
