package ports

import (
	"context"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded and stored with their full line item set.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// item edits and removals.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its public order code.
	// Used by the customer-facing tracking lookup.
	GetByCode(ctx context.Context, code string) (*order.Order, error)
}
