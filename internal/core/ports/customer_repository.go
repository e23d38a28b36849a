package ports

import (
	"context"

	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmailAndPhone retrieves the customer with the given email and
	// phone pair. Checkout uses this to reuse an existing customer record.
	GetByEmailAndPhone(ctx context.Context, email, phone string) (*customer.Customer, error)
}
