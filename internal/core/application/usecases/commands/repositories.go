// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"caramelt/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface its operation needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// accept, complete, cancel, uncancel and line item edits.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCustomerUoW manages transactions touching an order and its
	// customer: payment confirmation and detail updates.
	OrderCustomerUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderCustomerUoWFactory creates new order+customer unit of work instances.
	OrderCustomerUoWFactory interface {
		Create() OrderCustomerUoW
	}

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CheckoutUoW manages the checkout transaction, which reads products,
	// upserts the customer and inserts the order with its items atomically.
	CheckoutUoW interface {
		TxManager
		ProductRepoFactory
		CustomerRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
