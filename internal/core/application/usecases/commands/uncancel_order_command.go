package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/guard"
)

var ErrUncancelOrderCommandIsNotConstructed = errors.New(
	"UncancelOrderCommand must be created via NewUncancelOrderCommand constructor",
)

// UncancelOrderCommand represents an admin reverting a cancellation, putting
// the order back at the start of the workflow.
type UncancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUncancelOrderCommand creates a command to revert a cancellation.
func NewUncancelOrderCommand(orderID kernel.UUID) (UncancelOrderCommand, error) {
	cmd := UncancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UncancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UncancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrUncancelOrderCommandIsNotConstructed)
}

func (c UncancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *UncancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
