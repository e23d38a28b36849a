package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents an admin closing out a paid order with a
// terminal outcome: Delivered, NotDelivered or Returned.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome order.Status

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete a paid order.
func NewCompleteOrderCommand(orderID kernel.UUID, outcome order.Status) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOutcome(outcome),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c CompleteOrderCommand) Outcome() order.Status { return c.outcome }

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setOutcome(outcome order.Status) error {
	if !outcome.IsOutcome() {
		return errs.NewValueIsInvalidErrorWithCause("outcome",
			errors.New("outcome must be DELIVERED, NOT_DELIVERED or RETURNED"))
	}

	c.outcome = outcome
	return nil
}
