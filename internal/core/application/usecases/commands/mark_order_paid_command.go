package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents an admin confirming payment for an
// accepted order, optionally leaving a comment.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	adminComment *string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to confirm an order's payment.
func NewMarkOrderPaidCommand(orderID kernel.UUID, adminComment *string) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	cmd.adminComment = adminComment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID  { return c.orderID }
func (c MarkOrderPaidCommand) AdminComment() *string { return c.adminComment }

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
