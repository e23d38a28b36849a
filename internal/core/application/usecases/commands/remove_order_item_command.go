package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents an admin deleting one order line item.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command for a line item removal.
func NewRemoveOrderItemCommand(orderID, itemID kernel.UUID) (RemoveOrderItemCommand, error) {
	cmd := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemoveOrderItemCommand) ItemID() kernel.UUID  { return c.itemID }

func (c *RemoveOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderItemId", err)
	}

	c.itemID = itemID
	return nil
}
