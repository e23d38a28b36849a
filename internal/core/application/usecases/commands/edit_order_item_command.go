package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrEditOrderItemCommandIsNotConstructed = errors.New(
	"EditOrderItemCommand must be created via NewEditOrderItemCommand constructor",
)

// EditOrderItemCommand represents an admin edit of one order line item:
// a new quantity, a new unit price, or both. The line total is recomputed
// by the aggregate.
type EditOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	quantity  *int
	unitPrice *kernel.Money

	guard guard.ConstructorGuard
}

// NewEditOrderItemCommand creates a command for a line item edit.
func NewEditOrderItemCommand(
	orderID, itemID kernel.UUID,
	quantity *int,
	unitPrice *kernel.Money,
) (EditOrderItemCommand, error) {
	cmd := EditOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return EditOrderItemCommand{}, err
	}

	if quantity == nil && unitPrice == nil {
		return EditOrderItemCommand{}, errs.NewValueIsRequiredErrorWithCause("body",
			errors.New("quantity or unitPrice must be provided"))
	}

	cmd.quantity = quantity
	cmd.unitPrice = unitPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderItemCommandIsNotConstructed)
}

func (c EditOrderItemCommand) OrderID() kernel.UUID     { return c.orderID }
func (c EditOrderItemCommand) ItemID() kernel.UUID      { return c.itemID }
func (c EditOrderItemCommand) Quantity() *int           { return c.quantity }
func (c EditOrderItemCommand) UnitPrice() *kernel.Money { return c.unitPrice }

func (c *EditOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderItemId", err)
	}

	c.itemID = itemID
	return nil
}
