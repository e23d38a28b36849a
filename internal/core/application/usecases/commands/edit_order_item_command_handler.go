package commands

import (
	"context"
)

// EditOrderItemCommandHandler updates a line item's quantity or unit price
// snapshot. Unguarded by order status.
type EditOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditOrderItemCommandHandler creates a handler for line item edits.
func NewEditOrderItemCommandHandler(uowFactory OrderUoWFactory) EditOrderItemCommandHandler {
	return EditOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item edit command. A not-found error means either
// the order or the item within it is missing.
func (h *EditOrderItemCommandHandler) Handle(ctx context.Context, cmd EditOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EditItem(cmd.ItemID(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
