package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler deletes one line item from an order.
// Removing the last item leaves an empty order; that is allowed here and
// the admin is expected to cancel such orders.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for line item removal.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item removal command.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	if err = aggregate.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
