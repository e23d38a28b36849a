package commands

import (
	"context"
)

// UncancelOrderCommandHandler reverts a cancelled order to
// PendingAdminAcceptance so the workflow can re-run.
type UncancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUncancelOrderCommandHandler creates a handler for cancellation reverts.
func NewUncancelOrderCommandHandler(uowFactory OrderUoWFactory) UncancelOrderCommandHandler {
	return UncancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the uncancel command.
func (h *UncancelOrderCommandHandler) Handle(ctx context.Context, cmd UncancelOrderCommand) error {
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

	if err = aggregate.Uncancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
