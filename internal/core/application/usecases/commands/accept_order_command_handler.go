package commands

import (
	"context"
	"time"
)

// AcceptOrderCommandHandler moves a pending order to Accepted, recording
// the admin's confirmed preparation date.
type AcceptOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	minPrepDays int
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, minPrepDays int) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:  uowFactory,
		minPrepDays: minPrepDays,
	}
}

// Handle processes the accept command. Fails with an invalid-transition
// error outside PendingAdminAcceptance and with a validation error when the
// confirmed date is inside the minimum lead time.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = aggregate.Accept(cmd.ConfirmedPrepDate(), time.Now().UTC(), h.minPrepDays); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
