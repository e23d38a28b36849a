package commands

import (
	"context"
)

// UpdateOrderDetailsCommandHandler applies admin edits to an order's notes
// and its customer's contact fields. Status-independent by design; this is
// the correction channel outside the formal workflow.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
}

// NewUpdateOrderDetailsCommandHandler creates a handler for detail edits.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderCustomerUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail update command.
func (h *UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	if cmd.FullName() != nil || cmd.Email() != nil || cmd.Phone() != nil || cmd.Whatsapp() != nil {
		customerRepo := uow.CustomerRepository()
		recipient, err := customerRepo.Get(ctx, aggregate.CustomerID())
		if err != nil {
			return err
		}

		if err = recipient.UpdateDetails(cmd.FullName(), cmd.Email(), cmd.Phone(), cmd.Whatsapp()); err != nil {
			return err
		}

		if err = customerRepo.Update(ctx, recipient); err != nil {
			return err
		}
	}

	if cmd.Notes() != nil {
		aggregate.UpdateNotes(*cmd.Notes())
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
