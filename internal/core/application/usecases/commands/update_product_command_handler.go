package commands

import (
	"context"
)

// UpdateProductCommandHandler applies a partial patch to a catalog product.
// Price changes do not touch existing orders; their unit price snapshots
// keep the price at checkout time.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product patches.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product patch command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if cmd.Name() != nil {
		if err = aggregate.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		if err = aggregate.ChangeDescription(*cmd.Description()); err != nil {
			return err
		}
	}
	if cmd.Price() != nil {
		if err = aggregate.ChangePrice(*cmd.Price()); err != nil {
			return err
		}
	}
	if cmd.ImageURL() != nil {
		aggregate.SetImageURL(*cmd.ImageURL())
	}
	if cmd.IsActive() != nil {
		aggregate.SetActive(*cmd.IsActive())
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
