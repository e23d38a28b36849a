package commands

import (
	"context"
	"log/slog"

	"caramelt/internal/core/ports"
	"caramelt/internal/pkg/errs"
)

// ErrProductHasOrders is the conflict returned when deleting a product that
// order line items still reference.
var ErrProductHasOrders = errs.NewConflictError("product is referenced by existing orders")

// DeleteProductCommandHandler removes a product from the catalog.
//
// Deletion is refused while any order line item references the product, so
// order history keeps resolving. The product image is deleted from blob
// storage best-effort after the row is gone.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	blobs      ports.BlobStorage
	logger     *slog.Logger
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(
	uowFactory ProductUoWFactory,
	blobs ports.BlobStorage,
	logger *slog.Logger,
) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		logger:     logger,
	}
}

// Handle processes the product deletion command. Returns ErrProductHasOrders
// when the product is still referenced.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	referenced, err := productRepo.IsReferencedByOrders(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if referenced {
		return ErrProductHasOrders
	}

	if err = productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if imageURL := aggregate.ImageURL(); imageURL != nil {
		if err = h.blobs.Delete(ctx, *imageURL); err != nil {
			h.logger.Warn("product image cleanup failed",
				"productId", cmd.ProductID().String(),
				"error", err)
		}
	}

	return nil
}
