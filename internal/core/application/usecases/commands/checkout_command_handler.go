package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"
)

// CheckoutResult is what the storefront needs after a successful checkout.
type CheckoutResult struct {
	OrderID   kernel.UUID
	OrderCode string
	Total     kernel.Money
}

// CheckoutCommandHandler turns a validated cart into a persisted order.
//
// Every line is re-priced from the stored product price, so client-side
// prices never reach an order. The customer record is reused when one with
// the same email and phone exists; the order and its items are written in
// one transaction.
type CheckoutCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	minPrepDays int
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// minPrepDays is the minimum lead time between today and the requested
// preparation date.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, minPrepDays int) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		minPrepDays: minPrepDays,
	}
}

// Handle processes the checkout command and returns the generated order code.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	if err := order.ValidatePrepDate(
		"requestedPrepDate", cmd.RequestedPrepDate(), time.Now().UTC(), h.minPrepDays,
	); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.priceLines(ctx, uow, cmd.Lines())
	if err != nil {
		return CheckoutResult{}, err
	}

	buyer, err := h.upsertCustomer(ctx, uow, cmd)
	if err != nil {
		return CheckoutResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		buyer.ID(),
		order.GenerateCode(),
		cmd.RequestedPrepDate(),
		cmd.Notes(),
		cmd.PaymentMethod(),
		items,
	)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		OrderID:   newOrder.ID(),
		OrderCode: newOrder.Code(),
		Total:     newOrder.Total(),
	}, nil
}

// priceLines loads every referenced product and builds line items from the
// stored name and price. Unknown products are a not-found error, inactive
// ones a validation error.
func (h *CheckoutCommandHandler) priceLines(
	ctx context.Context, uow CheckoutUoW, lines []CheckoutLine,
) ([]*order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID()] = i
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		i, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", line.ProductID.String())
		}

		p := products[i]
		if !p.IsActive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %q is no longer available", p.Name()))
		}

		item, err := order.NewItem(kernel.NewUUID(), p.ID(), p.Name(), p.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// upsertCustomer reuses the customer matching the command's email and phone,
// refreshing their name and whatsapp, or creates a new one.
func (h *CheckoutCommandHandler) upsertCustomer(
	ctx context.Context, uow CheckoutUoW, cmd CheckoutCommand,
) (*customer.Customer, error) {
	repo := uow.CustomerRepository()

	existing, err := repo.GetByEmailAndPhone(ctx, cmd.Email(), cmd.Phone())
	if err == nil {
		if err = existing.RefreshContact(cmd.FullName(), cmd.Whatsapp()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := customer.NewCustomer(
		kernel.NewUUID(), cmd.FullName(), cmd.Email(), cmd.Phone(), cmd.Whatsapp(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
