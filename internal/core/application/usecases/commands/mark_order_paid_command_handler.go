package commands

import (
	"context"
	"log/slog"
	"time"

	"caramelt/internal/core/ports"
)

// MarkOrderPaidResult reports whether the confirmation email went out.
// A failed dispatch is a warning on an otherwise successful command.
type MarkOrderPaidResult struct {
	EmailSent bool
	Warning   string
}

// MarkOrderPaidCommandHandler moves an accepted order to PaidConfirmed and
// sends the payment-confirmation email.
//
// The email is sent after the transaction commits. A dispatch failure never
// rolls the status change back; it is logged and surfaced as a warning.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
	sender     ports.NotificationSender
	logger     *slog.Logger
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmation.
func NewMarkOrderPaidCommandHandler(
	uowFactory OrderCustomerUoWFactory,
	sender ports.NotificationSender,
	logger *slog.Logger,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		logger:     logger,
	}
}

// Handle processes the mark-paid command.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (MarkOrderPaidResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkOrderPaidResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkOrderPaidResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return MarkOrderPaidResult{}, err
	}

	recipient, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return MarkOrderPaidResult{}, err
	}

	if err = aggregate.MarkPaid(cmd.AdminComment(), time.Now().UTC()); err != nil {
		return MarkOrderPaidResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return MarkOrderPaidResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkOrderPaidResult{}, err
	}

	if err = h.sender.SendPaymentConfirmation(ctx, aggregate, recipient); err != nil {
		h.logger.Warn("payment confirmation email failed",
			"orderCode", aggregate.Code(),
			"error", err)
		return MarkOrderPaidResult{
			EmailSent: false,
			Warning:   "order marked as paid, but the confirmation email could not be sent",
		}, nil
	}

	return MarkOrderPaidResult{EmailSent: true}, nil
}
