package ports

import (
	"context"

	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/order"
)

// NotificationSender delivers customer-facing notifications about order
// events. Implementations must be safe for concurrent use.
type NotificationSender interface {
	// SendPaymentConfirmation emails the customer that their payment was
	// confirmed, including the order summary and preparation date.
	SendPaymentConfirmation(ctx context.Context, aggregate *order.Order, recipient *customer.Customer) error
}
