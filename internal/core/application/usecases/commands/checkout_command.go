package commands

import (
	"errors"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutLine is one cart entry: a product reference and a quantity.
// Prices never travel with the cart; the handler re-prices from storage.
type CheckoutLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CheckoutCommand represents a storefront checkout request: contact details,
// the requested preparation date, a payment method and a non-empty cart.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(
//	    "Ada Lovelace", "ada@example.com", "+31612345678", nil,
//	    prepDate, nil, order.PaymentMethodCash,
//	    []CheckoutLine{{ProductID: productID, Quantity: 2}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	fullName          string
	email             string
	phone             string
	whatsapp          *string
	requestedPrepDate time.Time
	notes             *string
	paymentMethod     order.PaymentMethod
	lines             []CheckoutLine

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. Contact fields are checked
// for presence only; the customer aggregate owns their format rules. The
// cart must be non-empty with positive quantities and constructed product IDs.
func NewCheckoutCommand(
	fullName string,
	email string,
	phone string,
	whatsapp *string,
	requestedPrepDate time.Time,
	notes *string,
	paymentMethod order.PaymentMethod,
	lines []CheckoutLine,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setRequestedPrepDate(requestedPrepDate),
		paymentMethod.Validate(),
		cmd.setLines(lines),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.whatsapp = whatsapp
	cmd.notes = notes
	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) FullName() string                   { return c.fullName }
func (c CheckoutCommand) Email() string                      { return c.email }
func (c CheckoutCommand) Phone() string                      { return c.phone }
func (c CheckoutCommand) Whatsapp() *string                  { return c.whatsapp }
func (c CheckoutCommand) RequestedPrepDate() time.Time       { return c.requestedPrepDate }
func (c CheckoutCommand) Notes() *string                     { return c.notes }
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c CheckoutCommand) Lines() []CheckoutLine              { return c.lines }

func (c *CheckoutCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *CheckoutCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CheckoutCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CheckoutCommand) setRequestedPrepDate(requestedPrepDate time.Time) error {
	if requestedPrepDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedPrepDate")
	}

	c.requestedPrepDate = requestedPrepDate
	return nil
}

func (c *CheckoutCommand) setLines(lines []CheckoutLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items",
			errors.New("cart cannot be empty"))
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId", err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				errors.New("quantity must be a positive integer"))
		}
	}

	c.lines = lines
	return nil
}
