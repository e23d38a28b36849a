package order

import (
	"fmt"

	"caramelt/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodManualTransfer PaymentMethod = "manual_transfer"
)

// PaymentMethodFromString parses a payment method from its wire name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	pm := PaymentMethod(s)
	if err := pm.Validate(); err != nil {
		return "", err
	}
	return pm, nil
}

// Validate checks the payment method is one of the supported values.
func (pm PaymentMethod) Validate() error {
	switch pm {
	case PaymentMethodCash, PaymentMethodManualTransfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(pm)))
	}
}

// String returns the wire name.
func (pm PaymentMethod) String() string {
	return string(pm)
}
