package kernel

import (
	"fmt"

	"caramelt/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount with currency semantics.
// Prices, unit price snapshots and line totals are all Money; arithmetic
// stays in decimal space so two decimal places survive persistence.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal, rejecting negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{amount: amount.Round(2)}
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return m, nil
}

// NewMoneyFromFloat creates a Money from a float64, rounding to two
// decimal places. Used when amounts arrive from JSON bodies.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MulInt multiplies the amount by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Add sums two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate rejects negative amounts.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", m.amount.String()))
	}
	return nil
}
