package kernel

import (
	"fmt"

	"burger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount in the catalog currency.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money must not be negative",
			fmt.Errorf("%s is less than 0", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt is a convenience for whole-unit catalog prices.
func MoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// MoneyFromFloat accepts prices decoded from JSON numbers.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a non-negative count.
func (m Money) Times(count int) Money {
	if count <= 0 {
		return Zero()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(count)))}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically, so 5510 equals 5510.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the amount for persistence and transport.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount without trailing zeros.
func (m Money) String() string {
	return m.amount.String()
}
