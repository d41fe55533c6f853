package kernel

import (
	"fmt"

	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

// CurrencyIDR is the only currency the marketplace settles in.
// Amounts are whole rupiah; IDR has no minor unit in practice.
const CurrencyIDR = "IDR"

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is an immutable value object representing an order amount in IDR.
// The zero value is invalid; use NewMoney.
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value in IDR. The amount must be positive.
func NewMoney(amount int64) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	return Money{
		amount:   amount,
		currency: CurrencyIDR,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in whole rupiah.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the ISO currency code, always CurrencyIDR.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String renders the amount with its currency code, e.g. "IDR 150000".
func (m Money) String() string {
	return fmt.Sprintf("%s %d", m.currency, m.amount)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
