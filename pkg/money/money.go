package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an amount in a currency's smallest unit (e.g. cents).
// The amount is kept as an arbitrary-precision decimal so that arithmetic
// and JSON round-trips never lose precision to floating point.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// New creates a Money value from an integer amount of minor units.
func New(amount int64, currency string) Money {
	return Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: currency,
	}
}

// NewFromDecimal creates a Money value from a decimal amount of minor units.
func NewFromDecimal(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// Mul multiplies the amount by a quantity and rounds half-up to the
// nearest minor unit.
func (m Money) Mul(quantity decimal.Decimal) Money {
	return Money{
		Amount:   m.Amount.Mul(quantity).Round(0),
		Currency: m.Currency,
	}
}

// Pct returns the given percentage of the amount, rounded half-up to the
// nearest minor unit.
func (m Money) Pct(percent decimal.Decimal) Money {
	return Money{
		Amount:   m.Amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(0),
		Currency: m.Currency,
	}
}

// Add sums two Money values. Both must share the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}, nil
}

// Negate returns the value with the amount's sign flipped.
func (m Money) Negate() Money {
	return Money{
		Amount:   m.Amount.Neg(),
		Currency: m.Currency,
	}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// Equal reports whether two Money values have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}
