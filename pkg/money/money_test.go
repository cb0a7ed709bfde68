package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	testCases := []struct {
		name     string
		amount   int64
		quantity string
		expected string
	}{
		{name: "whole_quantity", amount: 10000, quantity: "3", expected: "30000"},
		{name: "fractional_quantity", amount: 4500, quantity: "1.5", expected: "6750"},
		{name: "rounds_half_up", amount: 25, quantity: "1.5", expected: "38"},
		{name: "rounds_down_below_half", amount: 333, quantity: "0.4", expected: "133"},
		{name: "zero_quantity", amount: 10000, quantity: "0", expected: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			qty, err := decimal.NewFromString(tc.quantity)
			require.NoError(t, err)

			got := New(tc.amount, "USD").Mul(qty)
			assert.Equal(t, tc.expected, got.Amount.String())
			assert.Equal(t, "USD", got.Currency)
		})
	}
}

func TestMulRoundingError(t *testing.T) {
	// The rounded total must never drift more than one minor unit from the
	// exact product.
	price := New(7777, "EUR")
	qty := decimal.RequireFromString("2.3333")

	exact := price.Amount.Mul(qty)
	rounded := price.Mul(qty).Amount

	diff := exact.Sub(rounded).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromInt(1)), "rounding drift %s", diff)
}

func TestPct(t *testing.T) {
	base := New(30000, "USD")

	commission := base.Pct(decimal.NewFromInt(10))
	assert.Equal(t, "3000", commission.Amount.String())

	// 15% of 999 = 149.85, rounds half-up to 150.
	odd := New(999, "USD").Pct(decimal.NewFromInt(15))
	assert.Equal(t, "150", odd.Amount.String())
}

func TestAdd(t *testing.T) {
	a := New(1000, "USD")
	b := New(250, "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "1250", sum.Amount.String())

	_, err = a.Add(New(100, "EUR"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "currency mismatch")
}

func TestNegate(t *testing.T) {
	m := New(4200, "USD")
	neg := m.Negate()

	assert.Equal(t, "-4200", neg.Amount.String())

	sum, err := m.Add(neg)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	// Amounts are serialized as decimal strings, never IEEE-754 floats, so
	// values that would lose precision as float64 must survive unchanged.
	m := NewFromDecimal(decimal.RequireFromString("9007199254740993.5"), "USD")

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"9007199254740993.5","currency":"USD"}`, string(raw))

	var back Money
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, m.Equal(back))
}
