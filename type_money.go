package fundfx

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value: a decimal amount in a currency.
// It only exists for presentation; all pipeline math stays on raw decimals.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a decimal amount and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Currency returns the ISO code of the money's currency.
func (m Money) Currency() string { return m.cur }

// Amount returns the raw decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) IsZero() bool { return m.value.IsZero() }

func (m Money) Equal(n Money) bool {
	return m.value.Equal(n.value) && m.cur == n.cur
}

// String returns the localized string representation of the money value,
// using the currency's own fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
