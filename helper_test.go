package fundfx

import "github.com/shopspring/decimal"

// dec is a helper for tests to build a decimal from a literal.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// pp is a helper for tests to build a price point for the test fund.
func pp(on string, price string) PricePoint {
	return PricePoint{Code: "YAC", Date: MustParse(on), Price: dec(price)}
}

// fx is a helper for tests to build an FX close.
func fx(on string, close string) FxRate {
	return FxRate{Date: MustParse(on), Close: dec(close)}
}
