package fundfx

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PricePoint is one native-currency valuation of a fund on a given date,
// as returned by the fund-price source.
type PricePoint struct {
	Code  string          // fund code
	Date  Date            // valuation date
	Price decimal.Decimal // native-currency price, >= 0
}

// FxRate is the reference-currency exchange rate close on a given date:
// how many native units buy one unit of the reference currency.
type FxRate struct {
	Date  Date
	Close decimal.Decimal // > 0
}

// PriceSeries accumulates the price rows of one run, one batch per
// fetch window. It is owned by the pipeline for the duration of a run.
type PriceSeries struct {
	points []PricePoint
}

// Append adds one window's worth of rows to the series.
func (s *PriceSeries) Append(points ...PricePoint) { s.points = append(s.points, points...) }

// Len returns the number of rows accumulated so far.
func (s *PriceSeries) Len() int { return len(s.points) }

// Sorted returns all accumulated rows ordered by date ascending.
// The windows are fetched in chronological order, but the source gives
// no guarantee about the order of rows within one reply.
func (s *PriceSeries) Sorted() []PricePoint {
	points := slices.Clone(s.points)
	slices.SortStableFunc(points, func(a, b PricePoint) int { return a.Date.Compare(b.Date) })
	return points
}

// FxSeries holds the FX closes of one run, fetched once for the full span.
type FxSeries struct {
	rates []FxRate
}

// Append adds rows to the series.
func (s *FxSeries) Append(rates ...FxRate) { s.rates = append(s.rates, rates...) }

// Len returns the number of rows.
func (s *FxSeries) Len() int { return len(s.rates) }

// Sorted returns all rates ordered by date ascending.
func (s *FxSeries) Sorted() []FxRate {
	rates := slices.Clone(s.rates)
	slices.SortStableFunc(rates, func(a, b FxRate) int { return a.Date.Compare(b.Date) })
	return rates
}
