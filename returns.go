package fundfx

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinAnnualizeDays is the shortest holding period for which an
// annualized return is populated; below it the extrapolation is too
// noisy to be meaningful.
const MinAnnualizeDays = 30

// daysPerYear is the exponent basis for annualization.
const daysPerYear = 365

// Record is one row of the output table: a price row optionally
// enriched by the successive derivation stages. A nil pointer means the
// value is absent (e.g. no FX quote on that date, or no usable
// reference price yet).
type Record struct {
	Code  string
	Date  Date
	Price decimal.Decimal

	FxClose      *decimal.Decimal // absent when the FX source has no quote for Date
	USDPrice     *decimal.Decimal // Price / FxClose
	ReturnToLast *decimal.Decimal // fractional return relative to the latest valid USDPrice
	HoldingDays  int              // whole days to the final record's date, >= 1 once derived, 0 before
	Annualized   *decimal.Decimal // (1+ReturnToLast)^(365/HoldingDays) - 1, when HoldingDays >= MinAnnualizeDays
}

// Join left-joins price rows with FX closes on exact date equality,
// producing one record per price row in the given order. Callers must
// have sorted the price rows by date ascending already.
//
// The FX data must hold at most one row per date. A duplicate date
// violates that precondition and fails the join with ErrDataIntegrity;
// no partial result is returned.
func Join(prices []PricePoint, rates []FxRate) ([]Record, error) {
	closes := make(map[Date]decimal.Decimal, len(rates))
	for _, r := range rates {
		if _, ok := closes[r.Date]; ok {
			return nil, fmt.Errorf("fx close on %s: %w", r.Date, ErrDataIntegrity)
		}
		closes[r.Date] = r.Close
	}

	records := make([]Record, 0, len(prices))
	for _, p := range prices {
		rec := Record{Code: p.Code, Date: p.Date, Price: p.Price}
		if close, ok := closes[p.Date]; ok {
			rec.FxClose = &close
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeriveUSDPrice converts each record's native price into the reference
// currency. The FX close is a native-per-reference-unit quote, so the
// conversion is a division. Records with an absent or non-positive
// close keep an absent USDPrice.
func DeriveUSDPrice(records []Record) []Record {
	for i := range records {
		rec := &records[i]
		if rec.FxClose == nil || !rec.FxClose.IsPositive() {
			continue
		}
		usd := rec.Price.Div(*rec.FxClose)
		rec.USDPrice = &usd
	}
	return records
}

// DeriveReturnToLast computes, for every record with a positive
// USDPrice, the fractional return of the latest valid reference-currency
// price relative to that record: latest/usd - 1. The record holding the
// latest price itself gets 0.
//
// When no record has a positive USDPrice there is no usable reference
// price yet: every ReturnToLast stays absent and that is not an error.
//
// No rounding happens here; rounding is a presentation concern and
// would otherwise compound into the annualization stage.
func DeriveReturnToLast(records []Record) []Record {
	var latest *decimal.Decimal
	for i := len(records) - 1; i >= 0; i-- {
		if usd := records[i].USDPrice; usd != nil && usd.IsPositive() {
			latest = usd
			break
		}
	}
	if latest == nil {
		return records
	}

	one := decimal.NewFromInt(1)
	for i := range records {
		rec := &records[i]
		if rec.USDPrice == nil || !rec.USDPrice.IsPositive() {
			continue
		}
		ret := latest.Div(*rec.USDPrice).Sub(one)
		rec.ReturnToLast = &ret
	}
	return records
}

// DeriveAnnualized computes the annualized view of ReturnToLast,
// relative to the date of the last record.
//
// A record dated exactly on the final date is treated as held one day,
// a documented approximation to avoid a zero exponent basis. The
// annualized value is only populated for holding periods of at least
// MinAnnualizeDays; HoldingDays itself is filled for every record.
func DeriveAnnualized(records []Record) []Record {
	if len(records) == 0 {
		return records
	}
	finalDate := records[len(records)-1].Date

	for i := range records {
		rec := &records[i]
		days := finalDate.Sub(rec.Date)
		if days == 0 {
			days = 1
		}
		rec.HoldingDays = days

		if rec.ReturnToLast == nil || days < MinAnnualizeDays {
			continue
		}
		// The fractional exponent takes this through float64; the loss
		// is far below the 4-decimal presentation precision.
		r := rec.ReturnToLast.InexactFloat64()
		annualized := decimal.NewFromFloat(math.Pow(1+r, daysPerYear/float64(days)) - 1)
		rec.Annualized = &annualized
	}
	return records
}
