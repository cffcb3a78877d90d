package fundfx

// PriceFetcher is the fund-price collaborator: it returns the
// native-currency valuations of one fund over one window, boundaries
// included. Implementations own their transport, caching and parsing;
// the pipeline owns windowing and everything after the fetch.
type PriceFetcher interface {
	Fetch(from, to Date, code string) ([]PricePoint, error)
}

// RateFetcher is the FX collaborator: it returns the reference-currency
// closes over a span, boundaries included.
type RateFetcher interface {
	Fetch(from, to Date) ([]FxRate, error)
}

// ReturnReport is the output table of one run: the fund's valuations
// enriched with reference-currency prices and returns, ordered by date
// ascending.
type ReturnReport struct {
	Code      string
	Start     Date
	AsOf      Date
	Annualize bool
	Entries   []Record
}

// Latest returns the most recent record carrying a positive USDPrice,
// i.e. the valuation every ReturnToLast is relative to, or false when
// the report has no usable reference price yet.
func (r *ReturnReport) Latest() (Record, bool) {
	for i := len(r.Entries) - 1; i >= 0; i-- {
		if usd := r.Entries[i].USDPrice; usd != nil && usd.IsPositive() {
			return r.Entries[i], true
		}
	}
	return Record{}, false
}

// NewReturnReport runs the whole pipeline for one fund code: it plans
// the fetch windows, collects prices per window and FX closes for the
// full span, joins them and applies the derivation stages.
//
// The run is all-or-nothing: any collaborator failure aborts it and is
// reported as a FetchError carrying the fund code and the failing
// stage; no partial table is ever returned.
func NewReturnReport(prices PriceFetcher, rates RateFetcher, code string, start, asOf Date, annualize bool) (*ReturnReport, error) {
	windows, err := Windows(start, asOf, DefaultStepDays)
	if err != nil {
		return nil, &FetchError{Code: code, Stage: StageWindows, Err: err}
	}

	var priceSeries PriceSeries
	for _, w := range windows {
		points, err := prices.Fetch(w.From, w.To, code)
		if err != nil {
			return nil, &FetchError{Code: code, Stage: StagePrices, Err: err}
		}
		priceSeries.Append(points...)
	}

	var fxSeries FxSeries
	fxRates, err := rates.Fetch(start, asOf)
	if err != nil {
		return nil, &FetchError{Code: code, Stage: StageRates, Err: err}
	}
	fxSeries.Append(fxRates...)

	records, err := Join(priceSeries.Sorted(), fxSeries.Sorted())
	if err != nil {
		return nil, &FetchError{Code: code, Stage: StageJoin, Err: err}
	}

	records = DeriveUSDPrice(records)
	records = DeriveReturnToLast(records)
	if annualize {
		records = DeriveAnnualized(records)
	}

	return &ReturnReport{
		Code:      code,
		Start:     start,
		AsOf:      asOf,
		Annualize: annualize,
		Entries:   records,
	}, nil
}
