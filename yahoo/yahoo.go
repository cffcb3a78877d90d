// Package yahoo fetches daily closes of one currency pair from the
// Yahoo Finance chart API. The analysis converts Turkish lira fund
// prices into US dollars, so the default pair is USDTRY=X: lira per
// one dollar.
package yahoo

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundfx"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the Yahoo Finance chart endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// DefaultPair is the reference currency pair: US dollars quoted in
// Turkish lira.
const DefaultPair = "USDTRY=X"

// Client queries the chart API for one fixed pair.
// The zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	pair    string
	getter  *jsonGetter
}

// NewClient returns a Client for the default pair against the public
// endpoint, with responses cached on disk for the day.
func NewClient() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		pair:    DefaultPair,
		getter:  newDailyCachingGetter(),
	}
}

// WithBaseURL redirects the client to another endpoint (tests, proxies).
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// WithPair overrides the currency pair symbol.
func (c *Client) WithPair(pair string) *Client {
	c.pair = pair
	return c
}

// Fetch returns the daily closes over the span, boundaries included.
// The chart API treats the end of the queried period as exclusive, so
// the span end is pushed one day out before querying. It implements
// fundfx.RateFetcher.
func (c *Client) Fetch(from, to fundfx.Date) ([]fundfx.FxRate, error) {
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("period1", fmt.Sprint(unixDay(from)))
	query.Set("period2", fmt.Sprint(unixDay(to.Add(1)))) // exclusive end
	addr := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(c.pair), query.Encode())

	var jobj any
	if err := c.getter.jwget(addr, &jobj); err != nil {
		return nil, fmt.Errorf("yahoo chart %s %s..%s: %w", c.pair, from, to, err)
	}

	// The reply nests the series deep inside the chart envelope; two
	// jsonpath extractions beat decoding the whole shape into structs.
	timestamps, err := floats(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", c.pair, err)
	}
	closes, err := floats(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", c.pair, err)
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("yahoo chart %s: %d timestamps but %d closes", c.pair, len(timestamps), len(closes))
	}

	rates := make([]fundfx.FxRate, 0, len(timestamps))
	for i, ts := range timestamps {
		if closes[i] == nil {
			// market holidays carry a null close; skip the day entirely
			continue
		}
		rates = append(rates, fundfx.FxRate{
			Date:  dayOfUnix(int64(*ts)),
			Close: decimal.NewFromFloat(*closes[i]),
		})
	}
	return rates, nil
}

// floats extracts an array of nullable numbers from the decoded JSON.
func floats(jobj any, path string) ([]*float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("parsing %q: not an array: %v", path, jval)
	}
	out := make([]*float64, 0, len(jlist))
	for _, v := range jlist {
		if v == nil {
			out = append(out, nil)
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("parsing %q: not a number: %v", path, v)
		}
		out = append(out, &f)
	}
	return out, nil
}
