// Package tefas fetches fund prices from the TEFAS platform
// (Türkiye Electronic Fund Trading Platform).
//
// TEFAS serves fund price history through the BindHistoryInfo endpoint,
// but refuses to serve arbitrarily long ranges in one request; callers
// are expected to batch their queries into bounded windows, which is
// exactly what the fundfx window planner produces.
package tefas

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/fundfx"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the TEFAS fund history endpoint.
const DefaultBaseURL = "https://www.tefas.gov.tr/api/DB/BindHistoryInfo"

// DefaultFundType is the TEFAS fund-type discriminator for securities
// investment funds ("yatırım fonu").
const DefaultFundType = "YAT"

// queryDateFormat is the date format the endpoint expects.
const queryDateFormat = "02.01.2006"

var fundCodeRE = regexp.MustCompile(`^[A-Z0-9]{2,5}$`)

// IsFundCode reports whether code has the shape of a TEFAS fund code
// (short uppercase alphanumeric, e.g. "YAC"). TEFAS itself is the only
// authority on whether the code actually exists.
func IsFundCode(code string) bool { return fundCodeRE.MatchString(code) }

// Client queries TEFAS for fund price history.
// The zero value is not usable; use NewClient.
type Client struct {
	baseURL  string
	fundType string
	poster   *formPoster
}

// NewClient returns a Client against the public TEFAS endpoint, with
// responses cached on disk for the day (the platform publishes one
// price per fund per day, there is no point asking twice).
func NewClient() *Client {
	return &Client{
		baseURL:  DefaultBaseURL,
		fundType: DefaultFundType,
		poster:   newDailyCachingPoster(),
	}
}

// WithBaseURL redirects the client to another endpoint (tests, proxies).
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// WithFundType overrides the fund-type discriminator (e.g. "EMK" for
// pension funds).
func (c *Client) WithFundType(t string) *Client {
	c.fundType = t
	return c
}

// historyRow is one row of the BindHistoryInfo payload. TEFAS returns
// the date as an epoch-milliseconds string and the price as a plain
// JSON number.
type historyRow struct {
	Date  epochMillis     `json:"TARIH"`
	Code  string          `json:"FONKODU"`
	Price decimal.Decimal `json:"FIYAT"`
}

// historyReply is the BindHistoryInfo response envelope.
type historyReply struct {
	Total int          `json:"recordsTotal"`
	Data  []historyRow `json:"data"`
}

// Fetch returns the native-currency valuations of the fund over one
// window, boundaries included. It implements fundfx.PriceFetcher.
func (c *Client) Fetch(from, to fundfx.Date, code string) ([]fundfx.PricePoint, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !IsFundCode(code) {
		return nil, fmt.Errorf("invalid TEFAS fund code %q", code)
	}

	form := url.Values{}
	form.Set("fontip", c.fundType)
	form.Set("fonkod", code)
	form.Set("bastarih", from.Format(queryDateFormat))
	form.Set("bittarih", to.Format(queryDateFormat))

	var reply historyReply
	if err := c.poster.jwpost(c.baseURL, form, &reply); err != nil {
		return nil, fmt.Errorf("tefas history %s %s..%s: %w", code, from, to, err)
	}

	points := make([]fundfx.PricePoint, 0, len(reply.Data))
	for _, row := range reply.Data {
		points = append(points, fundfx.PricePoint{
			Code:  row.Code,
			Date:  fundfx.Date(row.Date),
			Price: row.Price,
		})
	}
	return points, nil
}

// epochMillis decodes the TEFAS date representation: an epoch
// milliseconds value carried as a JSON string.
type epochMillis fundfx.Date

func (e *epochMillis) UnmarshalJSON(b []byte) error {
	str := strings.Trim(string(b), `"`)
	ms, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TEFAS date %q: %w", str, err)
	}
	t := time.UnixMilli(ms).UTC()
	*e = epochMillis(fundfx.NewDate(t.Date()))
	return nil
}
