// Package renderer turns fundfx reports into markdown documents.
//
// This is the presentation boundary: fractions become percents and
// values are rounded here, never earlier in the pipeline.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundfx"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// usdPrecision is the display precision of reference-currency prices
// and of raw fractions.
const usdPrecision = 4

// absent marks a value a derivation stage could not produce
// (no FX close that day, or no usable reference price yet).
const absent = "n/a"

// ReturnsMarkdown renders the output table of one run: one row per
// valuation date, derived columns filled where present.
func ReturnsMarkdown(r *fundfx.ReturnReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s: USD return to latest valuation", r.Code))
	doc.PlainTextf("Analysis from %s to %s.", r.Start, r.AsOf)

	if latest, ok := r.Latest(); ok {
		doc.PlainTextf("Reference price: %s USD on %s.",
			latest.USDPrice.Round(usdPrecision), latest.Date)
	} else {
		doc.PlainText("No usable reference price yet: the fund has no valuation with a matching FX close.")
	}

	header := []string{"Date", "Code", "Price", "FX Close", "USD Price", "Return"}
	alignment := []md.TableAlignment{
		md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
	}
	if r.Annualize {
		header = append(header, "Days", "Annualized")
		alignment = append(alignment, md.AlignRight, md.AlignRight)
	}

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for _, rec := range r.Entries {
		row := []string{
			rec.Date.String(),
			rec.Code,
			fundfx.M(rec.Price, "TRY").String(),
			decimalOrAbsent(rec.FxClose),
			decimalOrAbsent(rec.USDPrice),
			percentOrAbsent(rec.ReturnToLast),
		}
		if r.Annualize {
			days := absent
			if rec.HoldingDays > 0 {
				days = fmt.Sprint(rec.HoldingDays)
			}
			row = append(row, days, percentOrAbsent(rec.Annualized))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// WindowsMarkdown renders the planned fetch windows of a run.
func WindowsMarkdown(windows []fundfx.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Planned fetch windows")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"From", "To", "Days"},
		Rows:      [][]string{},
	}
	for _, w := range windows {
		table.Rows = append(table.Rows, []string{
			w.From.String(),
			w.To.String(),
			fmt.Sprint(w.Days()),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PricesMarkdown renders raw fund valuations, for inspection.
func PricesMarkdown(points []fundfx.PricePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fund prices")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Code", "Price"},
		Rows:      [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Code,
			fundfx.M(p.Price, "TRY").String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// FxMarkdown renders raw FX closes, for inspection.
func FxMarkdown(pair string, rates []fundfx.FxRate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s closes", pair))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Close"},
		Rows:      [][]string{},
	}
	for _, r := range rates {
		table.Rows = append(table.Rows, []string{
			r.Date.String(),
			r.Close.Round(usdPrecision).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func decimalOrAbsent(d *decimal.Decimal) string {
	if d == nil {
		return absent
	}
	return d.Round(usdPrecision).String()
}

func percentOrAbsent(fraction *decimal.Decimal) string {
	if fraction == nil {
		return absent
	}
	// round the fraction as a decimal first: float formatting rounds
	// halves to even, which would turn 0.03125 into 3.12%
	rounded := fraction.Round(usdPrecision)
	return fundfx.AsPercent(rounded.InexactFloat64()).SignedString()
}
