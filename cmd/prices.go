package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundfx"
	"github.com/etnz/fundfx/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	fund  string
	start string
	asOf  string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show the raw TRY prices of a fund" }
func (*pricesCmd) Usage() string {
	return `prices -f <fund code> [-start <date>] [-asof <date>]

  Fetches and displays the fund's native TRY valuations from TEFAS,
  without any conversion. Useful to inspect what the source actually
  serves for a window.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "TEFAS fund code to report on")
	f.StringVar(&c.start, "start", DefaultStart, "start of the analysis range")
	f.StringVar(&c.asOf, "asof", "", "end of the analysis range, defaults to today")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "a fund code is required (-f)")
		return subcommands.ExitUsageError
	}
	start, asOf, ok := parseRange(c.start, c.asOf)
	if !ok {
		return subcommands.ExitUsageError
	}

	windows, err := fundfx.Windows(start, asOf, fundfx.DefaultStepDays)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning windows: %v\n", err)
		return subcommands.ExitFailure
	}

	fetcher := newPriceFetcher()
	var series fundfx.PriceSeries
	for _, w := range windows {
		points, err := fetcher.Fetch(w.From, w.To, c.fund)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", w, err)
			return subcommands.ExitFailure
		}
		series.Append(points...)
	}

	printMarkdown(renderer.PricesMarkdown(series.Sorted()))
	return subcommands.ExitSuccess
}
