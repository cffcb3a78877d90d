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

type returnsCmd struct {
	fund      string
	start     string
	asOf      string
	annualize bool
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "compute the USD return of a fund to its latest valuation" }
func (*returnsCmd) Usage() string {
	return `returns -f <fund code> [-start <date>] [-asof <date>] [-annualize]

  Fetches the fund's TRY prices from TEFAS and the USDTRY closes over
  the analysis range, converts each valuation into USD, and reports the
  return of each date relative to the latest valid USD price.

Usage Examples:
$ ffx returns -f YAC
$ ffx returns -f ZZL -start 2024-06-01 -annualize
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "TEFAS fund code to report on")
	f.StringVar(&c.start, "start", DefaultStart, "start of the analysis range")
	f.StringVar(&c.asOf, "asof", "", "end of the analysis range, defaults to today")
	f.BoolVar(&c.annualize, "annualize", false, "also derive annualized returns")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "a fund code is required (-f)")
		return subcommands.ExitUsageError
	}
	start, asOf, ok := parseRange(c.start, c.asOf)
	if !ok {
		return subcommands.ExitUsageError
	}

	report, err := fundfx.NewReturnReport(newPriceFetcher(), newRateFetcher(), c.fund, start, asOf, c.annualize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReturnsMarkdown(report))
	return subcommands.ExitSuccess
}

// parseRange parses the two range flags, reporting usage errors itself.
func parseRange(startFlag, asOfFlag string) (start, asOf fundfx.Date, ok bool) {
	start, err := fundfx.ParseDate(startFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -start: %v\n", err)
		return start, asOf, false
	}
	asOf = fundfx.Today()
	if asOfFlag != "" {
		asOf, err = fundfx.ParseDate(asOfFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -asof: %v\n", err)
			return start, asOf, false
		}
	}
	return start, asOf, true
}
