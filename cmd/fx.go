package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundfx/renderer"
	"github.com/google/subcommands"
)

type fxCmd struct {
	start string
	asOf  string
}

func (*fxCmd) Name() string     { return "fx" }
func (*fxCmd) Synopsis() string { return "show the reference currency closes over a range" }
func (*fxCmd) Usage() string {
	return `fx [-start <date>] [-asof <date>]

  Fetches and displays the daily closes of the reference currency pair
  (USDTRY=X unless FX_PAIR says otherwise).
`
}

func (c *fxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", DefaultStart, "start of the analysis range")
	f.StringVar(&c.asOf, "asof", "", "end of the analysis range, defaults to today")
}

func (c *fxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, asOf, ok := parseRange(c.start, c.asOf)
	if !ok {
		return subcommands.ExitUsageError
	}

	rates, err := newRateFetcher().Fetch(start, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching closes: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FxMarkdown(fxPair(), rates))
	return subcommands.ExitSuccess
}
