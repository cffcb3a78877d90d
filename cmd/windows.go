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

type windowsCmd struct {
	start string
	asOf  string
	step  int
}

func (*windowsCmd) Name() string     { return "windows" }
func (*windowsCmd) Synopsis() string { return "show the planned fetch windows for a range" }
func (*windowsCmd) Usage() string {
	return `windows [-start <date>] [-asof <date>] [-step <days>]

  Displays the windows the fund-price history would be fetched in,
  without fetching anything.
`
}

func (c *windowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", DefaultStart, "start of the analysis range")
	f.StringVar(&c.asOf, "asof", "", "end of the analysis range, defaults to today")
	f.IntVar(&c.step, "step", fundfx.DefaultStepDays, "maximum days per window")
}

func (c *windowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, asOf, ok := parseRange(c.start, c.asOf)
	if !ok {
		return subcommands.ExitUsageError
	}

	windows, err := fundfx.Windows(start, asOf, c.step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning windows: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WindowsMarkdown(windows))
	return subcommands.ExitSuccess
}
