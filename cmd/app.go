// Package cmd implements the CLI application to analyze fund returns.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundfx/tefas"
	"github.com/etnz/fundfx/yahoo"
	"github.com/google/subcommands"
)

// Commands lists all subcommands.
// A main package registers them on its commander and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&returnsCmd{},
	&windowsCmd{},
	&pricesCmd{},
	&fxCmd{},
	&topicCmd{},
}

// DefaultStart is the default beginning of the analysis range.
const DefaultStart = "2024-01-01"

// as a CLI application, it has a very short lived lifecycle, so reading
// the environment ad hoc is ok. The main package loads an optional
// .env file before flags are parsed.

// newPriceFetcher returns the TEFAS client, honoring environment overrides.
func newPriceFetcher() *tefas.Client {
	c := tefas.NewClient()
	if u := os.Getenv("TEFAS_URL"); u != "" {
		c = c.WithBaseURL(u)
	}
	if t := os.Getenv("TEFAS_FUND_TYPE"); t != "" {
		c = c.WithFundType(t)
	}
	return c
}

// newRateFetcher returns the FX client, honoring environment overrides.
func newRateFetcher() *yahoo.Client {
	c := yahoo.NewClient()
	if u := os.Getenv("YAHOO_URL"); u != "" {
		c = c.WithBaseURL(u)
	}
	c = c.WithPair(fxPair())
	return c
}

// fxPair returns the reference currency pair symbol.
func fxPair() string {
	if p := os.Getenv("FX_PAIR"); p != "" {
		return p
	}
	return yahoo.DefaultPair
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back to the raw markdown, still perfectly readable
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
