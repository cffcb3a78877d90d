package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fundfx/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// Optional local overrides (endpoints, currency pair); a missing
	// .env file is the normal case.
	godotenv.Load()

	// Offer shell completion of the subcommand names. This returns
	// immediately unless the shell is asking for completions.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	complete.Complete("ffx", &complete.Command{Sub: sub})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
