package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Sit down at the tables"`
	Simulate SimulateCmd      `cmd:"" help:"Play unattended rounds and report chip expectancy"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardhouse"),
		kong.Description("A terminal casino: blackjack, draw poker, Big 2, higher-or-lower and worse ideas, all on one chip ledger"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
