package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Evaluate EvaluateCmd `cmd:"" help:"Evaluate the best five-card hand for hole and board cards"`
	Equity   EquityCmd   `cmd:"" help:"Estimate win probability against unknown opponents"`
	Decide   DecideCmd   `cmd:"" help:"Run the decision engine on a single spot"`
	Simulate SimulateCmd `cmd:"" help:"Deal random spots through the engine and summarize"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trainer"),
		kong.Description("Poker decision and equity engine for the holdem trainer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := setupLogger(cli.Debug)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

// setupLogger configures structured console logging
func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
