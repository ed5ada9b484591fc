package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/phase10/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"phase10.hcl" env:"PHASE10_CONFIG" help:"Path to HCL configuration file"`
	DataDir  string `short:"d" env:"PHASE10_DATA_DIR" help:"Directory for saved games (overrides config)"`
	LogLevel string `short:"l" env:"PHASE10_LOG_LEVEL" help:"Log level: debug, info, warn, error (overrides config)"`
}

type CLI struct {
	Globals

	Version      kong.VersionFlag `short:"v" help:"Show version"`
	Start        StartCmd         `cmd:"" help:"Start a new game, replacing any game in progress"`
	Round        RoundCmd         `cmd:"" help:"Record the scores for a round"`
	Standings    StandingsCmd     `cmd:"" help:"Show the current standings"`
	Status       StatusCmd        `cmd:"" help:"Show the standings and every round played"`
	Reset        ResetCmd         `cmd:"" help:"Discard the game in progress"`
	History      HistoryCmd       `cmd:"" help:"List completed games, or show one by ID"`
	ClearHistory ClearHistoryCmd  `cmd:"clear-history" help:"Delete all completed games"`
	Stats        StatsCmd         `cmd:"" help:"Show player statistics across completed games"`
	Phases       PhasesCmd        `cmd:"" help:"List the ten phases and card values"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("phase10"),
		kong.Description("Score keeper for Phase 10 card games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(cli.Globals, os.Stdout, os.Stderr)
	if err == nil {
		err = ctx.Run(app)
	}
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprint(w, display.NewRenderer().Error(err))
}
