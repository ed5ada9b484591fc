package main

import (
	"errors"
	"fmt"

	"github.com/lox/phase10/internal/game"
	"github.com/lox/phase10/internal/scoreinput"
	"github.com/lox/phase10/internal/statistics"
)

// StartCmd begins a new game.
type StartCmd struct {
	Players []string `arg:"" name:"player" help:"Player names in seating order"`
}

func (cmd *StartCmd) Run(app *App) error {
	state, err := app.engine.StartGame(cmd.Players)
	if err != nil {
		return err
	}
	app.print(app.renderer.Scoreboard(state))
	return nil
}

// RoundCmd records one round.
type RoundCmd struct {
	Entries []string `arg:"" name:"entry" help:"One NAME=SCORE per player; append + to the score when the player completed their phase (Ann=15+)"`
}

func (cmd *RoundCmd) Run(app *App) error {
	state := app.engine.State()
	if !state.Started() {
		return game.ErrNoGame
	}
	if state.GameOver {
		return fmt.Errorf("%w: start a new game first", game.ErrGameOver)
	}

	entries := make([]scoreinput.Entry, 0, len(cmd.Entries))
	for _, arg := range cmd.Entries {
		entry, err := scoreinput.ParseEntry(arg)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	results, err := scoreinput.ParseRound(state.Players, entries, app.cfg.Game.MaxRoundScore)
	if err != nil {
		return err
	}

	next, err := app.engine.RecordRound(results)
	if err != nil {
		return err
	}
	app.print(app.renderer.Scoreboard(next))
	return nil
}

// StandingsCmd prints the ranked players.
type StandingsCmd struct{}

func (cmd *StandingsCmd) Run(app *App) error {
	app.print(app.renderer.Scoreboard(app.engine.State()))
	return nil
}

// StatusCmd prints the scoreboard and the round-by-round grid.
type StatusCmd struct{}

func (cmd *StatusCmd) Run(app *App) error {
	state := app.engine.State()
	app.print(app.renderer.Scoreboard(state))
	if state.Started() {
		app.print("\n")
		app.print(app.renderer.RoundHistory(state.Players, state.RoundHistory))
	}
	return nil
}

// ResetCmd discards the game in progress.
type ResetCmd struct{}

func (cmd *ResetCmd) Run(app *App) error {
	if !app.engine.HasSavedGame() {
		app.print("No game to reset.\n")
		return nil
	}
	app.engine.Reset()
	app.print("Game reset.\n")
	return nil
}

// HistoryCmd lists completed games.
type HistoryCmd struct {
	ID string `arg:"" optional:"" help:"Show the full results for one game"`
}

func (cmd *HistoryCmd) Run(app *App) error {
	if cmd.ID == "" {
		app.print(app.renderer.Archive(app.archive.List()))
		return nil
	}

	record, ok := app.archive.Find(cmd.ID)
	if !ok {
		return fmt.Errorf("no completed game with ID %q", cmd.ID)
	}
	app.print(app.renderer.Record(record))
	return nil
}

// ClearHistoryCmd deletes every completed game.
type ClearHistoryCmd struct {
	Yes bool `short:"y" help:"Confirm deleting all game history"`
}

func (cmd *ClearHistoryCmd) Run(app *App) error {
	if !cmd.Yes {
		return errors.New("this permanently deletes all game history; re-run with --yes to confirm")
	}
	app.archive.Clear()
	app.print("Game history cleared.\n")
	return nil
}

// StatsCmd prints career statistics from the archive.
type StatsCmd struct{}

func (cmd *StatsCmd) Run(app *App) error {
	app.print(app.renderer.Stats(statistics.FromRecords(app.archive.List())))
	return nil
}

// PhasesCmd prints the phase reference.
type PhasesCmd struct{}

func (cmd *PhasesCmd) Run(app *App) error {
	app.print(app.renderer.Phases())
	return nil
}
