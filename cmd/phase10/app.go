package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/phase10/internal/archive"
	"github.com/lox/phase10/internal/config"
	"github.com/lox/phase10/internal/display"
	"github.com/lox/phase10/internal/game"
	"github.com/lox/phase10/internal/store"
)

// App wires configuration, storage and the engine for one command.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	engine   *game.Engine
	archive  *archive.Archive
	renderer *display.Renderer
	out      io.Writer
}

func newApp(globals Globals, out, logOut io.Writer, opts ...game.EngineOption) (*App, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Apply command line overrides
	if globals.DataDir != "" {
		cfg.Storage.DataDir = globals.DataDir
	}
	if globals.LogLevel != "" {
		cfg.Log.Level = globals.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.NewWithOptions(logOut, log.Options{
		Level:  cfg.LogLevel(),
		Prefix: "phase10",
	})

	st, err := store.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using data directory", "dir", st.Dir())

	hist := archive.New(st, logger.With("component", "archive"), archive.WithLimit(cfg.Storage.HistoryLimit))

	opts = append([]game.EngineOption{game.WithPlayerLimits(cfg.Game.MinPlayers, cfg.Game.MaxPlayers)}, opts...)
	engine := game.NewEngine(st, hist, logger.With("component", "engine"), opts...)

	return &App{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		archive:  hist,
		renderer: display.NewRenderer(),
		out:      out,
	}, nil
}

func (a *App) print(s string) {
	fmt.Fprint(a.out, s)
}
