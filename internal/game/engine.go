package game

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/phase10/internal/gameid"
	"github.com/lox/phase10/internal/store"
)

// Archiver receives games as they finish.
type Archiver interface {
	Append(record CompletedGameRecord)
}

// Engine owns the game in progress. It applies transitions, saves the
// resulting state, and archives games when they end.
//
// Engine is not safe for concurrent use; callers driving it from several
// goroutines must serialize their calls.
type Engine struct {
	state   GameState
	store   store.Store
	archive Archiver
	limits  PlayerLimits
	clock   quartz.Clock
	ids     *gameid.Generator
	logger  *log.Logger
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithPlayerLimits overrides the allowed player count.
func WithPlayerLimits(minPlayers, maxPlayers int) EngineOption {
	return func(e *Engine) { e.limits = PlayerLimits{Min: minPlayers, Max: maxPlayers} }
}

// WithClock sets the clock used to date completed games.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// WithIDGenerator sets the generator for completed game IDs.
func WithIDGenerator(ids *gameid.Generator) EngineOption {
	return func(e *Engine) { e.ids = ids }
}

// NewEngine creates an engine and restores any game saved in st. A nil
// archive disables archiving.
func NewEngine(st store.Store, archive Archiver, logger *log.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		state:   NewGameState(),
		store:   st,
		archive: archive,
		limits:  DefaultPlayerLimits,
		clock:   quartz.NewReal(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.ids == nil {
		e.ids = gameid.NewGenerator(e.clock, nil)
	}

	e.load()
	return e
}

// StartGame begins a new game with players seated in the order named. Any
// game in progress is replaced.
func (e *Engine) StartGame(names []string) (GameState, error) {
	players := make([]NewPlayer, len(names))
	for i, name := range names {
		players[i] = NewPlayer{Name: name}
	}
	return e.StartGameWithPlayers(players)
}

// StartGameWithPlayers is StartGame with caller-supplied player IDs.
func (e *Engine) StartGameWithPlayers(players []NewPlayer) (GameState, error) {
	next, err := NewGame(players, e.limits)
	if err != nil {
		return GameState{}, err
	}

	if e.state.Started() && !e.state.GameOver {
		e.logger.Info("Replacing game in progress", "round", e.state.CurrentRound)
	}

	e.state = next
	e.logger.Info("Game started", "players", len(next.Players))
	e.save()
	return e.state.Clone(), nil
}

// RecordRound scores one round. When the round produces a finisher the game
// ends and its record is handed to the archive before RecordRound returns.
func (e *Engine) RecordRound(results []RoundResult) (GameState, error) {
	next, err := ApplyRound(e.state, results)
	if err != nil {
		return GameState{}, err
	}

	e.state = next
	e.logger.Debug("Round recorded", "round", next.CurrentRound-1)
	e.save()

	if next.GameOver {
		e.finish()
	}
	return e.state.Clone(), nil
}

// Standings returns the current players ranked by progress then score.
func (e *Engine) Standings() []Player {
	return e.state.Standings()
}

// State returns a copy of the current game state.
func (e *Engine) State() GameState {
	return e.state.Clone()
}

// HasSavedGame reports whether a game, finished or not, is loaded.
func (e *Engine) HasSavedGame() bool {
	return e.state.Started()
}

// Reset discards the current game and its saved snapshot. The archive is
// left alone.
func (e *Engine) Reset() {
	e.state = NewGameState()
	if err := e.store.Delete(store.GameStateKey); err != nil {
		e.logger.Error("Failed to delete saved game", "error", err)
	}
	e.logger.Info("Game reset")
}

func (e *Engine) finish() {
	winner := e.state.Winner
	e.logger.Info("Game over",
		"winner", winner.Name,
		"score", winner.TotalScore,
		"rounds", e.state.RoundsPlayed())

	if e.archive == nil {
		return
	}

	record, err := NewCompletedGameRecord(e.ids.Generate(), e.clock.Now("engine", "finish"), e.state)
	if err != nil {
		e.logger.Error("Failed to build game record", "error", err)
		return
	}
	e.archive.Append(record)
}

func (e *Engine) load() {
	data, ok, err := e.store.Load(store.GameStateKey)
	if err != nil {
		e.logger.Warn("Failed to load saved game", "error", err)
		return
	}
	if !ok {
		return
	}

	var state GameState
	if err := json.Unmarshal(data, &state); err != nil {
		e.logger.Warn("Discarding unreadable saved game", "error", err)
		return
	}
	if !state.normalize() {
		e.logger.Warn("Discarding inconsistent saved game")
		return
	}

	e.state = state
	if state.Started() {
		e.logger.Debug("Restored saved game",
			"players", len(state.Players),
			"round", state.CurrentRound,
			"gameOver", state.GameOver)
	}
}

// save is best effort: a failed write is logged and the in-memory state stands.
func (e *Engine) save() {
	if !e.state.Started() {
		return
	}

	data, err := json.Marshal(e.state)
	if err != nil {
		e.logger.Error("Failed to encode game state", "error", err)
		return
	}
	if err := e.store.Save(store.GameStateKey, data); err != nil {
		e.logger.Error("Failed to save game state", "error", err)
	}
}
