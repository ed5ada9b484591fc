package game

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/phase10/internal/store"
)

var testCompletedAt = time.Date(2026, time.October, 17, 20, 30, 0, 0, time.UTC)

// recordingArchiver captures archived games
type recordingArchiver struct {
	records []CompletedGameRecord
}

func (r *recordingArchiver) Append(record CompletedGameRecord) {
	r.records = append(r.records, record)
}

// failingStore loads nothing and fails every write
type failingStore struct{}

func (failingStore) Load(string) ([]byte, bool, error) { return nil, false, errors.New("disk on fire") }
func (failingStore) Save(string, []byte) error         { return errors.New("disk on fire") }
func (failingStore) Delete(string) error               { return errors.New("disk on fire") }

type testEngine struct {
	*Engine
	store   *store.MemoryStore
	archive *recordingArchiver
	clock   *quartz.Mock
}

func newTestEngine(t *testing.T, opts ...EngineOption) *testEngine {
	t.Helper()
	return newTestEngineWithStore(t, store.NewMemoryStore(), opts...)
}

func newTestEngineWithStore(t *testing.T, st *store.MemoryStore, opts ...EngineOption) *testEngine {
	t.Helper()
	mClock := quartz.NewMock(t)
	mClock.Set(testCompletedAt)
	archive := &recordingArchiver{}

	opts = append([]EngineOption{WithClock(mClock)}, opts...)
	e := NewEngine(st, archive, log.New(io.Discard), opts...)
	return &testEngine{Engine: e, store: st, archive: archive, clock: mClock}
}

// result builds a RoundResult
func result(playerID, score int, completed bool) RoundResult {
	return RoundResult{PlayerID: playerID, Score: score, CompletedPhase: completed}
}

// stateWith builds a mid-game state with the given players
func stateWith(round int, players ...Player) GameState {
	s := NewGameState()
	s.CurrentRound = round
	s.Players = players
	return s
}
