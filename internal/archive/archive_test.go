package archive

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/phase10/internal/game"
	"github.com/lox/phase10/internal/store"
)

func testRecord(n int) game.CompletedGameRecord {
	return game.CompletedGameRecord{
		ID:         fmt.Sprintf("game-%02d", n),
		Date:       time.Date(2026, time.January, 1, 0, n, 0, 0, time.UTC),
		WinnerName: fmt.Sprintf("winner-%d", n),
		FinalStandings: []game.FinalStanding{
			{Name: fmt.Sprintf("winner-%d", n), FinalPhase: 10, TotalScore: n, Finished: true},
		},
		TotalRounds: n,
	}
}

func newTestArchive(t *testing.T, st store.Store, opts ...Option) *Archive {
	t.Helper()
	return New(st, log.New(io.Discard), opts...)
}

func TestArchive_AppendNewestFirst(t *testing.T) {
	a := newTestArchive(t, store.NewMemoryStore())
	a.Append(testRecord(1))
	a.Append(testRecord(2))
	a.Append(testRecord(3))

	records := a.List()
	require.Len(t, records, 3)
	assert.Equal(t, "game-03", records[0].ID)
	assert.Equal(t, "game-02", records[1].ID)
	assert.Equal(t, "game-01", records[2].ID)
}

func TestArchive_Cap(t *testing.T) {
	a := newTestArchive(t, store.NewMemoryStore())
	for i := 1; i <= DefaultLimit; i++ {
		a.Append(testRecord(i))
	}
	require.Equal(t, DefaultLimit, a.Len())

	a.Append(testRecord(51))

	records := a.List()
	require.Len(t, records, 50)
	assert.Equal(t, "game-51", records[0].ID)
	assert.Equal(t, "game-02", records[49].ID, "the oldest game should be evicted")
	_, ok := a.Find("game-01")
	assert.False(t, ok)
}

func TestArchive_WithLimit(t *testing.T) {
	a := newTestArchive(t, store.NewMemoryStore(), WithLimit(2))
	for i := 1; i <= 4; i++ {
		a.Append(testRecord(i))
	}
	assert.Equal(t, 2, a.Limit())
	records := a.List()
	require.Len(t, records, 2)
	assert.Equal(t, "game-04", records[0].ID)
	assert.Equal(t, "game-03", records[1].ID)

	ignored := newTestArchive(t, store.NewMemoryStore(), WithLimit(0))
	assert.Equal(t, DefaultLimit, ignored.Limit())
}

func TestArchive_ListIsReadOnly(t *testing.T) {
	a := newTestArchive(t, store.NewMemoryStore())
	a.Append(testRecord(1))

	records := a.List()
	records[0].WinnerName = "tampered"
	records[0].FinalStandings[0].Name = "tampered"

	again := a.List()
	assert.Equal(t, "winner-1", again[0].WinnerName)
	assert.Equal(t, "winner-1", again[0].FinalStandings[0].Name)
}

func TestArchive_Persistence(t *testing.T) {
	st := store.NewMemoryStore()
	a := newTestArchive(t, st)
	a.Append(testRecord(1))
	a.Append(testRecord(2))

	restored := newTestArchive(t, st)
	require.Equal(t, 2, restored.Len())
	assert.Equal(t, a.List(), restored.List())

	restored.Clear()
	assert.Zero(t, restored.Len())
	_, ok, err := st.Load(store.GameHistoryKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArchive_LoadTrimsToLimit(t *testing.T) {
	st := store.NewMemoryStore()
	a := newTestArchive(t, st)
	for i := 1; i <= 5; i++ {
		a.Append(testRecord(i))
	}

	small := newTestArchive(t, st, WithLimit(3))
	records := small.List()
	require.Len(t, records, 3)
	assert.Equal(t, "game-05", records[0].ID)
}

func TestArchive_DiscardsUnreadableHistory(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(store.GameHistoryKey, []byte(`{not json`)))

	a := newTestArchive(t, st)
	assert.Zero(t, a.Len())

	a.Append(testRecord(1))
	assert.Equal(t, 1, a.Len())
}

func TestArchive_ReceivesFinishedGames(t *testing.T) {
	st := store.NewMemoryStore()
	hist := newTestArchive(t, st)

	mClock := quartz.NewMock(t)
	finishedAt := time.Date(2026, time.October, 17, 21, 0, 0, 0, time.UTC)
	mClock.Set(finishedAt)
	engine := game.NewEngine(st, hist, log.New(io.Discard), game.WithClock(mClock))

	for g := 0; g < 2; g++ {
		_, err := engine.StartGame([]string{"Ann", "Bo"})
		require.NoError(t, err)

		state := engine.State()
		for !state.GameOver {
			state, err = engine.RecordRound([]game.RoundResult{
				{PlayerID: 1, Score: 5, CompletedPhase: true},
				{PlayerID: 2, Score: 50, CompletedPhase: false},
			})
			require.NoError(t, err)
		}
	}

	records := hist.List()
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "Ann", r.WinnerName)
		assert.Equal(t, 9, r.TotalRounds)
		assert.Len(t, r.RoundHistory, 9)
		assert.True(t, r.Date.Equal(finishedAt))
	}
	assert.NotEqual(t, records[0].ID, records[1].ID)

	engine.Reset()
	assert.Equal(t, 2, newTestArchive(t, st).Len(), "reset must not touch the archive")
}
