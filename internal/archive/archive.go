// Package archive keeps a capped, newest-first history of completed games.
package archive

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/phase10/internal/game"
	"github.com/lox/phase10/internal/store"
)

// DefaultLimit is the number of completed games kept.
const DefaultLimit = 50

// Archive holds completed game records, newest first. It saves itself to its
// store after every change.
type Archive struct {
	records []game.CompletedGameRecord
	limit   int
	store   store.Store
	logger  *log.Logger
}

// Option configures an Archive during creation.
type Option func(*Archive)

// WithLimit caps the archive at n records. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(a *Archive) {
		if n > 0 {
			a.limit = n
		}
	}
}

// New creates an archive and restores any history saved in st.
func New(st store.Store, logger *log.Logger, opts ...Option) *Archive {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &Archive{
		limit:  DefaultLimit,
		store:  st,
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.load()
	return a
}

// Append adds record as the newest entry and evicts the oldest entries
// beyond the limit.
func (a *Archive) Append(record game.CompletedGameRecord) {
	records := make([]game.CompletedGameRecord, 0, len(a.records)+1)
	records = append(records, record.Clone())
	records = append(records, a.records...)

	if evicted := len(records) - a.limit; evicted > 0 {
		records = records[:a.limit]
		a.logger.Debug("Evicted old games from history", "count", evicted)
	}

	a.records = records
	a.logger.Info("Game archived", "id", record.ID, "winner", record.WinnerName, "games", len(a.records))
	a.save()
}

// Clear empties the archive and deletes its saved snapshot.
func (a *Archive) Clear() {
	a.records = nil
	if err := a.store.Delete(store.GameHistoryKey); err != nil {
		a.logger.Error("Failed to delete game history", "error", err)
	}
	a.logger.Info("Game history cleared")
}

// List returns the archived games, newest first. The slice is a copy.
func (a *Archive) List() []game.CompletedGameRecord {
	out := make([]game.CompletedGameRecord, len(a.records))
	for i, r := range a.records {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of archived games.
func (a *Archive) Len() int {
	return len(a.records)
}

// Limit returns the maximum number of games kept.
func (a *Archive) Limit() int {
	return a.limit
}

// Find returns the record with the given ID.
func (a *Archive) Find(id string) (game.CompletedGameRecord, bool) {
	for _, r := range a.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return game.CompletedGameRecord{}, false
}

func (a *Archive) load() {
	data, ok, err := a.store.Load(store.GameHistoryKey)
	if err != nil {
		a.logger.Warn("Failed to load game history", "error", err)
		return
	}
	if !ok {
		return
	}

	var records []game.CompletedGameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		a.logger.Warn("Discarding unreadable game history", "error", err)
		return
	}
	if len(records) > a.limit {
		records = records[:a.limit]
	}
	a.records = records
}

func (a *Archive) save() {
	data, err := json.Marshal(a.records)
	if err != nil {
		a.logger.Error("Failed to encode game history", "error", err)
		return
	}
	if err := a.store.Save(store.GameHistoryKey, data); err != nil {
		a.logger.Error("Failed to save game history", "error", err)
	}
}
