// Package scoreinput turns raw user-entered round results into validated
// game.RoundResult values.
package scoreinput

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/phase10/internal/game"
)

// DefaultMaxScore is the highest penalty a single round may add.
const DefaultMaxScore = 500

var (
	ErrEmptyScore    = errors.New("enter a score")
	ErrInvalidScore  = errors.New("invalid score")
	ErrScoreTooHigh  = errors.New("score too high")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrMissingEntry  = errors.New("missing entry")
	ErrDuplicate     = errors.New("duplicate entry")
)

// Entry is one player's raw input for a round.
type Entry struct {
	Player         string // player name or numeric ID
	Score          string
	CompletedPhase bool
}

// FieldError ties a validation failure to the player it belongs to.
type FieldError struct {
	Player string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Player, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseScore accepts a non-negative whole number no greater than maxScore.
// A maxScore of zero or less disables the upper bound.
func ParseScore(raw string, maxScore int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyScore
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidScore, raw)
		}
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScore, raw)
	}
	if maxScore > 0 && score > maxScore {
		return 0, fmt.Errorf("%w: %d is over %d", ErrScoreTooHigh, score, maxScore)
	}
	return score, nil
}

// ParseRound validates one entry per player and returns results in player
// order. Players may be named by name (case-insensitive) or by ID. All
// problems are reported together, joined with errors.Join.
func ParseRound(players []game.Player, entries []Entry, maxScore int) ([]game.RoundResult, error) {
	byPlayer := make(map[int]Entry, len(entries))
	var errs []error

	for _, entry := range entries {
		p, ok := lookup(players, entry.Player)
		if !ok {
			errs = append(errs, &FieldError{Player: entry.Player, Err: ErrUnknownPlayer})
			continue
		}
		if _, dup := byPlayer[p.ID]; dup {
			errs = append(errs, &FieldError{Player: p.Name, Err: ErrDuplicate})
			continue
		}
		byPlayer[p.ID] = entry
	}

	results := make([]game.RoundResult, 0, len(players))
	for _, p := range players {
		entry, ok := byPlayer[p.ID]
		if !ok {
			errs = append(errs, &FieldError{Player: p.Name, Err: ErrMissingEntry})
			continue
		}
		score, err := ParseScore(entry.Score, maxScore)
		if err != nil {
			errs = append(errs, &FieldError{Player: p.Name, Err: err})
			continue
		}
		results = append(results, game.RoundResult{
			PlayerID:       p.ID,
			Score:          score,
			CompletedPhase: entry.CompletedPhase,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return results, nil
}

// ParseEntry parses the command-line form NAME=SCORE, with a trailing "+"
// on the score marking a completed phase (for example "Ann=15+").
func ParseEntry(arg string) (Entry, error) {
	name, score, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Entry{}, fmt.Errorf("%w: expected NAME=SCORE, got %q", ErrInvalidScore, arg)
	}

	score = strings.TrimSpace(score)
	completed := strings.HasSuffix(score, "+")
	return Entry{
		Player:         name,
		Score:          strings.TrimSuffix(score, "+"),
		CompletedPhase: completed,
	}, nil
}

func lookup(players []game.Player, key string) (game.Player, bool) {
	key = strings.TrimSpace(key)
	for _, p := range players {
		if strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	if id, err := strconv.Atoi(key); err == nil {
		for _, p := range players {
			if p.ID == id {
				return p, true
			}
		}
	}
	return game.Player{}, false
}
