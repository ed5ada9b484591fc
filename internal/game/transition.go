package game

import (
	"fmt"
	"strings"
)

// NewGame builds the opening state for players, seated in the order given.
func NewGame(players []NewPlayer, limits PlayerLimits) (GameState, error) {
	if len(players) < limits.Min || len(players) > limits.Max {
		return GameState{}, fmt.Errorf("%w: got %d, need between %d and %d",
			ErrInvalidPlayerCount, len(players), limits.Min, limits.Max)
	}

	state := NewGameState()
	state.Players = make([]Player, 0, len(players))
	seen := make(map[int]bool, len(players))

	for i, np := range players {
		name := strings.TrimSpace(np.Name)
		if name == "" {
			return GameState{}, fmt.Errorf("%w: player %d has no name", ErrInvalidPlayerName, i+1)
		}

		id := np.ID
		if id == 0 {
			id = i + 1
		}
		if seen[id] {
			return GameState{}, fmt.Errorf("%w: %d", ErrDuplicatePlayerID, id)
		}
		seen[id] = true

		state.Players = append(state.Players, Player{
			ID:           id,
			Name:         name,
			CurrentPhase: 1,
		})
	}

	return state, nil
}

// ApplyRound returns the state that follows s once results are scored.
// s is not modified. Every current player needs exactly one result; on any
// error the returned state is zero and nothing has been applied.
func ApplyRound(s GameState, results []RoundResult) (GameState, error) {
	byID, err := indexResults(s, results)
	if err != nil {
		return GameState{}, err
	}

	next := s.Clone()
	entry := RoundEntry{
		RoundNumber: s.CurrentRound,
		PerPlayer:   make([]PlayerRound, 0, len(next.Players)),
	}

	for i := range next.Players {
		p := &next.Players[i]
		r := byID[p.ID]

		entry.PerPlayer = append(entry.PerPlayer, PlayerRound{
			PlayerID:       p.ID,
			PlayerName:     p.Name,
			Score:          r.Score,
			CompletedPhase: r.CompletedPhase,
			PhaseBefore:    p.CurrentPhase,
		})

		p.TotalScore += r.Score
		if ShouldAdvance(r.CompletedPhase, p.CurrentPhase) {
			p.CurrentPhase++
		}
		p.PhaseComplete = r.CompletedPhase
	}

	next.RoundHistory = append(next.RoundHistory, entry)

	if winner, ok := SelectWinner(next.Players); ok {
		next.GameOver = true
		next.Winner = &winner
	}

	next.CurrentRound++
	return next, nil
}

func indexResults(s GameState, results []RoundResult) (map[int]RoundResult, error) {
	if !s.Started() {
		return nil, ErrNoGame
	}
	if s.GameOver {
		return nil, ErrGameOver
	}

	byID := make(map[int]RoundResult, len(results))
	for _, r := range results {
		p, ok := s.Player(r.PlayerID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPlayerID, r.PlayerID)
		}
		if _, dup := byID[r.PlayerID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayerResult, p.Name)
		}
		if r.Score < 0 {
			return nil, fmt.Errorf("%w: %s scored %d", ErrInvalidScore, p.Name, r.Score)
		}
		byID[r.PlayerID] = r
	}

	for _, p := range s.Players {
		if _, ok := byID[p.ID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPlayerResult, p.Name)
		}
	}

	return byID, nil
}
