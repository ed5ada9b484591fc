// Package game implements the Phase 10 scoring engine.
//
// A game is a GameState value. NewGame and ApplyRound are pure transitions:
// they validate their input and return a new state without touching the old
// one. Engine wraps those transitions with persistence and hands finished
// games to an Archiver.
//
// # Basic Usage
//
//	st := store.NewMemoryStore()
//	hist := archive.New(st, logger)
//	e := game.NewEngine(st, hist, logger)
//
//	e.StartGame([]string{"Ann", "Bo"})
//	state, err := e.RecordRound([]game.RoundResult{
//	    {PlayerID: 1, Score: 50},
//	    {PlayerID: 2, Score: 10, CompletedPhase: true},
//	})
//	if state.GameOver {
//	    fmt.Println(state.Winner.Name)
//	}
//
// # Rules
//
// A player who completes their phase advances by one, capped at phase 10.
// After every round the engine looks for finishers: players past phase 10,
// or on phase 10 having completed it this round. If any exist the game ends
// and the finisher with the lowest total score wins; ties go to the player
// who joined first. Standings order players by phase (highest first) and
// then by score (lowest first) without disturbing join order.
package game
