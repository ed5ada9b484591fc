package game

// Player tracks one player's progress through a game
type Player struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CurrentPhase  int    `json:"currentPhase"`
	TotalScore    int    `json:"totalScore"`
	PhaseComplete bool   `json:"phaseComplete"` // completed their phase in the last round
}

// NewPlayer describes a player joining a game. A zero ID is replaced by the
// player's 1-based seat.
type NewPlayer struct {
	ID   int
	Name string
}

// PlayerLimits bounds how many players a game accepts.
type PlayerLimits struct {
	Min int
	Max int
}

// DefaultPlayerLimits allows two to six players.
var DefaultPlayerLimits = PlayerLimits{Min: 2, Max: 6}
