package game

// GameState is the authoritative state of one game.
//
// Players stay in join order for the life of the game; use Standings for a
// ranked view.
type GameState struct {
	Players      []Player     `json:"players"`
	CurrentRound int          `json:"currentRound"`
	GameOver     bool         `json:"gameOver"`
	Winner       *Player      `json:"winner"`
	RoundHistory []RoundEntry `json:"roundHistory"`
}

// NewGameState returns the empty state that precedes a game.
func NewGameState() GameState {
	return GameState{CurrentRound: 1}
}

// Started reports whether the state holds a game.
func (s GameState) Started() bool {
	return len(s.Players) > 0
}

// Player returns the player with the given ID.
func (s GameState) Player(id int) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// RoundsPlayed is the number of rounds recorded so far.
func (s GameState) RoundsPlayed() int {
	return len(s.RoundHistory)
}

// Standings returns the players ranked by progress then score.
func (s GameState) Standings() []Player {
	return SortStandings(s.Players)
}

// Clone returns a deep copy that shares no slices with s.
func (s GameState) Clone() GameState {
	out := s
	if s.Players != nil {
		out.Players = append([]Player(nil), s.Players...)
	}
	if s.Winner != nil {
		w := *s.Winner
		out.Winner = &w
	}
	out.RoundHistory = cloneHistory(s.RoundHistory)
	return out
}

// normalize repairs snapshots that predate a field or were hand edited.
// It reports false when the snapshot cannot describe a valid game.
func (s *GameState) normalize() bool {
	if s.CurrentRound < 1 {
		s.CurrentRound = 1
	}
	if !s.Started() {
		*s = NewGameState()
		return true
	}
	seen := make(map[int]bool, len(s.Players))
	for _, p := range s.Players {
		if p.CurrentPhase < 1 || p.TotalScore < 0 || seen[p.ID] {
			return false
		}
		seen[p.ID] = true
	}
	if s.GameOver {
		if s.Winner == nil {
			return false
		}
		w, ok := s.Player(s.Winner.ID)
		if !ok || !IsFinisher(w) {
			return false
		}
		s.Winner = &w
	} else {
		s.Winner = nil
	}
	return true
}
