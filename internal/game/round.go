package game

// RoundResult is one player's validated outcome for a round.
type RoundResult struct {
	PlayerID       int  `json:"playerId"`
	Score          int  `json:"score"`
	CompletedPhase bool `json:"completedPhase"`
}

// PlayerRound is a player's row in the round history.
type PlayerRound struct {
	PlayerID       int    `json:"playerId"`
	PlayerName     string `json:"playerName"`
	Score          int    `json:"score"`
	CompletedPhase bool   `json:"completedPhase"`
	PhaseBefore    int    `json:"phaseBefore"`
}

// RoundEntry records one completed round. Entries are never modified after
// they are appended to a game's history.
type RoundEntry struct {
	RoundNumber int           `json:"roundNumber"`
	PerPlayer   []PlayerRound `json:"perPlayer"`
}

// ScoreFor returns the row for playerID.
func (r RoundEntry) ScoreFor(playerID int) (PlayerRound, bool) {
	for _, pr := range r.PerPlayer {
		if pr.PlayerID == playerID {
			return pr, true
		}
	}
	return PlayerRound{}, false
}

func (r RoundEntry) clone() RoundEntry {
	r.PerPlayer = append([]PlayerRound(nil), r.PerPlayer...)
	return r
}

func cloneHistory(history []RoundEntry) []RoundEntry {
	if history == nil {
		return nil
	}
	out := make([]RoundEntry, len(history))
	for i, entry := range history {
		out[i] = entry.clone()
	}
	return out
}
