package game

import "time"

// FinalStanding is a player's line in a completed game's results.
type FinalStanding struct {
	Name       string `json:"name"`
	FinalPhase int    `json:"finalPhase"`
	TotalScore int    `json:"totalScore"`
	Finished   bool   `json:"finished"`
}

// CompletedGameRecord is the archived summary of a finished game.
type CompletedGameRecord struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	FinalStandings []FinalStanding `json:"finalStandings"`
	WinnerName     string          `json:"winnerName"`
	TotalRounds    int             `json:"totalRounds"`
	RoundHistory   []RoundEntry    `json:"roundHistory"`
}

// NewCompletedGameRecord summarises a finished game. Standings are stored in
// ranked order.
func NewCompletedGameRecord(id string, date time.Time, s GameState) (CompletedGameRecord, error) {
	if !s.GameOver || s.Winner == nil {
		return CompletedGameRecord{}, ErrGameNotOver
	}

	standings := s.Standings()
	final := make([]FinalStanding, len(standings))
	for i, p := range standings {
		final[i] = FinalStanding{
			Name:       p.Name,
			FinalPhase: p.CurrentPhase,
			TotalScore: p.TotalScore,
			Finished:   IsFinisher(p),
		}
	}

	return CompletedGameRecord{
		ID:             id,
		Date:           date,
		FinalStandings: final,
		WinnerName:     s.Winner.Name,
		TotalRounds:    s.RoundsPlayed(),
		RoundHistory:   cloneHistory(s.RoundHistory),
	}, nil
}

// Clone returns a deep copy of r.
func (r CompletedGameRecord) Clone() CompletedGameRecord {
	r.FinalStandings = append([]FinalStanding(nil), r.FinalStandings...)
	r.RoundHistory = cloneHistory(r.RoundHistory)
	return r
}
