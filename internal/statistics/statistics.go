// Package statistics summarises players' results across completed games.
package statistics

import (
	"math"
	"sort"
	"strings"

	"github.com/lox/phase10/internal/game"
)

// Summary accumulates numeric samples
type Summary struct {
	N      int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Kept for median calculation
}

// Add incorporates a sample
func (s *Summary) Add(v float64) {
	s.N++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean
func (s *Summary) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Summary) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation
func (s *Summary) StdDev() float64 {
	v := s.Variance()
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Median returns the middle sample
func (s *Summary) Median() float64 {
	if s.N == 0 {
		return 0
	}
	sorted := append([]float64(nil), s.Values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Min returns the smallest sample
func (s *Summary) Min() float64 {
	if s.N == 0 {
		return 0
	}
	m := s.Values[0]
	for _, v := range s.Values[1:] {
		m = math.Min(m, v)
	}
	return m
}

// PlayerStats aggregates one player's archived games. Players are matched by
// name, case-insensitively, since records do not carry stable player IDs.
type PlayerStats struct {
	Name            string
	Games           int
	Wins            int
	PhasesCompleted int
	FinalScores     Summary // total score at the end of each game
	RoundScores     Summary // points taken in each round
	WinningScores   Summary // final score in games won
}

// WinRate returns wins as a fraction of games played
func (p *PlayerStats) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games)
}

// FromRecords builds per-player statistics, ordered by wins, then win rate,
// then name.
func FromRecords(records []game.CompletedGameRecord) []PlayerStats {
	byName := make(map[string]*PlayerStats)
	var order []string

	get := func(name string) *PlayerStats {
		key := strings.ToLower(name)
		ps, ok := byName[key]
		if !ok {
			ps = &PlayerStats{Name: name}
			byName[key] = ps
			order = append(order, key)
		}
		return ps
	}

	for _, rec := range records {
		// A name counts once per game, at its best-ranked standing.
		counted := make(map[string]bool, len(rec.FinalStandings))
		for _, fs := range rec.FinalStandings {
			key := strings.ToLower(fs.Name)
			if counted[key] {
				continue
			}
			counted[key] = true

			ps := get(fs.Name)
			ps.Games++
			ps.FinalScores.Add(float64(fs.TotalScore))
			if strings.EqualFold(fs.Name, rec.WinnerName) {
				ps.Wins++
				ps.WinningScores.Add(float64(fs.TotalScore))
			}
		}
		for _, round := range rec.RoundHistory {
			for _, pr := range round.PerPlayer {
				ps := get(pr.PlayerName)
				ps.RoundScores.Add(float64(pr.Score))
				if pr.CompletedPhase {
					ps.PhasesCompleted++
				}
			}
		}
	}

	out := make([]PlayerStats, 0, len(order))
	for _, key := range order {
		out = append(out, *byName[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if wi, wj := out[i].WinRate(), out[j].WinRate(); wi != wj {
			return wi > wj
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
