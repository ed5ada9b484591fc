package game

import (
	"cmp"
	"slices"
)

// TotalPhases is the number of phases in a game.
const TotalPhases = 10

// ShouldAdvance reports whether a player on currentPhase moves up a phase.
func ShouldAdvance(completedPhase bool, currentPhase int) bool {
	return completedPhase && currentPhase < TotalPhases
}

// IsFinisher reports whether p has finished the final phase.
func IsFinisher(p Player) bool {
	return p.CurrentPhase > TotalPhases || (p.CurrentPhase == TotalPhases && p.PhaseComplete)
}

// Finishers returns the finishers among players, in the order given.
func Finishers(players []Player) []Player {
	var out []Player
	for _, p := range players {
		if IsFinisher(p) {
			out = append(out, p)
		}
	}
	return out
}

// SelectWinner picks the finisher with the lowest total score. Ties go to the
// finisher that appears first. The boolean is false when nobody has finished.
func SelectWinner(players []Player) (Player, bool) {
	var winner Player
	found := false
	for _, p := range players {
		if !IsFinisher(p) {
			continue
		}
		if !found || p.TotalScore < winner.TotalScore {
			winner = p
			found = true
		}
	}
	return winner, found
}

// CompareStandings orders a before b when a is further along, or on the same
// phase with fewer points.
func CompareStandings(a, b Player) int {
	if a.CurrentPhase != b.CurrentPhase {
		return cmp.Compare(b.CurrentPhase, a.CurrentPhase)
	}
	return cmp.Compare(a.TotalScore, b.TotalScore)
}

// SortStandings returns a ranked copy of players. Equal players keep their
// relative order and the input is left untouched.
func SortStandings(players []Player) []Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, CompareStandings)
	return out
}
