package game

// Phase is one of the ten objectives in a game.
type Phase struct {
	Number      int
	Description string
}

// Phases lists what each phase requires.
var Phases = [TotalPhases]Phase{
	{1, "2 sets of 3"},
	{2, "1 set of 3 + 1 run of 4"},
	{3, "1 set of 4 + 1 run of 4"},
	{4, "1 run of 7"},
	{5, "1 run of 8"},
	{6, "1 run of 9"},
	{7, "2 sets of 4"},
	{8, "7 cards of one color"},
	{9, "1 set of 5 + 1 set of 2"},
	{10, "1 set of 5 + 1 set of 3"},
}

// Penalty points for cards left in hand at the end of a round.
const (
	PointsLowCard  = 5  // 1-9
	PointsHighCard = 10 // 10-12
	PointsSkip     = 15
	PointsWild     = 25
)

// PhaseDescription returns the requirement for phase n, or "" when n is out of range.
func PhaseDescription(n int) string {
	if n < 1 || n > TotalPhases {
		return ""
	}
	return Phases[n-1].Description
}
