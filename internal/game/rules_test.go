package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAdvance(t *testing.T) {
	tests := []struct {
		name      string
		completed bool
		phase     int
		want      bool
	}{
		{"completed phase 1", true, 1, true},
		{"completed phase 9", true, 9, true},
		{"completed phase 10", true, 10, false},
		{"missed phase 5", false, 5, false},
		{"missed phase 10", false, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAdvance(tt.completed, tt.phase))
		})
	}
}

func TestIsFinisher(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		want   bool
	}{
		{"phase 10 complete", Player{CurrentPhase: 10, PhaseComplete: true}, true},
		{"phase 10 incomplete", Player{CurrentPhase: 10}, false},
		{"past phase 10", Player{CurrentPhase: 11}, true},
		{"phase 9 complete", Player{CurrentPhase: 9, PhaseComplete: true}, false},
		{"phase 1", Player{CurrentPhase: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFinisher(tt.player))
		})
	}
}

func TestSelectWinner(t *testing.T) {
	t.Run("no finishers", func(t *testing.T) {
		_, ok := SelectWinner([]Player{
			{ID: 1, CurrentPhase: 10},
			{ID: 2, CurrentPhase: 7, PhaseComplete: true},
		})
		assert.False(t, ok)
	})

	t.Run("lowest score among finishers beats further phase", func(t *testing.T) {
		winner, ok := SelectWinner([]Player{
			{ID: 1, Name: "A", CurrentPhase: 11, TotalScore: 120},
			{ID: 2, Name: "B", CurrentPhase: 10, PhaseComplete: true, TotalScore: 95},
		})
		require.True(t, ok)
		assert.Equal(t, "B", winner.Name)
	})

	t.Run("non-finishers with lower scores are ignored", func(t *testing.T) {
		winner, ok := SelectWinner([]Player{
			{ID: 1, Name: "Low", CurrentPhase: 9, TotalScore: 5},
			{ID: 2, Name: "Done", CurrentPhase: 10, PhaseComplete: true, TotalScore: 200},
		})
		require.True(t, ok)
		assert.Equal(t, "Done", winner.Name)
	})

	t.Run("tie goes to earliest player", func(t *testing.T) {
		winner, ok := SelectWinner([]Player{
			{ID: 1, Name: "Slow", CurrentPhase: 4, TotalScore: 10},
			{ID: 2, Name: "First", CurrentPhase: 10, PhaseComplete: true, TotalScore: 80},
			{ID: 3, Name: "Second", CurrentPhase: 10, PhaseComplete: true, TotalScore: 80},
		})
		require.True(t, ok)
		assert.Equal(t, "First", winner.Name)
	})
}

func TestFinishers(t *testing.T) {
	players := []Player{
		{ID: 1, CurrentPhase: 10, PhaseComplete: true},
		{ID: 2, CurrentPhase: 3},
		{ID: 3, CurrentPhase: 11},
	}
	got := Finishers(players)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestSortStandings(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "Ann", CurrentPhase: 3, TotalScore: 40},
		{ID: 2, Name: "Bo", CurrentPhase: 5, TotalScore: 90},
		{ID: 3, Name: "Cy", CurrentPhase: 3, TotalScore: 20},
		{ID: 4, Name: "Di", CurrentPhase: 3, TotalScore: 40},
	}

	got := SortStandings(players)

	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Bo", "Cy", "Ann", "Di"}, names)
	assert.Equal(t, "Ann", players[0].Name, "input order must not change")
}

func TestSortStandingsProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))

	for i := 0; i < 200; i++ {
		n := 2 + rng.IntN(5)
		players := make([]Player, n)
		for j := range players {
			players[j] = Player{
				ID:           j + 1,
				CurrentPhase: 1 + rng.IntN(10),
				TotalScore:   5 * rng.IntN(20),
			}
		}

		got := SortStandings(players)
		require.ElementsMatch(t, players, got, "standings must be a permutation")
		require.Equal(t, got, SortStandings(players), "standings must be idempotent")

		for j := 1; j < len(got); j++ {
			prev, cur := got[j-1], got[j]
			require.LessOrEqual(t, CompareStandings(prev, cur), 0)
			if CompareStandings(prev, cur) == 0 {
				require.Less(t, prev.ID, cur.ID, "ties must keep join order")
			}
		}
	}
}
