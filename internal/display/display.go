// Package display renders game state for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/lox/phase10/internal/game"
	"github.com/lox/phase10/internal/statistics"
)

const dateLayout = "Jan 2, 2006 15:04"

// Renderer formats scoreboards, history and phase reference text
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Scoreboard shows the round, the ranked players and the result if the game is over.
func (r *Renderer) Scoreboard(state game.GameState) string {
	if !state.Started() {
		return r.styles.Muted.Render("No game in progress. Start one with: phase10 start NAME NAME...") + "\n"
	}

	var b strings.Builder
	if state.GameOver {
		b.WriteString(r.styles.Header.Render("GAME OVER"))
	} else {
		b.WriteString(r.styles.Header.Render(fmt.Sprintf("ROUND %d", state.CurrentRound)))
	}
	b.WriteString("\n\n")
	b.WriteString(r.Standings(state.Standings(), state.Winner))

	if state.GameOver && state.Winner != nil {
		b.WriteString("\n")
		b.WriteString(r.styles.Winner.Render(fmt.Sprintf("%s wins, completing all %d phases with %d points",
			state.Winner.Name, game.TotalPhases, state.Winner.TotalScore)))
		b.WriteString("\n")
	}
	return b.String()
}

// Standings renders players in the order given, one per line.
func (r *Renderer) Standings(players []game.Player, winner *game.Player) string {
	var b strings.Builder
	b.WriteString(r.styles.SubHeader.Render(fmt.Sprintf("%-3s %-16s %-6s %6s  %s", "#", "Player", "Phase", "Score", "Needs")))
	b.WriteString("\n")

	for i, p := range players {
		line := fmt.Sprintf("%-3d %-16s %-6d %6d  %s",
			i+1, truncate(p.Name, 16), p.CurrentPhase, p.TotalScore, game.PhaseDescription(p.CurrentPhase))
		switch {
		case winner != nil && p.ID == winner.ID:
			line = r.styles.Winner.Render(line + "  winner")
		case p.PhaseComplete:
			line = r.styles.Complete.Render(line + "  ✓")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RoundHistory renders a round-by-round score grid. A "+" marks a completed phase.
func (r *Renderer) RoundHistory(players []game.Player, history []game.RoundEntry) string {
	if len(history) == 0 {
		return r.styles.Muted.Render("No rounds played yet.") + "\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%-6s", "Round")
	for _, p := range players {
		header += fmt.Sprintf(" %8s", truncate(p.Name, 8))
	}
	b.WriteString(r.styles.SubHeader.Render(header))
	b.WriteString("\n")

	for _, entry := range history {
		b.WriteString(fmt.Sprintf("%-6d", entry.RoundNumber))
		for _, p := range players {
			cell := "-"
			if pr, ok := entry.ScoreFor(p.ID); ok {
				cell = fmt.Sprintf("%d", pr.Score)
				if pr.CompletedPhase {
					cell += "+"
				}
			}
			b.WriteString(fmt.Sprintf(" %8s", cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Archive lists completed games, newest first.
func (r *Renderer) Archive(records []game.CompletedGameRecord) string {
	if len(records) == 0 {
		return r.styles.Muted.Render("No games played yet. Completed games will appear here!") + "\n"
	}

	var b strings.Builder
	b.WriteString(r.styles.Header.Render("GAME HISTORY"))
	b.WriteString("\n\n")
	for _, rec := range records {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			r.styles.Winner.Render("🏆 "+rec.WinnerName),
			r.styles.Muted.Render(fmt.Sprintf("%d rounds • %d players", rec.TotalRounds, len(rec.FinalStandings))),
			rec.Date.Local().Format(dateLayout)))
		b.WriteString(r.styles.Separator.Render("   " + rec.ID))
		b.WriteString("\n")
	}
	return b.String()
}

// Record shows the final standings and round breakdown of one completed game.
func (r *Renderer) Record(rec game.CompletedGameRecord) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render(fmt.Sprintf("%s won in %d rounds", rec.WinnerName, rec.TotalRounds)))
	b.WriteString("\n")
	b.WriteString(r.styles.Muted.Render(rec.Date.Local().Format(dateLayout)))
	b.WriteString("\n\n")

	b.WriteString(r.styles.SubHeader.Render(fmt.Sprintf("%-16s %-6s %6s", "Player", "Phase", "Score")))
	b.WriteString("\n")
	for _, s := range rec.FinalStandings {
		phase := fmt.Sprintf("%d", s.FinalPhase)
		if s.Finished {
			phase = "✓"
		}
		line := fmt.Sprintf("%-16s %-6s %6d", truncate(s.Name, 16), phase, s.TotalScore)
		if s.Name == rec.WinnerName {
			line = r.styles.Winner.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(rec.RoundHistory) > 0 {
		// Records keep names, not IDs, so rebuild the column order from the first round.
		var players []game.Player
		for _, pr := range rec.RoundHistory[0].PerPlayer {
			players = append(players, game.Player{ID: pr.PlayerID, Name: pr.PlayerName})
		}
		b.WriteString("\n")
		b.WriteString(r.RoundHistory(players, rec.RoundHistory))
	}
	return b.String()
}

// Stats renders career statistics, one player per line.
func (r *Renderer) Stats(stats []statistics.PlayerStats) string {
	if len(stats) == 0 {
		return r.styles.Muted.Render("No games played yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(r.styles.Header.Render("PLAYER STATS"))
	b.WriteString("\n\n")
	b.WriteString(r.styles.SubHeader.Render(fmt.Sprintf("%-16s %5s %5s %6s %9s %9s %7s",
		"Player", "Games", "Wins", "Win%", "Avg final", "Avg round", "Phases")))
	b.WriteString("\n")
	for _, ps := range stats {
		b.WriteString(fmt.Sprintf("%-16s %5d %5d %5.0f%% %9.1f %9.1f %7d\n",
			truncate(ps.Name, 16), ps.Games, ps.Wins, 100*ps.WinRate(),
			ps.FinalScores.Mean(), ps.RoundScores.Mean(), ps.PhasesCompleted))
	}
	return b.String()
}

// Phases lists the ten phases and the card penalty values.
func (r *Renderer) Phases() string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("PHASES"))
	b.WriteString("\n\n")
	for _, p := range game.Phases {
		b.WriteString(fmt.Sprintf("%2d  %s\n", p.Number, p.Description))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Muted.Render(fmt.Sprintf("Cards 1-9: %d • Cards 10-12: %d • Skip: %d • Wild: %d",
		game.PointsLowCard, game.PointsHighCard, game.PointsSkip, game.PointsWild)))
	b.WriteString("\n")
	return b.String()
}

// Error formats an error for the terminal.
func (r *Renderer) Error(err error) string {
	return r.styles.Error.Render("Error: "+err.Error()) + "\n"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
