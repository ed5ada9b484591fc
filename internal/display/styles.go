package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for scoreboard output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Winner    lipgloss.Style
	Complete  lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates the default set of styles
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Complete: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}
