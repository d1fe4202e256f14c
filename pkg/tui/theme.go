package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles for the cue screen.
type Theme struct {
	Header   lipgloss.Style
	TopBox   lipgloss.Style
	TopTitle lipgloss.Style
	Score    lipgloss.Style
	Cursor   lipgloss.Style
	Item     lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FCBC1E")),
		TopBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#FCBC1E")).Padding(0, 1),
		TopTitle: lipgloss.NewStyle().Bold(true),
		Score:    lipgloss.NewStyle().Faint(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FCBC1E")),
		Item:     lipgloss.NewStyle(),
		Dim:      lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}

// tagColors matches the palette the bucket shelf uses for tag chips.
var tagColors = map[string]string{
	"Follow Up":     "#FFD700",
	"High Priority": "#FF6347",
	"Low Priority":  "#90EE90",
	"Big Project":   "#87CEEB",
	"Project":       "#DDA0DD",
	"R&D":           "#FFA500",
}

const defaultTagColor = "#FCBC1E"

func tagStyle(name string) lipgloss.Style {
	c, ok := tagColors[name]
	if !ok {
		c = defaultTagColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}
