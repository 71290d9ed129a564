package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the viewer and history screens.
type Theme struct {
	// Side panel
	PanelBorder lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Separator   lipgloss.Style

	// Status badges
	Paused lipgloss.Style
	Done   lipgloss.Style
	Error  lipgloss.Style
	Debug  lipgloss.Style

	// Tables and help
	Header   lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Paused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Debug:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
