package tui

import "github.com/charmbracelet/lipgloss"

// Color definitions for the TUI
var (
	// Board tiles
	tileStyle      = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	pathStyle      = tileStyle.Foreground(lipgloss.Color("11")).Bold(true) // Yellow
	pathStartStyle = tileStyle.Foreground(lipgloss.Color("10")).Bold(true) // Green
	boardFrame     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	// Status message colors
	successColor = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	infoColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue

	// UI element colors
	noIssuesColor = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	issuesColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	scoreColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // Cyan
	dimmedColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Dark grey for words not yet found
)

// formatStatus returns a colored status message based on the status kind
func formatStatus(message string, kind statusKind) string {
	switch kind {
	case statusSuccess:
		return successColor.Render(message)
	case statusError:
		return errorColor.Render(message)
	case statusInfo:
		return infoColor.Render(message)
	default:
		return message
	}
}

// formatTile renders a board tile, marking tiles on the highlighted path
func formatTile(tile string, onPath, start bool) string {
	switch {
	case start:
		return pathStartStyle.Render(tile)
	case onPath:
		return pathStyle.Render(tile)
	default:
		return tileStyle.Render(tile)
	}
}
