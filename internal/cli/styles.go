package cli

import "github.com/charmbracelet/lipgloss"

var (
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	secondaryColor = lipgloss.Color("#666666") // Gray for hints

	// successStyle for confirmation messages
	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// subtleStyle for hints/help text
	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
