package cmd

import "github.com/charmbracelet/lipgloss"

var (
	ColorError = lipgloss.Color("#EF4444") // Red

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
