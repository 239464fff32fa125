package repl

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent  = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Transcript styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ContinuationStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	SexprStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// renderResult renders a result line: message, then s-expression.
func renderResult(r Result) string {
	return MessageStyle.Render(r.Message) + " " + SexprStyle.Render(r.Decl.String())
}

// renderError renders an error line.
func renderError(err error) string {
	return ErrorStyle.Render("Error:") + " " + err.Error()
}
