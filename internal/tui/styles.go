package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	primary    = lipgloss.Color("#7C3AED") // Purple
	secondary  = lipgloss.Color("#06B6D4") // Cyan
	success    = lipgloss.Color("#10B981") // Green
	danger     = lipgloss.Color("#EF4444") // Red
	muted      = lipgloss.Color("#6B7280") // Gray
	foreground = lipgloss.Color("#F9FAFB") // White
	background = lipgloss.Color("#1F2937") // Dark Gray
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(foreground).
			Background(primary).
			Bold(true).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true)

	matchStyle = lipgloss.NewStyle().
			Foreground(success)

	emptyStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(success)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(foreground).
			Background(background).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted)
)
