package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the cliq TUI theme
const (
	ColorBorder        = "#3A4055" // grey-blue frame
	ColorPrimaryText   = "#E6EAF2" // titles, selected rows
	ColorSecondaryText = "#9AA3B5" // metadata, help line
	ColorHelpText      = "240"     // dark grey

	ColorAccent       = "#2563EB" // active tab, selection bar
	ColorAccentBright = "#60A5FA" // focused input border

	ColorError   = "#EF4444" // error banner
	ColorSuccess = "#22C55E" // completed tasks
	ColorWarning = "#F59E0B" // overdue, unread badge
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color(ColorSecondaryText))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Background(lipgloss.Color(ColorAccent))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccent))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(ColorSuccess))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorError))

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
)
