package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#7D56F4") // Purple
	accentColor  = lipgloss.Color("#5A9CF7") // Blue
	successColor = lipgloss.Color("#73F59F") // Green
	errorColor   = lipgloss.Color("#FF6B6B") // Red
	warningColor = lipgloss.Color("#FFE066") // Yellow
	mutedColor   = lipgloss.Color("#626262") // Gray
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#2d2d3d"))

	movieBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	tvShowBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(successColor)

	otherBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	filteredTagStyle = lipgloss.NewStyle().
				Foreground(warningColor)
)

func badgeStyle(known bool, movie bool) lipgloss.Style {
	switch {
	case !known:
		return otherBadgeStyle
	case movie:
		return movieBadgeStyle
	default:
		return tvShowBadgeStyle
	}
}
