package tui

import "github.com/charmbracelet/lipgloss"

// Color constants shared by both tools.
const (
	primaryColor   = "#7C3AED" // Purple
	secondaryColor = "#10B981" // Green
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent terminal rendering.
var (
	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// CategoryStyle renders category headings in the listing.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor))

	// NumberStyle renders display numbers in the listing.
	NumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))
)
