package render

import "github.com/charmbracelet/lipgloss"

var (
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorInfo    = lipgloss.Color("#3B82F6")
	ColorHistory = lipgloss.Color("#F59E0B")

	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F"))

	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleHistory = lipgloss.NewStyle().Foreground(ColorHistory)
)
