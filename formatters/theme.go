package formatters

import "github.com/charmbracelet/lipgloss"

// Theme defines color schemes and styles
type Theme struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#8A2BE2"), // BlueViolet
		Success: lipgloss.Color("#32CD32"), // LimeGreen
		Error:   lipgloss.Color("#FF6347"), // Tomato
		Muted:   lipgloss.Color("#808080"), // Gray
	}
}
