package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/axwes/Paint-Replica/internal/layers"
)

// Theme defines the colour scheme for the TUI chrome and the canvas
// background the layers composite over.
type Theme struct {
	Name       string
	Background layers.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

// Available themes
var (
	ThemeMidnight = Theme{
		Name:       "midnight",
		Background: layers.Color{R: 26, G: 26, B: 46},
		Border:     lipgloss.Color("#444466"),
		Text:       lipgloss.Color("#eeeeff"),
		Muted:      lipgloss.Color("#666688"),
		Accent:     lipgloss.Color("#00ffff"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Background: layers.Color{R: 244, G: 236, B: 216},
		Border:     lipgloss.Color("#b8a88a"),
		Text:       lipgloss.Color("#3a3226"),
		Muted:      lipgloss.Color("#8a7a5a"),
		Accent:     lipgloss.Color("#c0392b"),
		Success:    lipgloss.Color("#27ae60"),
		Warning:    lipgloss.Color("#d35400"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Background: layers.Color{R: 0, G: 17, B: 0},
		Border:     lipgloss.Color("#005500"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#007700"),
		Accent:     lipgloss.Color("#88ff88"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: layers.Color{R: 0, G: 26, B: 51},
		Border:     lipgloss.Color("#4488aa"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
	}

	// All available themes
	Themes = []Theme{
		ThemeMidnight,
		ThemePaper,
		ThemeRetro,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeMidnight
}
