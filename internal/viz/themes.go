package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/leaflet/internal/trace"
)

// Theme maps step colour tags and chrome to terminal colours.
type Theme struct {
	Name     string
	Default  lipgloss.Color
	Compared lipgloss.Color
	Swapped  lipgloss.Color
	Settled  lipgloss.Color
	Found    lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
}

var (
	ThemeAutumn = Theme{
		Name:     "autumn",
		Default:  lipgloss.Color("#CD853F"), // Peru
		Compared: lipgloss.Color("#DAA520"), // Goldenrod
		Swapped:  lipgloss.Color("#90EE90"),
		Settled:  lipgloss.Color("#A0522D"),
		Found:    lipgloss.Color("#90EE90"),
		Text:     lipgloss.Color("#FFF8DC"),
		Muted:    lipgloss.Color("#8B7355"),
		Accent:   lipgloss.Color("#8B4513"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Default:  lipgloss.Color("#cccccc"),
		Compared: lipgloss.Color("#0088ff"),
		Swapped:  lipgloss.Color("#ffaa00"),
		Settled:  lipgloss.Color("#888888"),
		Found:    lipgloss.Color("#00ff00"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Accent:   lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Default:  lipgloss.Color("#0077be"),
		Compared: lipgloss.Color("#ffd700"),
		Swapped:  lipgloss.Color("#ff4444"),
		Settled:  lipgloss.Color("#4488aa"),
		Found:    lipgloss.Color("#00ff88"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Accent:   lipgloss.Color("#00a8cc"),
	}

	Themes = []Theme{ThemeAutumn, ThemeMinimal, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to autumn.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeAutumn
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t in Themes, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func (t Theme) ColorFor(c trace.Color) lipgloss.Color {
	switch c {
	case trace.ColorCompared:
		return t.Compared
	case trace.ColorSwapped:
		return t.Swapped
	case trace.ColorSettled:
		return t.Settled
	case trace.ColorFound:
		return t.Found
	default:
		return t.Default
	}
}
