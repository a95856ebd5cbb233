package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme is the palette for both lipgloss chrome and chart series.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Faint     lipgloss.Color
	Error     lipgloss.Color
	// Series colors for asciigraph, in plotting order.
	Series []asciigraph.AnsiColor
	// Ramp shades heat maps from low to high.
	Ramp []lipgloss.Color
}

var (
	ThemeCritical = Theme{
		Name:      "critical",
		Primary:   lipgloss.Color("#00cccc"),
		Secondary: lipgloss.Color("#ff88ff"),
		Accent:    lipgloss.Color("#ffcc00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Faint:     lipgloss.Color("#444455"),
		Error:     lipgloss.Color("#ff4444"),
		Series:    []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green, asciigraph.Red, asciigraph.Blue},
		Ramp:      []lipgloss.Color{"#0a0a2a", "#1a237e", "#00838f", "#43a047", "#fdd835", "#ff7043", "#ffffff"},
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#88ff88"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#008800"),
		Faint:     lipgloss.Color("#005500"),
		Error:     lipgloss.Color("#ff0000"),
		Series:    []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Lime, asciigraph.Yellow, asciigraph.Olive},
		Ramp:      []lipgloss.Color{"#001100", "#003300", "#006600", "#009900", "#00cc00", "#00ff00", "#ccffcc"},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Faint:     lipgloss.Color("#555555"),
		Error:     lipgloss.Color("#ff0000"),
		Series:    []asciigraph.AnsiColor{asciigraph.Default, asciigraph.Blue, asciigraph.Gray},
		Ramp:      []lipgloss.Color{"#111111", "#333333", "#555555", "#777777", "#999999", "#cccccc", "#ffffff"},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Faint:     lipgloss.Color("#5a4a5b"),
		Error:     lipgloss.Color("#ff4757"),
		Series:    []asciigraph.AnsiColor{asciigraph.Coral, asciigraph.Gold, asciigraph.Orchid, asciigraph.Salmon},
		Ramp:      []lipgloss.Color{"#2d1b2e", "#5b2a4e", "#8e3b5c", "#c44d58", "#ff6b6b", "#feca57", "#fff5f5"},
	}

	CurrentTheme = ThemeCritical

	Themes = []Theme{
		ThemeCritical,
		ThemePhosphor,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCritical
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

// NextTheme switches to the theme after the current one.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			SetTheme(Themes[(i+1)%len(Themes)].Name)
			return CurrentTheme
		}
	}
	SetTheme(ThemeCritical.Name)
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
