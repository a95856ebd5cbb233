package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Subtle     lipgloss.Style
	Faint      lipgloss.Style
	Selected   lipgloss.Style
	Value      lipgloss.Style
	ValueFocus lipgloss.Style
	KeyName    lipgloss.Style
	ErrorText  lipgloss.Style
	Panel      lipgloss.Style
)

func init() { applyTheme(CurrentTheme) }

func applyTheme(t Theme) {
	Title = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	Subtitle = lipgloss.NewStyle().Foreground(t.Secondary)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	Faint = lipgloss.NewStyle().Foreground(t.Faint)
	Selected = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	Value = lipgloss.NewStyle().Foreground(t.Faint)
	ValueFocus = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	KeyName = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	ErrorText = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Faint).
		Padding(0, 1)
}

// Separator is a muted rule with a diamond in the middle.
func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return Subtle.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-3))
}

// Sparkline squeezes values into width block characters. Non-finite values
// render as gaps.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi, ok := bounds(values)
	if !ok {
		return strings.Repeat(" ", width)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		v := values[i*len(values)/width]
		if !finite(v) {
			b.WriteRune(' ')
			continue
		}
		idx := int((v - lo) / rng * float64(len(chars)-1))
		b.WriteRune(chars[min(max(idx, 0), len(chars)-1)])
	}
	return Subtitle.Render(b.String())
}
