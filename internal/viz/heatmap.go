package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/zetalab/internal/series"
)

var heatRunes = []rune(" .:-=+*#%@")

// Heatmap shades a landscape set: one column band per series (σ), one row
// per sampled t with t increasing upwards. Low values are dark, so zeros of
// ζ show up as holes.
func Heatmap(set *series.Set, width, height int) string {
	cols := len(set.Series)
	if cols == 0 || set.Series[0].Len() == 0 {
		return Title.Render(set.Title) + "\n" + Subtle.Render("empty surface") + "\n"
	}
	rows := set.Series[0].Len()
	if width <= 0 || width > cols {
		width = cols
	}
	if height <= 0 || height > rows {
		height = rows
	}

	lo, hi := 0.0, 0.0
	first := true
	for _, s := range set.Series {
		l, h, ok := s.Bounds()
		if !ok {
			continue
		}
		if first || l < lo {
			lo = l
		}
		if first || h > hi {
			hi = h
		}
		first = false
	}
	span := nonZero(hi - lo)

	ramp := CurrentTheme.Ramp
	var b strings.Builder
	b.WriteString(Title.Render(set.Title) + "\n")
	t := set.Series[0].X
	for r := height - 1; r >= 0; r-- {
		j := r * (rows - 1) / max(height-1, 1)
		b.WriteString(Subtle.Render(fmt.Sprintf("%7.2f ", t[j])))
		for c := 0; c < width; c++ {
			s := set.Series[c*(cols-1)/max(width-1, 1)]
			v := lo
			if j < s.Len() && series.IsFinite(s.Y[j]) {
				v = s.Y[j]
			}
			level := (v - lo) / span
			ri := int(level * float64(len(heatRunes)-1))
			ci := int(level * float64(len(ramp)-1))
			style := lipgloss.NewStyle().Foreground(ramp[clampIndex(ci, len(ramp))])
			b.WriteString(style.Render(string(heatRunes[clampIndex(ri, len(heatRunes))])))
		}
		b.WriteByte('\n')
	}
	b.WriteString(Subtle.Render(fmt.Sprintf("        %s … %s   |ζ| ∈ [%.3g, %.3g]",
		set.Series[0].Name, set.Series[cols-1].Name, lo, hi)) + "\n")
	return b.String()
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
