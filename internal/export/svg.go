package export

import (
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strings"

	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/viz"
)

type SVGOptions struct {
	Width, Height int
	Background    string
	Colors        []string
	// Dots draws every sample as a point instead of joining them.
	Dots bool
	// Equal keeps one unit of x the same length as one unit of y.
	Equal bool
}

// ThemeOptions takes the colors of a terminal theme.
func ThemeOptions(t viz.Theme) SVGOptions {
	return SVGOptions{
		Width:      800,
		Height:     480,
		Background: "#0a0a0a",
		Colors:     []string{string(t.Primary), string(t.Secondary), string(t.Accent), string(t.Error), string(t.Muted)},
	}
}

// OptionsFor picks the drawing style of a view.
func OptionsFor(view string, t viz.Theme) SVGOptions {
	opts := ThemeOptions(t)
	switch view {
	case "twist":
		opts.Equal = true
	case "grid":
		opts.Dots, opts.Equal = true, true
	}
	return opts
}

const svgPad = 40

// SetToSVG draws every series of set on shared axes. Non-finite samples
// break the path; single-sample and all-zero series are drawn as markers.
func SetToSVG(set *series.Set, opts SVGOptions) string {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	if len(opts.Colors) == 0 {
		opts.Colors = []string{"#00cccc"}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<text x="%d" y="24" fill="#cccccc" font-family="monospace" font-size="14">%s</text>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background, svgPad, html.EscapeString(set.Title)))

	xlo, xhi, ylo, yhi, ok := extent(set)
	if !ok {
		sb.WriteString("</svg>")
		return sb.String()
	}
	pw := float64(opts.Width - 2*svgPad)
	ph := float64(opts.Height - 2*svgPad)
	sx, sy := pw/span(xlo, xhi), ph/span(ylo, yhi)
	if opts.Equal {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	toPx := func(x, y float64) (float64, float64) {
		return svgPad + (x-xlo)*sx, float64(opts.Height-svgPad) - (y-ylo)*sy
	}

	if ylo < 0 && yhi > 0 {
		_, zy := toPx(xlo, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333"/>
`, svgPad, zy, opts.Width-svgPad, zy))
	}

	for i, s := range set.Series {
		color := opts.Colors[i%len(opts.Colors)]
		if opts.Dots || viz.IsMarker(s) {
			sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", color))
			f := s.Finite()
			for j := 0; j < f.Len(); j++ {
				cx, cy := toPx(f.X[j], f.Y[j])
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5"/>`+"\n", cx, cy))
			}
			sb.WriteString("</g>\n")
		} else {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>`+"\n", color, pathData(s, toPx)))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>`+"\n",
			opts.Width-svgPad-140, svgPad+16*i, color, html.EscapeString(s.Name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func pathData(s series.Series, toPx func(x, y float64) (float64, float64)) string {
	var d strings.Builder
	pen := false
	for i := 0; i < s.Len(); i++ {
		if !series.IsFinite(s.X[i]) || !series.IsFinite(s.Y[i]) {
			pen = false
			continue
		}
		x, y := toPx(s.X[i], s.Y[i])
		if pen {
			d.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		} else {
			if d.Len() > 0 {
				d.WriteByte(' ')
			}
			d.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			pen = true
		}
	}
	return d.String()
}

func extent(set *series.Set) (xlo, xhi, ylo, yhi float64, ok bool) {
	xlo, ylo = math.Inf(1), math.Inf(1)
	xhi, yhi = math.Inf(-1), math.Inf(-1)
	for _, s := range set.Series {
		f := s.Finite()
		for i := 0; i < f.Len(); i++ {
			xlo, xhi = math.Min(xlo, f.X[i]), math.Max(xhi, f.X[i])
			ylo, yhi = math.Min(ylo, f.Y[i]), math.Max(yhi, f.Y[i])
			ok = true
		}
	}
	return
}

func span(lo, hi float64) float64 {
	if hi-lo == 0 {
		return 1
	}
	return hi - lo
}

// CanvasToSVG turns each lit braille dot of canvas into a circle.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fg, bg string) string {
	if canvas == nil {
		return ""
	}
	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, bg, fg))

	r := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !canvas.Lit(col*2+dx, row*4+dy) {
						continue
					}
					cx := float64(col*2+dx)*scale + scale/2
					cy := float64(row*4+dy)*scale + scale/2
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, r))
				}
			}
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func WriteSVG(w io.Writer, set *series.Set, opts SVGOptions) error {
	_, err := io.WriteString(w, SetToSVG(set, opts))
	return err
}

func ExportSVG(path string, set *series.Set, opts SVGOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(file, set, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
