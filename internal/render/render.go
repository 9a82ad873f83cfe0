// Package render turns a composited grid into styled terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/axwes/Paint-Replica/internal/grid"
	"github.com/axwes/Paint-Replica/internal/layers"
)

// cell is two columns wide so squares come out roughly square in a terminal.
const cellBlock = "  "

// Options controls frame decoration. Zero value renders the bare canvas.
type Options struct {
	// Cursor highlights the brush footprint around this square when set.
	Cursor *[2]int
}

// Frame renders the grid at animation timestamp t over the theme background.
// One line per row, each square a background-coloured block.
func Frame(g *grid.Grid, t int64, theme Theme, opts Options) string {
	highlight := map[[2]int]bool{}
	if opts.Cursor != nil {
		for _, c := range g.BrushCells(opts.Cursor[0], opts.Cursor[1]) {
			highlight[c] = true
		}
	}

	var b strings.Builder
	for y, row := range g.Composite(theme.Background, t) {
		for x, c := range row {
			style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
			block := cellBlock
			if opts.Cursor != nil && x == opts.Cursor[0] && y == opts.Cursor[1] {
				block = "[]"
				style = style.Foreground(theme.Accent).Bold(true)
			} else if highlight[[2]int{x, y}] {
				block = "··"
				style = style.Foreground(theme.Accent)
			}
			b.WriteString(style.Render(block))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Swatch renders a small colour sample, used for the layer picker.
func Swatch(c layers.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(cellBlock)
}

// Sparkline renders values as a compact bar chart of the given width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// ProgressBar renders playback progress.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

// Brightness returns the mean luminance of the composited grid, the series
// plotted by the stats command.
func Brightness(g *grid.Grid, background layers.Color, t int64) float64 {
	total := 0.0
	for _, row := range g.Composite(background, t) {
		for _, c := range row {
			total += c.Luminance()
		}
	}
	return total / float64(g.Width*g.Height)
}

// Coverage returns the fraction of squares whose colour differs from the
// background, i.e. how much of the canvas has visible paint.
func Coverage(g *grid.Grid, background layers.Color, t int64) float64 {
	painted := 0
	for _, row := range g.Composite(background, t) {
		for _, c := range row {
			if c != background {
				painted++
			}
		}
	}
	return float64(painted) / float64(g.Width*g.Height)
}
