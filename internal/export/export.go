// Package export renders a finished painting to SVG and PNG files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"

	"github.com/axwes/Paint-Replica/internal/grid"
	"github.com/axwes/Paint-Replica/internal/layers"
)

// DefaultCellSize is the square edge in output pixels/units.
const DefaultCellSize = 16

// SVG renders the composited grid as one rect per square.
func SVG(g *grid.Grid, background layers.Color, t int64, cellSize int) string {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	w := g.Width * cellSize
	h := g.Height * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, background.Hex()))

	for y, row := range g.Composite(background, t) {
		for x, c := range row {
			if c == background {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x*cellSize, y*cellSize, cellSize, cellSize, c.Hex()))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG renders the grid and writes it to path.
func WriteSVG(path string, g *grid.Grid, background layers.Color, t int64, cellSize int) error {
	return os.WriteFile(path, []byte(SVG(g, background, t, cellSize)), 0644)
}

// WritePNG rasterises the grid and saves it to path.
func WritePNG(path string, g *grid.Grid, background layers.Color, t int64, cellSize int) error {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	dc := gg.NewContext(g.Width*cellSize, g.Height*cellSize)
	dc.SetRGB255(int(background.R), int(background.G), int(background.B))
	dc.Clear()

	for y, row := range g.Composite(background, t) {
		for x, c := range row {
			if c == background {
				continue
			}
			dc.SetRGB255(int(c.R), int(c.G), int(c.B))
			dc.DrawRectangle(float64(x*cellSize), float64(y*cellSize), float64(cellSize), float64(cellSize))
			dc.Fill()
		}
	}
	return dc.SavePNG(path)
}
