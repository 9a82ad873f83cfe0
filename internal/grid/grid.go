// Package grid implements the paint surface: a rectangle of squares, each
// owning a LayerStore whose flavour is fixed by the grid's draw style.
package grid

import (
	"fmt"

	"github.com/axwes/Paint-Replica/internal/layers"
)

// DrawStyle selects which LayerStore backs every square.
type DrawStyle string

const (
	DrawStyleSet      DrawStyle = "SET"
	DrawStyleAdd      DrawStyle = "ADD"
	DrawStyleSequence DrawStyle = "SEQUENCE"
)

// DrawStyles lists the valid styles in menu order.
var DrawStyles = []DrawStyle{DrawStyleSet, DrawStyleAdd, DrawStyleSequence}

// Brush size bounds. Size is a Manhattan-distance radius around the target
// square, so size 0 paints exactly one square.
const (
	MinBrush     = 0
	MaxBrush     = 5
	DefaultBrush = 2
)

// Grid is the paint surface. Coordinates are x (column) in [0,Width) and
// y (row) in [0,Height).
type Grid struct {
	Width  int
	Height int
	Style  DrawStyle

	brush int
	cells [][]LayerStore
}

// New builds a grid with every square backed by a fresh store for the style.
func New(style DrawStyle, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	g := &Grid{Width: width, Height: height, Style: style, brush: DefaultBrush}
	g.cells = make([][]LayerStore, height)
	for y := range g.cells {
		g.cells[y] = make([]LayerStore, width)
		for x := range g.cells[y] {
			switch style {
			case DrawStyleSet:
				g.cells[y][x] = NewSetLayerStore()
			case DrawStyleAdd:
				g.cells[y][x] = NewAdditiveLayerStore()
			case DrawStyleSequence:
				g.cells[y][x] = NewSequenceLayerStore()
			default:
				return nil, fmt.Errorf("unknown draw style %q", style)
			}
		}
	}
	return g, nil
}

// InBounds reports whether (x, y) is on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the store for (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) LayerStore {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// Brush returns the current brush size.
func (g *Grid) Brush() int { return g.brush }

// IncreaseBrush grows the brush by one; a no-op at MaxBrush.
func (g *Grid) IncreaseBrush() {
	if g.brush < MaxBrush {
		g.brush++
	}
}

// DecreaseBrush shrinks the brush by one; a no-op at MinBrush.
func (g *Grid) DecreaseBrush() {
	if g.brush > MinBrush {
		g.brush--
	}
}

// BrushCells returns the in-bounds squares within Manhattan distance of the
// brush size from (x, y), in row-major order.
func (g *Grid) BrushCells(x, y int) [][2]int {
	out := make([][2]int, 0, (g.brush*2+1)*(g.brush*2+1)/2+1)
	for cy := y - g.brush; cy <= y+g.brush; cy++ {
		for cx := x - g.brush; cx <= x+g.brush; cx++ {
			if !g.InBounds(cx, cy) {
				continue
			}
			if abs(cx-x)+abs(cy-y) <= g.brush {
				out = append(out, [2]int{cx, cy})
			}
		}
	}
	return out
}

// Special activates the special effect on every square.
func (g *Grid) Special() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].Special()
		}
	}
}

// Color composites the square at (x, y) over the start colour.
func (g *Grid) Color(start layers.Color, t int64, x, y int) layers.Color {
	if !g.InBounds(x, y) {
		return start
	}
	return g.cells[y][x].GetColor(start, t, x, y)
}

// Composite renders the whole grid over the start colour. The result is
// indexed [y][x].
func (g *Grid) Composite(start layers.Color, t int64) [][]layers.Color {
	out := make([][]layers.Color, g.Height)
	for y := range out {
		out[y] = make([]layers.Color, g.Width)
		for x := range out[y] {
			out[y][x] = g.cells[y][x].GetColor(start, t, x, y)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
