// Package visuals builds the scripted demo scenes: small paintings composed
// from canned strokes, rendered once per draw style or effect so the output
// shows what each mode does.
package visuals

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/axwes/Paint-Replica/internal/action"
	"github.com/axwes/Paint-Replica/internal/grid"
	"github.com/axwes/Paint-Replica/internal/layers"
	"github.com/axwes/Paint-Replica/internal/render"
)

// Names lists the available scenes in menu order.
var Names = []string{"basic", "complex", "styles"}

// Scene renders the named demo, or an error for unknown names.
func Scene(name string, theme render.Theme) (string, error) {
	switch name {
	case "basic":
		return Basic(theme), nil
	case "complex":
		return Complex(theme), nil
	case "styles":
		return Styles(theme), nil
	default:
		return "", fmt.Errorf("unknown scene %q (have %s)", name, strings.Join(Names, ", "))
	}
}

func titled(theme render.Theme, title, frame string) string {
	head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(title)
	return head + "\n" + frame
}

// Basic paints a diagonal of black strokes on a set-store grid.
func Basic(theme render.Theme) string {
	g, _ := grid.New(grid.DrawStyleSet, 16, 8)
	g.DecreaseBrush()
	for i := 0; i < 8; i++ {
		action.Stroke(g, i*2, i, layers.Black)
	}
	return titled(theme, "basic · set store, diagonal stroke",
		render.Frame(g, 0, theme, render.Options{}))
}

// Complex exercises an additive grid: stacked effects, a special reversal,
// and an undone stroke.
func Complex(theme render.Theme) string {
	g, _ := grid.New(grid.DrawStyleAdd, 16, 8)

	action.Stroke(g, 4, 3, layers.Rainbow)
	action.Stroke(g, 8, 4, layers.Darken)
	action.Stroke(g, 8, 4, layers.Invert)
	g.Special()

	// One stroke painted then undone: it must leave no trace.
	if a := action.Stroke(g, 13, 2, layers.Black); a != nil {
		a.Undo(g)
	}

	return titled(theme, "complex · additive store, special + undo",
		render.Frame(g, 12, theme, render.Options{}))
}

// Styles runs the same stroke script across all three draw styles so their
// differences line up side by side.
func Styles(theme render.Theme) string {
	panels := make([]string, 0, len(grid.DrawStyles))
	for _, style := range grid.DrawStyles {
		g, _ := grid.New(style, 12, 6)
		g.DecreaseBrush()

		action.Stroke(g, 5, 2, layers.Rainbow)
		action.Stroke(g, 5, 2, layers.Darken)
		action.Stroke(g, 8, 3, layers.Invert)
		g.Special()

		panels = append(panels, titled(theme, string(style),
			render.Frame(g, 6, theme, render.Options{})))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}
