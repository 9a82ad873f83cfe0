// Package action records paint operations as replayable, invertible units.
package action

import (
	"encoding/json"
	"fmt"

	"github.com/axwes/Paint-Replica/internal/grid"
	"github.com/axwes/Paint-Replica/internal/layers"
)

// PaintStep is one layer added to (or, for erase strokes, removed from) one
// square. Erase flips the direction: Apply erases and Undo re-adds.
type PaintStep struct {
	X     int
	Y     int
	Layer layers.Layer
	Erase bool
}

// Apply performs the step forward.
func (s PaintStep) Apply(g *grid.Grid) {
	st := g.At(s.X, s.Y)
	if st == nil {
		return
	}
	if s.Erase {
		st.Erase(s.Layer)
	} else {
		st.Add(s.Layer)
	}
}

// Undo reverses the step.
func (s PaintStep) Undo(g *grid.Grid) {
	st := g.At(s.X, s.Y)
	if st == nil {
		return
	}
	if s.Erase {
		st.Add(s.Layer)
	} else {
		st.Erase(s.Layer)
	}
}

type stepJSON struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Layer string `json:"layer"`
	Erase bool   `json:"erase,omitempty"`
}

func (s PaintStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepJSON{X: s.X, Y: s.Y, Layer: s.Layer.Name, Erase: s.Erase})
}

func (s *PaintStep) UnmarshalJSON(data []byte) error {
	var raw stepJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l, ok := layers.ByName(raw.Layer)
	if !ok {
		return fmt.Errorf("unknown layer %q", raw.Layer)
	}
	*s = PaintStep{X: raw.X, Y: raw.Y, Layer: l, Erase: raw.Erase}
	return nil
}

// PaintAction is a group of steps applied together, optionally followed by
// the grid-wide special effect. Undo relies on every store's Special being
// self-inverting (toggle or order reversal), so re-running it cancels it.
type PaintAction struct {
	Steps   []PaintStep `json:"steps"`
	Special bool        `json:"special,omitempty"`
}

// Apply replays the action forward.
func (a *PaintAction) Apply(g *grid.Grid) {
	for _, s := range a.Steps {
		s.Apply(g)
	}
	if a.Special {
		g.Special()
	}
}

// Undo reverses the action: steps are undone last-first, then the special
// effect is re-applied to cancel it.
func (a *PaintAction) Undo(g *grid.Grid) {
	for i := len(a.Steps) - 1; i >= 0; i-- {
		a.Steps[i].Undo(g)
	}
	if a.Special {
		g.Special()
	}
}

// Empty reports whether the action would change nothing.
func (a *PaintAction) Empty() bool {
	return len(a.Steps) == 0 && !a.Special
}

// SpecialAction wraps the grid-wide special effect as an undoable action.
func SpecialAction() *PaintAction {
	return &PaintAction{Special: true}
}

// Stroke paints layer l at (x, y) with the grid's brush and returns the
// recorded action. Only squares whose store actually changed become steps,
// so undoing the stroke never erases pre-existing layers. Returns nil when
// nothing changed.
func Stroke(g *grid.Grid, x, y int, l layers.Layer) *PaintAction {
	a := &PaintAction{}
	for _, cell := range g.BrushCells(x, y) {
		if g.At(cell[0], cell[1]).Add(l) {
			a.Steps = append(a.Steps, PaintStep{X: cell[0], Y: cell[1], Layer: l})
		}
	}
	if a.Empty() {
		return nil
	}
	return a
}

// EraseStroke removes layer l from the brush area around (x, y) and returns
// the recorded action, or nil when no store changed.
func EraseStroke(g *grid.Grid, x, y int, l layers.Layer) *PaintAction {
	a := &PaintAction{}
	for _, cell := range g.BrushCells(x, y) {
		if g.At(cell[0], cell[1]).Erase(l) {
			a.Steps = append(a.Steps, PaintStep{X: cell[0], Y: cell[1], Layer: l, Erase: true})
		}
	}
	if a.Empty() {
		return nil
	}
	return a
}
