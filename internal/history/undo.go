// Package history tracks applied actions for undo and redo.
package history

import (
	"github.com/axwes/Paint-Replica/internal/action"
	"github.com/axwes/Paint-Replica/internal/grid"
)

// Capacity bounds the undo stack. Actions beyond it are silently dropped.
const Capacity = 100000

// UndoTracker keeps applied actions on an undo stack and undone actions on a
// redo stack. Recording a fresh action invalidates the redo stack.
type UndoTracker struct {
	undo []*action.PaintAction
	redo []*action.PaintAction
}

func NewUndoTracker() *UndoTracker {
	return &UndoTracker{}
}

// Add records an already-applied action. Full trackers drop the action.
func (u *UndoTracker) Add(a *action.PaintAction) {
	if a == nil || len(u.undo) >= Capacity {
		return
	}
	u.undo = append(u.undo, a)
	u.redo = u.redo[:0]
}

// Undo reverses the most recent action on the grid and returns it, or nil
// when there is nothing to undo.
func (u *UndoTracker) Undo(g *grid.Grid) *action.PaintAction {
	if len(u.undo) == 0 {
		return nil
	}
	a := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]
	a.Undo(g)
	u.redo = append(u.redo, a)
	return a
}

// Redo re-applies the most recently undone action and returns it, or nil
// when there is nothing to redo.
func (u *UndoTracker) Redo(g *grid.Grid) *action.PaintAction {
	if len(u.redo) == 0 {
		return nil
	}
	a := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	a.Apply(g)
	u.undo = append(u.undo, a)
	return a
}

// Depth reports how many actions can currently be undone.
func (u *UndoTracker) Depth() int { return len(u.undo) }
