// Package replay collects a session's actions and plays them back in order.
package replay

import (
	"github.com/axwes/Paint-Replica/internal/action"
	"github.com/axwes/Paint-Replica/internal/grid"
)

// Capacity bounds how many actions one replay can hold.
const Capacity = 1000

// Entry is one recorded action. Undo marks actions that were undo operations
// at record time; playback reverses those instead of applying them.
type Entry struct {
	Action *action.PaintAction `json:"action"`
	Undo   bool                `json:"undo,omitempty"`
}

// ReplayTracker records actions while painting and serves them back once
// StartReplay is called. Recording is rejected during playback and when full.
type ReplayTracker struct {
	queue     []Entry
	cursor    int
	replaying bool
}

func NewReplayTracker() *ReplayTracker {
	return &ReplayTracker{queue: make([]Entry, 0, 64)}
}

// Add records an action. Undo marks it as an undo operation; special, redo
// and draw actions all record with undo false.
func (r *ReplayTracker) Add(a *action.PaintAction, undo bool) {
	if a == nil || r.replaying || len(r.queue) >= Capacity {
		return
	}
	r.queue = append(r.queue, Entry{Action: a, Undo: undo})
}

// StartReplay stops collection and rewinds playback to the first action.
func (r *ReplayTracker) StartReplay() {
	r.replaying = true
	r.cursor = 0
}

// PlayNext applies the next recorded action to the grid. It returns true
// exactly when there was nothing left to play (or replay never started);
// draining the queue also ends replay mode so collection can resume.
func (r *ReplayTracker) PlayNext(g *grid.Grid) bool {
	if !r.replaying {
		return true
	}
	if r.cursor >= len(r.queue) {
		r.replaying = false
		return true
	}
	e := r.queue[r.cursor]
	r.cursor++
	if e.Undo {
		e.Action.Undo(g)
	} else {
		e.Action.Apply(g)
	}
	return false
}

// Stop ends playback early. The queue stays intact and recording resumes,
// the same state draining the queue leaves the tracker in.
func (r *ReplayTracker) Stop() {
	r.replaying = false
	r.cursor = 0
}

// Replaying reports whether playback is in progress.
func (r *ReplayTracker) Replaying() bool { return r.replaying }

// Played reports how many actions playback has consumed so far.
func (r *ReplayTracker) Played() int { return r.cursor }

// Len reports how many actions are recorded.
func (r *ReplayTracker) Len() int { return len(r.queue) }

// Entries returns the recorded actions for persistence.
func (r *ReplayTracker) Entries() []Entry {
	out := make([]Entry, len(r.queue))
	copy(out, r.queue)
	return out
}

// Preload seeds the tracker with previously persisted entries, replacing
// anything already recorded. Playback position rewinds to the start.
func (r *ReplayTracker) Preload(entries []Entry) {
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	r.queue = append(r.queue[:0], entries...)
	r.cursor = 0
	r.replaying = false
}
