// Package schistory keeps a bounded undo/redo stack of editing
// snapshots. A snapshot pairs the graph with its computed positions;
// both are deep copies, so later edits to the live graph never leak
// into history.
package schistory

import (
	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/scgraph"
)

// DEFAULT_LIMIT bounds how many snapshots a stack retains before the
// oldest are discarded.
const DEFAULT_LIMIT = 50

type Snapshot struct {
	Graph     *scgraph.Graph
	Positions map[string]*geo.Box
}

func snapshot(g *scgraph.Graph, positions map[string]*geo.Box) Snapshot {
	copied := make(map[string]*geo.Box, len(positions))
	for id, box := range positions {
		copied[id] = box.Copy()
	}
	return Snapshot{Graph: g.Clone(), Positions: copied}
}

// Stack is a cursor over an append-only list of snapshots. Push after
// an undo discards the redo tail, the way editor history behaves.
// Not safe for concurrent use.
type Stack struct {
	snapshots []Snapshot
	cursor    int
	limit     int
}

func NewStack(limit int) *Stack {
	if limit <= 0 {
		limit = DEFAULT_LIMIT
	}
	return &Stack{cursor: -1, limit: limit}
}

// Push records the state as the new head of history.
func (s *Stack) Push(g *scgraph.Graph, positions map[string]*geo.Box) {
	s.snapshots = append(s.snapshots[:s.cursor+1], snapshot(g, positions))
	if len(s.snapshots) > s.limit {
		s.snapshots = s.snapshots[len(s.snapshots)-s.limit:]
	}
	s.cursor = len(s.snapshots) - 1
}

func (s *Stack) CanUndo() bool { return s.cursor > 0 }
func (s *Stack) CanRedo() bool { return s.cursor < len(s.snapshots)-1 }

// Undo moves the cursor back and returns that snapshot. The second
// return is false at the beginning of history.
func (s *Stack) Undo() (Snapshot, bool) {
	if !s.CanUndo() {
		return Snapshot{}, false
	}
	s.cursor--
	return s.snapshots[s.cursor], true
}

// Redo moves the cursor forward again after an undo.
func (s *Stack) Redo() (Snapshot, bool) {
	if !s.CanRedo() {
		return Snapshot{}, false
	}
	s.cursor++
	return s.snapshots[s.cursor], true
}

// Current returns the snapshot at the cursor, if any.
func (s *Stack) Current() (Snapshot, bool) {
	if s.cursor < 0 {
		return Snapshot{}, false
	}
	return s.snapshots[s.cursor], true
}

// Len reports how many snapshots are retained.
func (s *Stack) Len() int { return len(s.snapshots) }
