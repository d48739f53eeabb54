// Package history keeps a bounded linear undo/redo stack of chart snapshots.
//
// Snapshots are the serialized form of the whole chart. Restoring a snapshot
// yields exactly the state that was pushed, so undo followed by redo is
// lossless.
package history

import (
	"errors"
	"fmt"

	"github.com/designspace/designspace/internal/chart"
)

// DefaultLimit is the number of snapshots kept before the oldest is evicted.
const DefaultLimit = 50

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History is not safe for concurrent use; the owning engine serializes access.
type History struct {
	limit  int
	stack  []string
	cursor int
}

// New returns an empty history holding at most limit snapshots.
// A non-positive limit selects DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit, cursor: -1}
}

// Push records s as the newest snapshot. Any redo branch beyond the cursor is
// discarded first. A snapshot equal to the one at the cursor is not recorded
// again. Push reports whether a new entry was added.
func (h *History) Push(s *chart.State) (bool, error) {
	data, err := s.Marshal()
	if err != nil {
		return false, fmt.Errorf("snapshot: %w", err)
	}
	snap := string(data)

	if h.cursor < len(h.stack)-1 {
		h.stack = h.stack[:h.cursor+1]
	}
	if len(h.stack) > 0 && h.stack[h.cursor] == snap {
		return false, nil
	}

	h.stack = append(h.stack, snap)
	if len(h.stack) > h.limit {
		h.stack = append(h.stack[:0], h.stack[1:]...)
	} else {
		h.cursor++
	}
	return true, nil
}

// Undo moves the cursor back one entry and returns the state stored there.
func (h *History) Undo() (*chart.State, error) {
	if !h.CanUndo() {
		return nil, ErrNothingToUndo
	}
	h.cursor--
	return h.current()
}

// Redo moves the cursor forward one entry and returns the state stored there.
func (h *History) Redo() (*chart.State, error) {
	if !h.CanRedo() {
		return nil, ErrNothingToRedo
	}
	h.cursor++
	return h.current()
}

func (h *History) current() (*chart.State, error) {
	s, err := chart.Unmarshal([]byte(h.stack[h.cursor]))
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %d: %w", h.cursor, err)
	}
	return s, nil
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor < len(h.stack)-1
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.stack)
}

// Cursor returns the index of the current snapshot, or -1 when empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Current returns the serialized snapshot at the cursor, if any.
func (h *History) Current() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	return h.stack[h.cursor], true
}

// Reset drops every snapshot.
func (h *History) Reset() {
	h.stack = nil
	h.cursor = -1
}
