package calculator

// History is a bounded undo/redo stack of calculation records. Records live
// in a single slice; cursor marks the end of the "live" prefix, so records
// beyond it are the redo branch. Invariants: len(records) <= capacity and
// 0 <= cursor <= len(records).
type History struct {
	records  []Record
	cursor   int
	capacity int
}

// DefaultMaxHistory caps the history when no explicit capacity is given.
const DefaultMaxHistory = 100

// NewHistory creates an empty history bounded to capacity records. A
// non-positive capacity falls back to DefaultMaxHistory.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultMaxHistory
	}
	return &History{capacity: capacity}
}

// Push records a new calculation. Any redo branch beyond the cursor is
// discarded first. When the history is full the oldest record is dropped
// silently and the cursor shifts down with it.
func (h *History) Push(rec Record) {
	h.records = append(h.records[:h.cursor], rec)
	h.cursor = len(h.records)

	if len(h.records) > h.capacity {
		h.records = h.records[1:]
		h.cursor--
	}
}

// Undo steps the cursor back one record and returns the record that is now
// current, or nil when the stack rewound to the empty state. Returns
// ErrNothingToUndo when there is nothing before the cursor.
func (h *History) Undo() (*Record, error) {
	if h.cursor == 0 {
		return nil, ErrNothingToUndo
	}
	h.cursor--
	if h.cursor == 0 {
		return nil, nil
	}
	rec := h.records[h.cursor-1]
	return &rec, nil
}

// Redo re-applies the record just beyond the cursor and returns it. Returns
// ErrNothingToRedo when no redo branch exists.
func (h *History) Redo() (*Record, error) {
	if h.cursor == len(h.records) {
		return nil, ErrNothingToRedo
	}
	rec := h.records[h.cursor]
	h.cursor++
	return &rec, nil
}

// Clear empties the history and resets the cursor.
func (h *History) Clear() {
	h.records = nil
	h.cursor = 0
}

// Snapshot returns a copy of the live records, oldest first. The redo
// branch is not included.
func (h *History) Snapshot() []Record {
	out := make([]Record, h.cursor)
	copy(out, h.records[:h.cursor])
	return out
}

// Len reports the number of live records (up to the cursor).
func (h *History) Len() int { return h.cursor }

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor < len(h.records) }
