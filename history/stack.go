package history

import (
	"time"

	"github.com/textkit/editorcore/position"
)

// entry wraps an Operation with the time it was pushed.
type entry struct {
	op        Operation
	timestamp time.Time
}

// Info describes an entry on the undo or redo stack without executing it.
type Info struct {
	Description string
	Timestamp   time.Time
}

// History manages the undo and redo stacks for a single document, and
// supports grouping a run of operations into one undo unit.
type History struct {
	undoStack []*entry
	redoStack []*entry

	grouping  bool
	groupName string
	groupOps  []Operation

	maxEntries int
}

const defaultMaxEntries = 1000

// New creates a History. maxEntries <= 0 uses a default of 1000.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Execute applies op to m and pushes it onto the undo stack (or the open
// group, if any). If Apply fails, nothing is pushed.
func (h *History) Execute(op Operation, m Mutator) error {
	if err := op.Apply(m); err != nil {
		return err
	}
	h.push(op)
	return nil
}

// push adds op to the undo stack, or to the open group if grouping.
func (h *History) push(op Operation) {
	if h.grouping {
		h.groupOps = append(h.groupOps, op)
		return
	}
	h.pushEntry(op)
}

func (h *History) pushEntry(op Operation) {
	h.undoStack = append(h.undoStack, &entry{op: op, timestamp: time.Now()})
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverses the most recent operation (or group) and moves it to the
// redo stack. Returns ErrNothingToUndo if the undo stack is empty. Undoing
// implicitly ends any currently open group first (an open, never-ended
// group has nothing on the undo stack yet, so Undo without this would
// silently undo whatever preceded the group). The returned Position is the
// operation's UndoAnchor, where the caller should place its cursor.
func (h *History) Undo(m Mutator) (position.Position, error) {
	if h.grouping {
		h.EndGroup()
	}
	if len(h.undoStack) == 0 {
		return position.Zero, ErrNothingToUndo
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	if err := e.op.Reverse(m); err != nil {
		h.undoStack = append(h.undoStack, e)
		return position.Zero, err
	}
	h.redoStack = append(h.redoStack, e)
	return e.op.UndoAnchor(), nil
}

// Redo re-applies the most recently undone operation (or group) and moves
// it back to the undo stack. Returns ErrNothingToRedo if the redo stack is
// empty. The returned Position is the operation's RedoAnchor.
func (h *History) Redo(m Mutator) (position.Position, error) {
	if len(h.redoStack) == 0 {
		return position.Zero, ErrNothingToRedo
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	if err := e.op.Apply(m); err != nil {
		h.redoStack = append(h.redoStack, e)
		return position.Zero, err
	}
	h.undoStack = append(h.undoStack, e)
	return e.op.RedoAnchor(), nil
}

// CanUndo reports whether Undo has something to do.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether Redo has something to do.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of entries available to Undo.
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of entries available to Redo.
func (h *History) RedoCount() int { return len(h.redoStack) }

// BeginGroup starts grouping subsequent Execute calls into a single undo
// unit. Nested calls (while already grouping) are ignored.
func (h *History) BeginGroup(name string) {
	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupOps = nil
}

// EndGroup closes the open group. If no operations were executed while
// grouping, nothing is pushed onto the undo stack — an empty group is
// dropped rather than recorded. Otherwise the accumulated operations are
// combined into a Group and pushed as a single undo unit.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.groupOps) == 0 {
		h.groupOps = nil
		return
	}

	g := NewGroup(h.groupName, h.groupOps)
	h.pushEntry(g)
	h.groupOps = nil
}

// CancelGroup closes the open group without recording it. Operations
// already executed while grouping remain applied to the buffer; only the
// undo record is discarded.
func (h *History) CancelGroup() {
	h.grouping = false
	h.groupOps = nil
}

// IsGrouping reports whether a group is currently open.
func (h *History) IsGrouping() bool { return h.grouping }

// Clear discards all undo/redo history and any open group.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupOps = nil
}

// UndoInfo describes the entries available to Undo, most recent first.
func (h *History) UndoInfo() []Info {
	out := make([]Info, len(h.undoStack))
	for i, e := range h.undoStack {
		out[len(h.undoStack)-1-i] = Info{Description: e.op.Description(), Timestamp: e.timestamp}
	}
	return out
}

// RedoInfo describes the entries available to Redo, most recent first.
func (h *History) RedoInfo() []Info {
	out := make([]Info, len(h.redoStack))
	for i, e := range h.redoStack {
		out[len(h.redoStack)-1-i] = Info{Description: e.op.Description(), Timestamp: e.timestamp}
	}
	return out
}

// SetMaxEntries changes the undo-stack cap, trimming the oldest entries if
// the stack currently exceeds it.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = defaultMaxEntries
	}
	h.maxEntries = max
	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the current undo-stack cap.
func (h *History) MaxEntries() int { return h.maxEntries }
