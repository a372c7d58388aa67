package history

import (
	"testing"

	"github.com/textkit/editorcore/gapbuffer"
	"github.com/textkit/editorcore/position"
)

func TestInsertThenUndoRedoRoundTrip(t *testing.T) {
	g := gapbuffer.New("hello")
	h := New(0)

	op := NewInsert(position.New(0, 5), " world")
	if err := h.Execute(op, g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello world" {
		t.Fatalf("after insert = %q", got)
	}

	if _, err := h.Undo(g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello" {
		t.Fatalf("after undo = %q, want %q", got, "hello")
	}

	if _, err := h.Redo(g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello world" {
		t.Fatalf("after redo = %q, want %q", got, "hello world")
	}
}

func TestDeleteReverseRestoresContent(t *testing.T) {
	g := gapbuffer.New("hello world")
	h := New(0)

	r := position.NewRange(g.OffsetToPosition(5), g.OffsetToPosition(11))
	deleted, _ := g.ReadRange(r)
	op := NewDelete(r, deleted)

	if err := h.Execute(op, g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello" {
		t.Fatalf("after delete = %q", got)
	}
	if _, err := h.Undo(g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello world" {
		t.Fatalf("after undo delete = %q, want %q", got, "hello world")
	}
}

func TestGroupUndoesAsOneUnit(t *testing.T) {
	g := gapbuffer.New("")
	h := New(0)

	h.BeginGroup("type three")
	for _, ch := range []string{"a", "b", "c"} {
		op := NewInsert(g.OffsetToPosition(g.Len()), ch)
		if err := h.Execute(op, g); err != nil {
			t.Fatal(err)
		}
	}
	h.EndGroup()

	if got := g.String(); got != "abc" {
		t.Fatalf("after group = %q, want %q", got, "abc")
	}
	if h.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1 (the group is a single undo unit)", h.UndoCount())
	}
	if _, err := h.Undo(g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "" {
		t.Fatalf("after undoing the group = %q, want empty", got)
	}
}

func TestEmptyGroupIsDropped(t *testing.T) {
	h := New(0)

	h.BeginGroup("noop")
	h.EndGroup()

	if h.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0 for an empty group", h.UndoCount())
	}
	if h.CanUndo() {
		t.Error("CanUndo() should be false after an empty group is dropped")
	}
}

func TestUndoImplicitlyEndsOpenGroup(t *testing.T) {
	g := gapbuffer.New("")
	h := New(0)

	op1 := NewInsert(g.OffsetToPosition(0), "a")
	h.Execute(op1, g)

	h.BeginGroup("in progress")
	op2 := NewInsert(g.OffsetToPosition(g.Len()), "b")
	h.Execute(op2, g)

	if _, err := h.Undo(g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "a" {
		t.Fatalf("after undo = %q, want %q", got, "a")
	}
	if h.IsGrouping() {
		t.Error("Undo should implicitly close the open group")
	}
}

func TestRedoStackClearedOnNewExecute(t *testing.T) {
	g := gapbuffer.New("")
	h := New(0)

	h.Execute(NewInsert(g.OffsetToPosition(0), "a"), g)
	_, _ = h.Undo(g)
	if !h.CanRedo() {
		t.Fatal("expected redo to be available")
	}

	h.Execute(NewInsert(g.OffsetToPosition(0), "z"), g)
	if h.CanRedo() {
		t.Error("a fresh Execute should clear the redo stack")
	}
}

func TestMaxEntriesEvictsOldest(t *testing.T) {
	g := gapbuffer.New("")
	h := New(2)

	h.Execute(NewInsert(g.OffsetToPosition(g.Len()), "a"), g)
	h.Execute(NewInsert(g.OffsetToPosition(g.Len()), "b"), g)
	h.Execute(NewInsert(g.OffsetToPosition(g.Len()), "c"), g)

	if h.UndoCount() != 2 {
		t.Errorf("UndoCount() = %d, want 2 (cap enforced)", h.UndoCount())
	}
}

func TestNothingToUndoRedo(t *testing.T) {
	g := gapbuffer.New("")
	h := New(0)
	if _, err := h.Undo(g); err != ErrNothingToUndo {
		t.Errorf("Undo on empty history = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(g); err != ErrNothingToRedo {
		t.Errorf("Redo on empty history = %v, want ErrNothingToRedo", err)
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	g := gapbuffer.New("hello world")
	h := New(0)

	r := position.NewRange(g.OffsetToPosition(6), g.OffsetToPosition(11))
	before, _ := g.ReadRange(r)
	op := NewReplace(r, before, "there")

	if err := h.Execute(op, g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello there" {
		t.Fatalf("after replace = %q", got)
	}
	if _, err := h.Undo(g); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello world" {
		t.Fatalf("after undo replace = %q, want %q", got, "hello world")
	}
}
