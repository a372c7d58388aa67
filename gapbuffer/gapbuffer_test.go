package gapbuffer

import (
	"strings"
	"testing"

	"github.com/textkit/editorcore/position"
)

func TestInsertAtStart(t *testing.T) {
	g := New("world")
	if _, err := g.InsertAt(position.New(0, 0), "hello "); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}
}

func TestInsertAtEnd(t *testing.T) {
	g := New("hello")
	end, err := g.InsertAt(position.New(0, 5), " world")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}
	if !end.Equal(position.New(0, 11)) {
		t.Errorf("end position = %s, want 0:11", end)
	}
}

func TestInsertMovesGapBothDirections(t *testing.T) {
	g := New("0123456789")
	if _, err := g.InsertAt(g.OffsetToPosition(8), "X"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.InsertAt(g.OffsetToPosition(2), "Y"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.InsertAt(g.OffsetToPosition(5), "Z"); err != nil {
		t.Fatal(err)
	}
	want := "01Y23Z4567X89"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDeleteRange(t *testing.T) {
	g := New("hello, world")
	r := position.NewRange(g.OffsetToPosition(5), g.OffsetToPosition(12))
	deleted, err := g.DeleteRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != ", world" {
		t.Errorf("deleted = %q, want %q", deleted, ", world")
	}
	if got := g.String(); got != "hello" {
		t.Errorf("String() after delete = %q, want %q", got, "hello")
	}
}

func TestReadRangeAcrossGap(t *testing.T) {
	g := New("abcdefgh")
	// force the gap to sit in the middle by inserting then reading a range
	// that spans the old prefix/suffix split.
	if _, err := g.InsertAt(position.New(0, 4), "XYZ"); err != nil {
		t.Fatal(err)
	}
	full := g.String()
	if full != "abcdXYZefgh" {
		t.Fatalf("setup failed, got %q", full)
	}
	r := position.NewRange(g.OffsetToPosition(2), g.OffsetToPosition(9))
	got, err := g.ReadRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if want := full[2:9]; got != want {
		t.Errorf("ReadRange straddling gap = %q, want %q", got, want)
	}
}

func TestReallocationConsolidatesGap(t *testing.T) {
	g := New("")
	// Force many small inserts at varying positions to exercise repeated
	// reallocation; after each grow() the gap must remain a single
	// contiguous region, which we verify indirectly: every subsequent read
	// must never contain stray bytes.
	text := "The quick brown fox jumps over the lazy dog. "
	for i := 0; i < 50; i++ {
		pos := g.OffsetToPosition(0)
		if _, err := g.InsertAt(pos, text); err != nil {
			t.Fatal(err)
		}
	}
	got := g.String()
	if !strings.HasPrefix(got, text) {
		t.Errorf("expected content to start with inserted text")
	}
	if len(got) != len(text)*50 {
		t.Errorf("len(got) = %d, want %d (reallocation must not corrupt or duplicate content)", len(got), len(text)*50)
	}
}

func TestInsertAtLineStartAfterNewline(t *testing.T) {
	g := New("line1\nline2")
	end, err := g.InsertAt(position.New(1, 0), "X")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "line1\nXline2" {
		t.Errorf("String() = %q", got)
	}
	if !end.Equal(position.New(1, 1)) {
		t.Errorf("end = %s, want 1:1", end)
	}
}

func TestMultiLineInsertAdvancesLine(t *testing.T) {
	g := New("ab")
	end, err := g.InsertAt(position.New(0, 1), "X\nYZ\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "aX\nYZ\nb" {
		t.Errorf("String() = %q", got)
	}
	if !end.Equal(position.New(2, 0)) {
		t.Errorf("end = %s, want 2:0", end)
	}
}

func TestGraphemeAwareOffsets(t *testing.T) {
	g := New("áb") // a + combining acute (1 cluster) + b
	if got := g.GraphemeCount(0); got != 2 {
		t.Errorf("GraphemeCount = %d, want 2", got)
	}
	end, err := g.InsertAt(position.New(0, 1), "Z")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "áZb" {
		t.Errorf("String() = %q", got)
	}
	if !end.Equal(position.New(0, 2)) {
		t.Errorf("end = %s, want 0:2", end)
	}
}

func TestOutOfBounds(t *testing.T) {
	g := New("abc")
	if _, err := g.InsertAt(position.New(5, 0), "x"); err != ErrOutOfBounds {
		t.Errorf("InsertAt invalid line: err = %v, want ErrOutOfBounds", err)
	}
}

func TestDeleteClampsPastDocumentEnd(t *testing.T) {
	g := New("abc")
	r := position.Range{Start: position.New(0, 0), End: position.New(5, 0)}
	deleted, err := g.DeleteRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "abc" {
		t.Errorf("deleted = %q, want %q", deleted, "abc")
	}
	if got := g.String(); got != "" {
		t.Errorf("String() after delete = %q, want empty", got)
	}
}

func TestReadRangePastDocumentEndFailsSoftly(t *testing.T) {
	g := New("line1\nline2")
	r := position.Range{Start: position.New(1, 0), End: position.New(9, 9)}
	if _, err := g.ReadRange(r); err == nil {
		t.Error("ReadRange with an end past the document should fail, not clamp")
	}
}

func TestReadRangeColumnPastLineEndFailsEvenOnNonLastLine(t *testing.T) {
	g := New("scribe\nlibrary")
	r := position.Range{Start: position.New(0, 0), End: position.New(0, 100)}
	if _, err := g.ReadRange(r); err == nil {
		t.Error("ReadRange with a column past the line's end should fail, not clamp into the next line")
	}
}

func TestDeleteOverflowingColumnOnNonLastLineConsumesTerminator(t *testing.T) {
	g := New("scribe\nlibrary")
	r := position.Range{Start: position.New(0, 0), End: position.New(0, 100)}
	deleted, err := g.DeleteRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "scribe\n" {
		t.Errorf("deleted = %q, want %q", deleted, "scribe\n")
	}
	if got := g.String(); got != "library" {
		t.Errorf("String() after delete = %q, want %q", got, "library")
	}
}

func TestDeleteClampsReversedRange(t *testing.T) {
	g := New("abcdef")
	r := position.Range{Start: g.OffsetToPosition(5), End: g.OffsetToPosition(1)}
	deleted, err := g.DeleteRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "bcde" {
		t.Errorf("deleted = %q, want %q", deleted, "bcde")
	}
}
