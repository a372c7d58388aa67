package cursor

import (
	"testing"

	"github.com/textkit/editorcore/gapbuffer"
	"github.com/textkit/editorcore/position"
)

func TestMoveToRejectsInvalid(t *testing.T) {
	src := gapbuffer.New("abc\nde")
	c := New()
	if ok := c.MoveTo(src, position.New(5, 0)); ok {
		t.Error("MoveTo with invalid line should return false")
	}
	if !c.Position().IsZero() {
		t.Error("cursor should be unchanged after a rejected MoveTo")
	}
	if ok := c.MoveTo(src, position.New(0, 100)); ok {
		t.Error("MoveTo with out-of-range offset should return false")
	}
	if ok := c.MoveTo(src, position.New(1, 2)); !ok {
		t.Error("MoveTo with a valid position should succeed")
	}
}

func TestMoveLeftRightWrap(t *testing.T) {
	src := gapbuffer.New("ab\ncd")
	c := New()
	c.MoveTo(src, position.New(0, 2))
	if !c.MoveRight(src) {
		t.Fatal("expected MoveRight to wrap to next line")
	}
	if !c.Position().Equal(position.New(1, 0)) {
		t.Errorf("position = %s, want 1:0", c.Position())
	}
	if !c.MoveLeft(src) {
		t.Fatal("expected MoveLeft to wrap back")
	}
	if !c.Position().Equal(position.New(0, 2)) {
		t.Errorf("position = %s, want 0:2", c.Position())
	}
}

func TestMoveLeftAtStartFails(t *testing.T) {
	src := gapbuffer.New("ab")
	c := New()
	if c.MoveLeft(src) {
		t.Error("MoveLeft at document start should return false")
	}
}

func TestStickyColumnAcrossShortLine(t *testing.T) {
	src := gapbuffer.New("hello\nhi\nworld")
	c := New()
	c.MoveTo(src, position.New(0, 5))
	if !c.MoveDown(src) {
		t.Fatal("MoveDown failed")
	}
	if !c.Position().Equal(position.New(1, 2)) {
		t.Errorf("after moving into short line, position = %s, want 1:2 (clamped)", c.Position())
	}
	if !c.MoveDown(src) {
		t.Fatal("MoveDown failed")
	}
	if !c.Position().Equal(position.New(2, 5)) {
		t.Errorf("sticky column should restore to 5 on a long-enough line, got %s", c.Position())
	}
}

func TestHorizontalMoveResetsSticky(t *testing.T) {
	src := gapbuffer.New("hello\nhi\nworld")
	c := New()
	c.MoveTo(src, position.New(0, 5))
	c.MoveDown(src) // sticky = 5, clamps to 1:2
	c.MoveLeft(src) // resets sticky; now at 1:1
	if !c.Position().Equal(position.New(1, 1)) {
		t.Fatalf("position after MoveLeft = %s, want 1:1", c.Position())
	}
	c.MoveDown(src)
	if !c.Position().Equal(position.New(2, 1)) {
		t.Errorf("sticky should now track 1, got %s", c.Position())
	}
}

func TestMoveToStartAndEndOfLine(t *testing.T) {
	src := gapbuffer.New("hello\nhi")
	c := New()
	c.MoveTo(src, position.New(0, 3))
	if !c.MoveToEndOfLine(src) {
		t.Fatal("MoveToEndOfLine should succeed")
	}
	if !c.Position().Equal(position.New(0, 5)) {
		t.Errorf("position = %s, want 0:5", c.Position())
	}
	if !c.MoveToStartOfLine(src) {
		t.Fatal("MoveToStartOfLine should succeed")
	}
	if !c.Position().Equal(position.New(0, 0)) {
		t.Errorf("position = %s, want 0:0", c.Position())
	}
}

func TestMoveToFirstWordOfLine(t *testing.T) {
	src := gapbuffer.New("   hello")
	c := New()
	c.MoveTo(src, position.New(0, 8))
	if !c.MoveToFirstWordOfLine(src) {
		t.Fatal("MoveToFirstWordOfLine should succeed")
	}
	if !c.Position().Equal(position.New(0, 3)) {
		t.Errorf("position = %s, want 0:3", c.Position())
	}
}

func TestMoveToFirstWordOfLineAllWhitespace(t *testing.T) {
	src := gapbuffer.New("   ")
	c := New()
	if !c.MoveToFirstWordOfLine(src) {
		t.Fatal("MoveToFirstWordOfLine should succeed")
	}
	if !c.Position().Equal(position.New(0, 3)) {
		t.Errorf("position = %s, want 0:3 (end of line, nothing non-space)", c.Position())
	}
}

func TestMoveToStartAndEndOfDocument(t *testing.T) {
	src := gapbuffer.New("hello\nhi\nworld")
	c := New()
	c.MoveTo(src, position.New(1, 1))
	if !c.MoveToEndOfDocument(src) {
		t.Fatal("MoveToEndOfDocument should succeed")
	}
	if !c.Position().Equal(position.New(2, 5)) {
		t.Errorf("position = %s, want 2:5", c.Position())
	}
	if !c.MoveToStartOfDocument(src) {
		t.Fatal("MoveToStartOfDocument should succeed")
	}
	if !c.Position().IsZero() {
		t.Errorf("position = %s, want document start", c.Position())
	}
}

func TestClamp(t *testing.T) {
	src := gapbuffer.New("ab")
	c := New()
	c.MoveTo(src, position.New(0, 2))
	shrunk := gapbuffer.New("a")
	if !c.Clamp(shrunk) {
		t.Error("Clamp should report a change when the line shrank")
	}
	if !c.Position().Equal(position.New(0, 1)) {
		t.Errorf("position after Clamp = %s, want 0:1", c.Position())
	}
}
