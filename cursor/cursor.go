package cursor

import (
	"github.com/textkit/editorcore/internal/grapheme"
	"github.com/textkit/editorcore/position"
)

// Source is the line/grapheme-count query surface a Cursor clamps itself
// against. gapbuffer.GapBuffer satisfies it.
type Source interface {
	LineCount() int
	GraphemeCount(line int) int
	LineText(line int) (string, bool)
}

// Cursor is a single Position constrained to stay within a Source's valid
// coordinates, plus a sticky column remembered across vertical motion so
// that moving up through a short line and back down restores the original
// column.
type Cursor struct {
	pos    position.Position
	sticky int // desired column for vertical motion; -1 when unset
}

// New creates a Cursor at the document start.
func New() *Cursor {
	return &Cursor{sticky: -1}
}

// Position returns the cursor's current coordinate.
func (c *Cursor) Position() position.Position {
	return c.pos
}

// valid reports whether p is a legal coordinate against src.
func valid(src Source, p position.Position) bool {
	lc := src.LineCount()
	if p.Line < 0 || p.Line >= lc {
		return false
	}
	if p.Offset < 0 || p.Offset > src.GraphemeCount(p.Line) {
		return false
	}
	return true
}

func clamp(src Source, p position.Position) position.Position {
	lc := src.LineCount()
	if lc == 0 {
		return position.Zero
	}
	line := p.Line
	if line < 0 {
		line = 0
	}
	if line >= lc {
		line = lc - 1
	}
	max := src.GraphemeCount(line)
	off := p.Offset
	if off < 0 {
		off = 0
	}
	if off > max {
		off = max
	}
	return position.New(line, off)
}

// MoveTo moves the cursor to p if p is a valid coordinate against src. It
// resets the sticky column. If p is invalid the cursor is left unchanged
// and MoveTo returns false.
func (c *Cursor) MoveTo(src Source, p position.Position) bool {
	if !valid(src, p) {
		return false
	}
	c.pos = p
	c.sticky = -1
	return true
}

// MoveToClamped moves the cursor to p, clamping p into src's valid bounds
// first. Unlike MoveTo it always succeeds, and it resets the sticky column.
func (c *Cursor) MoveToClamped(src Source, p position.Position) {
	c.pos = clamp(src, p)
	c.sticky = -1
}

// Clamp re-clamps the cursor's position into src's current valid bounds,
// e.g. after an edit shortened the line the cursor sat on. It returns
// whether the position changed.
func (c *Cursor) Clamp(src Source) bool {
	clamped := clamp(src, c.pos)
	if clamped.Equal(c.pos) {
		return false
	}
	c.pos = clamped
	c.sticky = -1
	return true
}

// MoveLeft moves one grapheme cluster left, wrapping to the end of the
// previous line. It resets the sticky column. Returns false, unchanged, if
// already at the document start.
func (c *Cursor) MoveLeft(src Source) bool {
	if c.pos.Offset == 0 && c.pos.Line == 0 {
		return false
	}
	c.sticky = -1
	if c.pos.Offset > 0 {
		c.pos.Offset--
		return true
	}
	c.pos.Line--
	c.pos.Offset = src.GraphemeCount(c.pos.Line)
	return true
}

// MoveRight moves one grapheme cluster right, wrapping to the start of the
// next line. It resets the sticky column. Returns false, unchanged, if
// already at the document end.
func (c *Cursor) MoveRight(src Source) bool {
	atLineEnd := c.pos.Offset >= src.GraphemeCount(c.pos.Line)
	if atLineEnd && c.pos.Line >= src.LineCount()-1 {
		return false
	}
	c.sticky = -1
	if !atLineEnd {
		c.pos.Offset++
		return true
	}
	c.pos.Line++
	c.pos.Offset = 0
	return true
}

// MoveToStartOfLine moves to column 0 of the current line. It resets the
// sticky column and always succeeds.
func (c *Cursor) MoveToStartOfLine(src Source) bool {
	c.pos.Offset = 0
	c.sticky = -1
	return true
}

// MoveToEndOfLine moves to the last column of the current line. It resets
// the sticky column and always succeeds.
func (c *Cursor) MoveToEndOfLine(src Source) bool {
	c.pos.Offset = src.GraphemeCount(c.pos.Line)
	c.sticky = -1
	return true
}

// MoveToFirstWordOfLine moves to the first non-whitespace grapheme cluster
// on the current line, or to the end of the line if it is entirely
// whitespace or empty. It resets the sticky column. Returns false,
// unchanged, if the current line cannot be read.
func (c *Cursor) MoveToFirstWordOfLine(src Source) bool {
	text, ok := src.LineText(c.pos.Line)
	if !ok {
		return false
	}
	clusters := grapheme.Split(text)
	col := len(clusters)
	for i, cl := range clusters {
		if !grapheme.IsSpace(cl) {
			col = i
			break
		}
	}
	c.pos.Offset = col
	c.sticky = -1
	return true
}

// MoveToStartOfDocument moves to line 0, column 0. It resets the sticky
// column and always succeeds.
func (c *Cursor) MoveToStartOfDocument(src Source) bool {
	c.pos = position.Zero
	c.sticky = -1
	return true
}

// MoveToEndOfDocument moves to the last column of the last line. It resets
// the sticky column and always succeeds.
func (c *Cursor) MoveToEndOfDocument(src Source) bool {
	last := src.LineCount() - 1
	c.pos = position.New(last, src.GraphemeCount(last))
	c.sticky = -1
	return true
}

// MoveUp moves to the previous line, preserving the sticky column across a
// run of vertical moves. Returns false, unchanged, if already on the first
// line.
func (c *Cursor) MoveUp(src Source) bool {
	if c.pos.Line == 0 {
		return false
	}
	if c.sticky < 0 {
		c.sticky = c.pos.Offset
	}
	c.pos.Line--
	c.pos.Offset = min(c.sticky, src.GraphemeCount(c.pos.Line))
	return true
}

// MoveDown moves to the next line, preserving the sticky column across a
// run of vertical moves. Returns false, unchanged, if already on the last
// line.
func (c *Cursor) MoveDown(src Source) bool {
	if c.pos.Line >= src.LineCount()-1 {
		return false
	}
	if c.sticky < 0 {
		c.sticky = c.pos.Offset
	}
	c.pos.Line++
	c.pos.Offset = min(c.sticky, src.GraphemeCount(c.pos.Line))
	return true
}
