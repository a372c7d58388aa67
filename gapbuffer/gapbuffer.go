package gapbuffer

import (
	"strings"

	"github.com/textkit/editorcore/internal/grapheme"
	"github.com/textkit/editorcore/position"
)

const minGrowth = 64

// GapBuffer is contiguous UTF-8 byte storage of the form
// prefix ∥ gap ∥ suffix. storage[:gapStart] is prefix, storage[gapEnd:] is
// suffix, and storage[gapStart:gapEnd] is unused capacity.
type GapBuffer struct {
	storage  []byte
	gapStart int
	gapEnd   int
}

// New creates a GapBuffer holding initial as its content, with no spare
// capacity reserved yet; the first insert grows it.
func New(initial string) *GapBuffer {
	b := []byte(initial)
	return &GapBuffer{
		storage:  b,
		gapStart: len(b),
		gapEnd:   len(b),
	}
}

// Len returns the number of bytes of logical content (excludes the gap).
func (g *GapBuffer) Len() int {
	return g.gapStart + (len(g.storage) - g.gapEnd)
}

// String materializes the full document text.
func (g *GapBuffer) String() string {
	if g.gapStart == g.gapEnd {
		return string(g.storage[:g.gapStart]) + string(g.storage[g.gapEnd:])
	}
	var b strings.Builder
	b.Grow(g.Len())
	b.Write(g.storage[:g.gapStart])
	b.Write(g.storage[g.gapEnd:])
	return b.String()
}

// lines splits the materialized text into lines without their terminators.
func (g *GapBuffer) lines() []string {
	return strings.Split(g.String(), "\n")
}

// LineCount returns the number of lines; an empty buffer has exactly one
// (empty) line, matching the convention that line count = count('\n') + 1.
func (g *GapBuffer) LineCount() int {
	return len(g.lines())
}

// LineText returns the content of the given zero-based line, without its
// terminator.
func (g *GapBuffer) LineText(line int) (string, bool) {
	lines := g.lines()
	if line < 0 || line >= len(lines) {
		return "", false
	}
	return lines[line], true
}

// GraphemeCount returns the number of grapheme clusters on the given line.
func (g *GapBuffer) GraphemeCount(line int) int {
	text, ok := g.LineText(line)
	if !ok {
		return 0
	}
	return grapheme.Count(text)
}

// PositionToOffset resolves a Position to a byte offset into the logical
// content. ok is false if the line does not exist; the offset column is
// clamped to the line's grapheme count.
func (g *GapBuffer) PositionToOffset(p position.Position) (int, bool) {
	lines := g.lines()
	if p.Line < 0 || p.Line >= len(lines) {
		return 0, false
	}
	offset := 0
	for i := 0; i < p.Line; i++ {
		offset += len(lines[i]) + 1 // +1 for the '\n' consumed between lines
	}
	clusterOffset := p.Offset
	if clusterOffset < 0 {
		clusterOffset = 0
	}
	offset += grapheme.ByteOffset(lines[p.Line], clusterOffset)
	return offset, true
}

// clampPosition resolves the start of a delete range to an existing
// location: a line beyond the document clamps to the document's end, a
// negative line or offset clamps to 0, and an offset past its line's end
// clamps to that line's end. Used by DeleteRange for a range's start,
// which this editor clamps rather than aborting the delete.
func (g *GapBuffer) clampPosition(p position.Position) position.Position {
	last := g.LineCount() - 1
	if p.Line > last {
		return position.New(last, g.GraphemeCount(last))
	}
	line := p.Line
	if line < 0 {
		line = 0
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	if max := g.GraphemeCount(line); offset > max {
		offset = max
	}
	return position.New(line, offset)
}

// clampDeleteEnd resolves the end of a delete range. If the requested
// position's column overflows its line but the line itself isn't the
// document's last, clamping lands at the start of the next line, consuming
// that line's terminator; only on the last line does it clamp to the
// buffer's absolute end. A line beyond the document also clamps to the
// absolute end.
func (g *GapBuffer) clampDeleteEnd(p position.Position) position.Position {
	last := g.LineCount() - 1
	line := p.Line
	if line < 0 {
		line = 0
	}
	if line > last {
		return position.New(last, g.GraphemeCount(last))
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	if offset <= g.GraphemeCount(line) {
		return position.New(line, offset)
	}
	if line == last {
		return position.New(last, g.GraphemeCount(last))
	}
	return position.New(line+1, 0)
}

// ResolveDeleteRange returns the range DeleteRange would actually remove
// for r, after applying its clamp-to-document-end rule. Callers that need
// to read the content a delete is about to remove — to build an undoable
// Operation, say — should read this resolved range rather than r itself,
// since r's raw endpoints may not exist in the document yet still be a
// valid delete request.
func (g *GapBuffer) ResolveDeleteRange(r position.Range) position.Range {
	start := g.clampPosition(r.Start)
	end := g.clampDeleteEnd(r.End)
	if end.Before(start) {
		start, end = end, start
	}
	return position.NewRange(start, end)
}

// positionExists reports whether p names an actual location in the
// document: its line must exist, and its offset must not exceed that
// line's grapheme count (offset == count is the ordinary end-of-line
// position; anything past that does not exist, even mid-document).
func (g *GapBuffer) positionExists(p position.Position) bool {
	lines := g.lines()
	if p.Line < 0 || p.Line >= len(lines) {
		return false
	}
	if p.Offset < 0 {
		return false
	}
	return p.Offset <= grapheme.Count(lines[p.Line])
}

// OffsetToPosition resolves a byte offset into the logical content to a
// Position. Offsets outside [0, Len()] are clamped.
func (g *GapBuffer) OffsetToPosition(offset int) position.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > g.Len() {
		offset = g.Len()
	}
	lines := g.lines()
	consumed := 0
	for i, line := range lines {
		lineEnd := consumed + len(line)
		if offset <= lineEnd {
			return position.New(i, grapheme.Count(line[:offset-consumed]))
		}
		consumed = lineEnd + 1 // skip the '\n'
	}
	last := len(lines) - 1
	return position.New(last, grapheme.Count(lines[last]))
}

// ReadRange returns the text within [r.Start, r.End), or fails softly with
// ErrOutOfBounds/ErrInvalidRange if either endpoint does not name an actual
// location in the document. Unlike DeleteRange, read never clamps.
func (g *GapBuffer) ReadRange(r position.Range) (string, error) {
	if !g.positionExists(r.Start) {
		return "", ErrOutOfBounds
	}
	if !g.positionExists(r.End) {
		return "", ErrInvalidRange
	}
	from, _ := g.PositionToOffset(r.Start)
	to, _ := g.PositionToOffset(r.End)
	if to < from {
		from, to = to, from
	}
	return g.readRaw(from, to), nil
}

// InsertAt inserts text at p and returns the Position immediately after the
// inserted text. It fails with ErrOutOfBounds if p does not name an actual
// location in the document.
func (g *GapBuffer) InsertAt(p position.Position, text string) (position.Position, error) {
	if !g.positionExists(p) {
		return position.Position{}, ErrOutOfBounds
	}
	off, _ := g.PositionToOffset(p)
	g.insertRaw(off, text)
	return p.Add(position.DistanceOf(text)), nil
}

// DeleteRange removes the text within [r.Start, r.End) and returns it. The
// end of the range clamps to the document's end rather than failing: past
// the current line it advances to the start of the next line (consuming
// its terminator) if one exists, and only clamps to the buffer's absolute
// end once there is no next line to advance into.
func (g *GapBuffer) DeleteRange(r position.Range) (string, error) {
	from, ok := g.PositionToOffset(g.clampPosition(r.Start))
	if !ok {
		return "", ErrOutOfBounds
	}
	to, ok := g.PositionToOffset(g.clampDeleteEnd(r.End))
	if !ok {
		return "", ErrInvalidRange
	}
	if to < from {
		from, to = to, from
	}
	return g.deleteRaw(from, to), nil
}

// --- raw, byte-offset-addressed operations on the gap ---

// moveGapTo relocates the gap so that gapStart equals the logical offset
// pos. Bytes between the old and new gap position are shifted across the
// gap with a single copy; they never pass through the gap's unused bytes.
func (g *GapBuffer) moveGapTo(pos int) {
	switch {
	case pos < g.gapStart:
		n := g.gapStart - pos
		copy(g.storage[g.gapEnd-n:g.gapEnd], g.storage[pos:g.gapStart])
		g.gapStart = pos
		g.gapEnd -= n
	case pos > g.gapStart:
		n := pos - g.gapStart
		copy(g.storage[g.gapStart:g.gapStart+n], g.storage[g.gapEnd:g.gapEnd+n])
		g.gapStart += n
		g.gapEnd += n
	}
}

// grow consolidates the gap at the end of the document, then replaces
// storage with a larger array so the gap is once again a single contiguous
// region at the end with at least minExtra bytes of room — per invariant
// (iii)/(iv), the gap is never split across a reallocation.
func (g *GapBuffer) grow(minExtra int) {
	logicalLen := g.Len()
	g.moveGapTo(logicalLen)

	want := len(g.storage) * 2
	if want < logicalLen+minExtra+minGrowth {
		want = logicalLen + minExtra + minGrowth
	}

	next := make([]byte, want)
	copy(next, g.storage[:g.gapStart])
	g.storage = next
	g.gapEnd = want
}

// insertRaw inserts text at the logical byte offset off.
func (g *GapBuffer) insertRaw(off int, text string) {
	if text == "" {
		return
	}
	need := len(text)
	if need > g.gapEnd-g.gapStart {
		g.grow(need)
	}
	g.moveGapTo(off)
	copy(g.storage[g.gapStart:g.gapStart+need], text)
	g.gapStart += need
}

// deleteRaw removes the logical byte range [from,to) and returns the
// removed text.
func (g *GapBuffer) deleteRaw(from, to int) string {
	if to <= from {
		return ""
	}
	g.moveGapTo(to)
	deleted := string(g.storage[from:g.gapStart])
	g.gapStart = from
	return deleted
}

// readRaw returns the logical byte range [from,to), skipping gap bytes
// entirely so garbage in the unused region is never read.
func (g *GapBuffer) readRaw(from, to int) string {
	if to <= from {
		return ""
	}
	gapLen := g.gapEnd - g.gapStart
	switch {
	case to <= g.gapStart:
		return string(g.storage[from:to])
	case from >= g.gapStart:
		return string(g.storage[from+gapLen : to+gapLen])
	default:
		var b strings.Builder
		b.Write(g.storage[from:g.gapStart])
		b.Write(g.storage[g.gapEnd : to+gapLen])
		return b.String()
	}
}
