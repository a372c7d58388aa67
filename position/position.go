// Package position defines the coordinate value types shared by the editor
// core: Position, Distance, and Range.
package position

import (
	"fmt"
	"strings"

	"github.com/textkit/editorcore/internal/grapheme"
)

// Position is a logical coordinate within a document: a zero-based line
// index and a zero-based offset in grapheme clusters from the start of that
// line.
type Position struct {
	Line   int
	Offset int
}

// Zero is the Position at the very start of a document.
var Zero = Position{}

// New constructs a Position.
func New(line, offset int) Position {
	return Position{Line: line, Offset: offset}
}

// IsZero reports whether p is the document start.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Offset == 0
}

// Compare returns -1, 0, or 1 as p is less than, equal to, or greater than
// other, under lexicographic (line, offset) order.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line != other.Line:
		if p.Line < other.Line {
			return -1
		}
		return 1
	case p.Offset != other.Offset:
		if p.Offset < other.Offset {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool { return p.Compare(other) < 0 }

// After reports whether p sorts strictly after other.
func (p Position) After(other Position) bool { return p.Compare(other) > 0 }

// Equal reports whether p and other denote the same coordinate.
func (p Position) Equal(other Position) bool { return p.Compare(other) == 0 }

// Add applies a Distance to p, returning the resulting Position.
//
// If d.Lines is zero, the offset advances on the same line. Otherwise the
// line advances by d.Lines and the offset becomes d.Offset (the distance's
// offset is always relative to its own last line, never to p's line, once
// any line break is crossed).
func (p Position) Add(d Distance) Position {
	if d.Lines == 0 {
		return Position{Line: p.Line, Offset: p.Offset + d.Offset}
	}
	return Position{Line: p.Line + d.Lines, Offset: d.Offset}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}

// Distance is a relative displacement between two Positions, expressed as a
// number of line breaks crossed and a grapheme-cluster offset on the final
// line.
type Distance struct {
	Lines  int
	Offset int
}

// IsZero reports whether d denotes no displacement at all.
func (d Distance) IsZero() bool { return d.Lines == 0 && d.Offset == 0 }

func (d Distance) String() string {
	return fmt.Sprintf("+%d:%d", d.Lines, d.Offset)
}

// Range is an ordered pair of Positions with start <= end. Use NewRange to
// construct one; it normalizes unordered input so the invariant always
// holds.
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a Range from a and b, swapping them if necessary so that
// Start <= End.
func NewRange(a, b Position) Range {
	if a.Compare(b) <= 0 {
		return Range{Start: a, End: b}
	}
	return Range{Start: b, End: a}
}

// Collapsed returns a zero-width Range at p.
func Collapsed(p Position) Range {
	return Range{Start: p, End: p}
}

// IsEmpty reports whether the range spans no text.
func (r Range) IsEmpty() bool { return r.Start.Equal(r.End) }

// Contains reports whether p falls within [Start, End).
// An empty range contains no Position.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s,%s)", r.Start, r.End)
}

// DistanceOf computes the Distance spanned by text on its own, assuming '\n'
// is the sole line terminator and offsets are counted in grapheme clusters.
func DistanceOf(text string) Distance {
	nl := strings.Count(text, "\n")
	if nl == 0 {
		return Distance{Lines: 0, Offset: grapheme.Count(text)}
	}
	last := text[strings.LastIndexByte(text, '\n')+1:]
	return Distance{Lines: nl, Offset: grapheme.Count(last)}
}
