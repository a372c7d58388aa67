package search

import (
	"strings"

	"github.com/textkit/editorcore/position"
)

// Source is the read surface search needs. gapbuffer.GapBuffer satisfies
// it.
type Source interface {
	String() string
	OffsetToPosition(offset int) position.Position
	PositionToOffset(p position.Position) (int, bool)
}

// FindAll returns every non-overlapping occurrence of pattern in src, in
// document order, as grapheme-based Ranges. An empty pattern matches
// nothing.
func FindAll(src Source, pattern string, caseSensitive bool) []position.Range {
	if pattern == "" {
		return nil
	}
	hay := src.String()
	pat := pattern
	if !caseSensitive {
		hay = strings.ToLower(hay)
		pat = strings.ToLower(pat)
	}

	var out []position.Range
	pos := 0
	for {
		idx := strings.Index(hay[pos:], pat)
		if idx < 0 {
			break
		}
		from := pos + idx
		to := from + len(pat)
		out = append(out, position.NewRange(src.OffsetToPosition(from), src.OffsetToPosition(to)))
		pos = to
	}
	return out
}

// FindNext returns the first match at or after from. If wrap is true and no
// match exists at or after from, it returns the first match in the
// document instead.
func FindNext(src Source, pattern string, from position.Position, caseSensitive, wrap bool) (position.Range, bool) {
	matches := FindAll(src, pattern, caseSensitive)
	if len(matches) == 0 {
		return position.Range{}, false
	}
	fromOff, ok := src.PositionToOffset(from)
	if !ok {
		fromOff = 0
	}
	for _, m := range matches {
		off, _ := src.PositionToOffset(m.Start)
		if off >= fromOff {
			return m, true
		}
	}
	if wrap {
		return matches[0], true
	}
	return position.Range{}, false
}

// FindPrev returns the last match strictly before from. If wrap is true and
// no such match exists, it returns the last match in the document instead.
func FindPrev(src Source, pattern string, from position.Position, caseSensitive, wrap bool) (position.Range, bool) {
	matches := FindAll(src, pattern, caseSensitive)
	if len(matches) == 0 {
		return position.Range{}, false
	}
	fromOff, ok := src.PositionToOffset(from)
	if !ok {
		fromOff = 0
	}
	for i := len(matches) - 1; i >= 0; i-- {
		off, _ := src.PositionToOffset(matches[i].Start)
		if off < fromOff {
			return matches[i], true
		}
	}
	if wrap {
		return matches[len(matches)-1], true
	}
	return position.Range{}, false
}
