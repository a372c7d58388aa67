package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/textkit/editorcore/cursor"
	"github.com/textkit/editorcore/gapbuffer"
	"github.com/textkit/editorcore/history"
	"github.com/textkit/editorcore/position"
	"github.com/textkit/editorcore/search"
	"github.com/textkit/editorcore/syntax"
)

// Buffer owns one GapBuffer, one Cursor, an undo/redo history, an optional
// canonical file path, a modification flag, an optional Workspace-assigned
// id, an optional syntax descriptor, and an optional change callback.
type Buffer struct {
	gb   *gapbuffer.GapBuffer
	cur  *cursor.Cursor
	hist *history.History

	path     string
	modified bool
	version  uint64

	id    int
	hasID bool

	syntax    syntax.Descriptor
	hasSyntax bool

	onChange func()
}

// New creates an empty Buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		gb:   gapbuffer.New(""),
		cur:  cursor.New(),
		hist: history.New(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a Buffer with initial content s.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.gb = gapbuffer.New(s)
	return b
}

// NewFromReader creates a Buffer by reading all of r as its initial
// content.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return NewFromString(string(data), opts...), nil
}

// Open creates a Buffer by reading path from disk and sets it as the
// buffer's canonical path.
func Open(path string, opts ...Option) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	b := NewFromString(string(data), opts...)
	b.path = path
	return b, nil
}

func translateGapErr(err error) error {
	if errors.Is(err, gapbuffer.ErrOutOfBounds) || errors.Is(err, gapbuffer.ErrInvalidRange) {
		return ErrOutOfBounds
	}
	return err
}

func (b *Buffer) afterMutate() {
	b.modified = true
	b.version++
	if b.onChange != nil {
		b.onChange()
	}
}

// --- reading ---

// Text returns the full document text.
func (b *Buffer) Text() string { return b.gb.String() }

// TextRange returns the text within r.
func (b *Buffer) TextRange(r position.Range) (string, error) {
	s, err := b.gb.ReadRange(r)
	if err != nil {
		return "", translateGapErr(err)
	}
	return s, nil
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return b.gb.LineCount() }

// LineText returns the given line's content without its terminator.
func (b *Buffer) LineText(line int) (string, bool) { return b.gb.LineText(line) }

// GraphemeCount returns the number of grapheme clusters on the given line.
func (b *Buffer) GraphemeCount(line int) int { return b.gb.GraphemeCount(line) }

// LineIterator walks a Buffer's lines in order.
type LineIterator struct {
	buf *Buffer
	i   int
}

// Lines returns a fresh LineIterator over the buffer's current content.
func (b *Buffer) Lines() *LineIterator { return &LineIterator{buf: b} }

// Next advances the iterator, returning the next line's index and text. ok
// is false once every line has been visited. text includes its trailing
// line terminator, if it has one — every line but the last does.
func (it *LineIterator) Next() (line int, text string, ok bool) {
	text, ok = it.buf.LineText(it.i)
	if !ok {
		return 0, "", false
	}
	line = it.i
	if it.i < it.buf.LineCount()-1 {
		text += "\n"
	}
	it.i++
	return line, text, true
}

// --- mutation ---

// Insert inserts text at p, moves the cursor to the end of the inserted
// text, and pushes the edit onto the undo history.
func (b *Buffer) Insert(p position.Position, text string) error {
	if text == "" {
		return nil
	}
	op := history.NewInsert(p, text)
	if err := b.hist.Execute(op, b.gb); err != nil {
		return translateGapErr(err)
	}
	b.cur.MoveTo(b.gb, p.Add(position.DistanceOf(text)))
	b.afterMutate()
	return nil
}

// Delete removes the text in r, moves the cursor to the start of the
// range actually removed, and pushes the edit onto the undo history. A
// range extending past the end of a line or the document clamps to the
// document's end rather than failing.
func (b *Buffer) Delete(r position.Range) error {
	if r.IsEmpty() {
		return nil
	}
	resolved := b.gb.ResolveDeleteRange(r)
	content, err := b.gb.ReadRange(resolved)
	if err != nil {
		return translateGapErr(err)
	}
	op := history.NewDelete(resolved, content)
	if err := b.hist.Execute(op, b.gb); err != nil {
		return translateGapErr(err)
	}
	b.cur.MoveTo(b.gb, resolved.Start)
	b.afterMutate()
	return nil
}

// Replace substitutes text for the content of r, moves the cursor to the
// end of the replacement text, and pushes the edit onto the undo history.
// r is clamped the same way Delete clamps its range.
func (b *Buffer) Replace(r position.Range, text string) error {
	resolved := b.gb.ResolveDeleteRange(r)
	before, err := b.gb.ReadRange(resolved)
	if err != nil {
		return translateGapErr(err)
	}
	op := history.NewReplace(resolved, before, text)
	if err := b.hist.Execute(op, b.gb); err != nil {
		return translateGapErr(err)
	}
	b.cur.MoveTo(b.gb, op.RangeAfter().End)
	b.afterMutate()
	return nil
}

// InsertAtCursor inserts text at the cursor's current position, moving the
// cursor to the end of the inserted text.
func (b *Buffer) InsertAtCursor(text string) error {
	return b.Insert(b.cur.Position(), text)
}

// DeleteAtCursor deletes the single grapheme cluster under the cursor. At
// the end of a line it deletes the line terminator, merging with the next
// line; at the end of the document it is a no-op.
func (b *Buffer) DeleteAtCursor() error {
	p := b.cur.Position()
	var end position.Position
	switch {
	case p.Offset < b.gb.GraphemeCount(p.Line):
		end = position.New(p.Line, p.Offset+1)
	case p.Line < b.gb.LineCount()-1:
		end = position.New(p.Line+1, 0)
	default:
		return nil
	}
	return b.Delete(position.NewRange(p, end))
}

// replaceWhole substitutes newContent for the entire document, as a single
// reversible Replace operation.
func (b *Buffer) replaceWhole(newContent string) (*history.Replace, error) {
	before := b.gb.String()
	whole := position.NewRange(position.Zero, b.gb.OffsetToPosition(b.gb.Len()))
	op := history.NewReplace(whole, before, newContent)
	if err := b.hist.Execute(op, b.gb); err != nil {
		return nil, translateGapErr(err)
	}
	return op, nil
}

// ReplaceAll substitutes text for the entire document content, as a single
// reversible Replace operation, and moves the cursor to the end of text.
func (b *Buffer) ReplaceAll(text string) error {
	op, err := b.replaceWhole(text)
	if err != nil {
		return err
	}
	b.cur.MoveToClamped(b.gb, op.RangeAfter().End)
	b.afterMutate()
	return nil
}

// BeginGroup opens an undo group; operations executed until EndGroup are
// undone and redone as a single unit.
func (b *Buffer) BeginGroup(name string) { b.hist.BeginGroup(name) }

// EndGroup closes the open undo group. An empty group is dropped silently.
func (b *Buffer) EndGroup() { b.hist.EndGroup() }

// CancelGroup closes the open undo group without recording it; edits
// already applied remain in the buffer.
func (b *Buffer) CancelGroup() { b.hist.CancelGroup() }

// Undo reverses the most recent edit (or group) and moves the cursor to
// the operation's canonical anchor (the position of an undone insert, or
// range.start for an undone delete/replace), clamped into valid bounds.
// Returns history.ErrNothingToUndo if there is nothing to undo.
func (b *Buffer) Undo() error {
	anchor, err := b.hist.Undo(b.gb)
	if err != nil {
		return err
	}
	b.cur.MoveToClamped(b.gb, anchor)
	b.afterMutate()
	return nil
}

// Redo re-applies the most recently undone edit (or group) and moves the
// cursor to the operation's canonical anchor, clamped into valid bounds.
// Returns history.ErrNothingToRedo if there is nothing to redo.
func (b *Buffer) Redo() error {
	anchor, err := b.hist.Redo(b.gb)
	if err != nil {
		return err
	}
	b.cur.MoveToClamped(b.gb, anchor)
	b.afterMutate()
	return nil
}

// CanUndo reports whether Undo has something to do.
func (b *Buffer) CanUndo() bool { return b.hist.CanUndo() }

// CanRedo reports whether Redo has something to do.
func (b *Buffer) CanRedo() bool { return b.hist.CanRedo() }

// --- cursor ---

// CursorPosition returns the cursor's current coordinate.
func (b *Buffer) CursorPosition() position.Position { return b.cur.Position() }

// MoveCursorTo moves the cursor to p if valid, returning false unchanged
// otherwise.
func (b *Buffer) MoveCursorTo(p position.Position) bool { return b.cur.MoveTo(b.gb, p) }

// MoveCursorLeft moves the cursor one grapheme cluster left.
func (b *Buffer) MoveCursorLeft() bool { return b.cur.MoveLeft(b.gb) }

// MoveCursorRight moves the cursor one grapheme cluster right.
func (b *Buffer) MoveCursorRight() bool { return b.cur.MoveRight(b.gb) }

// MoveCursorUp moves the cursor up a line, preserving the sticky column.
func (b *Buffer) MoveCursorUp() bool { return b.cur.MoveUp(b.gb) }

// MoveCursorDown moves the cursor down a line, preserving the sticky
// column.
func (b *Buffer) MoveCursorDown() bool { return b.cur.MoveDown(b.gb) }

// MoveCursorToStartOfLine moves the cursor to column 0 of its current line.
func (b *Buffer) MoveCursorToStartOfLine() bool { return b.cur.MoveToStartOfLine(b.gb) }

// MoveCursorToEndOfLine moves the cursor to the last column of its current
// line.
func (b *Buffer) MoveCursorToEndOfLine() bool { return b.cur.MoveToEndOfLine(b.gb) }

// MoveCursorToFirstWordOfLine moves the cursor to the first non-whitespace
// grapheme cluster on its current line.
func (b *Buffer) MoveCursorToFirstWordOfLine() bool { return b.cur.MoveToFirstWordOfLine(b.gb) }

// MoveCursorToStartOfDocument moves the cursor to line 0, column 0.
func (b *Buffer) MoveCursorToStartOfDocument() bool { return b.cur.MoveToStartOfDocument(b.gb) }

// MoveCursorToEndOfDocument moves the cursor to the last column of the
// last line.
func (b *Buffer) MoveCursorToEndOfDocument() bool { return b.cur.MoveToEndOfDocument(b.gb) }

// --- search ---

// FindAll returns every non-overlapping occurrence of pattern.
func (b *Buffer) FindAll(pattern string, caseSensitive bool) []position.Range {
	return search.FindAll(b.gb, pattern, caseSensitive)
}

// FindNext returns the first occurrence of pattern at or after from.
func (b *Buffer) FindNext(pattern string, from position.Position, caseSensitive, wrap bool) (position.Range, bool) {
	return search.FindNext(b.gb, pattern, from, caseSensitive, wrap)
}

// FindPrev returns the last occurrence of pattern strictly before from.
func (b *Buffer) FindPrev(pattern string, from position.Position, caseSensitive, wrap bool) (position.Range, bool) {
	return search.FindPrev(b.gb, pattern, from, caseSensitive, wrap)
}

// --- file I/O ---

// Path returns the buffer's canonical file path, or "" if none is set.
func (b *Buffer) Path() string { return b.path }

// SetPath assigns the buffer's canonical file path without touching disk.
func (b *Buffer) SetPath(path string) { b.path = path }

// FileExtension returns the lowercased extension of Path (including its
// leading dot), and false if no path is set or it has no extension.
func (b *Buffer) FileExtension() (string, bool) {
	if b.path == "" {
		return "", false
	}
	ext := filepath.Ext(b.path)
	if ext == "" {
		return "", false
	}
	return strings.ToLower(ext), true
}

// IsModified reports whether the buffer has unsaved changes. The flag is
// conservative: any successful mutation — including Undo and Redo — sets
// it, and only Save/SaveAs/MarkUnmodified/Reload clear it.
func (b *Buffer) IsModified() bool { return b.modified }

// MarkUnmodified clears the modification flag without saving.
func (b *Buffer) MarkUnmodified() { b.modified = false }

// Version returns a monotonically increasing counter bumped on every
// mutation. Consumers cache derived data (e.g. tokenization) keyed by
// (buffer id, Version()) rather than asking the Buffer to cache it.
func (b *Buffer) Version() uint64 { return b.version }

// Save writes the buffer's content to its current Path. Returns
// ErrPathMissing if no path is set.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrPathMissing
	}
	return b.SaveAs(b.path)
}

// SaveAs atomically writes the buffer's content to path (write to a
// temporary file in the same directory, then rename) and adopts path as
// the buffer's canonical path.
func (b *Buffer) SaveAs(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gapedit-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(b.gb.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	b.path = path
	b.modified = false
	return nil
}

// Reload replaces the buffer's content with a fresh read of Path, applied
// as a Replace operation so the reload itself is undoable. The cursor's
// line and offset are preserved when the reloaded document is still large
// enough, otherwise clamped. Returns ErrPathMissing if no path is set.
func (b *Buffer) Reload() error {
	if b.path == "" {
		return ErrPathMissing
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	prevCursor := b.cur.Position()
	if _, err := b.replaceWhole(string(data)); err != nil {
		return err
	}
	b.cur.MoveToClamped(b.gb, prevCursor)
	b.afterMutate()
	b.modified = false
	return nil
}

// --- identity, assigned by a Workspace ---

// ID returns the id a Workspace assigned this buffer, and whether one has
// been assigned.
func (b *Buffer) ID() (int, bool) { return b.id, b.hasID }

// SetID assigns the buffer's id. Intended to be called only by the
// Workspace that owns this buffer.
func (b *Buffer) SetID(id int) {
	b.id = id
	b.hasID = true
}

// --- syntax (external lexer collaborator boundary) ---

// Syntax returns the buffer's assigned syntax descriptor, if any.
func (b *Buffer) Syntax() (syntax.Descriptor, bool) { return b.syntax, b.hasSyntax }

// SetSyntax assigns the buffer's syntax descriptor.
func (b *Buffer) SetSyntax(d syntax.Descriptor) {
	b.syntax = d
	b.hasSyntax = true
}

// ClearSyntax removes the buffer's syntax descriptor.
func (b *Buffer) ClearSyntax() {
	b.syntax = syntax.Descriptor{}
	b.hasSyntax = false
}

// Tokenize hands the buffer's current text, syntax descriptor, and set to
// lexer and returns its TokenStream. The Buffer never tokenizes on its
// own; lexer is supplied entirely by the host. Returns
// ErrMissingSyntaxDefinition if no syntax descriptor is assigned.
func (b *Buffer) Tokenize(lexer syntax.Lexer, set *syntax.Set) (*syntax.TokenStream, error) {
	if !b.hasSyntax {
		return nil, ErrMissingSyntaxDefinition
	}
	ts, err := lexer.Tokenize(b.gb.String(), b.syntax, set)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexerFailure, err)
	}
	return ts, nil
}

// OnChange replaces the buffer's change callback.
func (b *Buffer) OnChange(fn func()) { b.onChange = fn }
