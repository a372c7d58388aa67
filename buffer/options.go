package buffer

import "github.com/textkit/editorcore/syntax"

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithPath sets the buffer's canonical file path without reading from it;
// use Open to both set the path and load content from disk.
func WithPath(path string) Option {
	return func(b *Buffer) { b.path = path }
}

// WithChangeCallback registers fn to be invoked after every successful
// mutation (Insert, Delete, Replace, Undo, Redo, Reload).
func WithChangeCallback(fn func()) Option {
	return func(b *Buffer) { b.onChange = fn }
}

// WithMaxUndoEntries caps the undo stack depth.
func WithMaxUndoEntries(n int) Option {
	return func(b *Buffer) { b.hist.SetMaxEntries(n) }
}

// WithSyntax assigns the buffer's syntax descriptor up front.
func WithSyntax(d syntax.Descriptor) Option {
	return func(b *Buffer) {
		b.syntax = d
		b.hasSyntax = true
	}
}
