package buffer

import "errors"

// ErrPathMissing is returned by Save when the buffer has no associated
// file path, and by Reload when there is nothing to reload from.
var ErrPathMissing = errors.New("buffer: no path set")

// ErrIO wraps any underlying os/io error from Save, SaveAs, or Reload.
// Use errors.Is(err, ErrIO) to detect an I/O failure regardless of the
// underlying cause.
var ErrIO = errors.New("buffer: io failure")

// ErrOutOfBounds is returned when a Position or Range passed to a Buffer
// method does not resolve to valid buffer coordinates.
var ErrOutOfBounds = errors.New("buffer: position or range out of bounds")

// ErrMissingSyntaxDefinition is returned by Tokenize when the buffer has no
// syntax descriptor assigned.
var ErrMissingSyntaxDefinition = errors.New("buffer: no syntax definition assigned")

// ErrLexerFailure wraps an error returned by a syntax.Lexer.
var ErrLexerFailure = errors.New("buffer: lexer failed")
