package gapbuffer

import "errors"

// ErrOutOfBounds is returned when a byte offset or Position falls outside
// the buffer's current content.
var ErrOutOfBounds = errors.New("gapbuffer: offset out of bounds")

// ErrInvalidRange is returned when a Range's end cannot be resolved to a
// valid offset within the buffer.
var ErrInvalidRange = errors.New("gapbuffer: invalid range")
