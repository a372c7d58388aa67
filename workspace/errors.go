package workspace

import "errors"

// ErrDuplicateBufferPath is returned by AddBuffer when the buffer's
// canonical path matches a buffer already owned by the Workspace. Open does
// not return it: it selects the already-open buffer instead.
var ErrDuplicateBufferPath = errors.New("workspace: a buffer with this path is already open")

// ErrIO wraps an underlying os/io error from Open or path canonicalization.
var ErrIO = errors.New("workspace: io failure")

// ErrNoCurrentBuffer is returned by operations that require a current
// buffer when the Workspace owns none.
var ErrNoCurrentBuffer = errors.New("workspace: no current buffer")
