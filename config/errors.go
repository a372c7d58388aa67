package config

import "errors"

// ErrIO wraps an underlying os/io error encountered while reading a syntax
// file.
var ErrIO = errors.New("config: io failure")

// ErrInvalidSyntaxFile wraps a TOML parse error for a malformed syntax
// file.
var ErrInvalidSyntaxFile = errors.New("config: invalid syntax file")

// ErrWatchFailed is returned when a file watch could not be established.
var ErrWatchFailed = errors.New("config: watch failed")
