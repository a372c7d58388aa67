// Package gapbuffer implements a gap buffer: contiguous UTF-8 byte storage
// of the form prefix ∥ gap ∥ suffix, where prefix and suffix hold the
// document's bytes and gap is unused capacity reserved for cheap near-cursor
// insertion.
//
// Edits near the gap are O(1) amortized; edits elsewhere require moving the
// gap first, which is O(distance moved). Coordinates are addressed
// externally by position.Position (line, grapheme-cluster offset); internal
// storage is indexed by byte offset within prefix+suffix, never by gap-local
// index.
//
// Example:
//
//	gb := gapbuffer.New("hello\nworld")
//	gb.InsertAt(position.New(0, 5), ", there")
//	fmt.Println(gb.String()) // "hello, there\nworld"
package gapbuffer
