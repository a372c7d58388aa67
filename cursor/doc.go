// Package cursor implements a single document cursor: a Position that is
// always clamped to valid coordinates within a line-and-grapheme source,
// plus a sticky column used for vertical motion.
//
// Example:
//
//	c := cursor.New()
//	c.MoveTo(src, position.New(0, 3))
//	c.MoveDown(src)
package cursor
