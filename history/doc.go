// Package history implements reversible editor Operations and an undo/redo
// stack that can group a sequence of operations into a single undo unit.
//
// Example:
//
//	h := history.New(1000)
//	h.Execute(history.NewInsert(p, "hi"), buf)
//	h.BeginGroup("format")
//	h.Execute(history.NewDelete(r1, old1), buf)
//	h.Execute(history.NewDelete(r2, old2), buf)
//	h.EndGroup() // both deletes undo/redo together
//	h.Undo(buf)
package history
