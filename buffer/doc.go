// Package buffer composes a gapbuffer.GapBuffer with a cursor, a
// reversible-operation history, literal search, file persistence, a
// modification flag, and a change callback. It is the unit a Workspace
// owns and the collaborator boundary for an external syntax lexer.
//
// Example:
//
//	b, err := buffer.Open("main.go")
//	b.OnChange(func() {
//	    cache.Invalidate(b.Version())
//	})
//	b.Insert(position.New(0, 0), "// generated\n")
//	b.Undo()
//	b.Save()
package buffer
