// Package workspace owns a set of buffer.Buffer values, mints their ids,
// tracks which one is current, resolves file paths to a canonical root,
// and maintains a syntax.Set that Open uses to assign each buffer its
// syntax descriptor. A Workspace can optionally load a user syntax file
// via the config package and watch it for live reload.
//
// Example:
//
//	ws, err := workspace.New("/project")
//	b, err := ws.Open("main.go")
//	ws.SetCurrent(0)
package workspace
