package workspace

import "github.com/textkit/editorcore/internal/logx"

// Option configures a Workspace at construction time.
type Option func(*Workspace)

// WithUserSyntaxPath loads syntax definitions from a TOML file at path
// (via the config package) into the Workspace's syntax.Set at
// construction time. A missing file is not an error.
func WithUserSyntaxPath(path string) Option {
	return func(w *Workspace) { w.userSyntaxPath = path }
}

// WithSyntaxWatch enables live-reloading the user syntax file whenever it
// changes on disk. Has no effect without WithUserSyntaxPath.
func WithSyntaxWatch() Option {
	return func(w *Workspace) { w.watchEnabled = true }
}

// WithLogger overrides the Workspace's logger.
func WithLogger(l *logx.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}
