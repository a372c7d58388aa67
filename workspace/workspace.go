package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/textkit/editorcore/buffer"
	"github.com/textkit/editorcore/config"
	"github.com/textkit/editorcore/internal/logx"
	"github.com/textkit/editorcore/syntax"
)

// Workspace owns a set of Buffers in insertion order, an index designating
// the current one, a canonical root path, a syntax.Set, and a monotonic
// counter used to mint Buffer ids.
type Workspace struct {
	root    string
	buffers []*buffer.Buffer
	byPath  map[string]int // canonical path -> index into buffers
	current int            // -1 when empty
	nextID  int

	syntax *syntax.Set

	userSyntaxPath string
	watchEnabled   bool
	watcher        *config.Watcher

	logger *logx.Logger
}

// New creates a Workspace rooted at root. Relative paths passed to Open
// are resolved against root.
func New(root string, opts ...Option) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	w := &Workspace{
		root:    filepath.Clean(abs),
		byPath:  make(map[string]int),
		current: -1,
		syntax:  syntax.NewSet(),
		logger:  logx.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.userSyntaxPath != "" {
		if err := w.loadUserSyntax(); err != nil {
			return nil, err
		}
		if w.watchEnabled {
			if err := w.startWatch(); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func (w *Workspace) loadUserSyntax() error {
	entries, err := config.LoadSyntaxFile(w.userSyntaxPath)
	if err != nil {
		return err
	}
	for _, e := range entries {
		w.syntax.Register(e)
	}
	w.logger.Debugf("loaded %d user syntax entries from %s", len(entries), w.userSyntaxPath)
	return nil
}

func (w *Workspace) startWatch() error {
	watcher, err := config.NewWatcher(w.userSyntaxPath, func() {
		if err := w.loadUserSyntax(); err != nil {
			w.logger.Warnf("reload of %s failed: %v", w.userSyntaxPath, err)
		}
	})
	if err != nil {
		return err
	}
	w.watcher = watcher
	return nil
}

// Close stops the user syntax file watcher, if one is running. Safe to
// call even if no watch was started.
func (w *Workspace) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

// Root returns the workspace's canonical root path.
func (w *Workspace) Root() string { return w.root }

// SyntaxSet returns the workspace's syntax registry, for callers that want
// to register entries programmatically alongside (or instead of) a user
// syntax file.
func (w *Workspace) SyntaxSet() *syntax.Set { return w.syntax }

func (w *Workspace) canonicalize(path string) string {
	abs := path
	if !filepath.IsAbs(path) {
		abs = filepath.Join(w.root, path)
	}
	return filepath.Clean(abs)
}

// AddBuffer takes ownership of an already-constructed buffer, assigning it
// an id. If the buffer has a path that collides with one already owned by
// the Workspace, it returns ErrDuplicateBufferPath and does not take
// ownership. The first buffer added becomes current.
func (w *Workspace) AddBuffer(b *buffer.Buffer) (int, error) {
	canon := ""
	if path := b.Path(); path != "" {
		canon = w.canonicalize(path)
		if _, exists := w.byPath[canon]; exists {
			return 0, ErrDuplicateBufferPath
		}
	}

	id := w.nextID
	w.nextID++
	b.SetID(id)

	idx := len(w.buffers)
	w.buffers = append(w.buffers, b)
	if canon != "" {
		w.byPath[canon] = idx
	}
	if w.current < 0 {
		w.current = idx
	}
	w.logger.Debugf("added buffer id=%d path=%q", id, b.Path())
	return id, nil
}

// NewBuffer creates an empty buffer, adds it to the Workspace, and makes
// it current.
func (w *Workspace) NewBuffer(opts ...buffer.Option) *buffer.Buffer {
	b := buffer.New(opts...)
	idx := len(w.buffers)
	if _, err := w.AddBuffer(b); err == nil {
		w.current = idx
	}
	return b
}

// Open returns the buffer already open at path if one exists; otherwise it
// reads path from disk, resolves its syntax from the Workspace's
// syntax.Set, adds it, makes it current, and returns it.
func (w *Workspace) Open(path string, opts ...buffer.Option) (*buffer.Buffer, error) {
	canon := w.canonicalize(path)
	if idx, exists := w.byPath[canon]; exists {
		w.current = idx
		return w.buffers[idx], nil
	}

	opts = append(opts, buffer.WithPath(canon))
	b, err := buffer.Open(canon, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if d, ok := w.syntax.Resolve(canon); ok {
		b.SetSyntax(d)
	}

	idx := len(w.buffers)
	if _, err := w.AddBuffer(b); err != nil {
		return nil, err
	}
	w.current = idx
	return b, nil
}

// Buffers returns the owned buffers in insertion order. The returned slice
// is a copy; mutating it does not affect the Workspace.
func (w *Workspace) Buffers() []*buffer.Buffer {
	out := make([]*buffer.Buffer, len(w.buffers))
	copy(out, w.buffers)
	return out
}

// BufferCount returns the number of owned buffers.
func (w *Workspace) BufferCount() int { return len(w.buffers) }

// Current returns the current buffer, and false if the Workspace owns no
// buffers.
func (w *Workspace) Current() (*buffer.Buffer, bool) {
	if w.current < 0 {
		return nil, false
	}
	return w.buffers[w.current], true
}

// SetCurrentIndex sets the current buffer by its position in Buffers().
// Returns false, unchanged, if idx is out of range.
func (w *Workspace) SetCurrentIndex(idx int) bool {
	if idx < 0 || idx >= len(w.buffers) {
		return false
	}
	w.current = idx
	return true
}

// SetCurrent sets the current buffer by id. Returns false, unchanged, if
// no owned buffer has that id.
func (w *Workspace) SetCurrent(id int) bool {
	idx := w.indexOf(id)
	if idx < 0 {
		return false
	}
	w.current = idx
	return true
}

// BufferByID returns the owned buffer with the given id.
func (w *Workspace) BufferByID(id int) (*buffer.Buffer, bool) {
	idx := w.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return w.buffers[idx], true
}

func (w *Workspace) indexOf(id int) int {
	for i, b := range w.buffers {
		if bid, ok := b.ID(); ok && bid == id {
			return i
		}
	}
	return -1
}

// removeAt removes the buffer at idx and fixes up byPath indices. It does
// not adjust w.current; callers decide the new current buffer themselves.
func (w *Workspace) removeAt(idx int) {
	w.buffers = append(w.buffers[:idx], w.buffers[idx+1:]...)
	for p, i := range w.byPath {
		switch {
		case i == idx:
			delete(w.byPath, p)
		case i > idx:
			w.byPath[p] = i - 1
		}
	}
}

// CloseBuffer removes the buffer with the given id from the Workspace. If
// it was the current buffer, the next buffer (or, lacking one, the
// previous buffer) becomes current. Returns false if no owned buffer has
// that id.
func (w *Workspace) CloseBuffer(id int) bool {
	idx := w.indexOf(id)
	if idx < 0 {
		return false
	}
	w.removeAt(idx)

	switch {
	case len(w.buffers) == 0:
		w.current = -1
	case w.current > idx:
		w.current--
	case w.current == idx:
		if idx >= len(w.buffers) {
			w.current = len(w.buffers) - 1
		}
		// else w.current == idx already names the buffer that slid into
		// this slot.
	}

	w.logger.Debugf("closed buffer id=%d", id)
	return true
}

// CloseCurrentBuffer closes the current buffer. The new current becomes
// the previous buffer in insertion order, or, lacking one, the buffer that
// slid into its slot, or none if the Workspace is now empty. Returns
// false if there is no current buffer.
func (w *Workspace) CloseCurrentBuffer() bool {
	if w.current < 0 {
		return false
	}
	idx := w.current
	id, _ := w.buffers[idx].ID()
	w.removeAt(idx)

	switch {
	case len(w.buffers) == 0:
		w.current = -1
	case idx > 0:
		w.current = idx - 1
	default:
		w.current = 0
	}

	w.logger.Debugf("closed current buffer id=%d", id)
	return true
}

// SelectNext makes the next buffer, in insertion order and wrapping
// around past the last, the current buffer. Returns false if the
// Workspace owns no buffers.
func (w *Workspace) SelectNext() bool {
	if len(w.buffers) == 0 {
		return false
	}
	w.current = (w.current + 1) % len(w.buffers)
	return true
}

// SelectPrevious makes the previous buffer, wrapping around past the
// first, the current buffer. Returns false if the Workspace owns no
// buffers.
func (w *Workspace) SelectPrevious() bool {
	if len(w.buffers) == 0 {
		return false
	}
	w.current = (w.current - 1 + len(w.buffers)) % len(w.buffers)
	return true
}

// relativePath renders path relative to the Workspace root when possible,
// falling back to path as-is. ok is false only when path is empty.
func (w *Workspace) relativePath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if rel, err := filepath.Rel(w.root, path); err == nil {
		return rel, true
	}
	return path, true
}

// CurrentBufferPath returns the current buffer's path, relative to the
// Workspace root if possible. ok is false if there is no current buffer
// or it has no path.
func (w *Workspace) CurrentBufferPath() (string, bool) {
	b, ok := w.Current()
	if !ok {
		return "", false
	}
	return w.relativePath(b.Path())
}

// BufferPaths returns every owned buffer's path, in insertion order,
// relative to the Workspace root where possible. A buffer with no path
// contributes "".
func (w *Workspace) BufferPaths() []string {
	out := make([]string, len(w.buffers))
	for i, b := range w.buffers {
		if p, ok := w.relativePath(b.Path()); ok {
			out[i] = p
		}
	}
	return out
}

// CurrentBufferIndex returns the current buffer's position in Buffers().
// ok is false if the Workspace owns no buffers.
func (w *Workspace) CurrentBufferIndex() (int, bool) {
	if w.current < 0 {
		return 0, false
	}
	return w.current, true
}

// UpdateCurrentSyntax re-resolves the current buffer's syntax descriptor
// against the Workspace's syntax.Set, for use after its path changes via
// SetPath. Clears the descriptor if nothing matches. Returns false if
// there is no current buffer or it has no path.
func (w *Workspace) UpdateCurrentSyntax() bool {
	b, ok := w.Current()
	if !ok || b.Path() == "" {
		return false
	}
	if d, ok := w.syntax.Resolve(b.Path()); ok {
		b.SetSyntax(d)
	} else {
		b.ClearSyntax()
	}
	return true
}

// CurrentBufferTokens tokenizes the current buffer's text through lexer,
// using the Workspace's syntax.Set. Returns ErrNoCurrentBuffer if the
// Workspace owns no buffers.
func (w *Workspace) CurrentBufferTokens(lexer syntax.Lexer) (*syntax.TokenStream, error) {
	b, ok := w.Current()
	if !ok {
		return nil, ErrNoCurrentBuffer
	}
	return b.Tokenize(lexer, w.syntax)
}
