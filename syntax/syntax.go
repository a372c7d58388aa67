package syntax

import (
	"path/filepath"
	"strings"

	"github.com/textkit/editorcore/position"
)

// Descriptor names a registered syntax, e.g. "go" or "makefile".
type Descriptor struct {
	Name string
}

// Entry is one registration in a Set: a Descriptor plus the file names and
// extensions that resolve to it.
type Entry struct {
	Descriptor Descriptor
	FileNames  []string
	Extensions []string
}

// Set is a registry mapping file names and extensions to syntax
// Descriptors. The zero Set is empty and ready to use.
type Set struct {
	byName      map[string]Descriptor
	byExtension map[string]Descriptor
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		byName:      make(map[string]Descriptor),
		byExtension: make(map[string]Descriptor),
	}
}

// Register adds entry to the set, overwriting any existing registration for
// the same file names or extensions.
func (s *Set) Register(entry Entry) {
	if s.byName == nil {
		s.byName = make(map[string]Descriptor)
	}
	if s.byExtension == nil {
		s.byExtension = make(map[string]Descriptor)
	}
	for _, name := range entry.FileNames {
		s.byName[name] = entry.Descriptor
	}
	for _, ext := range entry.Extensions {
		s.byExtension[strings.TrimPrefix(ext, ".")] = entry.Descriptor
	}
}

// Resolve determines the syntax for path by file-name match first, then by
// extension. It reports false if nothing matches.
func (s *Set) Resolve(path string) (Descriptor, bool) {
	base := filepath.Base(path)
	if d, ok := s.byName[base]; ok {
		return d, true
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext != "" {
		if d, ok := s.byExtension[ext]; ok {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Token is one lexical token, scoped by a stack of scope names (innermost
// last) and positioned by grapheme-cluster offset.
type Token struct {
	ScopeStack []string
	Range      position.Range
}

// TokenStream is a pull-style iterator over a lexer's output. If the lexer
// fails partway through, iteration stops and Err returns the failure; it
// is never reported per-token.
type TokenStream struct {
	tokens []Token
	i      int
	err    error
}

// NewTokenStream wraps a complete, already-produced token slice. There is
// no constructor for a stream whose tokens are produced incrementally.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// NewFailedTokenStream returns a TokenStream whose first Next() call
// reports false, with err available from Err.
func NewFailedTokenStream(err error) *TokenStream {
	return &TokenStream{err: err}
}

// Next advances the stream and returns the next token, or false if
// iteration is complete (check Err to distinguish exhaustion from
// failure).
func (s *TokenStream) Next() (Token, bool) {
	if s.err != nil || s.i >= len(s.tokens) {
		return Token{}, false
	}
	t := s.tokens[s.i]
	s.i++
	return t, true
}

// Err returns the error that halted iteration, if any.
func (s *TokenStream) Err() error { return s.err }

// Lexer is implemented by the host application, never by this module. Given
// a document's text, the syntax it was resolved to, and the full Set (so a
// lexer can resolve embedded languages), it returns a TokenStream.
type Lexer interface {
	Tokenize(text string, descriptor Descriptor, set *Set) (*TokenStream, error)
}
