// Package search implements literal substring search over a document
// source, reporting matches as grapheme-based position.Range values rather
// than byte offsets.
package search
