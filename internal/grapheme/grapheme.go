// Package grapheme centralizes grapheme-cluster iteration so the rest of the
// editor core never has to reason about combining marks, ZWJ sequences, or
// other Unicode segmentation detail directly.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split breaks text into its grapheme clusters, in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n++
	}
	return n
}

// ByteOffset returns the byte offset of the start of the clusterIndex'th
// grapheme cluster in text. If clusterIndex >= Count(text), it returns
// len(text).
func ByteOffset(text string, clusterIndex int) int {
	if clusterIndex <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	i := 0
	for g.Next() {
		if i == clusterIndex {
			from, _ := g.Positions()
			return from
		}
		i++
	}
	return len(text)
}

// Slice returns the substring of text spanning grapheme clusters
// [start, end). Out-of-range indices are clamped.
func Slice(text string, start, end int) string {
	if end < start {
		end = start
	}
	from := ByteOffset(text, start)
	to := ByteOffset(text, end)
	return text[from:to]
}

// Join concatenates clusters back into a single string.
func Join(clusters []string) string {
	var b strings.Builder
	for _, c := range clusters {
		b.WriteString(c)
	}
	return b.String()
}

// IsSpace reports whether every rune in cluster is a Unicode space.
func IsSpace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return cluster != ""
}
