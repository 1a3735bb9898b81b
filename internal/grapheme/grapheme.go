package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
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
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// PrevBoundary returns the rune offset of the cluster boundary closest before
// pos. Offsets are in runes; pos at or below 0 maps to 0.
//
// Cursor offsets normally sit on boundaries already; a pos inside a cluster
// resolves to that cluster's start.
func PrevBoundary(text string, pos int) int {
	off := 0
	for _, c := range Split(text) {
		n := utf8.RuneCountInString(c)
		if off+n >= pos {
			return off
		}
		off += n
	}
	return off
}

// NextBoundary returns the rune offset of the cluster boundary closest after
// pos, clamped to the total rune count.
func NextBoundary(text string, pos int) int {
	off := 0
	for _, c := range Split(text) {
		n := utf8.RuneCountInString(c)
		if off+n > pos {
			return off + n
		}
		off += n
	}
	return off
}

// ClusterCol returns the number of whole clusters before the rune offset pos:
// the cursor column in clusters when pos is a boundary.
func ClusterCol(text string, pos int) int {
	col := 0
	off := 0
	for _, c := range Split(text) {
		off += utf8.RuneCountInString(c)
		if off > pos {
			break
		}
		col++
	}
	return col
}

// RuneOffset returns the rune offset after col clusters, clamped to the text.
// It is the inverse of ClusterCol for boundary offsets.
func RuneOffset(text string, col int) int {
	off := 0
	for i, c := range Split(text) {
		if i >= col {
			break
		}
		off += utf8.RuneCountInString(c)
	}
	return off
}
