// Package textbuf implements a plain-text document as a rune gap buffer.
//
// The cursor is a rune offset into the text. Editing happens at the cursor;
// rows and columns are a presentation concern left to callers.
package textbuf

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/gapvec/buffer"
)

// Buffer is a text document with a cursor. The zero value is unusable;
// construct with New.
type Buffer struct {
	runes   *buffer.Buffer[rune]
	version uint64
}

// New returns a document seeded with text, cursor at the end of it.
func New(text string) *Buffer {
	runes := buffer.WithCapacity[rune](utf8.RuneCountInString(text))
	runes.InsertSeq(runesOf(text))
	return &Buffer{runes: runes}
}

// Text returns the document contents.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sb.Grow(b.runes.Len())
	for r := range b.runes.Values() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Len returns the document length in runes.
func (b *Buffer) Len() int { return b.runes.Len() }

// Cursor returns the cursor as a rune offset in [0, Len()].
func (b *Buffer) Cursor() int { return b.runes.Position() }

// Version returns the mutation counter. It increments once per effective
// change, including cursor moves, so hosts can cheaply detect staleness.
func (b *Buffer) Version() uint64 { return b.version }

// SetCursor moves the cursor to pos, clamped into [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > b.runes.Len() {
		pos = b.runes.Len()
	}
	if pos == b.runes.Position() {
		return
	}
	b.runes.SetPosition(pos)
	b.version++
}

// InsertRune inserts r at the cursor and advances past it.
func (b *Buffer) InsertRune(r rune) {
	b.runes.Insert(r)
	b.version++
}

// InsertText inserts s at the cursor and advances past it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.runes.InsertSeq(runesOf(s))
	b.version++
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertRune('\n')
}

// DeleteForward removes the rune after the cursor. It reports whether there
// was one; the cursor does not move.
func (b *Buffer) DeleteForward() bool {
	if _, ok := b.runes.Remove(); !ok {
		return false
	}
	b.version++
	return true
}

// DeleteBackward removes the rune before the cursor, stepping the cursor back
// over it first. It reports whether there was one.
func (b *Buffer) DeleteBackward() bool {
	pos := b.runes.Position()
	if pos == 0 {
		return false
	}
	b.runes.SetPosition(pos - 1)
	b.runes.Remove()
	b.version++
	return true
}

// Rune returns the rune at offset i, or false when i is out of range. The
// cursor does not move.
func (b *Buffer) Rune(i int) (rune, bool) {
	return b.runes.Get(i)
}

// runesOf returns an iterator over the runes of s.
func runesOf(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
