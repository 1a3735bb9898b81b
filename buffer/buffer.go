package buffer

import (
	"fmt"
	"iter"
)

// Buffer is a gap buffer over elements of type T.
//
// The backing block holds the elements in two contiguous runs separated by a
// gap of free slots at the cursor, so editing at the cursor never shifts the
// rest of the sequence. The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	raw      block[T]
	gapStart int // first gap slot; equals the cursor
	gapEnd   int // one past the last gap slot
}

// New returns an empty buffer. No backing block is allocated until the first
// insert.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// WithCapacity returns an empty buffer whose backing block holds n elements
// before the first growth. It panics when n is negative.
func WithCapacity[T any](n int) *Buffer[T] {
	if n < 0 {
		panic("buffer: WithCapacity: negative capacity")
	}
	return &Buffer[T]{raw: alloc[T](n), gapStart: 0, gapEnd: n}
}

// Cap returns the slot count of the backing block.
func (b *Buffer[T]) Cap() int { return b.raw.cap() }

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return b.raw.cap() - b.gapLen() }

// Position returns the cursor: the logical index the next Insert writes at
// and Remove removes at.
func (b *Buffer[T]) Position() int { return b.gapStart }

func (b *Buffer[T]) gapLen() int { return b.gapEnd - b.gapStart }

// rawIndex translates logical index i to its slot index. Logical order is raw
// order with the gap skipped.
func (b *Buffer[T]) rawIndex(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + b.gapLen()
}

// Get returns the element at logical index i, or the zero value and false
// when i is out of range.
func (b *Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= b.Len() {
		var zero T
		return zero, false
	}
	return b.raw.at(b.rawIndex(i)), true
}

// SetPosition moves the cursor to pos. The elements between the old and new
// position slide across the gap, costing one slot move each; nothing else is
// touched. It panics when pos is outside [0, Len()].
func (b *Buffer[T]) SetPosition(pos int) {
	if pos < 0 || pos > b.Len() {
		panic(fmt.Sprintf("buffer: SetPosition(%d) out of range [0, %d]", pos, b.Len()))
	}
	if pos == b.gapStart {
		return
	}
	gap := b.gapLen()
	if pos < b.gapStart {
		// Elements [pos, gapStart) move to the far side of the gap.
		b.raw.shift(b.gapEnd-(b.gapStart-pos), pos, b.gapStart-pos)
	} else {
		// Elements [gapEnd, gapEnd+distance) move onto the old gap.
		b.raw.shift(b.gapStart, b.gapEnd, pos-b.gapStart)
	}
	b.gapStart = pos
	b.gapEnd = pos + gap
}

// Insert writes v at the cursor and advances the cursor past it. Amortized
// O(1); the backing block doubles when the gap is used up.
func (b *Buffer[T]) Insert(v T) {
	if b.gapStart == b.gapEnd {
		b.grow()
	}
	b.raw.put(b.gapStart, v)
	b.gapStart++
}

// InsertSlice inserts the elements of vs at the cursor, preserving their
// order.
func (b *Buffer[T]) InsertSlice(vs []T) {
	for _, v := range vs {
		b.Insert(v)
	}
}

// InsertSeq inserts the elements produced by seq at the cursor, preserving
// their order.
func (b *Buffer[T]) InsertSeq(seq iter.Seq[T]) {
	for v := range seq {
		b.Insert(v)
	}
}

// Remove takes the element just after the cursor out of the buffer and
// returns it. The second return is false when the cursor is at the end.
// The cursor does not move.
func (b *Buffer[T]) Remove() (T, bool) {
	if b.gapEnd == b.raw.cap() {
		var zero T
		return zero, false
	}
	v := b.raw.take(b.gapEnd)
	b.gapEnd++
	return v, true
}

// Reset removes every element, zeroing the slots that held them, and keeps
// the backing block. The cursor returns to 0.
func (b *Buffer[T]) Reset() {
	b.raw.clearRange(0, b.gapStart)
	b.raw.clearRange(b.gapEnd, b.raw.cap())
	b.gapStart = 0
	b.gapEnd = b.raw.cap()
}

// grow doubles the backing block. The prefix keeps its offsets, the suffix
// moves to the new tail, and the widened gap stays at the cursor. The new
// block is fully built before it replaces the old one, so a failed allocation
// leaves the buffer as it was.
func (b *Buffer[T]) grow() {
	newCap := b.raw.cap() * 2
	if newCap == 0 {
		newCap = 4
	}
	if newCap < 0 {
		panic("buffer: capacity overflow")
	}
	next := alloc[T](newCap)
	tail := b.raw.cap() - b.gapEnd
	b.raw.copyTo(&next, 0, b.gapStart, 0)
	b.raw.copyTo(&next, b.gapEnd, b.raw.cap(), newCap-tail)
	b.raw = next
	b.gapEnd = newCap - tail
}
