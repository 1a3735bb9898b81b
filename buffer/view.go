package buffer

import (
	"fmt"
	"iter"
)

// All returns an iterator over (index, element) pairs in logical order. Each
// ranging restarts at index 0. The buffer must not be mutated while ranging.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.Len(); i++ {
			if !yield(i, b.raw.at(b.rawIndex(i))) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in logical order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.Len(); i++ {
			if !yield(b.raw.at(b.rawIndex(i))) {
				return
			}
		}
	}
}

// AppendTo appends the elements in logical order to dst and returns the
// extended slice.
func (b *Buffer[T]) AppendTo(dst []T) []T {
	dst = append(dst, b.raw.view(0, b.gapStart)...)
	return append(dst, b.raw.view(b.gapEnd, b.raw.cap())...)
}

// Elems returns the elements in logical order as a new slice, or nil when the
// buffer is empty.
func (b *Buffer[T]) Elems() []T {
	if b.Len() == 0 {
		return nil
	}
	return b.AppendTo(make([]T, 0, b.Len()))
}

// Slice returns the elements as one slice sharing the backing block, without
// copying. The elements are only laid out contiguously once the gap sits at
// the tail, so the caller must move the cursor to Len() first; Slice panics
// when it is anywhere else. Writes through the slice write through to the
// buffer; any buffer mutation invalidates it.
func (b *Buffer[T]) Slice() []T {
	if b.gapEnd != b.raw.cap() {
		panic("buffer: Slice needs the cursor at Len(); call SetPosition(Len()) first")
	}
	return b.raw.view(0, b.gapStart)
}

// String renders the elements in logical order for diagnostics.
func (b *Buffer[T]) String() string {
	return fmt.Sprint(b.Elems())
}
