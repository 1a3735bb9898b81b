package buffer

// block is the raw slot storage behind a Buffer. Every slot access goes
// through its methods; the gap logic above never indexes the slice itself.
//
// A slot holds either a live element or the zero value. Methods that vacate
// slots (take, shift, clearRange) zero them, so the block never keeps a stale
// copy of a moved element alive.
type block[T any] struct {
	slots []T
}

// alloc returns a block of n zeroed slots. alloc(0) does not allocate.
func alloc[T any](n int) block[T] {
	if n == 0 {
		return block[T]{}
	}
	return block[T]{slots: make([]T, n)}
}

func (bl *block[T]) cap() int { return len(bl.slots) }

// at reads the slot at i, leaving it in place.
func (bl *block[T]) at(i int) T { return bl.slots[i] }

// put moves v into the slot at i.
func (bl *block[T]) put(i int, v T) { bl.slots[i] = v }

// take moves the value out of slot i. The slot is left zeroed.
func (bl *block[T]) take(i int) T {
	v := bl.slots[i]
	var zero T
	bl.slots[i] = zero
	return v
}

// shift moves the n slots starting at src to dst and zeroes whatever part of
// the source span the destination does not re-cover. The spans may overlap.
func (bl *block[T]) shift(dst, src, n int) {
	if n == 0 || dst == src {
		return
	}
	copy(bl.slots[dst:dst+n], bl.slots[src:src+n])
	if dst < src {
		lo := dst + n
		if lo < src {
			lo = src
		}
		bl.clearRange(lo, src+n)
		return
	}
	hi := dst
	if hi > src+n {
		hi = src + n
	}
	bl.clearRange(src, hi)
}

// copyTo copies slots [i, j) into dst starting at slot at. dst must be a
// different block.
func (bl *block[T]) copyTo(dst *block[T], i, j, at int) {
	copy(dst.slots[at:at+(j-i)], bl.slots[i:j])
}

// clearRange zeroes slots [i, j).
func (bl *block[T]) clearRange(i, j int) {
	clear(bl.slots[i:j])
}

// view returns slots [i, j) as a slice sharing the block's memory.
func (bl *block[T]) view(i, j int) []T {
	return bl.slots[i:j]
}
