package buffer

import (
	"slices"
	"testing"
)

// FuzzBuffer_MatchesSliceModel drives a Buffer and a plain-slice model with
// the same decoded operation sequence and requires identical observable state
// after every step, plus the gap invariants white-box.
func FuzzBuffer_MatchesSliceModel(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("insert-rewind-remove"),
		{9, 0, 7, 3, 0, 4, 0, 9},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		r := fuzzByteReader{data: data}
		b := New[int]()
		var m sliceModel

		steps := 1 + r.nextInt(150)
		prevCap := b.Cap()
		for step := 0; step < steps; step++ {
			switch r.nextByte() % 6 {
			case 0, 1, 2:
				v := int(r.nextByte())
				b.Insert(v)
				m.insert(v)
			case 3:
				pos := r.nextInt(b.Len() + 1)
				b.SetPosition(pos)
				m.pos = pos
			case 4:
				got, gotOK := b.Remove()
				want, wantOK := m.remove()
				if gotOK != wantOK || got != want {
					t.Fatalf("step %d: Remove()=%v,%v, model %v,%v", step, got, gotOK, want, wantOK)
				}
			case 5:
				vs := make([]int, r.nextInt(5))
				for i := range vs {
					vs[i] = int(r.nextByte())
				}
				b.InsertSlice(vs)
				for _, v := range vs {
					m.insert(v)
				}
			}

			if b.Cap() < prevCap {
				t.Fatalf("step %d: cap shrank from %d to %d", step, prevCap, b.Cap())
			}
			prevCap = b.Cap()
			assertMatchesModel(t, step, b, &m)

			idx := r.nextInt(b.Len()+2) - 1
			got, gotOK := b.Get(idx)
			if wantOK := idx >= 0 && idx < len(m.elems); gotOK != wantOK {
				t.Fatalf("step %d: Get(%d) ok=%v, model ok=%v", step, idx, gotOK, wantOK)
			} else if wantOK && got != m.elems[idx] {
				t.Fatalf("step %d: Get(%d)=%d, model %d", step, idx, got, m.elems[idx])
			}
		}
	})
}

// sliceModel is the obviously-correct reference: a slice plus a cursor, with
// inserts and removes done by element shifting.
type sliceModel struct {
	elems []int
	pos   int
}

func (m *sliceModel) insert(v int) {
	m.elems = slices.Insert(m.elems, m.pos, v)
	m.pos++
}

func (m *sliceModel) remove() (int, bool) {
	if m.pos == len(m.elems) {
		return 0, false
	}
	v := m.elems[m.pos]
	m.elems = slices.Delete(m.elems, m.pos, m.pos+1)
	return v, true
}

func assertMatchesModel(t *testing.T, step int, b *Buffer[int], m *sliceModel) {
	t.Helper()

	if b.gapStart < 0 || b.gapStart > b.gapEnd || b.gapEnd > b.raw.cap() {
		t.Fatalf("step %d: gap [%d,%d) outside block of %d slots", step, b.gapStart, b.gapEnd, b.raw.cap())
	}
	if got, want := b.Len(), len(m.elems); got != want {
		t.Fatalf("step %d: len=%d, model %d", step, got, want)
	}
	if got, want := b.Position(), m.pos; got != want {
		t.Fatalf("step %d: position=%d, model %d", step, got, want)
	}
	if got := b.Elems(); !slices.Equal(got, m.elems) {
		t.Fatalf("step %d: elems=%v, model %v", step, got, m.elems)
	}
}

type fuzzByteReader struct {
	data []byte
	idx  int
}

func (r *fuzzByteReader) nextByte() byte {
	if len(r.data) == 0 {
		return 0
	}
	b := r.data[r.idx%len(r.data)]
	r.idx++
	return b
}

func (r *fuzzByteReader) nextInt(max int) int {
	if max <= 0 {
		return 0
	}
	return int(r.nextByte()) % max
}
