package buffer

import (
	"fmt"
	"testing"
)

func BenchmarkInsertAtCursor(b *testing.B) {
	buf := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Insert(i)
	}
}

func BenchmarkInsertAfterRewind(b *testing.B) {
	// Worst case for a fresh cursor position: every insert happens at the
	// front, so each SetPosition drags the gap across the whole buffer.
	buf := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.SetPosition(0)
		buf.Insert(i)
		buf.SetPosition(buf.Len())
	}
}

func BenchmarkSetPositionPingPong(b *testing.B) {
	for _, size := range []int{1 << 10, 1 << 16} {
		b.Run(fmt.Sprintf("len=%d", size), func(b *testing.B) {
			buf := WithCapacity[int](size)
			for i := 0; i < size; i++ {
				buf.Insert(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%2 == 0 {
					buf.SetPosition(0)
				} else {
					buf.SetPosition(buf.Len())
				}
			}
		})
	}
}

func BenchmarkSetPositionNeighbor(b *testing.B) {
	buf := WithCapacity[int](1 << 16)
	for i := 0; i < 1<<16; i++ {
		buf.Insert(i)
	}
	mid := buf.Len() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.SetPosition(mid + i%2)
	}
}
