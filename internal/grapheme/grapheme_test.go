package grapheme

import "testing"

const family = "👨‍👩‍👧‍👦" // 7 runes, one cluster

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if !IsSpace(" ") {
		t.Fatalf("space should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}

// Cluster rune spans in the fixture: a=[0,1), e+accent=[1,3), family=[3,10),
// b=[10,11).
func TestBoundaries(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"

	cases := []struct {
		pos      int
		wantPrev int
		wantNext int
		wantCol  int
	}{
		{pos: 0, wantPrev: 0, wantNext: 1, wantCol: 0},
		{pos: 1, wantPrev: 0, wantNext: 3, wantCol: 1},
		{pos: 2, wantPrev: 1, wantNext: 3, wantCol: 1}, // inside the accent cluster
		{pos: 3, wantPrev: 1, wantNext: 10, wantCol: 2},
		{pos: 10, wantPrev: 3, wantNext: 11, wantCol: 3},
		{pos: 11, wantPrev: 10, wantNext: 11, wantCol: 4},
	}
	for _, tc := range cases {
		if got := PrevBoundary(text, tc.pos); got != tc.wantPrev {
			t.Fatalf("PrevBoundary(%d)=%d, want %d", tc.pos, got, tc.wantPrev)
		}
		if got := NextBoundary(text, tc.pos); got != tc.wantNext {
			t.Fatalf("NextBoundary(%d)=%d, want %d", tc.pos, got, tc.wantNext)
		}
		if got := ClusterCol(text, tc.pos); got != tc.wantCol {
			t.Fatalf("ClusterCol(%d)=%d, want %d", tc.pos, got, tc.wantCol)
		}
	}
}

func TestRuneOffset_InvertsClusterCol(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"

	for col, want := range []int{0, 1, 3, 10, 11} {
		if got := RuneOffset(text, col); got != want {
			t.Fatalf("RuneOffset(%d)=%d, want %d", col, got, want)
		}
	}
	if got := RuneOffset(text, 99); got != 11 {
		t.Fatalf("RuneOffset(99)=%d, want 11 (clamped)", got)
	}
	if got := RuneOffset("", 3); got != 0 {
		t.Fatalf("RuneOffset on empty=%d, want 0", got)
	}
}
