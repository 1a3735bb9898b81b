package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickMovesCursor(t *testing.T) {
	m := New(Config{
		Text:         "hello\nworld",
		ShowLineNums: true,
	})
	m = m.SetSize(20, 2)

	// Gutter is "1 " (2 cells); cell 5 on row 1 is column 3 of "world".
	m, _ = m.Update(leftClick(5, 1))
	if got := m.buf.Cursor(); got != 9 {
		t.Fatalf("cursor after click: got %d, want %d", got, 9)
	}

	// Clicks past the text clamp to the line end.
	m, _ = m.Update(leftClick(19, 0))
	if got := m.buf.Cursor(); got != 5 {
		t.Fatalf("cursor after click past EOL: got %d, want %d", got, 5)
	}

	// Gutter clicks land on the line start.
	m, _ = m.Update(leftClick(0, 1))
	if got := m.buf.Cursor(); got != 6 {
		t.Fatalf("cursor after gutter click: got %d, want %d", got, 6)
	}
}

func TestMouse_ClickOutsideViewportIgnored(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.SetSize(10, 1)

	m, _ = m.Update(leftClick(3, 5))
	if got := m.buf.Cursor(); got != 0 {
		t.Fatalf("cursor after out-of-bounds click: got %d, want %d", got, 0)
	}
}

func TestColForCell_CoversTabsAndWideClusters(t *testing.T) {
	// Cells: a=[0,1) tab=[1,4) 界=[4,6) x=[6,7).
	line := "a\t界x"

	cases := []struct{ cell, want int }{
		{cell: 0, want: 0},
		{cell: 2, want: 1},
		{cell: 5, want: 2},
		{cell: 6, want: 3},
		{cell: 9, want: 4},
	}
	for _, tc := range cases {
		if got := colForCell(line, tc.cell, 4); got != tc.want {
			t.Fatalf("col for cell %d: got %d, want %d", tc.cell, got, tc.want)
		}
	}
}
