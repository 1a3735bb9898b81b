package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal cell offset of the clip window.
	LeftCellOffset int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}

	left := 0
	if m.xOffset > 0 {
		left = m.xOffset
	}

	return ViewportState{
		TopRow:         top,
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: left,
	}
}

// ScreenToDoc maps viewport-local screen coordinates to a cursor offset.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToDoc(x, y int) int {
	if m.buf == nil {
		return 0
	}
	return m.screenToCursor(x, y)
}

// DocToScreen maps a cursor offset to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(cursor int) (x int, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}

	text := m.buf.Text()
	lines := docLines(text)
	row, col := cursorRowCol(text, clampInt(cursor, 0, m.buf.Len()))

	gw := 0
	if m.cfg.ShowLineNums {
		gw = gutterDigits(len(lines)) + 1
	}

	y = row - m.viewport.YOffset
	x = gw + lineCellsTo(lines[row], col, m.tabWidth()) - m.xOffset

	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < gw || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
