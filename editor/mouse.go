package editor

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapvec/internal/grapheme"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused || m.buf == nil {
		m.syncFromBuffer()
		return m, cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.mouseInBounds(msg.X, msg.Y) {
		m.buf.SetCursor(m.screenToCursor(msg.X, msg.Y))
		m.rememberCol()
	}

	m.syncFromBuffer()
	return m, cmd
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

// screenToCursor maps viewport-local cell coordinates to a rune offset.
// (0,0) is the top-left of the visible content region; gutter clicks land on
// the line start.
func (m Model) screenToCursor(x, y int) int {
	text := m.buf.Text()
	lines := docLines(text)

	row := clampInt(m.viewport.YOffset+y, 0, len(lines)-1)
	line := lines[row]

	if x < 0 {
		x = 0
	}
	gw := 0
	if m.cfg.ShowLineNums {
		gw = gutterDigits(len(lines)) + 1
	}
	if x < gw {
		return offsetAt(text, row, 0)
	}

	col := colForCell(line, x-gw+m.xOffset, m.tabWidth())
	return offsetAt(text, row, col)
}

// colForCell is the rune column of the cluster covering the given cell, or
// the line length when the cell lies past the text.
func colForCell(line string, cell, tabWidth int) int {
	cells := 0
	off := 0
	for _, c := range grapheme.Split(line) {
		w := graphemeCellWidth(c, cells, tabWidth)
		if cell < cells+w {
			return off
		}
		cells += w
		off += utf8.RuneCountInString(c)
	}
	return off
}
