package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapvec/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(normalizeNewlines(string(msg.Runes)))
		}
		m.syncFromBuffer()
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.moveLeft()
	case key.Matches(msg, km.Right):
		m.moveRight()
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)

	case key.Matches(msg, km.WordLeft):
		m.moveWordLeft()
	case key.Matches(msg, km.WordRight):
		m.moveWordRight()

	case key.Matches(msg, km.Home):
		m.moveLineStart()
	case key.Matches(msg, km.End):
		m.moveLineEnd()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.deleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
			m.rememberCol()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.buf.InsertRune('\t')
				m.rememberCol()
			}
			break
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insertText(string(msg.Runes))
			}
		}
	}

	m.syncFromBuffer()
	return m, nil
}

func (m *Model) insertText(s string) {
	m.buf.InsertText(s)
	m.rememberCol()
}

// rememberCol records the cursor's grapheme column as the target for
// vertical movement.
func (m *Model) rememberCol() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	m.desiredCol = grapheme.ClusterCol(docLines(text)[row], col)
}

func (m *Model) moveLeft() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	if col > 0 {
		line := docLines(text)[row]
		prev := grapheme.PrevBoundary(line, col)
		m.buf.SetCursor(m.buf.Cursor() - (col - prev))
	} else if row > 0 {
		// Across the newline onto the previous line's end.
		m.buf.SetCursor(m.buf.Cursor() - 1)
	}
	m.rememberCol()
}

func (m *Model) moveRight() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	lines := docLines(text)
	line := lines[row]
	if col < lineRuneLen(line) {
		next := grapheme.NextBoundary(line, col)
		m.buf.SetCursor(m.buf.Cursor() + (next - col))
	} else if row < len(lines)-1 {
		m.buf.SetCursor(m.buf.Cursor() + 1)
	}
	m.rememberCol()
}

// moveVertical moves the cursor dy rows, landing on the remembered column
// where the target line is long enough.
func (m *Model) moveVertical(dy int) {
	text := m.buf.Text()
	row, _ := cursorRowCol(text, m.buf.Cursor())
	lines := docLines(text)

	target := row + dy
	if target < 0 || target > len(lines)-1 {
		return
	}
	col := grapheme.RuneOffset(lines[target], m.desiredCol)
	m.buf.SetCursor(offsetAt(text, target, col))
}

func (m *Model) moveWordLeft() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	if col == 0 {
		if row > 0 {
			m.buf.SetCursor(m.buf.Cursor() - 1)
			m.rememberCol()
		}
		return
	}

	line := docLines(text)[row]
	clusters := grapheme.Split(line)
	i := grapheme.ClusterCol(line, col)
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	m.buf.SetCursor(m.buf.Cursor() - (col - grapheme.RuneOffset(line, i)))
	m.rememberCol()
}

func (m *Model) moveWordRight() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	lines := docLines(text)
	line := lines[row]
	if col == lineRuneLen(line) {
		if row < len(lines)-1 {
			m.buf.SetCursor(m.buf.Cursor() + 1)
			m.rememberCol()
		}
		return
	}

	clusters := grapheme.Split(line)
	i := grapheme.ClusterCol(line, col)
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	m.buf.SetCursor(m.buf.Cursor() + (grapheme.RuneOffset(line, i) - col))
	m.rememberCol()
}

func (m *Model) moveLineStart() {
	_, col := cursorRowCol(m.buf.Text(), m.buf.Cursor())
	m.buf.SetCursor(m.buf.Cursor() - col)
	m.rememberCol()
}

func (m *Model) moveLineEnd() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	line := docLines(text)[row]
	m.buf.SetCursor(m.buf.Cursor() + (lineRuneLen(line) - col))
	m.rememberCol()
}

// deleteBackward removes the grapheme cluster before the cursor, or the
// newline when the cursor sits at a line start.
func (m *Model) deleteBackward() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	if col == 0 {
		m.buf.DeleteBackward()
	} else {
		line := docLines(text)[row]
		n := col - grapheme.PrevBoundary(line, col)
		for i := 0; i < n; i++ {
			m.buf.DeleteBackward()
		}
	}
	m.rememberCol()
}

// deleteForward removes the grapheme cluster after the cursor, or the newline
// when the cursor sits at a line end.
func (m *Model) deleteForward() {
	text := m.buf.Text()
	row, col := cursorRowCol(text, m.buf.Cursor())
	line := docLines(text)[row]
	if col == lineRuneLen(line) {
		m.buf.DeleteForward()
	} else {
		n := grapheme.NextBoundary(line, col) - col
		for i := 0; i < n; i++ {
			m.buf.DeleteForward()
		}
	}
	m.rememberCol()
}

func lineRuneLen(line string) int {
	n := 0
	for range line {
		n++
	}
	return n
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
