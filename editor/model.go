package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapvec/textbuf"
)

// Model is a Bubble Tea component that renders and edits a text buffer.
type Model struct {
	cfg Config
	buf *textbuf.Buffer

	focused bool

	viewport viewport.Model

	// xOffset is the horizontal scroll in cells; lines render clipped to
	// [xOffset, xOffset+contentWidth).
	xOffset int

	// desiredCol keeps the cursor column steady across shorter lines during
	// vertical movement, in grapheme columns.
	desiredCol int

	lastVersion uint64
}

func New(cfg Config) Model {
	if !hasBindings(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      textbuf.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.buf.SetCursor(0)
	m.lastVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

// Buffer exposes the underlying document so hosts can drive edits directly.
func (m Model) Buffer() *textbuf.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursorX()
	m.rebuildContent()
	m.followCursorY()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursorY()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Hosts may drive edits by mutating the buffer between messages.
		m.syncFromBuffer()
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer refreshes content, scroll, and change events after the
// buffer may have changed. It reports whether anything had.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver

	m.followCursorX()
	m.rebuildContent()
	m.followCursorY()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursorY scrolls the viewport so the cursor row is visible.
func (m *Model) followCursorY() {
	if m.buf == nil {
		return
	}
	row, _ := cursorRowCol(m.buf.Text(), m.buf.Cursor())
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// followCursorX shifts the horizontal clip window so the cursor cell is
// visible. Runs before rebuildContent, which bakes xOffset into the render.
func (m *Model) followCursorX() {
	if m.buf == nil {
		return
	}
	text := m.buf.Text()
	lines := docLines(text)
	w := m.contentWidth(len(lines))
	if w <= 0 {
		m.xOffset = 0
		return
	}

	row, col := cursorRowCol(text, m.buf.Cursor())
	line := lines[row]
	cell := lineCellsTo(line, col, m.tabWidth())
	cw := cellWidthAt(line, col, m.tabWidth())

	if cell < m.xOffset {
		m.xOffset = cell
	} else if cell+cw > m.xOffset+w {
		m.xOffset = cell + cw - w
	}
	if m.xOffset < 0 {
		m.xOffset = 0
	}
}

// contentWidth is the cell budget for line text after frame and gutter.
func (m *Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if m.cfg.ShowLineNums {
		w -= gutterDigits(lineCount) + 1
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (m *Model) tabWidth() int {
	if m.cfg.TabWidth <= 0 {
		return 4
	}
	return m.cfg.TabWidth
}
