package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/gapvec/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	text := m.buf.Text()
	lines := docLines(text)
	row, col := cursorRowCol(text, m.buf.Cursor())

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	maxIntVal := int(^uint(0) >> 1)
	contentWidth := m.contentWidth(len(lines))
	left := maxInt(m.xOffset, 0)
	right := maxIntVal
	if contentWidth > 0 {
		right = left + contentWidth
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && i == row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, i+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		cursorCol := -1
		if m.focused && i == row {
			cursorCol = col
		}
		sb.WriteString(m.renderLine(line, cursorCol, left, right))

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders one document line clipped to the cell span [left, right).
// cursorCol is the cursor's rune column on this line, or -1 when the cursor
// is elsewhere.
func (m *Model) renderLine(line string, cursorCol, left, right int) string {
	st := m.cfg.Style
	tabWidth := m.tabWidth()

	left = maxInt(left, 0)
	if right < left {
		right = left
	}

	renderSpan := func(styleFn func(...string) string, text string, tokWidth, spanStart, spanWidth int, splittable bool) string {
		if spanWidth <= 0 {
			return ""
		}
		if spanStart == 0 && spanWidth == tokWidth {
			return styleFn(text)
		}
		if splittable {
			return styleFn(strings.Repeat(" ", spanWidth))
		}
		// Partial wide grapheme: preserve alignment with blanks.
		return st.Text.Render(strings.Repeat(" ", spanWidth))
	}

	var sb strings.Builder
	clusters := grapheme.Split(line)
	cells := 0
	runeOff := 0
	for i, c := range clusters {
		w := graphemeCellWidth(c, cells, tabWidth)
		n := utf8.RuneCountInString(c)
		segL := cells
		segR := cells + w
		cells += w

		underCursor := cursorCol >= runeOff && cursorCol < runeOff+n
		runeOff += n

		spanL := maxInt(segL, left)
		spanR := minInt(segR, right)
		if spanL >= spanR {
			continue
		}

		text := c
		if c == "\t" {
			text = strings.Repeat(" ", w)
		}
		splittable := isAllSpaces(text) && w == grapheme.Count(text)

		styleFn := st.Text.Render
		if underCursor {
			styleFn = st.Cursor.Render
			if isAllSpaces(text) && trailingWhitespaceFrom(clusters, i) {
				// Trailing ASCII spaces can be visually elided by terminals at line end.
				// Render cursor whitespace as NBSP in that case so the cursor stays visible.
				styleFn = func(parts ...string) string {
					replaced := make([]string, len(parts))
					for k, p := range parts {
						replaced[k] = strings.ReplaceAll(p, " ", "\u00a0")
					}
					return st.Cursor.Render(replaced...)
				}
			}
		}
		sb.WriteString(renderSpan(styleFn, text, w, spanL-segL, spanR-spanL, splittable))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == runeOff && cursorCol >= 0 {
		spanL := maxInt(cells, left)
		spanR := minInt(cells+1, right)
		if spanL < spanR {
			sb.WriteString(st.Cursor.Render(" "))
		}
	}
	return sb.String()
}

func isAllSpaces(s string) bool {
	if s == "" {
		return false
	}
	for _, g := range grapheme.Split(s) {
		if !grapheme.IsSpace(g) {
			return false
		}
	}
	return true
}

func trailingWhitespaceFrom(clusters []string, from int) bool {
	for j := from; j < len(clusters); j++ {
		if !grapheme.IsSpace(clusters[j]) {
			return false
		}
	}
	return true
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
