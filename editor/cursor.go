package editor

import (
	"strings"
	"unicode/utf8"
)

// docLines splits the document into lines. The trailing entry may be empty
// when the text ends in a newline; the cursor can legitimately sit there.
func docLines(text string) []string {
	return strings.Split(text, "\n")
}

// cursorRowCol maps a rune offset to a (row, column) pair, the column counted
// in runes from the line start.
func cursorRowCol(text string, cursor int) (row, col int) {
	i := 0
	for _, r := range text {
		if i >= cursor {
			break
		}
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
		i++
	}
	return row, col
}

// offsetAt maps a (row, column) pair back to a rune offset, clamping the
// column to the target line's length.
func offsetAt(text string, row, col int) int {
	lines := docLines(text)
	if row < 0 {
		row = 0
	}
	if row > len(lines)-1 {
		row = len(lines) - 1
	}

	off := 0
	for i := 0; i < row; i++ {
		off += utf8.RuneCountInString(lines[i]) + 1
	}
	n := utf8.RuneCountInString(lines[row])
	if col > n {
		col = n
	}
	if col < 0 {
		col = 0
	}
	return off + col
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
