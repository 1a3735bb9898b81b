package editor

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/gapvec/internal/grapheme"
)

// graphemeCellWidth is the terminal-cell width of one cluster. Tabs depend
// on the visual column they start at.
func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	mod := visualCol % tabWidth
	adv := tabWidth - mod
	if adv < 1 {
		return 1
	}
	return adv
}

// lineCellsTo is the cell offset of the given rune column within a line,
// summing cluster widths from the line start.
func lineCellsTo(line string, runeCol, tabWidth int) int {
	cells := 0
	off := 0
	for _, c := range grapheme.Split(line) {
		n := utf8.RuneCountInString(c)
		if off+n > runeCol {
			break
		}
		cells += graphemeCellWidth(c, cells, tabWidth)
		off += n
	}
	return cells
}

// cellWidthAt is the width of the cluster starting at the given rune column,
// or 1 at the end of the line where the cursor occupies a virtual cell.
func cellWidthAt(line string, runeCol, tabWidth int) int {
	cells := 0
	off := 0
	for _, c := range grapheme.Split(line) {
		w := graphemeCellWidth(c, cells, tabWidth)
		n := utf8.RuneCountInString(c)
		if off+n > runeCol {
			return w
		}
		cells += w
		off += n
	}
	return 1
}
