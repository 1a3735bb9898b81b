package editor

import "github.com/iw2rmb/gapvec/textbuf"

// ChangeEvent describes the buffer state after an effective change.
type ChangeEvent struct {
	Version uint64
	Cursor  int // rune offset

	// Simplest payload; hosts can diff against their previous copy.
	Text string
}

func buildChangeEvent(b *textbuf.Buffer) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
}
