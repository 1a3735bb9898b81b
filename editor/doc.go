// Package editor provides a Bubble Tea text editor component backed by the
// textbuf package.
//
// The component translates key input into buffer operations (insert at
// cursor, delete around cursor, cursor motion) and handles viewport
// scrolling, grapheme-aware rendering, and change events for the host.
package editor
