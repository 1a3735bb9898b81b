// Package buffer implements a generic gap buffer: a growable sequence with a
// cursor, stored as two contiguous runs around a gap of free slots.
//
// Indices are 0-based logical positions; the gap is invisible to callers.
// Insert and Remove work at the cursor in amortized constant time; moving the
// cursor costs one slot move per position crossed.
package buffer
