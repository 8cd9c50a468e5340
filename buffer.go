// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

// outBuffer is a resizable byte array with a cursor, used during
// compilation to accumulate the packed byte buffer. It supports sequential
// write, random seek, truncation to the cursor, and appending another
// buffer's active range. It is not safe for concurrent use; the compiler
// owns exactly one outBuffer for the lifetime of a single Compile call.
type outBuffer struct {
	data []byte
	pos  int
}

// newOutBuffer returns an empty outBuffer with capacity hinted by
// sizeHint.
func newOutBuffer(sizeHint int) *outBuffer {
	return &outBuffer{data: make([]byte, 0, sizeHint)}
}

// Len returns the number of live bytes (the high-water mark, not the
// cursor position).
func (b *outBuffer) Len() int { return len(b.data) }

// Pos returns the current cursor offset.
func (b *outBuffer) Pos() int { return b.pos }

// Seek repositions the cursor to an absolute offset within [0, Len()].
func (b *outBuffer) Seek(offset int) { b.pos = offset }

// WriteByte appends a single byte at the cursor, advancing it by one.
// It grows the buffer if the cursor is at the end.
func (b *outBuffer) WriteByte(c byte) {
	if b.pos == len(b.data) {
		b.data = append(b.data, c)
	} else {
		b.data[b.pos] = c
	}
	b.pos++
}

// Write appends p at the cursor, advancing it by len(p).
func (b *outBuffer) Write(p []byte) {
	if b.pos == len(b.data) {
		b.data = append(b.data, p...)
		b.pos = len(b.data)
		return
	}
	for _, c := range p {
		b.WriteByte(c)
	}
}

// AppendRange copies other.data[start:end] onto b at the cursor.
func (b *outBuffer) AppendRange(other *outBuffer, start, end int) {
	b.Write(other.data[start:end])
}

// TruncateToCursor discards any bytes beyond the current cursor.
func (b *outBuffer) TruncateToCursor() {
	b.data = b.data[:b.pos]
}

// Bytes returns the live portion of the buffer. Callers must not retain it
// across further writes.
func (b *outBuffer) Bytes() []byte { return b.data }
