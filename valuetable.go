// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

// valueTable interns distinct values during VDCT ingestion. Equal values
// share one entry; the table is append-only (spec §9: deletion is not
// supported, re-insertion under a new key value may orphan an entry, and
// that is acceptable).
//
// It is transient: dropped once Compile has serialized it into the output
// buffer (spec §5, "Shared resources").
type valueTable struct {
	offsets map[string]int32 // value bytes -> offset within buf
	buf     *outBuffer
}

func newValueTable() *valueTable {
	return &valueTable{
		offsets: make(map[string]int32),
		buf:     newOutBuffer(256),
	}
}

// intern returns the byte offset of value within the value table,
// appending VInt(length) ∥ bytes on first sighting.
func (t *valueTable) intern(value ByteString) int32 {
	key := string(value.Bytes())
	if off, ok := t.offsets[key]; ok {
		return off
	}

	off := int32(t.buf.Len())
	t.buf.Seek(t.buf.Len())
	var lenBuf [maxVIntWidth]byte
	t.buf.Write(writeVInt(lenBuf[:0], int32(value.Len())))
	t.buf.Write(value.Bytes())

	t.offsets[key] = off
	return off
}

// serialize returns the finished value table bytes.
func (t *valueTable) serialize() []byte {
	return t.buf.Bytes()
}
