// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import "encoding/binary"

// edgeRef pairs an edge's input byte with the already-known buffer offset
// of the child it points to. Emission always happens bottom-up (children
// before parents, spec §4.5), so every edgeRef's offset is final by the
// time a node record references it.
type edgeRef struct {
	b      byte
	offset int32
}

// edgeWidth computes the per-node edge-record width: one byte for the
// input label plus the widest VInt encoding among the node's child
// offsets, with a floor of 1 (spec §4.5 step 4, §GLOSSARY "Edge width").
func edgeWidth(edges []edgeRef) int {
	maxw := 1
	for _, e := range edges {
		if w := vintWidth(e.offset); w > maxw {
			maxw = w
		}
	}
	return 1 + maxw
}

// writeEdges writes child_count × edge records (input_byte, VInt child
// offset zero-padded to width-1 bytes) in ascending input_byte order.
func writeEdges(buf *outBuffer, edges []edgeRef, width int) {
	var scratch [maxVIntWidth]byte
	for _, e := range edges {
		buf.WriteByte(e.b)
		enc := writeVInt(scratch[:0], e.offset)
		buf.Write(enc)
		for pad := len(enc); pad < width-1; pad++ {
			buf.WriteByte(0x00)
		}
	}
}

// newCompileBuffer starts a packed buffer with the four-byte root offset
// placeholder (spec §4.5 step 2).
func newCompileBuffer() *outBuffer {
	buf := newOutBuffer(1024)
	buf.Write([]byte{0, 0, 0, 0})
	return buf
}

// finalizeRootOffset truncates buf to its cursor and patches the header
// with the big-endian root offset (spec §4.5 step 5).
func finalizeRootOffset(buf *outBuffer, rootOffset int32) []byte {
	buf.TruncateToCursor()
	out := buf.Bytes()
	binary.BigEndian.PutUint32(out[0:4], uint32(rootOffset))
	return out
}
