// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import "fmt"

// maxVIntWidth bounds the number of bytes a well-formed VInt may occupy.
// A decoder that reads past this many continuation bytes has hit corrupt
// data (spec §7: "VInt > 5 bytes" is a CORRUPT condition).
const maxVIntWidth = 5

// writeVInt encodes v as little-endian 7-bit-continuation groups and
// appends the result to dst, returning the extended slice. Non-negative
// values occupy 1 to 5 bytes depending on magnitude; any value whose
// two's-complement high bit is set (i.e. negative as int32) always
// occupies 5 bytes.
func writeVInt(dst []byte, v int32) []byte {
	u := uint32(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u == 0 {
			dst = append(dst, b)
			return dst
		}
		dst = append(dst, b|0x80)
	}
}

// vintWidth returns the number of bytes writeVInt would emit for v,
// without allocating.
func vintWidth(v int32) int {
	u := uint32(v)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

// readVInt decodes a VInt starting at p[off], returning the decoded value
// and the offset immediately following it. It returns an error wrapping
// ErrCorrupt if the continuation run exceeds maxVIntWidth bytes or runs
// past the end of p.
func readVInt(p []byte, off int) (int32, int, error) {
	var u uint32
	for i := 0; i < maxVIntWidth; i++ {
		if off+i >= len(p) {
			return 0, 0, fmt.Errorf("%w: varint read past end of buffer at offset %d", ErrCorrupt, off)
		}
		b := p[off+i]
		u |= uint32(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			return int32(u), off + i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: varint longer than %d bytes at offset %d", ErrCorrupt, maxVIntWidth, off)
}
