// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"encoding/binary"
	"fmt"
)

// cursor is a per-call read position into a shared, immutable packed
// buffer. Splitting the cursor from the buffer (rather than fusing them,
// as a naive port would) is what lets many Get calls run concurrently
// against one compiled Dictionary without synchronization (spec §5, §9
// "Reader cursor coupling").
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte, pos int) cursor {
	return cursor{buf: buf, pos: pos}
}

func (c *cursor) readByte() (byte, error) {
	if c.pos < 0 || c.pos >= len(c.buf) {
		return 0, fmt.Errorf("%w: read past end of buffer at offset %d", ErrCorrupt, c.pos)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readVInt() (int32, error) {
	v, next, err := readVInt(c.buf, c.pos)
	if err != nil {
		return 0, err
	}
	c.pos = next
	return v, nil
}

func (c *cursor) readN(n int32) ([]byte, error) {
	if n < 0 || c.pos+int(n) > len(c.buf) {
		return nil, fmt.Errorf("%w: segment of length %d at offset %d exceeds buffer", ErrCorrupt, n, c.pos)
	}
	out := c.buf[c.pos : c.pos+int(n)]
	c.pos += int(n)
	return out, nil
}

// readPaddedOffset reads a VInt-encoded, zero-padded offset field of
// exactly width bytes starting at off.
func readPaddedOffset(buf []byte, off, width int) (int32, error) {
	if off < 0 || off+width > len(buf) {
		return 0, fmt.Errorf("%w: edge record at offset %d exceeds buffer", ErrCorrupt, off)
	}
	v, next, err := readVInt(buf, off)
	if err != nil {
		return 0, err
	}
	if next > off+width {
		return 0, fmt.Errorf("%w: edge offset VInt wider than edge_width at %d", ErrCorrupt, off)
	}
	return v, nil
}

// binarySearchEdge searches the child_count fixed-width edge records
// starting at edgesBase for target, comparing input bytes as unsigned
// values (spec §9 "Open question": we pick unsigned comparison throughout
// and document it — see DESIGN.md — since edges are written in unsigned
// ascending order by edgeSet). It returns the child's buffer offset, or
// ok=false if no edge matches target.
func binarySearchEdge(buf []byte, edgesBase int, childCount, width int, target byte) (offset int32, ok bool, err error) {
	if width < 1 {
		return 0, false, fmt.Errorf("%w: edge_width %d < 1", ErrCorrupt, width)
	}

	lo, hi := 0, childCount-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		recOff := edgesBase + mid*width
		if recOff < 0 || recOff >= len(buf) {
			return 0, false, fmt.Errorf("%w: edge record %d out of range", ErrCorrupt, mid)
		}
		label := buf[recOff]
		switch {
		case target == label:
			off, err := readPaddedOffset(buf, recOff+1, width-1)
			return off, err == nil, err
		case target < label:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return 0, false, nil
}

func readRootOffset(buf []byte) (int32, error) {
	if len(buf) < 4 {
		return 0, fmt.Errorf("%w: buffer shorter than 4-byte header", ErrCorrupt)
	}
	return int32(binary.BigEndian.Uint32(buf[0:4])), nil
}
