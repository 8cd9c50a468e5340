// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import "fmt"

// lookupVDCT implements the VDCT branch of spec.md §4.6. An empty key
// never enters the descent loop (keyIdx starts equal to key.Len()), so it
// falls straight through to the terminal check at the root record — the
// open question in spec.md §8 scenario 4 is resolved here as "empty key
// is an exact match iff the root record itself carries a value."
func lookupVDCT(buf []byte, valueTableBase int32, key ByteString) (ByteString, bool, error) {
	root, err := readRootOffset(buf)
	if err != nil {
		return ByteString{}, false, err
	}

	pos := int(root)
	keyIdx := 0

	var longestPrefix ByteString
	havePrefix := false

	for keyIdx < key.Len() {
		c := newCursor(buf, pos)
		flags, err := c.readByte()
		if err != nil {
			return ByteString{}, false, err
		}

		hasValue := flags&vdctFlagValuePresent != 0
		isPrefixEnd := flags&vdctFlagPrefixEnd != 0
		if isPrefixEnd && !hasValue {
			return ByteString{}, false, fmt.Errorf("%w: prefix-end node without a value at offset %d", ErrCorrupt, pos)
		}

		var valueOffset int32
		if hasValue {
			valueOffset, err = c.readVInt()
			if err != nil {
				return ByteString{}, false, err
			}
		}
		if isPrefixEnd {
			v, err := readVDCTValue(buf, valueTableBase, valueOffset)
			if err != nil {
				return ByteString{}, false, err
			}
			longestPrefix = v
			havePrefix = true
		}

		childCount, err := c.readVInt()
		if err != nil {
			return ByteString{}, false, err
		}
		width, err := c.readVInt()
		if err != nil {
			return ByteString{}, false, err
		}

		childOffset, ok, err := binarySearchEdge(buf, c.pos, int(childCount), int(width), key.At(keyIdx))
		if err != nil {
			return ByteString{}, false, err
		}
		if !ok {
			return finishVDCT(longestPrefix, havePrefix), havePrefix, nil
		}

		keyIdx++
		pos = int(childOffset)
	}

	c := newCursor(buf, pos)
	flags, err := c.readByte()
	if err != nil {
		return ByteString{}, false, err
	}
	if flags&vdctFlagValuePresent != 0 {
		valueOffset, err := c.readVInt()
		if err != nil {
			return ByteString{}, false, err
		}
		v, err := readVDCTValue(buf, valueTableBase, valueOffset)
		if err != nil {
			return ByteString{}, false, err
		}
		return v, true, nil
	}

	return finishVDCT(longestPrefix, havePrefix), havePrefix, nil
}

func finishVDCT(longestPrefix ByteString, havePrefix bool) ByteString {
	if havePrefix {
		return longestPrefix
	}
	return ByteString{}
}

// readVDCTValue dereferences a value-table offset: VInt(length) ∥ bytes,
// located at valueTableBase+offset within buf.
func readVDCTValue(buf []byte, valueTableBase, offset int32) (ByteString, error) {
	abs := int(valueTableBase) + int(offset)
	length, next, err := readVInt(buf, abs)
	if err != nil {
		return ByteString{}, err
	}
	if length < 0 || next+int(length) > len(buf) {
		return ByteString{}, fmt.Errorf("%w: value of length %d at offset %d exceeds buffer", ErrCorrupt, length, abs)
	}
	return NewByteString(buf[next : next+int(length)]), nil
}
