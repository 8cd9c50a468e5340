// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

// lookupVPFST implements the VPFST branch of spec.md §4.6. Like
// lookupVDCT, an empty key skips the descent loop entirely and is
// resolved directly against the root record's terminal-node handling.
func lookupVPFST(buf []byte, key ByteString) (ByteString, bool, error) {
	root, err := readRootOffset(buf)
	if err != nil {
		return ByteString{}, false, err
	}

	pos := int(root)
	keyIdx := 0

	accumulator := ByteString{}
	var longestPrefix ByteString
	havePrefix := false

	for keyIdx < key.Len() {
		c := newCursor(buf, pos)
		flags, err := c.readByte()
		if err != nil {
			return ByteString{}, false, err
		}

		isPrefixEnd := flags&vpfstFlagPrefixEnd != 0
		if flags&vpfstFlagValuePresent != 0 {
			segLen, err := c.readVInt()
			if err != nil {
				return ByteString{}, false, err
			}
			seg, err := c.readN(segLen)
			if err != nil {
				return ByteString{}, false, err
			}
			accumulator = accumulator.Concat(NewByteString(seg))
		}
		if isPrefixEnd {
			longestPrefix = accumulator
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
			return longestPrefix, havePrefix, nil
		}

		keyIdx++
		pos = int(childOffset)
	}

	c := newCursor(buf, pos)
	flags, err := c.readByte()
	if err != nil {
		return ByteString{}, false, err
	}

	isKeyEnd := flags&vpfstFlagKeyEnd != 0
	isPrefixEnd := flags&vpfstFlagPrefixEnd != 0
	hasSegment := flags&vpfstFlagValuePresent != 0

	if isKeyEnd {
		exact := accumulator
		if hasSegment {
			segLen, err := c.readVInt()
			if err != nil {
				return ByteString{}, false, err
			}
			seg, err := c.readN(segLen)
			if err != nil {
				return ByteString{}, false, err
			}
			exact = exact.Concat(NewByteString(seg))
		}
		return exact, true, nil
	}

	if hasSegment {
		segLen, err := c.readVInt()
		if err != nil {
			return ByteString{}, false, err
		}
		seg, err := c.readN(segLen)
		if err != nil {
			return ByteString{}, false, err
		}
		accumulator = accumulator.Concat(NewByteString(seg))
		if isPrefixEnd {
			longestPrefix = accumulator
			havePrefix = true
		}
	}

	return longestPrefix, havePrefix, nil
}
