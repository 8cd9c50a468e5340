// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// ByteString is an immutable sequence of unsigned bytes. The zero value is
// the empty byte string. Values are never mutated in place; every
// transforming method returns a new ByteString.
type ByteString struct {
	b []byte
}

// NewByteString copies raw into a new immutable ByteString.
func NewByteString(raw []byte) ByteString {
	if len(raw) == 0 {
		return ByteString{}
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return ByteString{b: cp}
}

// ByteStringFromString builds a ByteString from a UTF-8 string, for
// convenience only — the dictionary treats the content as opaque bytes.
func ByteStringFromString(s string) ByteString {
	return NewByteString([]byte(s))
}

// Len returns the number of bytes.
func (s ByteString) Len() int { return len(s.b) }

// At returns the byte at index i. It panics if i is out of range.
func (s ByteString) At(i int) byte { return s.b[i] }

// Bytes returns the underlying bytes. Callers must not mutate the result.
func (s ByteString) Bytes() []byte { return s.b }

// Equal reports whether s and other hold identical bytes.
func (s ByteString) Equal(other ByteString) bool {
	return bytes.Equal(s.b, other.b)
}

// Compare performs unsigned lexicographic comparison, returning a value
// <0, 0, or >0 as s is less than, equal to, or greater than other.
func (s ByteString) Compare(other ByteString) int {
	return bytes.Compare(s.b, other.b)
}

// Hash32 returns a deterministic 32-bit hash of the byte string, stable
// across runs and platforms.
func (s ByteString) Hash32() uint32 {
	return uint32(xxhash.Sum64(s.b))
}

// CommonPrefix returns the longest prefix shared by s and other.
func (s ByteString) CommonPrefix(other ByteString) ByteString {
	n := len(s.b)
	if len(other.b) < n {
		n = len(other.b)
	}
	i := 0
	for i < n && s.b[i] == other.b[i] {
		i++
	}
	return s.slicePrefix(i)
}

// Suffix returns the byte string starting at offset. It panics if offset is
// out of [0, Len()].
func (s ByteString) Suffix(offset int) ByteString {
	if offset == 0 {
		return s
	}
	return NewByteString(s.b[offset:])
}

// slicePrefix returns the first n bytes without an extra allocation when
// n == len(s.b).
func (s ByteString) slicePrefix(n int) ByteString {
	if n == len(s.b) {
		return s
	}
	return NewByteString(s.b[:n])
}

// Concat returns s with other appended.
func (s ByteString) Concat(other ByteString) ByteString {
	if s.Len() == 0 {
		return other
	}
	if other.Len() == 0 {
		return s
	}
	out := make([]byte, 0, s.Len()+other.Len())
	out = append(out, s.b...)
	out = append(out, other.b...)
	return ByteString{b: out}
}

// Prepend returns other concatenated in front of s.
func (s ByteString) Prepend(other ByteString) ByteString {
	return other.Concat(s)
}

// IsEmpty reports whether the byte string has zero length.
func (s ByteString) IsEmpty() bool { return len(s.b) == 0 }

// String implements fmt.Stringer for debugging; it does not round-trip for
// arbitrary binary content.
func (s ByteString) String() string { return string(s.b) }
