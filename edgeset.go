// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// edgeSet is a popcount-compressed sparse array mapping a raw byte
// (0..255) to a child of generic type N, kept in ascending byte order.
// It generalizes the teacher's childTree/prefixCBTree rank-compression
// idiom (originally a 256-wide CIDR-octet stride) to a 256-wide raw-byte
// trie edge alphabet: a 256-bit presence bitmap plus a compacted slice,
// with Rank turning a byte into its index into that slice.
type edgeSet[N any] struct {
	present  *bitset.BitSet
	children []N
}

// newEdgeSet returns an empty edgeSet, ready to use.
func newEdgeSet[N any]() edgeSet[N] {
	return edgeSet[N]{present: bitset.New(256)}
}

// rank maps a present byte to its index in children. Callers must have
// already confirmed presence with Test.
func (e *edgeSet[N]) rank(b byte) int {
	return int(e.present.Rank(uint(b))) - 1
}

// Test reports whether b has a child.
func (e *edgeSet[N]) Test(b byte) bool {
	return e.present.Test(uint(b))
}

// Get returns the child at b, if any.
func (e *edgeSet[N]) Get(b byte) (N, bool) {
	if !e.Test(b) {
		var zero N
		return zero, false
	}
	return e.children[e.rank(b)], true
}

// Set inserts or overwrites the child at b.
func (e *edgeSet[N]) Set(b byte, n N) {
	if e.Test(b) {
		e.children[e.rank(b)] = n
		return
	}
	e.present.Set(uint(b))
	e.children = slices.Insert(e.children, e.rank(b), n)
}

// GetOrInsert returns the existing child at b, or inserts and returns the
// result of create() if absent.
func (e *edgeSet[N]) GetOrInsert(b byte, create func() N) N {
	if n, ok := e.Get(b); ok {
		return n
	}
	n := create()
	e.Set(b, n)
	return n
}

// Len returns the number of present edges.
func (e *edgeSet[N]) Len() int { return len(e.children) }

// All returns, in ascending byte order, the input byte and child for
// every present edge. Iteration order matches spec requirement that
// "edges keyed by raw byte, ordered ascending for deterministic
// serialization and binary search."
func (e *edgeSet[N]) All() iter2[N] {
	bytes := make([]byte, 0, len(e.children))
	for i, ok := e.present.NextSet(0); ok; i, ok = e.present.NextSet(i + 1) {
		bytes = append(bytes, byte(i))
	}
	return iter2[N]{bytes: bytes, children: e.children}
}

// iter2 is a tiny ascending-order iterator pairing input bytes with their
// children, avoiding an allocation-heavy map[byte]N for callers that just
// want to range in order.
type iter2[N any] struct {
	bytes    []byte
	children []N
}

func (it iter2[N]) Len() int { return len(it.bytes) }

func (it iter2[N]) At(i int) (byte, N) { return it.bytes[i], it.children[i] }
