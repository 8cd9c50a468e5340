// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVPFSTCompile_DedupsIdenticalSuffixSubtrees exercises the suffix-dedup
// soundness property from spec.md §8: two structurally identical suffix
// subtrees in the pre-compile trie must alias to the same buffer_offset
// after compile.
//
// "ax"/"ay" and "bx"/"by" are built so every key carries the same value
// "v": the 'x' and 'y' leaves under 'a' collapse to one emitted record
// (same flags, same empty value, same depth), which makes the 'a' and
// 'b' subtrees themselves byte-for-byte identical in turn, and they must
// alias to the same buffer_offset.
func TestVPFSTCompile_DedupsIdenticalSuffixSubtrees(t *testing.T) {
	t.Parallel()

	trie := newFSTTrie()
	trie.insert(ByteStringFromString("ax"), ByteStringFromString("v"), false)
	trie.insert(ByteStringFromString("ay"), ByteStringFromString("v"), false)
	trie.insert(ByteStringFromString("bx"), ByteStringFromString("v"), false)
	trie.insert(ByteStringFromString("by"), ByteStringFromString("v"), false)

	diag := newDiagSink(nil)
	buf := compileVPFST(trie, diag)
	require.NotEmpty(t, buf)

	aNode, ok := trie.root.edges.Get('a')
	require.True(t, ok)
	bNode, ok := trie.root.edges.Get('b')
	require.True(t, ok)

	assert.Equal(t, aNode.bufferOffset, bNode.bufferOffset, "structurally identical 'a' and 'b' subtrees must alias to the same offset")
}

// TestVPFSTCompile_DistinctSubtreesGetDistinctOffsets guards against a
// dedup implementation that is too eager (e.g. hashing only depth and
// child count) by checking those two structurally different subtrees.
func TestVPFSTCompile_DistinctSubtreesGetDistinctOffsets(t *testing.T) {
	t.Parallel()

	trie := newFSTTrie()
	trie.insert(ByteStringFromString("ax"), ByteStringFromString("v1"), false)
	trie.insert(ByteStringFromString("bx"), ByteStringFromString("v2"), false)

	diag := newDiagSink(nil)
	_ = compileVPFST(trie, diag)

	aNode, ok := trie.root.edges.Get('a')
	require.True(t, ok)
	bNode, ok := trie.root.edges.Get('b')
	require.True(t, ok)

	assert.NotEqual(t, aNode.bufferOffset, bNode.bufferOffset)
}

// TestVDCTCompile_ValueTableDedupsEqualValues mirrors spec.md §8 scenario
// 3: equal values intern to one value-table entry.
func TestVDCTCompile_ValueTableDedupsEqualValues(t *testing.T) {
	t.Parallel()

	vt := newValueTable()
	off1 := vt.intern(ByteStringFromString("v"))
	off2 := vt.intern(ByteStringFromString("v"))
	off3 := vt.intern(ByteStringFromString("v2"))

	assert.Equal(t, off1, off2)
	assert.NotEqual(t, off1, off3)
}
