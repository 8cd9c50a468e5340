// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

// fstNode is the mutable value-prefixed FST node used to ingest keys
// before compilation into the VPFST packed format (spec §3.2 variant B).
//
// value holds the longest common prefix of every full value reachable
// through this node along any key-terminating path; valueSet tracks
// whether a value has ever been assigned here, independent of whether
// that value happens to be the empty byte string. Using Len()==0 as the
// "unset" sentinel — the literal reading of spec.md §4.4's "value is
// unset (empty)" — breaks the round-trip invariant the same section
// claims: re-inserting a longer key that shares a node already holding an
// adopted "" value would wrongly re-adopt a fresh remainder there, which
// a hand-trace of spec.md §8 scenario 2 demonstrates corrupts the
// already-inserted shorter key. valueSet resolves that ambiguity.
type fstNode struct {
	edges edgeSet[*fstNode]

	value    ByteString
	valueSet bool

	isKeyEnd    bool
	isPrefixEnd bool

	depth     int
	inputByte byte

	// bufferOffset is populated during Compile, either with this node's
	// own emission offset or, on a suffix-dedup hit, with the offset of
	// the equivalent record emitted earlier.
	bufferOffset int32
}

func newFSTNode(depth int, inputByte byte) *fstNode {
	return &fstNode{edges: newEdgeSet[*fstNode](), depth: depth, inputByte: inputByte}
}

// fstTrie is the mutable VPFST ingestion trie (spec §4.4).
type fstTrie struct {
	root *fstNode
}

func newFSTTrie() *fstTrie {
	return &fstTrie{root: newFSTNode(0, 0)}
}

// insert distributes value along key's path per spec.md §4.4, the
// value-prefix distribution algorithm.
func (t *fstTrie) insert(key, value ByteString, asPrefix bool) {
	n := t.root
	remainder := value

	for i := 0; i < key.Len(); i++ {
		remainder = visitAndDescend(n, remainder)
		b := key.At(i)
		n = n.edges.GetOrInsert(b, func() *fstNode {
			return newFSTNode(n.depth+1, b)
		})
	}

	n.value = remainder
	n.valueSet = true
	n.isKeyEnd = true
	n.isPrefixEnd = asPrefix
}

// visitAndDescend applies the per-node adopt-or-redistribute step before
// descending to the next byte, returning the remainder to carry onward.
func visitAndDescend(n *fstNode, remainder ByteString) ByteString {
	if !n.valueSet {
		n.value = remainder
		n.valueSet = true
		return ByteString{}
	}

	c := remainder.CommonPrefix(n.value)
	pushdown := n.value.Suffix(c.Len())

	if !pushdown.IsEmpty() {
		it := n.edges.All()
		for i := 0; i < it.Len(); i++ {
			_, child := it.At(i)
			child.value = child.value.Prepend(pushdown)
		}
	}

	n.value = c
	return remainder.Suffix(c.Len())
}
