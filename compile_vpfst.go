// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	vpfstFlagKeyEnd       byte = 0x01
	vpfstFlagPrefixEnd    byte = 0x02
	vpfstFlagValuePresent byte = 0x04
)

// dedupEntry records enough of an already-emitted node's structure to
// verify a hash hit actually represents an equivalent subtree before
// aliasing to it (spec §9: "a safe implementation ... verifies structural
// equality on hit before aliasing").
type dedupEntry struct {
	edges       []edgeRef
	value       ByteString
	depth       int
	isPrefixEnd bool
	isKeyEnd    bool
	offset      int32
}

func (e dedupEntry) equal(edges []edgeRef, value ByteString, depth int, isPrefixEnd, isKeyEnd bool) bool {
	if e.depth != depth || e.isPrefixEnd != isPrefixEnd || e.isKeyEnd != isKeyEnd {
		return false
	}
	if !e.value.Equal(value) {
		return false
	}
	if len(e.edges) != len(edges) {
		return false
	}
	for i, ed := range e.edges {
		if ed.b != edges[i].b || ed.offset != edges[i].offset {
			return false
		}
	}
	return true
}

// structuralHash computes the bottom-up hash spec §4.5 uses to detect
// candidate suffix-subtree duplicates: every (input_byte, buffer_offset)
// child pair in order, the value's hash, depth, is_prefix_end and
// is_key_end. Collisions are possible (and expected to be rare given a
// 64-bit digest); compileVPFST verifies equality on every hit via
// dedupEntry.equal rather than trusting the hash alone.
func structuralHash(edges []edgeRef, value ByteString, depth int, isPrefixEnd, isKeyEnd bool) uint64 {
	d := xxhash.New()
	var scratch [8]byte
	for _, e := range edges {
		_, _ = d.Write([]byte{e.b})
		binary.BigEndian.PutUint32(scratch[:4], uint32(e.offset))
		_, _ = d.Write(scratch[:4])
	}
	binary.BigEndian.PutUint32(scratch[:4], value.Hash32())
	_, _ = d.Write(scratch[:4])
	binary.BigEndian.PutUint64(scratch[:8], uint64(depth))
	_, _ = d.Write(scratch[:8])
	var flags byte
	if isPrefixEnd {
		flags |= 1
	}
	if isKeyEnd {
		flags |= 2
	}
	_, _ = d.Write([]byte{flags})
	return d.Sum64()
}

// compileVPFST serializes a mutable VPFST trie into the packed buffer
// described in spec §3.3/§4.5, deduplicating structurally identical
// suffix subtrees into a minimal acyclic transducer (spec §4.5 "VPFST
// suffix deduplication").
func compileVPFST(trie *fstTrie, diag diagSink) []byte {
	buf := newCompileBuffer()

	cache := make(map[uint64][]dedupEntry)
	nodeCount, dedupHits := 0, 0

	emitFSTNode(buf, trie.root, cache, &nodeCount, &dedupHits)

	diag.log("event", "compile_vpfst", "nodes_emitted", nodeCount, "dedup_hits", dedupHits)

	return finalizeRootOffset(buf, trie.root.bufferOffset)
}

func emitFSTNode(buf *outBuffer, n *fstNode, cache map[uint64][]dedupEntry, nodeCount, dedupHits *int) {
	it := n.edges.All()
	edges := make([]edgeRef, 0, it.Len())
	for i := 0; i < it.Len(); i++ {
		b, child := it.At(i)
		emitFSTNode(buf, child, cache, nodeCount, dedupHits)
		edges = append(edges, edgeRef{b: b, offset: child.bufferOffset})
	}

	h := structuralHash(edges, n.value, n.depth, n.isPrefixEnd, n.isKeyEnd)
	for _, cand := range cache[h] {
		if cand.equal(edges, n.value, n.depth, n.isPrefixEnd, n.isKeyEnd) {
			n.bufferOffset = cand.offset
			n.edges = newEdgeSet[*fstNode]()
			*dedupHits++
			return
		}
	}

	n.bufferOffset = int32(buf.Pos())
	*nodeCount++

	var flags byte
	if n.isKeyEnd {
		flags |= vpfstFlagKeyEnd
	}
	if n.isPrefixEnd {
		flags |= vpfstFlagPrefixEnd
	}
	hasValueSegment := n.value.Len() > 0
	if hasValueSegment {
		flags |= vpfstFlagValuePresent
	}
	buf.WriteByte(flags)

	var scratch [maxVIntWidth]byte
	if hasValueSegment {
		buf.Write(writeVInt(scratch[:0], int32(n.value.Len())))
		buf.Write(n.value.Bytes())
	}

	width := edgeWidth(edges)
	buf.Write(writeVInt(scratch[:0], int32(len(edges))))
	buf.Write(writeVInt(scratch[:0], int32(width)))
	writeEdges(buf, edges, width)

	cache[h] = append(cache[h], dedupEntry{
		edges:       edges,
		value:       n.value,
		depth:       n.depth,
		isPrefixEnd: n.isPrefixEnd,
		isKeyEnd:    n.isKeyEnd,
		offset:      n.bufferOffset,
	})
}
