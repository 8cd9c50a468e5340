// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

const (
	vdctFlagValuePresent byte = 0x01
	vdctFlagPrefixEnd    byte = 0x02
)

// compileVDCT serializes a mutable VDCT trie into the packed byte buffer
// described in spec §3.3/§4.5: four-byte root offset header, the
// serialized value table, then node records emitted bottom-up (children
// before parents).
func compileVDCT(trie *vdctTrie, diag diagSink) []byte {
	buf := newCompileBuffer()
	buf.Write(trie.values.serialize())

	nodeCount := 0
	emitVDCTNode(buf, trie.root, &nodeCount)

	diag.log("event", "compile_vdct", "nodes", nodeCount, "value_table_bytes", trie.values.buf.Len())

	return finalizeRootOffset(buf, trie.root.bufferOffset)
}

// emitVDCTNode emits n's children (recursively, bottom-up) before n
// itself, recording n's own emission offset on the node for its parent to
// consume.
func emitVDCTNode(buf *outBuffer, n *vdctNode, nodeCount *int) {
	it := n.edges.All()
	edges := make([]edgeRef, 0, it.Len())
	for i := 0; i < it.Len(); i++ {
		b, child := it.At(i)
		emitVDCTNode(buf, child, nodeCount)
		edges = append(edges, edgeRef{b: b, offset: child.bufferOffset})
	}

	n.bufferOffset = int32(buf.Pos())
	*nodeCount++

	var flags byte
	if n.hasValue {
		flags |= vdctFlagValuePresent
	}
	if n.isPrefixEnd {
		flags |= vdctFlagPrefixEnd
	}
	buf.WriteByte(flags)

	var scratch [maxVIntWidth]byte
	if n.hasValue {
		buf.Write(writeVInt(scratch[:0], n.valueOffset))
	}

	width := edgeWidth(edges)
	buf.Write(writeVInt(scratch[:0], int32(len(edges))))
	buf.Write(writeVInt(scratch[:0], int32(width)))
	writeEdges(buf, edges, width)
}
