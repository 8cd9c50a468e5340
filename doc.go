// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

// Package ctrie provides an in-memory key-value dictionary that compiles a
// dynamic byte-keyed trie into an immutable, position-independent packed
// byte buffer supporting O(|key|) lookup via binary search over sorted
// edges.
//
// Two compiled variants are offered:
//
//   - VDCT: values live in a separate interned value table, and node
//     records hold offsets into it.
//   - VPFST: values are split along edges and shared across key prefixes,
//     and structurally identical suffix subtrees are deduplicated during
//     compilation into a minimal acyclic transducer.
//
// Both variants support exact-key lookup and longest-matching-prefix-key
// lookup. Construction is: insert keys with Put/PutPrefix, call Compile
// once, then Get. A Dictionary is single-writer during ingestion and
// becomes read-only and safe for concurrent Get calls after Compile.
package ctrie
