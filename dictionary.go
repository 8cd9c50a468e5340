// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"fmt"

	kitlog "github.com/go-kit/log"
)

// Variant selects which packed representation Compile produces.
type Variant int

const (
	// VariantVDCT stores values in a separate interned value table and
	// node records hold offsets into it (spec §3.2 variant A).
	VariantVDCT Variant = iota
	// VariantVPFST splits values along key prefixes and deduplicates
	// structurally identical suffix subtrees (spec §3.2 variant B).
	VariantVPFST
)

// Option configures a Dictionary at construction.
type Option func(*dictConfig)

type dictConfig struct {
	variant Variant
	logger  kitlog.Logger
}

// WithVariant selects the compiled representation. The default is
// VariantVDCT.
func WithVariant(v Variant) Option {
	return func(c *dictConfig) { c.variant = v }
}

// WithLogger attaches a go-kit logger that receives compile-time
// diagnostics. Get never logs (spec §5, §9).
func WithLogger(logger kitlog.Logger) Option {
	return func(c *dictConfig) { c.logger = logger }
}

type dictState int

const (
	stateBuilding dictState = iota
	stateCompiled
)

// Dictionary is the façade over the mutable ingestion trie and the
// compiled packed buffer it produces (spec §6.1). It is single-writer
// during ingestion: Put/PutPrefix/Compile must not be called
// concurrently with each other or with Get. Once Compile has returned,
// the Dictionary is read-only and Get is safe for concurrent use by any
// number of goroutines (spec §5).
type Dictionary struct {
	variant Variant
	diag    diagSink

	state dictState

	vdctTrie *vdctTrie
	fstTrie  *fstTrie

	buf            []byte
	valueTableBase int32
	valueTableSize int32 // VDCT only; 0 for VPFST
}

// New returns an empty Dictionary ready to accept Put/PutPrefix calls.
func New(opts ...Option) *Dictionary {
	cfg := dictConfig{variant: VariantVDCT}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dictionary{
		variant: cfg.variant,
		diag:    newDiagSink(cfg.logger),
		state:   stateBuilding,
	}
	switch cfg.variant {
	case VariantVPFST:
		d.fstTrie = newFSTTrie()
	default:
		d.vdctTrie = newVDCTTrie()
	}
	return d
}

// Put associates key with value as an exact-match entry. Re-inserting an
// existing key overwrites its value (last writer wins, spec §4.1). The
// empty key is valid and addresses the root entry (spec §8 scenario 4).
// It returns ErrInvalidState once Compile has been called.
func (d *Dictionary) Put(key, value ByteString) error {
	return d.put(key, value, false)
}

// PutPrefix associates key with value the same way Put does, but also
// marks the entry as eligible for longest-matching-prefix lookups (spec
// §4.1, §6.1).
func (d *Dictionary) PutPrefix(key, value ByteString) error {
	return d.put(key, value, true)
}

func (d *Dictionary) put(key, value ByteString, asPrefix bool) error {
	if d.state != stateBuilding {
		return fmt.Errorf("%w: Put/PutPrefix called after Compile", ErrInvalidState)
	}
	switch d.variant {
	case VariantVPFST:
		d.fstTrie.insert(key, value, asPrefix)
	default:
		d.vdctTrie.insert(key, value, asPrefix)
	}
	return nil
}

// Compile serializes the ingestion trie into the immutable packed buffer.
// It is idempotent: calling it again after the first successful call is a
// no-op that returns nil. Once Compile has run, Put/PutPrefix return
// ErrInvalidState and Get becomes available.
func (d *Dictionary) Compile() error {
	if d.state == stateCompiled {
		return nil
	}

	switch d.variant {
	case VariantVPFST:
		d.buf = compileVPFST(d.fstTrie, d.diag)
		d.fstTrie = nil
	default:
		d.valueTableBase = 4
		d.valueTableSize = int32(d.vdctTrie.values.buf.Len())
		d.buf = compileVDCT(d.vdctTrie, d.diag)
		d.vdctTrie = nil
	}

	d.state = stateCompiled
	return nil
}

// Get performs an exact-match lookup for key, falling back to the
// longest matching prefix recorded via PutPrefix when no exact entry
// exists (spec §4.6, §6.1). ok is false when neither an exact entry nor
// any matching prefix entry is found. It returns ErrInvalidState if
// called before Compile.
func (d *Dictionary) Get(key ByteString) (value ByteString, ok bool, err error) {
	if d.state != stateCompiled {
		return ByteString{}, false, fmt.Errorf("%w: Get called before Compile", ErrInvalidState)
	}
	switch d.variant {
	case VariantVPFST:
		return lookupVPFST(d.buf, key)
	default:
		return lookupVDCT(d.buf, d.valueTableBase, key)
	}
}

// Variant reports which compiled representation this Dictionary uses.
func (d *Dictionary) Variant() Variant { return d.variant }

// Compiled reports whether Compile has been called successfully.
func (d *Dictionary) Compiled() bool { return d.state == stateCompiled }

// Size returns the length in bytes of the compiled packed buffer. It
// returns ErrInvalidState if called before Compile.
func (d *Dictionary) Size() (int, error) {
	if d.state != stateCompiled {
		return 0, fmt.Errorf("%w: Size called before Compile", ErrInvalidState)
	}
	return len(d.buf), nil
}

// ValueTableSize returns the size in bytes of the interned value table,
// as recorded by Compile. It is always 0 for VariantVPFST, which has no
// separate value table, and for a Dictionary returned by Load, whose raw
// buffer does not record the value table's size.
func (d *Dictionary) ValueTableSize() int32 { return d.valueTableSize }

// RootOffset returns the root node's absolute offset within the compiled
// buffer. It returns ErrInvalidState if called before Compile.
func (d *Dictionary) RootOffset() (int32, error) {
	if d.state != stateCompiled {
		return 0, fmt.Errorf("%w: RootOffset called before Compile", ErrInvalidState)
	}
	return readRootOffset(d.buf)
}
