// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisprd/ctrie"
)

func TestVDCT_SingleKeyExactMatch(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	require.NoError(t, d.Put(s("key"), s("value")))
	require.NoError(t, d.Compile())

	assertFound(t, d, "key", "value")
	assertAbsent(t, d, "ke")
	assertAbsent(t, d, "keyx")
}

func TestVDCT_LongestPrefixAtMultipleDepths(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	require.NoError(t, d.PutPrefix(s("key"), s("value")))
	require.NoError(t, d.PutPrefix(s("key1"), s("value1")))
	require.NoError(t, d.Put(s("key12"), s("value12")))
	require.NoError(t, d.Put(s("key123"), s("value123")))
	require.NoError(t, d.Compile())

	assertFound(t, d, "key", "value")
	assertFound(t, d, "key1", "value1")
	assertFound(t, d, "key12", "value12")
	assertFound(t, d, "key123", "value123")
	assertFound(t, d, "key111", "value1")
	assertFound(t, d, "key121", "value1")
	assertFound(t, d, "key21", "value")
	assertAbsent(t, d, "ke1y")
}

func TestVDCT_ValueDedupAndReinsert(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	require.NoError(t, d.Put(s("a"), s("v")))
	require.NoError(t, d.Put(s("b"), s("v")))
	require.NoError(t, d.Put(s("a"), s("v2")))
	require.NoError(t, d.Compile())

	assertFound(t, d, "a", "v2")
	assertFound(t, d, "b", "v")
}

func TestVDCT_EmptyValueIsDistinguishableFromAbsent(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	require.NoError(t, d.Put(s("k"), ctrie.ByteString{}))
	require.NoError(t, d.Compile())

	value, ok, err := d.Get(s("k"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "", value.String())

	_, ok, err = d.Get(s("missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVDCT_EmptyKey documents the chosen resolution of spec.md's open
// question on whether an empty key can be an exact match: it can, exactly
// when the root record itself carries a value.
func TestVDCT_EmptyKey(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	require.NoError(t, d.Put(ctrie.ByteString{}, s("root")))
	require.NoError(t, d.Compile())

	value, ok, err := d.Get(ctrie.ByteString{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "root", value.String())
}

func TestVDCT_CompileThenMutateFails(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	require.NoError(t, d.Put(s("x"), s("y")))
	require.NoError(t, d.Compile())

	err := d.Put(s("x"), s("z"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ctrie.ErrInvalidState)

	// Compile is idempotent.
	require.NoError(t, d.Compile())
}

func TestVDCT_GetBeforeCompileFails(t *testing.T) {
	t.Parallel()

	d := ctrie.New(ctrie.WithVariant(ctrie.VariantVDCT))
	_, _, err := d.Get(s("anything"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ctrie.ErrInvalidState)
}

func s(text string) ctrie.ByteString { return ctrie.ByteStringFromString(text) }

func assertFound(t *testing.T, d *ctrie.Dictionary, key, want string) {
	t.Helper()
	value, ok, err := d.Get(s(key))
	require.NoError(t, err)
	require.Truef(t, ok, "expected %q to be found", key)
	assert.Equal(t, want, value.String())
}

func assertAbsent(t *testing.T, d *ctrie.Dictionary, key string) {
	t.Helper()
	_, ok, err := d.Get(s(key))
	require.NoError(t, err)
	assert.Falsef(t, ok, "expected %q to be absent", key)
}
