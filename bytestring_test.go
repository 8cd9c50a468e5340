// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisprd/ctrie"
)

func TestByteString_CommonPrefix(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     string
		wantLen  int
		wantText string
	}{
		{name: "identical", a: "hello", b: "hello", wantLen: 5, wantText: "hello"},
		{name: "disjoint", a: "abc", b: "xyz", wantLen: 0, wantText: ""},
		{name: "one_is_prefix", a: "key", b: "key123", wantLen: 3, wantText: "key"},
		{name: "partial", a: "value1", b: "value2", wantLen: 5, wantText: "value"},
		{name: "empty_a", a: "", b: "anything", wantLen: 0, wantText: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := ctrie.ByteStringFromString(tc.a)
			b := ctrie.ByteStringFromString(tc.b)
			got := a.CommonPrefix(b)

			assert.Equal(t, tc.wantLen, got.Len())
			assert.Equal(t, tc.wantText, got.String())
		})
	}
}

func TestByteString_Suffix(t *testing.T) {
	t.Parallel()

	s := ctrie.ByteStringFromString("value123")
	require.Equal(t, "value123", s.Suffix(0).String())
	require.Equal(t, "123", s.Suffix(5).String())
	require.Equal(t, "", s.Suffix(s.Len()).String())
}

func TestByteString_ConcatPrepend(t *testing.T) {
	t.Parallel()

	a := ctrie.ByteStringFromString("foo")
	b := ctrie.ByteStringFromString("bar")

	assert.Equal(t, "foobar", a.Concat(b).String())
	assert.Equal(t, "barfoo", a.Prepend(b).String())

	empty := ctrie.ByteString{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "foo", empty.Concat(a).String())
	assert.Equal(t, "foo", a.Concat(empty).String())
}

func TestByteString_CompareIsUnsigned(t *testing.T) {
	t.Parallel()

	// 0x80 is negative as a signed int8 but must sort after 0x7f under the
	// unsigned comparison this package commits to throughout (see
	// DESIGN.md, "signed vs unsigned byte comparison").
	lo := ctrie.NewByteString([]byte{0x7f})
	hi := ctrie.NewByteString([]byte{0x80})

	assert.Negative(t, lo.Compare(hi))
	assert.Positive(t, hi.Compare(lo))
	assert.Zero(t, lo.Compare(lo))
}

func TestByteString_Equal(t *testing.T) {
	t.Parallel()

	a := ctrie.ByteStringFromString("same")
	b := ctrie.ByteStringFromString("same")
	c := ctrie.ByteStringFromString("different")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
