package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (b *Buffer) checkInvariants(t *testing.T) {
	t.Helper()
	assert.LessOrEqual(t, b.passive, b.active, "passive <= active")
	assert.LessOrEqual(t, b.active, b.end, "active <= end")
	assert.LessOrEqual(t, b.end, uint(len(b.content)), "end within content")
}

func TestBufferLoad(t *testing.T) {
	var b Buffer
	b.limit = 64
	require.NoError(t, b.load(codePointsOf("abc")))
	b.checkInvariants(t)
	assert.Equal(t, uint(3), b.end)
	assert.Equal(t, uint(0), b.passive)
	assert.Equal(t, uint(0), b.active)
	assert.Equal(t, codePoint('a'), b.at(0))
	assert.Equal(t, codePoint(0), b.at(3), "reads past end see the sentinel")
}

func TestBufferLoadOverLimit(t *testing.T) {
	var b Buffer
	b.limit = 4
	err := b.load(codePointsOf("abcde"))
	var f *failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, errBufferOverflow, f.code)
}

func TestBufferPutPassive(t *testing.T) {
	var b Buffer
	b.limit = 64
	require.NoError(t, b.load(codePointsOf("xy")))
	b.active = 2 // both scanned
	require.NoError(t, b.putPassive('a'))
	require.NoError(t, b.putPassive('b'))
	b.checkInvariants(t)
	assert.Equal(t, "ab", stringOf(b.output()))
}

func TestBufferInsertResultActive(t *testing.T) {
	var b Buffer
	b.limit = 64
	require.NoError(t, b.load(codePointsOf("rest")))
	// a call's marker has been consumed, leaving a gap before "rest"
	b.content = append(codePointsOf("####"), b.content[:b.end]...)
	b.passive, b.active, b.end = 0, 4, 8

	require.NoError(t, b.insertResult(codePointsOf("AB"), true))
	b.checkInvariants(t)
	assert.Equal(t, uint(2), b.active, "active moves back over the result")
	assert.Equal(t, "ABrest", stringOf(b.content[b.active:b.end]),
		"the result is the next text to be scanned")
}

func TestBufferInsertResultPassive(t *testing.T) {
	var b Buffer
	b.limit = 64
	require.NoError(t, b.load(codePointsOf("####rest")))
	b.passive, b.active = 0, 4

	require.NoError(t, b.insertResult(codePointsOf("AB"), false))
	b.checkInvariants(t)
	assert.Equal(t, uint(2), b.passive, "passive advances over the result")
	assert.Equal(t, uint(4), b.active, "active is unmoved")
	assert.Equal(t, "AB", stringOf(b.output()))
	assert.Equal(t, "rest", stringOf(b.content[b.active:b.end]))
}

func TestBufferInsertResultGrowsGap(t *testing.T) {
	var b Buffer
	b.limit = 64
	require.NoError(t, b.load(codePointsOf("##rest")))
	b.passive, b.active = 0, 2

	require.NoError(t, b.insertResult(codePointsOf("longer"), true))
	b.checkInvariants(t)
	assert.Equal(t, "longerrest", stringOf(b.content[b.active:b.end]))
}

func TestBufferInsertResultOverLimit(t *testing.T) {
	var b Buffer
	b.limit = 8
	require.NoError(t, b.load(codePointsOf("##rest")))
	b.passive, b.active = 0, 2

	err := b.insertResult(codePointsOf("waytoolongtofit"), true)
	var f *failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, errBufferOverflow, f.code)
}

func TestBufferReset(t *testing.T) {
	var b Buffer
	b.limit = 64
	require.NoError(t, b.load(codePointsOf("abc")))
	b.reset()
	assert.Equal(t, uint(0), b.end)
	assert.Equal(t, uint(0), b.passive)
	assert.Equal(t, uint(0), b.active)
}
