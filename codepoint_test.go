package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegMark(t *testing.T) {
	m := newSegMark(5)
	assert.True(t, m.isSegMark())
	assert.False(t, m.isCreationMark())
	assert.True(t, m.isMark())
	assert.Equal(t, 5, m.segMarkIndex())
	assert.Equal(t, "^05", m.String())
}

func TestCreationMark(t *testing.T) {
	m := newCreationMark()
	assert.True(t, m.isCreationMark())
	assert.False(t, m.isSegMark())
	assert.True(t, m.isMark())
	assert.Equal(t, "^00", m.String())
}

func TestOrdinaryCodePoint(t *testing.T) {
	c := codePoint('x')
	assert.False(t, c.isMark())
	assert.Equal(t, "x", c.String())
}

func TestStringRoundTrip(t *testing.T) {
	const s = "héllo, wörld"
	assert.Equal(t, s, stringOf(codePointsOf(s)))
}

func TestRenderMarks(t *testing.T) {
	body := append(codePointsOf("a"), newSegMark(3), codePoint('b'), newCreationMark())
	assert.Equal(t, "a^03b^00", renderMarks(body))
}
