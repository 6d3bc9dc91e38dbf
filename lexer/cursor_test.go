package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorBasicWalk(t *testing.T) {
	c := NewCursor([]byte("ab"))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, byte('a'), c.Current())
	assert.Equal(t, byte('b'), c.Peek1())

	c.Consume(1)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, byte('b'), c.Current())

	c.Consume(1)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, byte(0), c.Current(), "cursor at one-past-end reads the sentinel")
}

func TestCursorCanConsumeSentinelBoundary(t *testing.T) {
	c := NewCursor([]byte("a"))

	assert.True(t, c.CanConsume(1))
	assert.False(t, c.CanConsume(2))
	assert.True(t, c.CanConsumeSentinel(2))
	assert.False(t, c.CanConsumeSentinel(3))

	c.Consume(1)
	assert.False(t, c.CanConsume(1))
	assert.True(t, c.CanConsumeSentinel(1))
	assert.False(t, c.CanConsumeSentinel(2))
}

func TestCursorConsumePastSentinelPanics(t *testing.T) {
	c := NewCursor([]byte("a"))
	c.Consume(1)
	c.Consume(1) // consuming the sentinel itself is legal, as the EndOfFile consumer does
	require.Panics(t, func() {
		c.Consume(1)
	})
}

func TestCursorPeekOutOfBoundsPanics(t *testing.T) {
	c := NewCursor([]byte("a"))
	require.Panics(t, func() {
		c.Peek(2)
	})
}

func TestCursorSliceAndSetIndex(t *testing.T) {
	c := NewCursor([]byte("hello"))
	assert.Equal(t, "ell", string(c.Slice(1, 3)))

	c.SetIndex(3)
	assert.Equal(t, 3, c.Index())
	assert.Equal(t, byte('l'), c.Current())
}
