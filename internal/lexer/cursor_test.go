package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorLookahead(t *testing.T) {
	c := NewCursor("abc")

	assert.Equal(t, 'a', c.First())
	assert.Equal(t, 'b', c.Second())
	assert.Equal(t, 'c', c.NthChar(2))
	assert.Equal(t, EOFChar, c.NthChar(3))
	assert.Equal(t, 0, c.Eaten(), "lookahead must not consume")
}

func TestCursorPeek(t *testing.T) {
	c := NewCursor("ab")

	ch, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', ch)

	prev, ok := c.Prev()
	require.True(t, ok)
	assert.Equal(t, 'a', prev)

	c.Peek()
	assert.True(t, c.IsEOF())

	_, ok = c.Peek()
	assert.False(t, ok)
}

func TestCursorPositionTracking(t *testing.T) {
	c := NewCursor("ab\ncd")

	assert.Equal(t, Position{Line: 1, Column: 0}, c.Pos())

	c.Peek() // a
	assert.Equal(t, Position{Line: 1, Column: 1}, c.Pos())

	c.Peek() // b
	c.Peek() // \n
	assert.Equal(t, Position{Line: 2, Column: 0}, c.Pos())

	c.Peek() // c
	assert.Equal(t, Position{Line: 2, Column: 1}, c.Pos())
}

func TestCursorPeekInc(t *testing.T) {
	c := NewCursor("abcd")

	ch, ok := c.PeekInc(3)
	require.True(t, ok)
	assert.Equal(t, 'c', ch)
	assert.Equal(t, 3, c.Eaten())

	_, ok = c.PeekInc(2)
	assert.False(t, ok, "running past EOF must fail")
}

func TestCursorEatWhile(t *testing.T) {
	c := NewCursor("aaab")

	run := c.EatWhile(func(ch rune) bool { return ch == 'a' })
	assert.Equal(t, "aaa", run)
	assert.Equal(t, 'b', c.First())

	run = c.EatWhile(func(ch rune) bool { return ch == 'x' })
	assert.Equal(t, "", run)
}

func TestCursorEatWhileCursor(t *testing.T) {
	c := NewCursor("ab*/x")

	// the block-comment shape: stop on '*' when '/' follows, consuming
	// the '/' as part of the run
	run := c.EatWhileCursor(func(cur *Cursor, ch rune) bool {
		if ch == '*' && cur.First() == '/' {
			cur.Peek()
			return false
		}
		return true
	})
	assert.Equal(t, "ab*/", run)
	assert.Equal(t, 'x', c.First())
}

func TestCursorSlice(t *testing.T) {
	c := NewCursor("hello world")

	assert.Equal(t, "hello", c.Slice(Range{0, 5}))
	assert.Equal(t, "", c.Slice(Range{9, 99}))
}
