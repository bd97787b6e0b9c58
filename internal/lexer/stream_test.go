package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamOf(src string) *TokenStream {
	return NewTokenStream(Tokenize(src))
}

func TestStreamLookahead(t *testing.T) {
	s := streamOf("a b c")

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, "a", first.Literal)

	second, ok := s.Second()
	require.True(t, ok)
	assert.Equal(t, WHITESPACE, second.Type)

	third, ok := s.Nth(2)
	require.True(t, ok)
	assert.Equal(t, "b", third.Literal)

	assert.Equal(t, 0, s.Eaten(), "lookahead must not consume")

	_, ok = s.Nth(99)
	assert.False(t, ok)
}

func TestStreamPeek(t *testing.T) {
	s := streamOf("a b")

	tok, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Literal)

	prev, ok := s.Prev()
	require.True(t, ok)
	assert.Equal(t, tok, prev)

	s.Peek()
	s.Peek()
	assert.True(t, s.IsEOF())

	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestStreamPeekIf(t *testing.T) {
	s := streamOf("a b")

	_, ok := s.PeekIf(func(tok Token) bool { return tok.Type == NUMBER })
	assert.False(t, ok)
	assert.Equal(t, 0, s.Eaten(), "a declined token must stay put")

	tok, ok := s.PeekIf(func(tok Token) bool { return tok.Type == IDENT })
	require.True(t, ok)
	assert.Equal(t, "a", tok.Literal)
	assert.Equal(t, 1, s.Eaten())
}

func TestStreamPeekInc(t *testing.T) {
	s := streamOf("a b c")

	tok, ok := s.PeekInc(3)
	require.True(t, ok)
	assert.Equal(t, "b", tok.Literal)
	assert.Equal(t, 3, s.Eaten())

	_, ok = s.PeekInc(5)
	assert.False(t, ok)
}

func TestStreamPeekUntil(t *testing.T) {
	s := streamOf("  \n  x")

	tok, ok := s.PeekUntil(func(tok Token) bool { return !tok.IsWhitespace() })
	require.True(t, ok)
	assert.Equal(t, "x", tok.Literal)

	// the match itself is not consumed
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, tok, first)
}

func TestStreamPeekUntilExhaustion(t *testing.T) {
	s := streamOf("   \n\t ")

	_, ok := s.PeekUntil(func(tok Token) bool { return !tok.IsWhitespace() })
	assert.False(t, ok)
	assert.True(t, s.IsEOF(), "a failed scan consumes the rejected run")
}

func TestStreamFindAfter(t *testing.T) {
	s := streamOf("  { x }")

	// skip whitespace, find the opening brace
	idx, tok, ok := s.FindAfter(
		func(tok Token) bool { return tok.Type == LBRACE },
		func(tok Token) bool { return tok.IsWhitespace() },
	)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, LBRACE, tok.Type)
	assert.Equal(t, 0, s.Eaten(), "the scan must not consume")

	// consuming up to the index leaves the found token in front
	s.PeekInc(idx)
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, LBRACE, first.Type)
}

func TestStreamFindAfterStopsAtForeignToken(t *testing.T) {
	s := streamOf("x { }")

	_, _, ok := s.FindAfter(
		func(tok Token) bool { return tok.Type == LBRACE },
		func(tok Token) bool { return tok.IsWhitespace() },
	)
	assert.False(t, ok, "an identifier blocks the scan")
}

func TestStreamFindAfterNth(t *testing.T) {
	s := streamOf("new Foo()")

	// skip the keyword itself, then look for the name past whitespace
	idx, tok, ok := s.FindAfterNth(1,
		func(tok Token) bool { return tok.Type == IDENT },
		func(tok Token) bool { return tok.IsWhitespace() },
	)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Foo", tok.Literal)
}

func TestStreamEatWhile(t *testing.T) {
	s := streamOf("a b 1")

	eaten := s.EatWhile(func(tok Token) bool { return tok.Type != NUMBER })
	assert.Len(t, eaten, 4)

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, NUMBER, first.Type)
}

func TestStreamLen(t *testing.T) {
	s := streamOf("a b")

	assert.Equal(t, 3, s.Len())
	s.Peek()
	assert.Equal(t, 2, s.Len())
}
