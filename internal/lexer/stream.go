package lexer

// TokenStream is a buffered reader over a token slice with
// non-consuming lookahead. Tokens come out in input order; lookahead
// never reorders or drops anything.
type TokenStream struct {
	tokens  []Token
	pos     int
	prev    Token
	hasPrev bool
}

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// First returns the next token without consuming it.
func (s *TokenStream) First() (Token, bool) {
	return s.Nth(0)
}

// Second returns the token after First without consuming anything.
func (s *TokenStream) Second() (Token, bool) {
	return s.Nth(1)
}

// Nth returns the token n places ahead without consuming anything.
func (s *TokenStream) Nth(n int) (Token, bool) {
	if n < 0 || s.pos+n >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos+n], true
}

// Peek consumes a single token and records it as the previous token.
func (s *TokenStream) Peek() (Token, bool) {
	if s.IsEOF() {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	s.prev = tok
	s.hasPrev = true
	return tok, true
}

// PeekIf consumes the next token only when pred accepts it. A declined
// token stays in the stream untouched.
func (s *TokenStream) PeekIf(pred func(Token) bool) (Token, bool) {
	tok, ok := s.First()
	if !ok || !pred(tok) {
		return Token{}, false
	}
	return s.Peek()
}

// PeekInc consumes exactly n tokens and returns the last one consumed.
func (s *TokenStream) PeekInc(n int) (Token, bool) {
	var tok Token
	var ok bool
	for i := 0; i < n; i++ {
		tok, ok = s.Peek()
		if !ok {
			return Token{}, false
		}
	}
	return tok, ok
}

// PeekUntil consumes tokens while pred rejects them and returns the
// first accepted token without consuming it. Exhausting the stream
// returns false, which callers surface as an unterminated construct.
func (s *TokenStream) PeekUntil(pred func(Token) bool) (Token, bool) {
	for {
		tok, ok := s.First()
		if !ok {
			return Token{}, false
		}
		if pred(tok) {
			return tok, true
		}
		s.Peek()
	}
}

// FindAfter scans ahead without consuming anything. Tokens accepted by
// after are skipped over; the scan ends at the first token accepted by
// find, or fails at the first token accepted by neither. Returns the
// match and its distance from the front of the stream.
func (s *TokenStream) FindAfter(find, after func(Token) bool) (int, Token, bool) {
	return s.FindAfterNth(0, find, after)
}

// FindAfterNth is FindAfter with the first skip tokens accepted
// unconditionally.
func (s *TokenStream) FindAfterNth(skip int, find, after func(Token) bool) (int, Token, bool) {
	for i := 0; ; i++ {
		tok, ok := s.Nth(i)
		if !ok {
			return 0, Token{}, false
		}
		if i < skip {
			continue
		}
		if after(tok) {
			continue
		}
		if find(tok) {
			return i, tok, true
		}
		return 0, Token{}, false
	}
}

// EatWhile consumes tokens while pred accepts them and returns the
// consumed run.
func (s *TokenStream) EatWhile(pred func(Token) bool) []Token {
	var eaten []Token
	for {
		tok, ok := s.First()
		if !ok || !pred(tok) {
			return eaten
		}
		s.Peek()
		eaten = append(eaten, tok)
	}
}

// Eaten returns the number of tokens consumed so far.
func (s *TokenStream) Eaten() int {
	return s.pos
}

// Len returns the number of tokens left in the stream.
func (s *TokenStream) Len() int {
	return len(s.tokens) - s.pos
}

// Prev returns the token most recently consumed.
func (s *TokenStream) Prev() (Token, bool) {
	return s.prev, s.hasPrev
}

func (s *TokenStream) IsEOF() bool {
	return s.pos >= len(s.tokens)
}
