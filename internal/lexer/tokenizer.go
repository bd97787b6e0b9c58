package lexer

import (
	"strconv"
	"unicode"
)

type LexErrorKind int

const (
	ErrUnknownChar LexErrorKind = iota
	ErrUnterminatedString
)

// LexError records input the tokenizer could not turn into a token.
type LexError struct {
	Kind    LexErrorKind
	Message string
	Span    Range
	Pos     Position
}

func (e LexError) Error() string {
	return e.Message
}

// Tokenizer turns source text into the flat token stream the parser
// consumes. Whitespace and comments are kept as tokens. Rules are tried
// in a fixed order and the first match consumes; a character no rule
// accepts is consumed and recorded on Errors.
type Tokenizer struct {
	cursor *Cursor
	source string

	Errors []LexError
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{cursor: NewCursor(source), source: source}
}

// Tokenize runs a Tokenizer over source and returns the tokens,
// discarding any lexing diagnostics.
func Tokenize(source string) []Token {
	return NewTokenizer(source).Tokenize()
}

// Tokenize consumes the whole input.
func (t *Tokenizer) Tokenize() []Token {
	tokens := []Token{}
	for {
		tok, ok := t.next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// next returns the next token, skipping over unknown characters after
// recording them. Returns false once the input is exhausted.
func (t *Tokenizer) next() (Token, bool) {
	for !t.cursor.IsEOF() {
		start := t.cursor.Eaten()
		if tok, ok := t.eatWhitespace(start); ok {
			return tok, true
		}
		if tok, ok := t.eatComment(start); ok {
			return tok, true
		}
		if tok, ok := t.eatOperator(start); ok {
			return tok, true
		}
		if tok, ok := t.eatKeyword(start); ok {
			return tok, true
		}
		if tok, ok := t.eatBoolean(start); ok {
			return tok, true
		}
		if tok, ok := t.eatIdentifier(start); ok {
			return tok, true
		}
		if tok, ok := t.eatNumber(start); ok {
			return tok, true
		}
		if tok, ok := t.eatString(start); ok {
			return tok, true
		}
		if tok, ok := t.eatValueReserved(start); ok {
			return tok, true
		}
		if tok, ok := t.eatReserved(start); ok {
			return tok, true
		}
		t.eatUnknown(start)
	}
	return Token{}, false
}

func (t *Tokenizer) makeToken(tt TokenType, start int, literal string) Token {
	return Token{
		Type:    tt,
		Span:    Range{Start: start, End: t.cursor.Eaten()},
		Literal: literal,
	}
}

func (t *Tokenizer) addError(kind LexErrorKind, msg string, span Range) {
	t.Errors = append(t.Errors, LexError{
		Kind:    kind,
		Message: msg,
		Span:    span,
		Pos:     t.cursor.Pos(),
	})
}

func (t *Tokenizer) eatWhitespace(start int) (Token, bool) {
	ws := t.cursor.EatWhile(unicode.IsSpace)
	if ws == "" {
		return Token{}, false
	}
	return t.makeToken(WHITESPACE, start, ws), true
}

func (t *Tokenizer) eatComment(start int) (Token, bool) {
	if t.cursor.First() != '/' {
		return Token{}, false
	}
	switch t.cursor.Second() {
	case '/':
		t.cursor.PeekInc(2)
		// line comments run to the line ending without consuming it
		t.cursor.EatWhile(func(ch rune) bool { return ch != '\n' })
	case '*':
		t.cursor.PeekInc(2)
		// the predicate consumes the closing '/' itself before stopping;
		// an unterminated comment runs to EOF
		t.cursor.EatWhileCursor(func(c *Cursor, ch rune) bool {
			if ch == '*' && c.First() == '/' {
				c.Peek()
				return false
			}
			return true
		})
	default:
		return Token{}, false
	}
	raw := t.cursor.Slice(Range{Start: start, End: t.cursor.Eaten()})
	return t.makeToken(COMMENT, start, raw), true
}

func (t *Tokenizer) eatOperator(start int) (Token, bool) {
	switch first := t.cursor.First(); first {
	case '+', '-', '*', '/', '%', '=', '<', '>', '&', '|', '^', '~':
		t.cursor.Peek()
		return t.makeToken(OPERATOR, start, string(first)), true
	case 'o':
		// no word-boundary check: "order" lexes as "or" + "der"
		if t.cursor.Second() == 'r' {
			t.cursor.PeekInc(2)
			return t.makeToken(OPERATOR, start, "or"), true
		}
	case 'a':
		if t.cursor.NthChar(1) == 'n' && t.cursor.NthChar(2) == 'd' {
			t.cursor.PeekInc(3)
			return t.makeToken(OPERATOR, start, "and"), true
		}
	}
	return Token{}, false
}

// eatKeyword matches the longest table entry whose following character
// is whitespace or EOF. A keyword glued to punctuation, like "if(",
// falls through to the identifier rule.
func (t *Tokenizer) eatKeyword(start int) (Token, bool) {
	var segment []rune
	for i := 0; i < MaxKeywordLength; i++ {
		ch := t.cursor.NthChar(i)
		if ch == EOFChar {
			break
		}
		segment = append(segment, ch)
		kw, ok := LookupKeyword(string(segment))
		if !ok {
			continue
		}
		next := t.cursor.NthChar(i + 1)
		if next != EOFChar && !unicode.IsSpace(next) {
			continue
		}
		t.cursor.PeekInc(i + 1)
		tok := t.makeToken(KEYWORD, start, "")
		tok.Keyword = kw
		return tok, true
	}
	return Token{}, false
}

func (t *Tokenizer) eatBoolean(start int) (Token, bool) {
	// exact prefix match, no boundary check: "trueish" lexes as the
	// boolean "true" followed by the identifier "ish"
	for _, word := range []string{"true", "false"} {
		if t.hasPrefix(word) {
			t.cursor.PeekInc(len(word))
			return t.makeToken(BOOLEAN, start, word), true
		}
	}
	return Token{}, false
}

func (t *Tokenizer) hasPrefix(word string) bool {
	for i, ch := range []rune(word) {
		if t.cursor.NthChar(i) != ch {
			return false
		}
	}
	return true
}

func (t *Tokenizer) eatIdentifier(start int) (Token, bool) {
	if !isIdentStart(t.cursor.First()) {
		return Token{}, false
	}
	ident := t.cursor.EatWhile(isIdentPart)
	return t.makeToken(IDENT, start, ident), true
}

// eatNumber reads a digit run. A '.' joins the number only when the
// character after it is another digit, so "5..10" lexes as a number, a
// range and a number while "1.5" stays one token.
func (t *Tokenizer) eatNumber(start int) (Token, bool) {
	if !isDigit(t.cursor.First()) {
		return Token{}, false
	}
	var num []rune
	for {
		ch := t.cursor.First()
		if isDigit(ch) || (ch == '.' && isDigit(t.cursor.Second())) {
			t.cursor.Peek()
			num = append(num, ch)
			continue
		}
		break
	}
	return t.makeToken(NUMBER, start, string(num)), true
}

// eatString reads a literal delimited by ", ' or a backtick. There are
// no escape sequences; the value runs to the next matching delimiter.
// The span includes both delimiters, the literal excludes them.
func (t *Tokenizer) eatString(start int) (Token, bool) {
	delim := t.cursor.First()
	if delim != '"' && delim != '\'' && delim != '`' {
		return Token{}, false
	}
	t.cursor.Peek()
	value := t.cursor.EatWhile(func(ch rune) bool { return ch != delim })
	if _, ok := t.cursor.Peek(); !ok {
		t.addError(
			ErrUnterminatedString,
			"unterminated string literal",
			Range{Start: start, End: t.cursor.Eaten()},
		)
	}
	return t.makeToken(STRING, start, value), true
}

func (t *Tokenizer) eatValueReserved(start int) (Token, bool) {
	switch t.cursor.First() {
	case ':':
		if t.cursor.Second() == ':' {
			t.cursor.PeekInc(2)
			return t.makeToken(ACCESSOR, start, "::"), true
		}
		t.cursor.Peek()
		return t.makeToken(COLON, start, ""), true
	case '.':
		if t.cursor.Second() == '.' {
			t.cursor.PeekInc(2)
			return t.makeToken(RANGE, start, ".."), true
		}
		t.cursor.Peek()
		return t.makeToken(ACCESSOR, start, "."), true
	}
	return Token{}, false
}

func (t *Tokenizer) eatReserved(start int) (Token, bool) {
	var tt TokenType
	switch t.cursor.First() {
	case '[':
		tt = LBRACKET
	case ']':
		tt = RBRACKET
	case '(':
		tt = LPAREN
	case ')':
		tt = RPAREN
	case '{':
		tt = LBRACE
	case '}':
		tt = RBRACE
	case ';':
		tt = STATEMENT_END
	case ',':
		tt = COMMA
	case '\\':
		tt = BACKSLASH
	default:
		return Token{}, false
	}
	t.cursor.Peek()
	return t.makeToken(tt, start, ""), true
}

func (t *Tokenizer) eatUnknown(start int) {
	ch, ok := t.cursor.Peek()
	if !ok {
		return
	}
	t.addError(
		ErrUnknownChar,
		"unknown character "+strconv.QuoteRune(ch),
		Range{Start: start, End: t.cursor.Eaten()},
	)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}
