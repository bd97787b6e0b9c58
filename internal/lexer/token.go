package lexer

// TokenType identifies the lexical class of a token
type TokenType string

// Range is a half-open span of rune offsets into the source.
type Range struct {
	Start int // index of the first rune
	End   int // exclusive end index
}

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of runes the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// Slice cuts the covered text out of source. Out-of-bounds ranges
// return the empty string.
func (r Range) Slice(source string) string {
	chars := []rune(source)
	if r.Start < 0 || r.End > len(chars) || r.Start > r.End {
		return ""
	}
	return string(chars[r.Start:r.End])
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Keyword KeyWord // set when Type == KEYWORD
	Span    Range   // rune offsets into the source
	Literal string  // captured value; empty for keywords and punctuation
}

// Token type constants
const (
	// Identifiers and literals
	IDENT   TokenType = "IDENT"   // foo, bar, x, y, ...
	NUMBER  TokenType = "NUMBER"  // 1343456, 3.14
	STRING  TokenType = "STRING"  // "hello", 'hello', `hello`
	BOOLEAN TokenType = "BOOLEAN" // true, false

	// Words and symbols with captured values
	KEYWORD  TokenType = "KEYWORD"  // var, const, namespace, ...
	OPERATOR TokenType = "OPERATOR" // +, -, =, and, or, ...
	ACCESSOR TokenType = "ACCESSOR" // . or ::
	RANGE    TokenType = ".."

	// Punctuation
	COLON         TokenType = ":"
	STATEMENT_END TokenType = ";"
	COMMA         TokenType = ","
	BACKSLASH     TokenType = "\\"
	LBRACKET      TokenType = "["
	RBRACKET      TokenType = "]"
	LPAREN        TokenType = "("
	RPAREN        TokenType = ")"
	LBRACE        TokenType = "{"
	RBRACE        TokenType = "}"

	// Trivia tokens (kept in the stream; the parser skips them)
	WHITESPACE TokenType = "WHITESPACE"
	COMMENT    TokenType = "COMMENT"

	// Reserved classes kept for consumers; the tokenizer never emits them
	CONSTANT   TokenType = "CONSTANT"
	VARIABLE   TokenType = "VARIABLE"
	LINE_BREAK TokenType = "LINE_BREAK"
)

// Description returns the display name used in user-facing diagnostics.
func (t TokenType) Description() string {
	switch t {
	case IDENT:
		return "Identifier"
	case NUMBER:
		return "Number"
	case STRING:
		return "String"
	case BOOLEAN:
		return "Boolean"
	case KEYWORD:
		return "KeyWord"
	case OPERATOR:
		return "Operator"
	case ACCESSOR:
		return "Accessor"
	case RANGE:
		return "Range"
	case COLON:
		return "Colon"
	case STATEMENT_END:
		return "Statement End"
	case COMMA:
		return "Comma"
	case BACKSLASH:
		return "Backslash"
	case LBRACKET, LPAREN, LBRACE:
		return "Opening Delimiter"
	case RBRACKET, RPAREN, RBRACE:
		return "Closing Delimiter"
	case WHITESPACE:
		return "Whitespace"
	case COMMENT:
		return "Comment"
	case CONSTANT:
		return "Constant"
	case VARIABLE:
		return "Variable"
	case LINE_BREAK:
		return "EndOfLine"
	default:
		return string(t)
	}
}

// IsType reports whether the token has the given type.
func (t Token) IsType(tt TokenType) bool {
	return t.Type == tt
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(kw KeyWord) bool {
	return t.Type == KEYWORD && t.Keyword == kw
}

// IsWhitespace reports whether the token is trivia the parser skips
// over (whitespace or a comment).
func (t Token) IsWhitespace() bool {
	return t.Type == WHITESPACE || t.Type == COMMENT
}

// Value returns the token's textual value: the captured literal when
// one exists, the keyword lexeme for keywords, the type's own lexeme
// otherwise.
func (t Token) Value() string {
	if t.Literal != "" {
		return t.Literal
	}
	if t.Type == KEYWORD {
		return string(t.Keyword)
	}
	return string(t.Type)
}
