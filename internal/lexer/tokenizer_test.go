package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Basic(t *testing.T) {
	input := `var x = 5;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{KEYWORD, ""},
		{WHITESPACE, " "},
		{IDENT, "x"},
		{WHITESPACE, " "},
		{OPERATOR, "="},
		{WHITESPACE, " "},
		{NUMBER, "5"},
		{STATEMENT_END, ""},
	}

	tokens := Tokenize(input)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}

	if tokens[0].Keyword != KwVar {
		t.Fatalf("tests[0] - keyword wrong. expected=%q, got=%q",
			KwVar, tokens[0].Keyword)
	}
}

func TestTokenize_Empty(t *testing.T) {
	tokens := Tokenize("")
	require.Empty(t, tokens)

	tz := NewTokenizer("")
	tz.Tokenize()
	assert.Empty(t, tz.Errors)
}

func TestTokenize_Keywords(t *testing.T) {
	input := `namespace const var function class interface type if else pub priv prot static return break continue for while do new extends implements drop use `

	expected := []KeyWord{
		KwNamespace, KwConst, KwVar, KwFunction, KwClass, KwInterface,
		KwType, KwIf, KwElse, KwPublic, KwPrivate, KwProtected, KwStatic,
		KwReturn, KwBreak, KwContinue, KwFor, KwWhile, KwDo, KwNew,
		KwExtends, KwImplements, KwDrop, KwUse,
	}

	var got []KeyWord
	for _, tok := range Tokenize(input) {
		if tok.Type == WHITESPACE {
			continue
		}
		if tok.Type != KEYWORD {
			t.Fatalf("expected only keywords, got %q (%q)", tok.Type, tok.Value())
		}
		got = append(got, tok.Keyword)
	}

	require.Equal(t, expected, got)
}

func TestTokenize_Operators(t *testing.T) {
	input := `+ - * / % = < > & | ^ ~ or and`

	expected := []string{
		"+", "-", "*", "/", "%", "=", "<", ">", "&", "|", "^", "~", "or", "and",
	}

	var got []string
	for _, tok := range Tokenize(input) {
		if tok.Type == WHITESPACE {
			continue
		}
		if tok.Type != OPERATOR {
			t.Fatalf("expected only operators, got %q (%q)", tok.Type, tok.Value())
		}
		got = append(got, tok.Literal)
	}

	require.Equal(t, expected, got)
}

func TestTokenize_Declaration(t *testing.T) {
	input := `const y: int | string = "a";`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{KEYWORD, ""},
		{WHITESPACE, " "},
		{IDENT, "y"},
		{COLON, ""},
		{WHITESPACE, " "},
		{IDENT, "int"},
		{WHITESPACE, " "},
		{OPERATOR, "|"},
		{WHITESPACE, " "},
		{IDENT, "string"},
		{WHITESPACE, " "},
		{OPERATOR, "="},
		{WHITESPACE, " "},
		{STRING, "a"},
		{STATEMENT_END, ""},
	}

	tokens := Tokenize(input)
	require.Len(t, tokens, len(tests))

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}

	// span of the string token covers both quotes, the literal neither
	str := tokens[13]
	assert.Equal(t, 3, str.Span.Len())
	assert.Equal(t, `"a"`, str.Span.Slice(input))
}

func TestTokenize_NamespacePath(t *testing.T) {
	input := `namespace a\b\c;`

	expected := []TokenType{
		KEYWORD, WHITESPACE, IDENT, BACKSLASH, IDENT, BACKSLASH, IDENT,
		STATEMENT_END,
	}

	tokens := Tokenize(input)
	require.Len(t, tokens, len(expected))
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Fatalf("step %d - expected token %q, got %q", i, typ, tokens[i].Type)
		}
	}
}

func TestTokenize_NumbersAndRanges(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "integer",
			input: "123",
			expected: []Token{
				{Type: NUMBER, Span: Range{0, 3}, Literal: "123"},
			},
		},
		{
			name:  "float",
			input: "1.5",
			expected: []Token{
				{Type: NUMBER, Span: Range{0, 3}, Literal: "1.5"},
			},
		},
		{
			name:  "range between numbers",
			input: "5..10",
			expected: []Token{
				{Type: NUMBER, Span: Range{0, 1}, Literal: "5"},
				{Type: RANGE, Span: Range{1, 3}, Literal: ".."},
				{Type: NUMBER, Span: Range{3, 5}, Literal: "10"},
			},
		},
		{
			name:  "trailing dot stays an accessor",
			input: "5.x",
			expected: []Token{
				{Type: NUMBER, Span: Range{0, 1}, Literal: "5"},
				{Type: ACCESSOR, Span: Range{1, 2}, Literal: "."},
				{Type: IDENT, Span: Range{2, 3}, Literal: "x"},
			},
		},
		{
			name:  "digit led name splits",
			input: "123abc",
			expected: []Token{
				{Type: NUMBER, Span: Range{0, 3}, Literal: "123"},
				{Type: IDENT, Span: Range{3, 6}, Literal: "abc"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{name: "double quoted", input: `"hello"`, literal: "hello"},
		{name: "single quoted", input: `'hello'`, literal: "hello"},
		{name: "backtick", input: "`hello`", literal: "hello"},
		{name: "empty", input: `""`, literal: ""},
		{name: "no escapes", input: `"a\n"`, literal: `a\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, STRING, tokens[0].Type)
			assert.Equal(t, tt.literal, tokens[0].Literal)
			assert.Equal(t, tt.input, tokens[0].Span.Slice(tt.input))
		})
	}
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tz := NewTokenizer(`"abc`)
	tokens := tz.Tokenize()

	require.Len(t, tokens, 1)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "abc", tokens[0].Literal)

	require.Len(t, tz.Errors, 1)
	assert.Equal(t, ErrUnterminatedString, tz.Errors[0].Kind)
}

func TestTokenize_Comments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "line comment stops before newline",
			input: "// hi\nx",
			expected: []Token{
				{Type: COMMENT, Span: Range{0, 5}, Literal: "// hi"},
				{Type: WHITESPACE, Span: Range{5, 6}, Literal: "\n"},
				{Type: IDENT, Span: Range{6, 7}, Literal: "x"},
			},
		},
		{
			name:  "block comment consumes terminator",
			input: "/* a */x",
			expected: []Token{
				{Type: COMMENT, Span: Range{0, 7}, Literal: "/* a */"},
				{Type: IDENT, Span: Range{7, 8}, Literal: "x"},
			},
		},
		{
			name:  "unterminated block comment runs to EOF",
			input: "/* a",
			expected: []Token{
				{Type: COMMENT, Span: Range{0, 4}, Literal: "/* a"},
			},
		},
		{
			name:  "lone slash is an operator",
			input: "/",
			expected: []Token{
				{Type: OPERATOR, Span: Range{0, 1}, Literal: "/"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

// The rules have no word-boundary checks outside the keyword rule; the
// resulting splits are part of the language's observable behavior.
func TestTokenize_Quirks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "or swallows identifier heads", input: "order", expected: []string{"or", "der"}},
		{name: "and swallows identifier heads", input: "android", expected: []string{"and", "roid"}},
		{name: "boolean prefix splits", input: "trueish", expected: []string{"true", "ish"}},
		{name: "keyword glued to punctuation is an identifier", input: "if(", expected: []string{"if", "("}},
		{name: "keyword glued to semicolon is an identifier", input: "var;", expected: []string{"var", ";"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, tok := range Tokenize(tt.input) {
				got = append(got, tok.Value())
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenize_UnknownChars(t *testing.T) {
	tz := NewTokenizer("a ! b # c")
	tokens := tz.Tokenize()

	var kinds []TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []TokenType{
		IDENT, WHITESPACE, WHITESPACE, IDENT, WHITESPACE, WHITESPACE, IDENT,
	}, kinds)

	require.Len(t, tz.Errors, 2)
	assert.Equal(t, ErrUnknownChar, tz.Errors[0].Kind)
	assert.Equal(t, `unknown character '!'`, tz.Errors[0].Message)
	assert.Equal(t, Range{2, 3}, tz.Errors[0].Span)
	assert.Equal(t, `unknown character '#'`, tz.Errors[1].Message)
}

// Every span must slice the source back to the exact lexeme, and the
// spans of the whole stream must tile the input.
func TestTokenize_SpanRoundTrip(t *testing.T) {
	sources := []string{
		`var x = 5;`,
		`const y: int | string = "a";`,
		"namespace a\\b\\c;",
		"function foo(x: int, y: int): int { }",
		"// note\nclass A extends B { }\n/* block */",
		"var list = [1, 2, 3];\nvar obj = {a: 1, b: 2};",
		"x :: y . z .. w",
	}

	for _, src := range sources {
		tokens := Tokenize(src)
		var rebuilt string
		last := 0
		for i, tok := range tokens {
			require.Equalf(t, last, tok.Span.Start,
				"source %q token %d: spans must tile", src, i)
			rebuilt += tok.Span.Slice(src)
			last = tok.Span.End
		}
		require.Equal(t, src, rebuilt)
	}
}

func TestTokenTypeDescriptions(t *testing.T) {
	tests := []struct {
		tt       TokenType
		expected string
	}{
		{IDENT, "Identifier"},
		{STRING, "String"},
		{STATEMENT_END, "Statement End"},
		{LINE_BREAK, "EndOfLine"},
		{LBRACKET, "Opening Delimiter"},
		{LPAREN, "Opening Delimiter"},
		{LBRACE, "Opening Delimiter"},
		{RBRACKET, "Closing Delimiter"},
		{RPAREN, "Closing Delimiter"},
		{RBRACE, "Closing Delimiter"},
		{KEYWORD, "KeyWord"},
		{ACCESSOR, "Accessor"},
		{RANGE, "Range"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tt.Description())
	}
}
