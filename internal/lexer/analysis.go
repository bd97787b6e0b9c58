package lexer

import (
	"fmt"
	"strings"
)

// AnalysisError is a pre-parse lint finding.
type AnalysisError struct {
	Message string
	Span    Range
}

func (e *AnalysisError) Error() string {
	return e.Message
}

// Analyze runs fast pre-parse checks over a raw token slice and returns
// the first finding. The checks work on tokens alone and catch input
// the parser would otherwise report confusingly: two names in a row, a
// string missing its closing delimiter, and names that start with a
// digit.
func Analyze(tokens []Token) error {
	for i, tok := range tokens {
		switch tok.Type {
		case STRING:
			// a terminated string's span covers the literal plus both
			// delimiters; one delimiter short means it ran to EOF
			if tok.Span.Len() == len([]rune(tok.Literal))+1 {
				return &AnalysisError{
					Message: fmt.Sprintf("string %q is never closed", tok.Literal),
					Span:    tok.Span,
				}
			}
		case IDENT:
			if next, ok := nextSolid(tokens, i); ok && next.Type == IDENT {
				return &AnalysisError{
					Message: fmt.Sprintf(
						"unexpected identifier %q after %q",
						next.Literal, tok.Literal,
					),
					Span: next.Span,
				}
			}
		case NUMBER:
			if i+1 < len(tokens) && tokens[i+1].Type == IDENT &&
				tokens[i+1].Span.Start == tok.Span.End {
				return &AnalysisError{
					Message: fmt.Sprintf(
						"a name may not start with a number: %q",
						tok.Literal+tokens[i+1].Literal,
					),
					Span: Range{Start: tok.Span.Start, End: tokens[i+1].Span.End},
				}
			}
		}
	}
	return nil
}

// nextSolid returns the first non-trivia token after index i, stopping
// at a line ending so two names on separate lines are left to the
// parser.
func nextSolid(tokens []Token, i int) (Token, bool) {
	for j := i + 1; j < len(tokens); j++ {
		tok := tokens[j]
		if tok.Type == WHITESPACE {
			if strings.ContainsRune(tok.Literal, '\n') {
				return Token{}, false
			}
			continue
		}
		if tok.Type == COMMENT {
			continue
		}
		return tok, true
	}
	return Token{}, false
}
