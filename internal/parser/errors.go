package parser

import (
	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
)

// ParserError is a hard parse failure. Productions are tried in a fixed
// order without backtracking: once a production has consumed tokens it
// either completes or reports one of these, and no sibling production
// gets to retry the same tokens.
type ParserError struct {
	// Message is the primary human-readable description.
	Message string
	// Label is the short secondary line rendered under the offending
	// source.
	Label string
	// Span covers the offending tokens, in rune offsets.
	Span lexer.Range
	// Hint optionally suggests a fix; empty when there is none.
	Hint string
	// Partial is the program body built before the failure. It carries
	// the partial flag so consumers never mistake it for a completed
	// parse.
	Partial *ast.Body
}

// Error returns the primary message.
func (e *ParserError) Error() string {
	return e.Message
}

// combineRanges returns the smallest range covering every input range.
func combineRanges(ranges ...lexer.Range) lexer.Range {
	if len(ranges) == 0 {
		return lexer.Range{}
	}
	out := ranges[0]
	for _, r := range ranges[1:] {
		if r.Start < out.Start {
			out.Start = r.Start
		}
		if r.End > out.End {
			out.End = r.End
		}
	}
	return out
}
