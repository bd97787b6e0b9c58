package parser

import (
	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
)

// AstGenerator builds the program body for a single source. Productions
// try their alternatives in a fixed priority order and never backtrack:
// a production that has consumed tokens either completes or reports a
// ParserError carrying the partial body.
type AstGenerator struct {
	body    *ast.Body
	tokens  *lexer.TokenStream
	context *Context

	precedence PrecedencePolicy

	// runeLen is the source length in runes, the end anchor for
	// exhaustion error spans.
	runeLen int
}

// NewAstGenerator returns a generator for origin. contextID is the id
// the owning store will assign; the context is created eagerly so node
// ids can be handed out while parsing.
func NewAstGenerator(origin SourceOrigin, contextID ContextID) *AstGenerator {
	contents, err := origin.Contents()
	if err != nil {
		contents = ""
	}
	return &AstGenerator{
		body:       ast.NewBody(),
		context:    NewContext(origin, contextID),
		precedence: RightChain(),
		runeLen:    len([]rune(contents)),
	}
}

// Context returns the parsing context the generator fills.
func (g *AstGenerator) Context() *Context {
	return g.context
}

// SetPolicy replaces the operator precedence policy. The default is
// RightChain.
func (g *AstGenerator) SetPolicy(policy PrecedencePolicy) {
	if policy != nil {
		g.precedence = policy
	}
}

// Begin parses the token stream to completion. On a hard error the body
// built so far is returned alongside the error, flagged partial.
func (g *AstGenerator) Begin(tokens *lexer.TokenStream) (*ast.Body, *ParserError) {
	g.tokens = tokens
	for !g.tokens.IsEOF() {
		g.skipWhitespace()
		if err := g.parseNode(); err != nil {
			g.body.AddFlag(ast.FlagPartial)
			return g.body, err
		}
	}
	g.context.Body = g.body
	return g.body, nil
}

// parseNode parses one top-level node: a statement, an expression, or a
// lone trivia token. Anything else is the global-scope error.
func (g *AstGenerator) parseNode() *ParserError {
	start := lexer.Range{}
	if tok, ok := g.tokens.First(); ok {
		start = tok.Span
	}

	stmt, err := g.parseStatement()
	if err != nil {
		return err
	}
	if stmt != nil {
		g.body.PushStatement(stmt, g.spanFrom(start))
		return nil
	}

	expr, err := g.parseExpression()
	if err != nil {
		return err
	}
	if expr != nil {
		g.body.PushExpression(expr, g.spanFrom(start))
		return nil
	}

	if g.currentToken().IsWhitespace() {
		g.tokens.Peek()
		return nil
	}

	return g.err(
		"Missing a valid statement or expression in global scope.",
		"Unable to proceed parsing. A known token was unexpected at this time.",
		combineRanges(start, g.currentToken().Span),
	)
}

// parseStatement tries the statement productions in priority order:
// namespace, static, var/const, function, class.
func (g *AstGenerator) parseStatement() (ast.Statement, *ParserError) {
	ns, err := g.parseNamespace()
	if err != nil {
		return nil, err
	}
	if ns != nil {
		return ns, nil
	}
	static, err := g.parseStatic()
	if err != nil {
		return nil, err
	}
	if static != nil {
		return static, nil
	}
	variable, err := g.parseVariable()
	if err != nil {
		return nil, err
	}
	if variable != nil {
		return variable, nil
	}
	fn, err := g.parseFunction()
	if err != nil {
		return nil, err
	}
	if fn != nil {
		return fn, nil
	}
	class, err := g.parseClass()
	if err != nil {
		return nil, err
	}
	if class != nil {
		return class, nil
	}
	return nil, nil
}

// spanFrom runs a node span from start to the last consumed token.
func (g *AstGenerator) spanFrom(start lexer.Range) lexer.Range {
	if prev, ok := g.tokens.Prev(); ok {
		return lexer.NewRange(start.Start, prev.Span.End)
	}
	return start
}

// currentToken returns the next unconsumed token. At EOF it returns a
// zero-width whitespace stand-in anchored past the last consumed token,
// so error paths always have a token to describe.
func (g *AstGenerator) currentToken() lexer.Token {
	if tok, ok := g.tokens.First(); ok {
		return tok
	}
	end := g.runeLen
	if prev, ok := g.tokens.Prev(); ok {
		end = prev.Span.End
	}
	return lexer.Token{Type: lexer.WHITESPACE, Span: lexer.NewRange(end, end)}
}

// firstIs reports whether the next unconsumed token has the given type.
func (g *AstGenerator) firstIs(tt lexer.TokenType) bool {
	tok, ok := g.tokens.First()
	return ok && tok.Type == tt
}

// skipWhitespace consumes whitespace and comment tokens. Exhausting the
// stream is fine.
func (g *AstGenerator) skipWhitespace() {
	g.tokens.PeekUntil(isSolid)
}

// skipWhitespaceErr consumes whitespace and comment tokens but treats
// exhaustion as a hard error carrying msg. The error spans from where
// the skip began to the end of the source. An already-empty stream
// reports the same error.
func (g *AstGenerator) skipWhitespaceErr(msg string) *ParserError {
	start := g.runeLen
	if tok, ok := g.tokens.First(); ok {
		start = tok.Span.Start
	} else if prev, ok := g.tokens.Prev(); ok {
		start = prev.Span.End
	}
	if _, ok := g.tokens.PeekUntil(isSolid); ok {
		return nil
	}
	return g.err(
		msg,
		"Whitespace terminated the code while parsing an expression or statement. Make sure all code blocks are closed.",
		lexer.NewRange(start, g.runeLen),
	)
}

// err builds a hard error carrying the body built so far.
func (g *AstGenerator) err(message, label string, span lexer.Range) *ParserError {
	return &ParserError{Message: message, Label: label, Span: span, Partial: g.body}
}

// errHint is err with a fix suggestion attached.
func (g *AstGenerator) errHint(message, label string, span lexer.Range, hint string) *ParserError {
	e := g.err(message, label, span)
	e.Hint = hint
	return e
}

// Token predicates shared by the productions.

func isSolid(t lexer.Token) bool { return !t.IsWhitespace() }

func isTrivia(t lexer.Token) bool { return t.IsWhitespace() }

func isIdent(t lexer.Token) bool { return t.Type == lexer.IDENT }

func isType(tt lexer.TokenType) func(lexer.Token) bool {
	return func(t lexer.Token) bool { return t.Type == tt }
}

func isKeywordOf(kw lexer.KeyWord) func(lexer.Token) bool {
	return func(t lexer.Token) bool { return t.IsKeyword(kw) }
}

func isOperatorValue(value string) func(lexer.Token) bool {
	return func(t lexer.Token) bool { return t.Type == lexer.OPERATOR && t.Literal == value }
}

func isVisibilityKeyword(t lexer.Token) bool {
	return t.Type == lexer.KEYWORD && t.Keyword.IsVisibility()
}
