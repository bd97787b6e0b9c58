package parser

import (
	"fmt"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
)

// parseExpression parses one operand and hands it to the active
// precedence policy, which decides how trailing binary operators
// attach.
func (g *AstGenerator) parseExpression() (ast.Expression, *ParserError) {
	left, err := g.parsePrimary()
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, nil
	}
	return g.precedence.Attach(g, left)
}

// parsePrimary tries each operand production in priority order. The
// statement production runs before objects so a block check has
// already happened when the object production sees a left brace.
func (g *AstGenerator) parsePrimary() (ast.Expression, *ParserError) {
	stmt, err := g.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt != nil {
		return ast.NewStatementExpr(stmt), nil
	}
	call, err := g.parseCallExpression()
	if err != nil {
		return nil, err
	}
	if call != nil {
		return call, nil
	}
	member, err := g.parseMemberExpression()
	if err != nil {
		return nil, err
	}
	if member != nil {
		return member, nil
	}
	newCall, err := g.parseNewExpression()
	if err != nil {
		return nil, err
	}
	if newCall != nil {
		return newCall, nil
	}
	array, err := g.parseArrayExpression()
	if err != nil {
		return nil, err
	}
	if array != nil {
		return array, nil
	}
	object, err := g.parseObjectExpression()
	if err != nil {
		return nil, err
	}
	if object != nil {
		return object, nil
	}
	literal := g.parseLiteralExpression()
	if literal != nil {
		return literal, nil
	}
	return nil, nil
}

// parseCallExpression parses `name(args)`. Nothing is consumed unless
// the parenthesis directly follows the identifier.
func (g *AstGenerator) parseCallExpression() (*ast.Call, *ParserError) {
	identifier, ok := g.tokens.First()
	if !ok || !isIdent(identifier) {
		return nil, nil
	}
	args, ok, err := g.parseFunctionCallInputs()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return ast.NewCallExpr(identifier.Literal, args), nil
}

// parseMemberExpression parses `left.right` and `left::right` chains.
// The accessor must directly follow the identifier; the right side is a
// full expression, so chains nest rightward.
func (g *AstGenerator) parseMemberExpression() (*ast.Member, *ParserError) {
	identifier, ok := g.tokens.First()
	if !ok || !isIdent(identifier) {
		return nil, nil
	}
	accessor, ok := g.tokens.Second()
	if !ok || accessor.Type != lexer.ACCESSOR {
		return nil, nil
	}
	lookup := ast.LookupDynamic
	if accessor.Literal == "::" {
		lookup = ast.LookupStatic
	}
	g.tokens.PeekInc(2)
	right, err := g.parseExpression()
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, g.err(
			"An expression was expected here.",
			"Expected an expression to follow a property member.",
			g.currentToken().Span,
		)
	}
	return ast.NewMember(right, identifier, lookup), nil
}

// parseNewExpression parses `new Name(args)`. Whitespace between the
// keyword and the name is allowed.
func (g *AstGenerator) parseNewExpression() (*ast.NewCall, *ParserError) {
	first, ok := g.tokens.First()
	if !ok || !first.IsKeyword(lexer.KwNew) {
		return nil, nil
	}
	inc, name, found := g.tokens.FindAfterNth(1, isIdent, isTrivia)
	if !found {
		span := g.currentToken().Span
		if second, ok := g.tokens.Second(); ok {
			span = second.Span
		}
		return nil, g.err(
			"A name was expected here.",
			"Expected a name to follow a new expression.",
			span,
		)
	}
	g.tokens.PeekInc(inc)
	args, ok, err := g.parseFunctionCallInputs()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, g.err(
			"Function inputs expected here.",
			"Expected a function call inputs to follow a new expression.",
			g.currentToken().Span,
		)
	}
	return &ast.NewCall{Name: name.Literal, Arguments: args}, nil
}

// parseArrayExpression parses `[a, b, c]`.
func (g *AstGenerator) parseArrayExpression() (*ast.Array, *ParserError) {
	if _, ok := g.tokens.PeekIf(isType(lexer.LBRACKET)); !ok {
		return nil, nil
	}
	var elements []ast.Expression
	for !g.tokens.IsEOF() {
		if err := g.skipWhitespaceErr("Array's must be closed."); err != nil {
			return nil, err
		}
		element, err := g.parseExpression()
		if err != nil {
			return nil, err
		}
		if element != nil {
			if err := g.skipWhitespaceErr("Array's must be closed."); err != nil {
				return nil, err
			}
			if _, ok := g.tokens.PeekIf(isType(lexer.COMMA)); ok {
				elements = append(elements, element)
				continue
			}
			if err := g.skipWhitespaceErr("Array's must be closed."); err != nil {
				return nil, err
			}
			if _, ok := g.tokens.PeekIf(isType(lexer.RBRACKET)); ok {
				elements = append(elements, element)
				return ast.NewArray(elements, nil), nil
			}
			return nil, g.err(
				"A comma is expected here.",
				"A comma is required to seperate array elements.",
				g.currentToken().Span,
			)
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RBRACKET)); ok {
			return ast.NewArray(elements, nil), nil
		}
		return nil, g.err(
			fmt.Sprintf("Unexpected Token: %s", g.currentToken().Type.Description()),
			"Expected an expression to follow an array element.",
			g.currentToken().Span,
		)
	}
	return nil, g.err(
		"Array's must be closed.",
		"Whitespace terminated the code while parsing an expression or statement. Make sure all code blocks are closed.",
		lexer.NewRange(g.currentToken().Span.Start, g.runeLen),
	)
}

// parseObjectExpression parses `{name: expr, ...}`. The colon must sit
// against the property name so member accessors stay unambiguous.
func (g *AstGenerator) parseObjectExpression() (*ast.Object, *ParserError) {
	if _, ok := g.tokens.PeekIf(isType(lexer.LBRACE)); !ok {
		return nil, nil
	}
	object := ast.EmptyObject()
	for !g.tokens.IsEOF() {
		if err := g.skipWhitespaceErr("Object body must be closed."); err != nil {
			return nil, err
		}
		property, ok := g.tokens.PeekIf(isIdent)
		if ok {
			if _, ok := g.tokens.PeekIf(isType(lexer.COLON)); !ok {
				return nil, g.err(
					fmt.Sprintf("Unexpected Token: %s", g.currentToken().Type.Description()),
					"Expected a colon to follow a property name.",
					g.currentToken().Span,
				)
			}
			if err := g.skipWhitespaceErr("Object body must be closed."); err != nil {
				return nil, err
			}
			expression, err := g.parseExpression()
			if err != nil {
				return nil, err
			}
			if expression == nil {
				return nil, g.err(
					"An expression was expected here.",
					"Expected an expression to follow a property.",
					g.currentToken().Span,
				)
			}
			prop := ast.NewObjectProperty(property.Literal, expression)
			if _, ok := g.tokens.PeekIf(isType(lexer.COMMA)); ok {
				object.Properties = append(object.Properties, prop)
				continue
			}
			if err := g.skipWhitespaceErr("Object body must be closed."); err != nil {
				return nil, err
			}
			if _, ok := g.tokens.PeekIf(isType(lexer.RBRACE)); ok {
				object.Properties = append(object.Properties, prop)
				return object, nil
			}
			return nil, g.err(
				"A right brace was expected here.",
				"Expected a right brace to close an object body.",
				g.currentToken().Span,
			)
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RBRACE)); ok {
			return object, nil
		}
		return nil, g.err(
			"An object property was expected here.",
			"Expected an object property to follow an object element.",
			g.currentToken().Span,
		)
	}
	return nil, g.err(
		"Object body must be closed.",
		"Whitespace terminated the code while parsing an expression or statement. Make sure all code blocks are closed.",
		lexer.NewRange(g.currentToken().Span.Start, g.runeLen),
	)
}

// parseLiteralExpression consumes a single value-carrying token.
func (g *AstGenerator) parseLiteralExpression() *ast.Literal {
	tok, ok := g.tokens.PeekIf(func(t lexer.Token) bool {
		switch t.Type {
		case lexer.IDENT, lexer.NUMBER, lexer.STRING, lexer.BOOLEAN:
			return true
		}
		return false
	})
	if !ok {
		return nil
	}
	return ast.NewLiteral(tok.Value(), nil)
}

// parseFunctionCallInputs parses `(a, b)` when the parenthesis is the
// second upcoming token. Nothing is consumed on decline, which lets the
// call and new productions probe without committing.
func (g *AstGenerator) parseFunctionCallInputs() ([]ast.Expression, bool, *ParserError) {
	second, ok := g.tokens.Second()
	if !ok || second.Type != lexer.LPAREN {
		return nil, false, nil
	}
	g.tokens.PeekInc(2)
	inputs := []ast.Expression{}
	for !g.tokens.IsEOF() {
		if err := g.skipWhitespaceErr("Function arguments must be closed."); err != nil {
			return nil, false, err
		}
		expr, err := g.parseExpression()
		if err != nil {
			return nil, false, err
		}
		if expr != nil {
			if _, ok := g.tokens.PeekIf(isType(lexer.COMMA)); ok {
				inputs = append(inputs, expr)
				continue
			}
			if _, ok := g.tokens.PeekIf(isType(lexer.RPAREN)); ok {
				inputs = append(inputs, expr)
				return inputs, true, nil
			}
			return nil, false, g.err(
				"A comma is expected here.",
				"Expected a comma to follow a function input.",
				g.currentToken().Span,
			)
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RPAREN)); ok {
			return inputs, true, nil
		}
		return nil, false, g.err(
			"An expression is expected here.",
			"Expected an expression to follow a function input.",
			g.currentToken().Span,
		)
	}
	return nil, false, g.err(
		"An expression is expected here.",
		"Expected an expression to follow a function input.",
		g.currentToken().Span,
	)
}

// peekOperator reports the operator run at the front of the stream
// without consuming it. Directly adjacent operator tokens fuse into one
// lexeme so `+=` and `<<=` read as single operators; a gap between
// operator tokens ends the run.
func (g *AstGenerator) peekOperator() (string, lexer.Range, int, bool) {
	first, ok := g.tokens.First()
	if !ok || first.Type != lexer.OPERATOR {
		return "", lexer.Range{}, 0, false
	}
	lexeme := first.Value()
	span := first.Span
	width := 1
	for {
		next, ok := g.tokens.Nth(width)
		if !ok || next.Type != lexer.OPERATOR || next.Span.Start != span.End {
			break
		}
		lexeme += next.Value()
		span = lexer.NewRange(span.Start, next.Span.End)
		width++
	}
	return lexeme, span, width, true
}

// consumeOperator consumes the fused operator run at the front of the
// stream and resolves it. An unknown fusion is a hard error carrying
// the offending lexeme.
func (g *AstGenerator) consumeOperator() (*ast.Op, *ParserError) {
	lexeme, span, width, ok := g.peekOperator()
	if !ok {
		return nil, nil
	}
	g.tokens.PeekInc(width)
	op, ok := ast.OpFromString(lexeme)
	if !ok {
		return nil, g.err(
			fmt.Sprintf("Unknown operator: %q", lexeme),
			lexeme,
			span,
		)
	}
	return &op, nil
}
