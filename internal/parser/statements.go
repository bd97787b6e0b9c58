package parser

import (
	"fmt"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
)

// parseNamespace parses `namespace a\b\c;` and `namespace a { ... };`.
func (g *AstGenerator) parseNamespace() (*ast.Namespace, *ParserError) {
	if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwNamespace)); !ok {
		return nil, nil
	}
	start := g.currentToken().Span
	var parts []string
	g.skipWhitespace()
	name, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return nil, g.err(
			"Expected a namespace name.",
			"A namespace must always contain a path. A path is a series of identifiers seperated by backslashes.",
			combineRanges(start, g.currentToken().Span),
		)
	}
	for {
		g.skipWhitespace()
		if _, ok := g.tokens.PeekIf(isType(lexer.BACKSLASH)); ok {
			ident, ok := g.tokens.PeekIf(isIdent)
			if !ok {
				return nil, g.err(
					"Expected identifier after backslash.",
					"Namespace sub-directories must always contain a valid identifier. A valid identifier is an expression that contains a letter, number preceeding any letter, or an underscore.",
					combineRanges(start, g.currentToken().Span),
				)
			}
			parts = append(parts, ident.Literal)
			continue
		}
		if amt, _, ok := g.tokens.FindAfter(isType(lexer.LBRACE), isTrivia); ok {
			g.tokens.PeekInc(amt)
			block, err := g.parseBlock()
			if err != nil {
				return nil, err
			}
			if block == nil {
				return nil, g.err(
					"Expected block after namespace with opening brace.",
					"A statement block must always have an end. Identify the end with a curly brace }.",
					g.currentToken().Span,
				)
			}
			if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); !ok {
				return nil, g.err(
					"A semi-colon was expected.",
					"If a namespace is opening a block, it must always end with a semicolon to identify the end of the namespace.",
					g.currentToken().Span,
				)
			}
			ns := ast.NewNamespace(ast.NewPath(name.Literal, parts))
			ns.Body = block
			return ns, nil
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); ok {
			return ast.NewNamespace(ast.NewPath(name.Literal, parts)), nil
		}
		unexpected := g.currentToken()
		g.tokens.Peek()
		return nil, g.errHint(
			"Unable to parse namespace path.",
			"This statement is incomplete. A valid namespace statement contains the namespace keyword followed by a path preceeded with a backslash. A path is a series of identifiers seperated by backslashes.",
			combineRanges(start, unexpected.Span),
			fmt.Sprintf("Unexpected token: %s", unexpected.Type.Description()),
		)
	}
}

// parseStatic parses `static <statement>`, with an optional leading
// visibility keyword. The visibility probe looks past whitespace and
// consumes nothing until the static keyword is confirmed, so `pub var`
// still reaches the variable production with its modifier intact.
func (g *AstGenerator) parseStatic() (*ast.Static, *ParserError) {
	first, ok := g.tokens.First()
	if !ok {
		return nil, nil
	}
	if isVisibilityKeyword(first) {
		if _, _, ok := g.tokens.FindAfterNth(1, isKeywordOf(lexer.KwStatic), isTrivia); !ok {
			return nil, nil
		}
		visibility, _, err := g.parseVisibility()
		if err != nil {
			return nil, err
		}
		g.tokens.Peek() // the static keyword
		g.skipWhitespace()
		stmt, err := g.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, g.err(
				"A statement was expected here.",
				"Expected a statement after a static keyword, but found none.",
				g.currentToken().Span,
			)
		}
		return ast.NewStatic(visibility, stmt), nil
	}
	if !first.IsKeyword(lexer.KwStatic) {
		return nil, nil
	}
	g.tokens.Peek()
	g.skipWhitespace()
	stmt, err := g.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		return nil, g.err(
			"A statement was expected here.",
			"Expected a statement after a static keyword, but found none.",
			g.currentToken().Span,
		)
	}
	return ast.NewStatic(ast.Private, stmt), nil
}

// parseVisibility consumes a visibility keyword and the whitespace after
// it. A non-visibility token declines without consuming anything.
func (g *AstGenerator) parseVisibility() (ast.Visibility, bool, *ParserError) {
	tok, ok := g.tokens.PeekIf(isVisibilityKeyword)
	if !ok {
		return ast.Private, false, nil
	}
	if err := g.skipWhitespaceErr("A statement or static keyword was expected after a visibility modifier but none was found."); err != nil {
		return ast.Private, false, err
	}
	return ast.VisibilityFromKeyword(tok.Keyword), true, nil
}

// parseVariable parses `var` and `const` declarations with an optional
// visibility prefix and an optional `: type` annotation. When the token
// after the visibility is not var or const the production declines; the
// consumed modifier is dropped so `pub function` still reaches the
// function production.
func (g *AstGenerator) parseVariable() (ast.Statement, *ParserError) {
	visibility, _, err := g.parseVisibility()
	if err != nil {
		return nil, err
	}
	keyword, ok := g.tokens.PeekIf(func(t lexer.Token) bool {
		return t.IsKeyword(lexer.KwVar) || t.IsKeyword(lexer.KwConst)
	})
	if !ok {
		return nil, nil
	}
	constant := keyword.Keyword == lexer.KwConst

	if err := g.skipWhitespaceErr("A variable name was expected but none was found."); err != nil {
		return nil, err
	}
	name, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return nil, g.err(
			fmt.Sprintf("Unexpected token: %q", g.currentToken().Type.Description()),
			"A name must follow a variable declaration",
			g.currentToken().Span,
		)
	}

	var typeNode ast.TypeKind
	g.skipWhitespace()
	if _, ok := g.tokens.PeekIf(isType(lexer.COLON)); ok {
		g.skipWhitespace()
		typeNode, err = g.parseTypeKind()
		if err != nil {
			return nil, err
		}
		if typeNode == nil {
			return nil, g.err(
				"A type statement is expected here.",
				"Expected type statement to follow a variable declaration with a colon.",
				g.currentToken().Span,
			)
		}
	}

	if err := g.skipWhitespaceErr("An operator was expected but none was found."); err != nil {
		return nil, err
	}
	if _, ok := g.tokens.PeekIf(isOperatorValue("=")); ok {
		if err := g.skipWhitespaceErr("An expression was expected but none was found."); err != nil {
			return nil, err
		}
		assignment, err := g.parseExpression()
		if err != nil {
			return nil, err
		}
		if assignment == nil {
			return nil, g.err(
				"An expression is expected here.",
				"Expected an expression to follow a variable declaration.",
				g.currentToken().Span,
			)
		}
		if err := g.skipWhitespaceErr("A semicolon was expected but none was found."); err != nil {
			return nil, err
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); !ok {
			return nil, g.err(
				"A semicolon is expected here.",
				"Expected a semicolon to follow a variable declaration.",
				g.currentToken().Span,
			)
		}
		return g.makeVariable(constant, name.Literal, typeNode, visibility, assignment), nil
	}
	if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); ok {
		return g.makeVariable(constant, name.Literal, typeNode, visibility, nil), nil
	}
	return nil, g.err(
		"A semi-colon is expected here.",
		"Expected an end of statement to follow an uninitialized declaration.",
		g.currentToken().Span,
	)
}

func (g *AstGenerator) makeVariable(constant bool, name string, ty ast.TypeKind, visibility ast.Visibility, assignment ast.Expression) ast.Statement {
	if constant {
		c := ast.NewConst(name, ty, visibility, assignment)
		c.NodeID = g.context.NextLocalID()
		return c
	}
	v := ast.NewVar(name, ty, visibility, assignment)
	v.NodeID = g.context.NextLocalID()
	return v
}

// parseFunction parses `function name(inputs): type { ... }`. The name
// is optional. A visibility keyword after `function` is accepted and
// discarded; function nodes surface as Public and the class productions
// override the field for methods.
func (g *AstGenerator) parseFunction() (*ast.Function, *ParserError) {
	if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwFunction)); !ok {
		return nil, nil
	}
	if _, _, err := g.parseVisibility(); err != nil {
		return nil, err
	}
	if err := g.skipWhitespaceErr("A function input list was expected but none was found."); err != nil {
		return nil, err
	}
	name := ""
	if tok, ok := g.tokens.PeekIf(isIdent); ok {
		name = tok.Literal
	}
	if err := g.skipWhitespaceErr("A function input list was expected but none was found."); err != nil {
		return nil, err
	}
	inputs, outputs, ok, err := g.parseFunctionInputs()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, g.err(
			"A function input list is expected here.",
			"Expected a function input list to follow a function declaration.",
			g.currentToken().Span,
		)
	}
	if err := g.skipWhitespaceErr("A block was expected but none was found."); err != nil {
		return nil, err
	}
	block, err := g.parseBlock()
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, g.err(
			"A block is expected here.",
			"Expected a block to follow a function declaration.",
			g.currentToken().Span,
		)
	}
	return &ast.Function{
		Name:       name,
		Inputs:     inputs,
		Body:       block,
		Outputs:    outputs,
		Visibility: ast.Public,
		NodeID:     g.context.NextLocalID(),
	}, nil
}

// parseFunctionInputs parses `(name: type, ...)` plus the optional
// `: returnType` after the closing parenthesis. The return colon must
// sit directly against the parenthesis.
func (g *AstGenerator) parseFunctionInputs() ([]ast.FunctionInput, ast.TypeKind, bool, *ParserError) {
	if _, ok := g.tokens.PeekIf(isType(lexer.LPAREN)); !ok {
		return nil, nil, false, nil
	}
	var inputs []ast.FunctionInput
	for !g.tokens.IsEOF() {
		if err := g.skipWhitespaceErr("Function declaration arguments must be closed."); err != nil {
			return nil, nil, false, err
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RPAREN)); ok {
			break
		}
		paramName, ok := g.tokens.PeekIf(isIdent)
		if !ok {
			return nil, nil, false, g.err(
				"A name is expected here.",
				"Expected a function parameter name but none was found.",
				g.currentToken().Span,
			)
		}
		if err := g.skipWhitespaceErr("Expected a type statement after a function argument declaration."); err != nil {
			return nil, nil, false, err
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.COLON)); !ok {
			return nil, nil, false, g.err(
				"A type statement is expected here.",
				"Expected a type statement to follow a function declaration argument.",
				g.currentToken().Span,
			)
		}
		g.skipWhitespace()
		paramType, err := g.parseTypeKind()
		if err != nil {
			return nil, nil, false, err
		}
		if paramType == nil {
			return nil, nil, false, g.err(
				"A type statement is expected here.",
				"Expected a type statement to follow a function declaration argument.",
				g.currentToken().Span,
			)
		}
		if err := g.skipWhitespaceErr("A comma was expected but none was found."); err != nil {
			return nil, nil, false, err
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.COMMA)); ok {
			inputs = append(inputs, ast.NewFunctionInput(paramName.Literal, paramType))
			continue
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RPAREN)); ok {
			inputs = append(inputs, ast.NewFunctionInput(paramName.Literal, paramType))
			break
		}
		return nil, nil, false, g.err(
			"A right parenthesis is expected here.",
			"Expected a right parenthesis to follow a function argument declaration.",
			g.currentToken().Span,
		)
	}

	var returns ast.TypeKind
	if _, ok := g.tokens.PeekIf(isType(lexer.COLON)); ok {
		if err := g.skipWhitespaceErr("Expected a return type statement after a function declaration."); err != nil {
			return nil, nil, false, err
		}
		var err *ParserError
		returns, err = g.parseTypeKind()
		if err != nil {
			return nil, nil, false, err
		}
		if returns == nil {
			return nil, nil, false, g.err(
				"Expected a return type statement to follow a function declaration.",
				"A return type is expected here.",
				g.currentToken().Span,
			)
		}
	}
	return inputs, returns, true, nil
}

// parseClass parses a class declaration with optional extends and
// implements clauses.
func (g *AstGenerator) parseClass() (*ast.Class, *ParserError) {
	if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwClass)); !ok {
		return nil, nil
	}
	g.skipWhitespace()
	name, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return nil, g.err(
			fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
			"Expected a class name but none was found.",
			g.currentToken().Span,
		)
	}
	g.skipWhitespace()
	extends, err := g.parseClassExtension()
	if err != nil {
		return nil, err
	}
	g.skipWhitespace()
	implements, err := g.parseClassImplementation()
	if err != nil {
		return nil, err
	}
	body, err := g.parseClassBody()
	if err != nil {
		return nil, err
	}
	class := &ast.Class{
		Name:       name.Literal,
		Extends:    extends,
		Implements: implements,
		Body:       ast.NewClassBody(),
		NodeID:     g.context.NextLocalID(),
	}
	if body != nil {
		class.Body = *body
	}
	return class, nil
}

func (g *AstGenerator) parseClassExtension() (string, *ParserError) {
	if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwExtends)); !ok {
		return "", nil
	}
	g.skipWhitespace()
	name, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return "", g.err(
			fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
			"Expected a class name to extend but none was found.",
			g.currentToken().Span,
		)
	}
	return name.Literal, nil
}

func (g *AstGenerator) parseClassImplementation() ([]string, *ParserError) {
	if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwImplements)); !ok {
		return nil, nil
	}
	g.skipWhitespace()
	first, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return nil, g.err(
			"Expected a class name to implement but none was found.",
			fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
			g.currentToken().Span,
		)
	}
	paths := []string{first.Literal}
	for !g.tokens.IsEOF() {
		g.skipWhitespace()
		if _, ok := g.tokens.PeekIf(isType(lexer.COMMA)); !ok {
			break
		}
		g.skipWhitespace()
		name, ok := g.tokens.PeekIf(isIdent)
		if !ok {
			return nil, g.err(
				fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
				"Expected a class name to extend but none was found.",
				g.currentToken().Span,
			)
		}
		paths = append(paths, name.Literal)
	}
	if g.tokens.IsEOF() {
		return nil, g.err(
			fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
			"Expected a class name or interface to implement but none was found.",
			g.currentToken().Span,
		)
	}
	return paths, nil
}

// parseClassBody parses `{ ... }`, partitioning members into
// properties, methods and everything else as they parse.
func (g *AstGenerator) parseClassBody() (*ast.ClassBody, *ParserError) {
	if _, ok := g.tokens.PeekIf(isType(lexer.LBRACE)); !ok {
		return nil, nil
	}
	body := ast.NewClassBody()
	for !g.tokens.IsEOF() && !g.firstIs(lexer.RBRACE) {
		if err := g.skipWhitespaceErr("Expected a right brace to close the class body, found none."); err != nil {
			return nil, err
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RBRACE)); ok {
			break
		}
		property, err := g.parseClassProperty(ast.Private)
		if err != nil {
			return nil, err
		}
		if property != nil {
			body.Properties = append(body.Properties, *property)
			continue
		}
		method, err := g.parseFunction()
		if err != nil {
			return nil, err
		}
		if method != nil {
			body.Methods = append(body.Methods, *method)
			continue
		}
		other, err := g.parseClassAllowedStatement()
		if err != nil {
			return nil, err
		}
		if other != nil {
			body.Other = append(body.Other, *other)
			continue
		}
		return nil, g.err(
			fmt.Sprintf("Unexpected token: %q inside class body.", g.currentToken().Type.Description()),
			"Classes must contain a property, method, import or macro.",
			g.currentToken().Span,
		)
	}
	return &body, nil
}

// parseClassProperty parses `name: type = expr;` members. The colon
// must sit against the name; whitespace before the `=` or the `;` is
// tolerated.
func (g *AstGenerator) parseClassProperty(visibility ast.Visibility) (*ast.ClassProperty, *ParserError) {
	name, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return nil, nil
	}
	var typeNode ast.TypeKind
	if _, ok := g.tokens.PeekIf(isType(lexer.COLON)); ok {
		g.skipWhitespace()
		var err *ParserError
		typeNode, err = g.parseTypeKind()
		if err != nil {
			return nil, err
		}
		if typeNode == nil {
			return nil, g.err(
				"A type statement is expected here.",
				"Expected a type statement to follow a property declaration.",
				g.currentToken().Span,
			)
		}
	}
	g.skipWhitespace()
	if _, ok := g.tokens.PeekIf(isOperatorValue("=")); ok {
		if err := g.skipWhitespaceErr("An expression was expected but none was found."); err != nil {
			return nil, err
		}
		assignment, err := g.parseExpression()
		if err != nil {
			return nil, err
		}
		if assignment == nil {
			return nil, g.err(
				"An expression is expected here.",
				"Expected an expression to follow a variable declaration.",
				g.currentToken().Span,
			)
		}
		if err := g.skipWhitespaceErr("A semicolon was expected but none was found."); err != nil {
			return nil, err
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); !ok {
			return nil, g.err(
				"Expected a semicolon to follow a variable declaration.",
				"A semicolon is expected here.",
				g.currentToken().Span,
			)
		}
		property := ast.NewClassProperty(name.Literal, visibility, typeNode, assignment)
		return &property, nil
	}
	if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); ok {
		property := ast.NewClassProperty(name.Literal, visibility, typeNode, nil)
		return &property, nil
	}
	return nil, g.err(
		"A semi-colon is expected here.",
		"Expected an end of statement to follow an uninitialized declaration.",
		g.currentToken().Span,
	)
}

// parseClassAllowedStatement parses the members a class accepts beyond
// bare properties and methods: visibility-prefixed and static members.
func (g *AstGenerator) parseClassAllowedStatement() (*ast.ClassAllowedStatement, *ParserError) {
	visibility, _, err := g.parseVisibility()
	if err != nil {
		return nil, err
	}
	if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwStatic)); ok {
		g.skipWhitespace()
		property, err := g.parseClassProperty(visibility)
		if err != nil {
			return nil, err
		}
		if property != nil {
			member := ast.NewStaticMember(ast.ClassAllowedStatement{Property: property})
			return &member, nil
		}
		method, err := g.parseFunction()
		if err != nil {
			return nil, err
		}
		if method != nil {
			method.Visibility = visibility
			member := ast.NewStaticMember(ast.ClassAllowedStatement{Method: method})
			return &member, nil
		}
		return nil, g.err(
			fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
			"Expected a property or function declaration but none was found.",
			g.currentToken().Span,
		)
	}
	if err := g.skipWhitespaceErr("Expected a class statement but none was found."); err != nil {
		return nil, err
	}
	property, err := g.parseClassProperty(visibility)
	if err != nil {
		return nil, err
	}
	if property != nil {
		return &ast.ClassAllowedStatement{Property: property}, nil
	}
	method, err := g.parseFunction()
	if err != nil {
		return nil, err
	}
	if method != nil {
		method.Visibility = visibility
		return &ast.ClassAllowedStatement{Method: method}, nil
	}
	return nil, g.err(
		"Expected a property or function declaration but none was found.",
		fmt.Sprintf("Unexpected token: %s", g.currentToken().Type.Description()),
		g.currentToken().Span,
	)
}

// parseBlock parses `{ ... }`. Statements inside ride as expressions;
// bare semicolons become EndOfLine markers and `return` keeps its
// statement shape, carrying a nil expression for a bare `return;`.
func (g *AstGenerator) parseBlock() (*ast.Block, *ParserError) {
	if _, ok := g.tokens.PeekIf(isType(lexer.LBRACE)); !ok {
		return nil, nil
	}
	var expressions []ast.Expression
	for !g.tokens.IsEOF() {
		if err := g.skipWhitespaceErr("Expected a statement to follow a block."); err != nil {
			return nil, err
		}
		expr, err := g.parseExpression()
		if err != nil {
			return nil, err
		}
		if expr != nil {
			expressions = append(expressions, expr)
			continue
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.RBRACE)); ok {
			break
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); ok {
			expressions = append(expressions, &ast.EndOfLine{})
			continue
		}
		if _, ok := g.tokens.PeekIf(isKeywordOf(lexer.KwReturn)); ok {
			g.skipWhitespace()
			value, err := g.parseExpression()
			if err != nil {
				return nil, err
			}
			expressions = append(expressions, ast.NewStatementExpr(ast.NewReturn(value)))
			if _, ok := g.tokens.PeekIf(isType(lexer.STATEMENT_END)); !ok {
				return nil, g.err(
					"Expected an expression here.",
					"Expected an expression to follow a return statement.",
					g.currentToken().Span,
				)
			}
			continue
		}
		return nil, g.err(
			"A statement is expected here.",
			"Expected a statement to follow a block.",
			g.currentToken().Span,
		)
	}
	return ast.NewBlock(expressions), nil
}
