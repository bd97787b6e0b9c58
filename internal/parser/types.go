package parser

import (
	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
)

// parseTypeKind parses a type annotation: a built-in name, a reference
// with optional generics, or a pipe-separated union. Trailing
// whitespace after the first name is consumed even when no union
// follows.
func (g *AstGenerator) parseTypeKind() (ast.TypeKind, *ParserError) {
	initial, ok := g.tokens.PeekIf(isIdent)
	if !ok {
		return nil, nil
	}
	name := initial.Literal
	g.skipWhitespace()
	if _, ok := g.tokens.PeekIf(isOperatorValue("|")); !ok {
		if builtIn, ok := ast.LookupBuiltIn(name); ok {
			return builtIn, nil
		}
		generics, err := g.parseTypeGenerics()
		if err != nil {
			return nil, err
		}
		return ast.NewTypeReference(name, generics), nil
	}
	// union type, the name before the first pipe is the first member
	members := []ast.TypeKind{resolveTypeName(name, nil)}
	for {
		if err := g.skipWhitespaceErr("Expected a type reference to follow a union type."); err != nil {
			return nil, err
		}
		member, ok := g.tokens.PeekIf(isIdent)
		if !ok {
			return nil, g.err(
				"A type reference is expected here.",
				"Expected a type reference to follow a union type.",
				g.currentToken().Span,
			)
		}
		generics, err := g.parseTypeGenerics()
		if err != nil {
			return nil, err
		}
		members = append(members, resolveTypeName(member.Literal, generics))
		g.skipWhitespace()
		if _, ok := g.tokens.PeekIf(isOperatorValue("|")); !ok {
			break
		}
	}
	return ast.NewTypeUnion(members), nil
}

// resolveTypeName collapses built-in names into their TypeKind. Generic
// parameters on a built-in are dropped with the reference.
func resolveTypeName(name string, generics []ast.TypeParam) ast.TypeKind {
	if builtIn, ok := ast.LookupBuiltIn(name); ok {
		return builtIn
	}
	return ast.NewTypeReference(name, generics)
}

// parseTypeGenerics parses `<type, type>` parameter lists. Commas are
// optional separators. Exhausting the stream inside an open list
// yields no parameters rather than an error.
func (g *AstGenerator) parseTypeGenerics() ([]ast.TypeParam, *ParserError) {
	if _, ok := g.tokens.PeekIf(isOperatorValue("<")); !ok {
		return nil, nil
	}
	var generics []ast.TypeParam
	for !g.tokens.IsEOF() {
		if err := g.skipWhitespaceErr("Expected a type paramater to follow a typed parameter list."); err != nil {
			return nil, err
		}
		kind, err := g.parseTypeKind()
		if err != nil {
			return nil, err
		}
		if kind != nil {
			generics = append(generics, ast.NewTypeParam(kind))
			continue
		}
		if _, ok := g.tokens.PeekIf(isOperatorValue(">")); ok {
			if len(generics) == 0 {
				return nil, g.err(
					"A type paramater is expected here.",
					"Expected a type paramater to follow a typed parameter list.",
					g.currentToken().Span,
				)
			}
			return generics, nil
		}
		if _, ok := g.tokens.PeekIf(isType(lexer.COMMA)); ok {
			continue
		}
		return nil, g.err(
			"A type paramater is expected here.",
			"Expected a type paramater to follow a typed parameter list.",
			g.currentToken().Span,
		)
	}
	return nil, nil
}
