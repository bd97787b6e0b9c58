package parser

import (
	"github.com/surn-lang/surn/internal/ast"
)

// PrecedencePolicy decides how binary operators attach to a parsed
// operand. The generator parses the left operand and delegates the
// rest of the expression to the policy.
type PrecedencePolicy interface {
	Name() string
	Attach(g *AstGenerator, left ast.Expression) (ast.Expression, *ParserError)
}

// RightChain is the default policy. Every operator chains through a
// full recursive expression parse, so `a * b + c` nests as
// `a * (b + c)` regardless of the operators involved.
func RightChain() PrecedencePolicy {
	return rightChain{}
}

type rightChain struct{}

func (rightChain) Name() string {
	return "legacy"
}

func (rightChain) Attach(g *AstGenerator, left ast.Expression) (ast.Expression, *ParserError) {
	g.skipWhitespace()
	op, err := g.consumeOperator()
	if err != nil {
		return nil, err
	}
	if op == nil {
		return left, nil
	}
	g.skipWhitespace()
	right, err := g.parseExpression()
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, g.err(
			"An expression is expected here.",
			"Expected an expression to follow an operation.",
			g.currentToken().Span,
		)
	}
	return ast.NewOperation(left, *op, right), nil
}

// Climbing is a precedence climbing policy over bindingPower. It
// produces conventional groupings: `a + b * c` nests the product and
// assignment operators associate to the right.
func Climbing() PrecedencePolicy {
	return climbing{}
}

type climbing struct{}

func (climbing) Name() string {
	return "climbing"
}

func (c climbing) Attach(g *AstGenerator, left ast.Expression) (ast.Expression, *ParserError) {
	return c.attach(g, left, 0)
}

func (c climbing) attach(g *AstGenerator, left ast.Expression, min int) (ast.Expression, *ParserError) {
	for {
		g.skipWhitespace()
		lexeme, _, width, ok := g.peekOperator()
		if !ok {
			return left, nil
		}
		op, known := ast.OpFromString(lexeme)
		if !known {
			// consumeOperator re-peeks the same run and reports it
			if _, err := g.consumeOperator(); err != nil {
				return nil, err
			}
			return left, nil
		}
		power, rightAssoc := bindingPower(lexeme)
		if power < min {
			return left, nil
		}
		g.tokens.PeekInc(width)
		g.skipWhitespace()
		right, err := g.parsePrimary()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, g.err(
				"An expression is expected here.",
				"Expected an expression to follow an operation.",
				g.currentToken().Span,
			)
		}
		nextMin := power + 1
		if rightAssoc {
			nextMin = power
		}
		right, err = c.attach(g, right, nextMin)
		if err != nil {
			return nil, err
		}
		left = ast.NewOperation(left, op, right)
	}
}

// bindingPower maps an operator lexeme to its precedence tier. Higher
// binds tighter. The second result marks right associativity.
func bindingPower(lexeme string) (int, bool) {
	switch lexeme {
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=":
		return 10, true
	case "or", "||":
		return 20, false
	case "and", "&&":
		return 25, false
	case "==", "!=", "<", ">", "<=", ">=":
		return 30, false
	case "|":
		return 34, false
	case "^":
		return 36, false
	case "&":
		return 38, false
	case "<<", ">>":
		return 40, false
	case "+", "-":
		return 50, false
	case "*", "/", "%":
		return 60, false
	}
	return 70, false
}

// PolicyFromName resolves a configured policy name. The empty string
// selects the default.
func PolicyFromName(name string) (PrecedencePolicy, bool) {
	switch name {
	case "", "legacy":
		return RightChain(), true
	case "climbing":
		return Climbing(), true
	}
	return nil, false
}
