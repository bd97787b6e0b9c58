package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surn-lang/surn/internal/ast"
	"github.com/surn-lang/surn/internal/lexer"
)

func parseWithPolicy(t *testing.T, source string, policy PrecedencePolicy) *ast.Body {
	t.Helper()
	origin := NewVirtualSource("test.surn", source)
	generator := NewAstGenerator(origin, 1)
	generator.SetPolicy(policy)
	body, err := generator.Begin(lexer.NewTokenStream(lexer.Tokenize(source)))
	require.Nil(t, err, "expected %q to parse", source)
	return body
}

func asOperation(t *testing.T, expr any) *ast.Operation {
	t.Helper()
	op, ok := expr.(*ast.Operation)
	require.True(t, ok, "expected an operation, got %T", expr)
	return op
}

func literalValue(t *testing.T, expr any) string {
	t.Helper()
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok, "expected a literal, got %T", expr)
	return lit.Value
}

func TestRightChainNestsRightward(t *testing.T) {
	// The default policy chains every operator through a recursive
	// expression parse, so grouping ignores operator strength.
	t.Run("product right of sum", func(t *testing.T) {
		body := parseWithPolicy(t, "1 + 2 * 3", RightChain())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "+", outer.Op.Name)
		assert.Equal(t, "1", literalValue(t, outer.Left))

		inner := asOperation(t, outer.Right)
		assert.Equal(t, "*", inner.Op.Name)
		assert.Equal(t, "2", literalValue(t, inner.Left))
		assert.Equal(t, "3", literalValue(t, inner.Right))
	})

	t.Run("sum right of product", func(t *testing.T) {
		body := parseWithPolicy(t, "1 * 2 + 3", RightChain())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "*", outer.Op.Name)
		assert.Equal(t, "1", literalValue(t, outer.Left))

		inner := asOperation(t, outer.Right)
		assert.Equal(t, "+", inner.Op.Name)
	})
}

func TestClimbingHonorsPrecedence(t *testing.T) {
	t.Run("product binds tighter left", func(t *testing.T) {
		body := parseWithPolicy(t, "1 * 2 + 3", Climbing())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "+", outer.Op.Name)
		assert.Equal(t, "3", literalValue(t, outer.Right))

		inner := asOperation(t, outer.Left)
		assert.Equal(t, "*", inner.Op.Name)
		assert.Equal(t, "1", literalValue(t, inner.Left))
	})

	t.Run("product binds tighter right", func(t *testing.T) {
		body := parseWithPolicy(t, "1 + 2 * 3", Climbing())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "+", outer.Op.Name)
		assert.Equal(t, "1", literalValue(t, outer.Left))

		inner := asOperation(t, outer.Right)
		assert.Equal(t, "*", inner.Op.Name)
	})

	t.Run("same tier associates left", func(t *testing.T) {
		body := parseWithPolicy(t, "a + b - c", Climbing())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "-", outer.Op.Name)
		assert.Equal(t, "c", literalValue(t, outer.Right))

		inner := asOperation(t, outer.Left)
		assert.Equal(t, "+", inner.Op.Name)
	})

	t.Run("assignment associates right", func(t *testing.T) {
		body := parseWithPolicy(t, "a = b = c", Climbing())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "=", outer.Op.Name)
		assert.Equal(t, "a", literalValue(t, outer.Left))

		inner := asOperation(t, outer.Right)
		assert.Equal(t, "=", inner.Op.Name)
		assert.Equal(t, "c", literalValue(t, inner.Right))
	})

	t.Run("comparison splits arithmetic", func(t *testing.T) {
		body := parseWithPolicy(t, "a + b < c * d", Climbing())
		outer := asOperation(t, onlyNode(t, body))
		assert.Equal(t, "<", outer.Op.Name)

		left := asOperation(t, outer.Left)
		assert.Equal(t, "+", left.Op.Name)
		right := asOperation(t, outer.Right)
		assert.Equal(t, "*", right.Op.Name)
	})
}

func TestClimbingUnknownOperator(t *testing.T) {
	origin := NewVirtualSource("test.surn", "1 ~~ 2")
	generator := NewAstGenerator(origin, 1)
	generator.SetPolicy(Climbing())
	_, err := generator.Begin(lexer.NewTokenStream(lexer.Tokenize("1 ~~ 2")))
	require.NotNil(t, err)
	assert.Equal(t, `Unknown operator: "~~"`, err.Message)
}

func TestPolicyFromName(t *testing.T) {
	tests := []struct {
		name   string
		policy string
		want   string
		ok     bool
	}{
		{"default", "", "legacy", true},
		{"legacy", "legacy", "legacy", true},
		{"climbing", "climbing", "climbing", true},
		{"unknown", "pratt", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, ok := PolicyFromName(tt.policy)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, policy.Name())
			} else {
				assert.Nil(t, policy)
			}
		})
	}
}
