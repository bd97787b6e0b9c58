package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCleanSource(t *testing.T) {
	sources := []string{
		"",
		"var x = 5;",
		`const y: int | string = "a";`,
		"function foo(x: int): int { return x; }",
		"// comment only",
		"var a = 1;\nvar b = 2;",
	}

	for _, src := range sources {
		assert.NoError(t, Analyze(Tokenize(src)), "source: %q", src)
	}
}

func TestAnalyzeAdjacentIdentifiers(t *testing.T) {
	err := Analyze(Tokenize("var x y = 5;"))

	require.Error(t, err)
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Contains(t, analysisErr.Message, `unexpected identifier "y"`)
}

func TestAnalyzeAdjacentIdentifiersAcrossLines(t *testing.T) {
	// two names split by a line ending are two statements missing
	// semicolons; the parser owns that report
	assert.NoError(t, Analyze(Tokenize("foo\nbar")))
}

func TestAnalyzeUnterminatedString(t *testing.T) {
	err := Analyze(Tokenize(`var s = "oops`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "never closed")
}

func TestAnalyzeDigitLedName(t *testing.T) {
	err := Analyze(Tokenize("var 1x = 5;"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "may not start with a number")
	assert.Contains(t, err.Error(), `"1x"`)
}
