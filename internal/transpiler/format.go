package transpiler

// BraceType selects where an opening brace lands relative to its
// header.
type BraceType int

const (
	// Allman puts the brace on its own line.
	Allman BraceType = iota
	// KandR keeps the brace on the header line.
	KandR
	// AllmanMix uses Allman placement with K&R continuation lines.
	AllmanMix
)

// FormatOptions control the shape of generated source. Every construct
// carries its own brace setting so a target can mix styles.
type FormatOptions struct {
	TabSize    int
	IndentSize int
	NewLine    rune
	// IndentAfterType indents member bodies one level past their
	// declaring type.
	IndentAfterType bool
	// SnakeCaseVars rewrites variable names to snake_case.
	SnakeCaseVars bool

	ClassBrace    BraceType
	FunctionBrace BraceType
	IfBrace       BraceType
	ElseBrace     BraceType
	WhileBrace    BraceType
	ForBrace      BraceType
	MatchBrace    BraceType
}

// PSR4 returns the PSR-4 house style: four-space indents and Allman
// braces throughout.
func PSR4() FormatOptions {
	return FormatOptions{
		TabSize:         4,
		IndentSize:      4,
		NewLine:         '\n',
		IndentAfterType: true,
		SnakeCaseVars:   false,
		ClassBrace:      Allman,
		FunctionBrace:   Allman,
		IfBrace:         Allman,
		ElseBrace:       Allman,
		WhileBrace:      Allman,
		ForBrace:        Allman,
		MatchBrace:      Allman,
	}
}

// Rust returns a rustfmt-flavored style: K&R braces and snake_case
// variable names.
func Rust() FormatOptions {
	return FormatOptions{
		TabSize:         4,
		IndentSize:      4,
		NewLine:         '\n',
		IndentAfterType: true,
		SnakeCaseVars:   true,
		ClassBrace:      KandR,
		FunctionBrace:   KandR,
		IfBrace:         KandR,
		ElseBrace:       KandR,
		WhileBrace:      KandR,
		ForBrace:        KandR,
		MatchBrace:      KandR,
	}
}

// DefaultFormat returns the default style: K&R braces, original
// variable names.
func DefaultFormat() FormatOptions {
	return FormatOptions{
		TabSize:         4,
		IndentSize:      4,
		NewLine:         '\n',
		IndentAfterType: true,
		SnakeCaseVars:   false,
		ClassBrace:      KandR,
		FunctionBrace:   KandR,
		IfBrace:         KandR,
		ElseBrace:       KandR,
		WhileBrace:      KandR,
		ForBrace:        KandR,
		MatchBrace:      KandR,
	}
}
