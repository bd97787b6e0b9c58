package diag

import (
	"strings"
	"unicode"

	"github.com/surn-lang/surn/internal/lexer"
)

// SourceBuffer is the diagnostics' view of one source text. Lines are
// recomputed on demand; the buffer holds no incremental state.
type SourceBuffer struct {
	source string
}

// NewSourceBuffer wraps a source text.
func NewSourceBuffer(source string) SourceBuffer {
	return SourceBuffer{source: source}
}

// Empty returns a buffer over no text.
func Empty() SourceBuffer {
	return SourceBuffer{}
}

// Source returns the wrapped text.
func (b SourceBuffer) Source() string {
	return b.source
}

// Get returns the text covered by rng. Positions outside the source
// render as spaces so callers can slice blindly.
func (b SourceBuffer) Get(rng lexer.Range) string {
	chars := []rune(b.source)
	var out strings.Builder
	for i := rng.Start; i < rng.End; i++ {
		if i >= 0 && i < len(chars) {
			out.WriteRune(chars[i])
		} else {
			out.WriteRune(' ')
		}
	}
	return out.String()
}

// Lines splits the buffer into its lines. Line numbers are 1-based;
// offsets and lengths count runes. The final line is always present,
// even when empty.
func (b SourceBuffer) Lines() []SourceLine {
	var lines []SourceLine
	lineStart := 0
	lineEnd := 0
	line := 1
	for i, c := range []rune(b.source) {
		if c == '\n' {
			lines = append(lines, SourceLine{
				offset: lineStart,
				len:    lineEnd - lineStart,
				line:   line,
				source: b.Get(lexer.NewRange(lineStart, lineEnd)),
			})
			line++
			lineStart = i + 1
			lineEnd = lineStart
		} else {
			lineEnd++
		}
	}
	lines = append(lines, SourceLine{
		offset: lineStart,
		len:    lineEnd - lineStart,
		line:   line,
		source: b.Get(lexer.NewRange(lineStart, lineEnd)),
	})
	return lines
}

// LineAt finds the line containing the given rune offset. Offsets
// sitting on a line break or past the end of the source find nothing.
func (b SourceBuffer) LineAt(offset int) (SourceLine, bool) {
	for _, line := range b.Lines() {
		if offset >= line.Offset() && offset < line.OffsetMax() {
			return line, true
		}
	}
	return SourceLine{}, false
}

// SourceLine is one line of a buffer: its text plus where it sits in
// the source.
type SourceLine struct {
	offset int
	len    int
	line   int
	source string
}

// NewSourceLine constructs a line record; len follows from the text.
func NewSourceLine(offset, line int, source string) SourceLine {
	return SourceLine{
		offset: offset,
		len:    len([]rune(source)),
		line:   line,
		source: source,
	}
}

// Offset returns the rune offset of the line start.
func (l SourceLine) Offset() int { return l.offset }

// Len returns the line length in runes, excluding the line break.
func (l SourceLine) Len() int { return l.len }

// OffsetMax returns the exclusive end offset of the line.
func (l SourceLine) OffsetMax() int { return l.offset + l.len }

// Line returns the 1-based line number.
func (l SourceLine) Line() int { return l.line }

// Source returns the line text.
func (l SourceLine) Source() string { return l.source }

// OffsetRelative rebases a source range onto the line.
func (l SourceLine) OffsetRelative(rng lexer.Range) lexer.Range {
	return lexer.NewRange(rng.Start-l.offset, rng.End-l.offset)
}

// SpacesUntil returns the 1-based column where rng starts on the
// trimmed line: the relative start minus whatever indent Trim drops.
// Ranges starting inside the indent clamp to column 1.
func (l SourceLine) SpacesUntil(rng lexer.Range) int {
	relative := l.OffsetRelative(rng)
	start := relative.Start - l.trimmedAmount()
	if start < 0 {
		start = 0
	}
	return start + 1
}

// Trim returns a copy of the line with the leading indent removed.
func (l SourceLine) Trim() SourceLine {
	trimmed := strings.TrimLeftFunc(l.source, unicode.IsSpace)
	out := l
	out.source = trimmed
	return out
}

func (l SourceLine) trimmedAmount() int {
	trimmed := strings.TrimLeftFunc(l.source, unicode.IsSpace)
	return len([]rune(l.source)) - len([]rune(trimmed))
}
