package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/surn-lang/surn/internal/lexer"
)

// Output receives printed reports. Tests swap it for a buffer.
var Output io.Writer = color.Error

// ReportKind classifies a report.
type ReportKind int

const (
	// KindError marks a report that stops compilation.
	KindError ReportKind = iota
	// KindWarning marks a recoverable problem.
	KindWarning
	// KindNotice marks purely informational output.
	KindNotice
)

// String returns the display name of the kind.
func (k ReportKind) String() string {
	switch k {
	case KindWarning:
		return "Warning"
	case KindNotice:
		return "Notice"
	default:
		return "Error"
	}
}

func (k ReportKind) short() string {
	switch k {
	case KindWarning:
		return "Wrn"
	case KindNotice:
		return "Ntc"
	default:
		return "Err"
	}
}

func (k ReportKind) color() *color.Color {
	switch k {
	case KindWarning:
		return color.New(color.FgYellow, color.Bold)
	case KindNotice:
		return color.New(color.FgCyan, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// Snippet is one annotated range inside a report.
type Snippet struct {
	Span    lexer.Range
	Message string
	Hint    string
}

// Report is a builder for user-facing diagnostics. Configure it with
// the Set methods, attach snippets, then Render or Print it.
type Report struct {
	Code    uint64
	Message string
	Name    string

	kind     ReportKind
	source   SourceBuffer
	snippets []Snippet
}

// NewReport returns an empty error report.
func NewReport() *Report {
	return &Report{}
}

// SetCode sets the report code shown in the header.
func (r *Report) SetCode(code uint64) *Report {
	r.Code = code
	return r
}

// SetMessage sets the headline message.
func (r *Report) SetMessage(message string) *Report {
	r.Message = message
	return r
}

// SetName sets the source name shown in the location line.
func (r *Report) SetName(name string) *Report {
	r.Name = name
	return r
}

// SetKind sets the report kind.
func (r *Report) SetKind(kind ReportKind) *Report {
	r.kind = kind
	return r
}

// SetSource sets the buffer snippets are resolved against.
func (r *Report) SetSource(source SourceBuffer) *Report {
	r.source = source
	return r
}

// MakeSnippet annotates a range of the source. An empty hint renders
// no hint line.
func (r *Report) MakeSnippet(rng lexer.Range, message, hint string) *Report {
	r.snippets = append(r.snippets, Snippet{Span: rng, Message: message, Hint: hint})
	return r
}

// Render produces the plain-text form of the report.
func (r *Report) Render() string {
	return r.render(false)
}

// Print writes the report to Output, colored where the terminal
// supports it.
func (r *Report) Print() {
	fmt.Fprint(Output, r.render(true))
}

type resolvedSnippet struct {
	snippet Snippet
	line    SourceLine
	column  int
	pad     int
	length  int
}

func (r *Report) render(colorize bool) string {
	var out strings.Builder

	header := r.kind.String()
	if r.Code != 0 {
		header = fmt.Sprintf("%s[%04d]", header, r.Code)
	}
	fmt.Fprintf(&out, " %s: %s\n", paint(colorize, r.kind.color(), header), r.Message)

	if len(r.snippets) == 0 {
		return out.String()
	}

	resolved := make([]resolvedSnippet, 0, len(r.snippets))
	width := 1
	for _, snippet := range r.snippets {
		res := r.resolve(snippet)
		if digits := len(strconv.Itoa(res.line.Line())); digits > width {
			width = digits
		}
		resolved = append(resolved, res)
	}

	if r.Name != "" {
		first := resolved[0]
		fmt.Fprintf(&out, "  ---> %s:%d:%d\n", r.Name, first.line.Line(), first.column)
	}

	for _, res := range resolved {
		underline := strings.Repeat("~", res.length)
		fmt.Fprintf(&out, " %*s |\n", width, "")
		fmt.Fprintf(&out, " %*d | %s\n", width, res.line.Line(), res.line.Trim().Source())
		fmt.Fprintf(&out, " %*s | %s%s\n", width, "", strings.Repeat(" ", res.pad), paint(colorize, r.kind.color(), underline))
		fmt.Fprintf(&out, "%*s | ---> %s\n", width+1, r.kind.short(), res.snippet.Message)
		fmt.Fprintf(&out, " %*s |\n", width, "")
		if res.snippet.Hint != "" {
			fmt.Fprintf(&out, " %*s = hint: %s\n", width, "", res.snippet.Hint)
		}
	}

	return out.String()
}

// resolve locates a snippet's line and underline geometry. Spans that
// sit past the end of the source clamp onto the last line.
func (r *Report) resolve(snippet Snippet) resolvedSnippet {
	line, ok := r.source.LineAt(snippet.Span.Start)
	if !ok {
		lines := r.source.Lines()
		line = lines[len(lines)-1]
		trimmed := len([]rune(line.Trim().Source()))
		return resolvedSnippet{
			snippet: snippet,
			line:    line,
			column:  line.Len() + 1,
			pad:     trimmed,
			length:  1,
		}
	}

	length := snippet.Span.End - snippet.Span.Start
	if max := line.OffsetMax() - snippet.Span.Start; length > max {
		length = max
	}
	if length < 1 {
		length = 1
	}
	return resolvedSnippet{
		snippet: snippet,
		line:    line,
		column:  snippet.Span.Start - line.Offset() + 1,
		pad:     line.SpacesUntil(snippet.Span) - 1,
		length:  length,
	}
}

func paint(colorize bool, c *color.Color, s string) string {
	if !colorize {
		return s
	}
	return c.Sprint(s)
}
