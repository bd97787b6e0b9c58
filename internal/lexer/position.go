package lexer

import "fmt"

// Position is a line and column pair inside a source file.
// Lines start at 1, columns at 0.
type Position struct {
	Line   int
	Column int
}

func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Add returns the component-wise sum of the two positions.
func (p Position) Add(other Position) Position {
	return Position{Line: p.Line + other.Line, Column: p.Column + other.Column}
}

// Sub returns the component-wise difference of the two positions.
func (p Position) Sub(other Position) Position {
	return Position{Line: p.Line - other.Line, Column: p.Column - other.Column}
}

// IsLeading reports whether p sits at or before other in reading order.
// Lines compare first, columns break ties.
func (p Position) IsLeading(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column <= other.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Region is a labeled selection of source between two positions.
type Region struct {
	Start Position
	End   Position
	label string
}

// NewRegion builds a region between two positions. An empty label
// defaults to "Region".
func NewRegion(start, end Position, label string) Region {
	if label == "" {
		label = "Region"
	}
	return Region{Start: start, End: end, label: label}
}

// RegionFromLines builds a region spanning whole lines, with both
// columns pinned to 0.
func RegionFromLines(first, last int) Region {
	return MakeRegion(first, 0, last, 0)
}

// MakeRegion builds an unlabeled region from raw line/column values.
func MakeRegion(startLine, startColumn, endLine, endColumn int) Region {
	return NewRegion(
		NewPosition(startLine, startColumn),
		NewPosition(endLine, endColumn),
		"",
	)
}

// Includes reports whether pos falls inside the region.
func (r Region) Includes(pos Position) bool {
	return r.Start.IsLeading(pos) && pos.IsLeading(r.End)
}

// Name returns the region's label.
func (r Region) Name() string {
	return r.label
}

// ExpandTo moves the end of the region forward to pos and returns the
// updated region.
func (r *Region) ExpandTo(pos Position) Region {
	r.End = pos
	return *r
}

// ShrinkTo moves the end of the region back to pos and returns the
// updated region. Panics when pos lies beyond the current end, since
// that would grow the region instead.
func (r *Region) ShrinkTo(pos Position) Region {
	if !pos.IsLeading(r.End) {
		panic("lexer: position to shrink to lies beyond the region end")
	}
	r.End = pos
	return *r
}

func (r Region) String() string {
	return fmt.Sprintf("[Line: %d | Column: %d]", r.Start.Line, r.Start.Column)
}
